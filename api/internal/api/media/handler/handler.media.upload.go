// Package handler - HTTP handlers cho domain media.
package handler

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"

	auditmodels "wellness_admin/api/internal/api/audit/models"
	auditsvc "wellness_admin/api/internal/api/audit/service"
	authmodels "wellness_admin/api/internal/api/auth/models"
	basehdl "wellness_admin/api/internal/api/base/handler"
	contentsvc "wellness_admin/api/internal/api/content/service"
	mediadto "wellness_admin/api/internal/api/media/dto"
	mediasvc "wellness_admin/api/internal/api/media/service"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/global"
	"wellness_admin/api/internal/utility"
)

// MediaHandler xử lý các route khởi tạo upload media
type MediaHandler struct {
	mediaService  *mediasvc.MediaService
	lessonService *contentsvc.LessonService
	auditService  *auditsvc.AuditLogService
}

// NewMediaHandler tạo mới MediaHandler
func NewMediaHandler() (*MediaHandler, error) {
	mediaService, err := mediasvc.NewMediaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create media service: %v", err)
	}
	lessonService, err := contentsvc.NewLessonService()
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson service: %v", err)
	}
	auditService, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log service: %v", err)
	}
	return &MediaHandler{
		mediaService:  mediaService,
		lessonService: lessonService,
		auditService:  auditService,
	}, nil
}

// actorFromContext lấy thông tin user đang thao tác từ context (do AuthMiddleware đặt)
// kèm metadata của request để ghi nhật ký.
func actorFromContext(c fiber.Ctx) auditsvc.Actor {
	actor := auditsvc.Actor{
		IP:        c.IP(),
		UserAgent: c.Get("User-Agent"),
	}
	if rid, ok := c.Locals("requestid").(string); ok {
		actor.RequestID = rid
	}
	if user, ok := c.Locals("user").(authmodels.User); ok {
		actor.ID = user.ID
		actor.Email = user.Email
	}
	return actor
}

// roleFromContext lấy vai trò của user đang thao tác từ context
func roleFromContext(c fiber.Ctx) string {
	if role, ok := c.Locals("role").(string); ok {
		return role
	}
	return ""
}

// HandleInitUpload sinh signed PUT URL cho một lần upload media
func (h *MediaHandler) HandleInitUpload(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input mediadto.InitUploadInput
		decoder := json.NewDecoder(bytes.NewReader(c.Body()))
		decoder.UseNumber()
		if err := decoder.Decode(&input); err != nil {
			basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest, err))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.HandleError(c, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dữ liệu đầu vào không hợp lệ: %v", err),
				common.StatusBadRequest, err))
			return nil
		}

		resourceID := utility.String2ObjectID(input.ResourceID)

		// Upload cho lesson sẽ đổi trạng thái lesson sang uploading và ghi đè
		// storagePath, nên áp dụng cùng luật sở hữu với các thao tác sửa lesson:
		// teacher chỉ upload được vào lesson do chính mình tạo.
		if input.ResourceType == mediasvc.UploadResourceLesson {
			lesson, err := h.lessonService.FindOneById(c.Context(), resourceID)
			if err != nil {
				basehdl.HandleError(c, err)
				return nil
			}
			actor := actorFromContext(c)
			if !authmodels.CanEditResource(roleFromContext(c), authmodels.ResourceTypeLesson, actor.ID, lesson.AuthorID) {
				basehdl.HandleError(c, common.ErrNotResourceOwner)
				return nil
			}
		}

		result, err := h.mediaService.InitUpload(c.Context(),
			input.ResourceType, resourceID, input.FileName, input.ContentType)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		h.auditService.Record(actorFromContext(c), auditmodels.ActionUpload, auditmodels.ResourceMedia, input.ResourceID,
			nil, map[string]interface{}{
				"resourceType": input.ResourceType,
				"storagePath":  result.StoragePath,
				"fileName":     input.FileName,
				"contentType":  input.ContentType,
			})

		basehdl.HandleSuccess(c, result)
		return nil
	})
}
