package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	auditmodels "wellness_admin/api/internal/api/audit/models"
	auditsvc "wellness_admin/api/internal/api/audit/service"
	authmodels "wellness_admin/api/internal/api/auth/models"
	basehdl "wellness_admin/api/internal/api/base/handler"
	contentdto "wellness_admin/api/internal/api/content/dto"
	contentmodels "wellness_admin/api/internal/api/content/models"
	contentsvc "wellness_admin/api/internal/api/content/service"
	"wellness_admin/api/internal/common"
)

// LessonHandler xử lý các route liên quan đến Lesson
type LessonHandler struct {
	*basehdl.BaseHandler[contentmodels.Lesson, contentdto.LessonCreateInput, contentdto.LessonUpdateInput]
	lessonService *contentsvc.LessonService
	auditService  *auditsvc.AuditLogService
}

// NewLessonHandler tạo mới LessonHandler
func NewLessonHandler() (*LessonHandler, error) {
	lessonService, err := contentsvc.NewLessonService()
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson service: %v", err)
	}
	auditService, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log service: %v", err)
	}

	return &LessonHandler{
		BaseHandler:   basehdl.NewBaseHandler[contentmodels.Lesson, contentdto.LessonCreateInput, contentdto.LessonUpdateInput](lessonService),
		lessonService: lessonService,
		auditService:  auditService,
	}, nil
}

// checkLessonOwnership kiểm tra quyền sửa Lesson: admin sửa mọi bài học,
// teacher chỉ sửa bài học do mình tạo.
func (h *LessonHandler) checkLessonOwnership(c fiber.Ctx, id primitive.ObjectID) (contentmodels.Lesson, error) {
	var zero contentmodels.Lesson

	lesson, err := h.lessonService.FindOneById(c.Context(), id)
	if err != nil {
		return zero, err
	}

	actor := actorFromContext(c)
	if !authmodels.CanEditResource(roleFromContext(c), authmodels.ResourceTypeLesson, actor.ID, lesson.AuthorID) {
		return zero, common.ErrNotResourceOwner
	}
	return lesson, nil
}

// InsertOne tạo Lesson mới ở trạng thái draft, gắn author là user đang thao tác
func (h *LessonHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input contentdto.LessonCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest, err))
			return nil
		}

		actor := actorFromContext(c)
		model.Status = contentmodels.LessonStatusDraft
		model.AuthorID = actor.ID

		data, err := h.lessonService.InsertOne(c.Context(), *model)
		if err == nil {
			h.auditService.Record(actor, auditmodels.ActionCreate, auditmodels.ResourceLesson, data.ID.Hex(),
				nil, snapshot(data))
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật Lesson theo ID, kèm kiểm tra quyền sở hữu và ghi nhật ký
func (h *LessonHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.checkLessonOwnership(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update, err := h.ParseUpdateBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.lessonService.UpdateById(c.Context(), id, update)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionUpdate, auditmodels.ResourceLesson, id.Hex(),
				snapshot(before), snapshot(data))
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById xóa Lesson theo ID, kèm kiểm tra quyền sở hữu và ghi nhật ký
func (h *LessonHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.checkLessonOwnership(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.lessonService.DeleteById(c.Context(), id)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionDelete, auditmodels.ResourceLesson, id.Hex(),
				snapshot(before), nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// markStatus xử lý chung cho các endpoint chuyển trạng thái media của Lesson
func (h *LessonHandler) markStatus(c fiber.Ctx, transition func(id primitive.ObjectID) (contentmodels.Lesson, error)) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.checkLessonOwnership(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := transition(id)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionUpdate, auditmodels.ResourceLesson, id.Hex(),
				map[string]interface{}{"status": before.Status},
				map[string]interface{}{"status": data.Status})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMarkUploading đánh dấu Lesson đang upload media
func (h *LessonHandler) HandleMarkUploading(c fiber.Ctx) error {
	return h.markStatus(c, func(id primitive.ObjectID) (contentmodels.Lesson, error) {
		return h.lessonService.MarkUploading(c.Context(), id, "")
	})
}

// HandleMarkProcessing đánh dấu media của Lesson đang transcode
func (h *LessonHandler) HandleMarkProcessing(c fiber.Ctx) error {
	return h.markStatus(c, func(id primitive.ObjectID) (contentmodels.Lesson, error) {
		return h.lessonService.MarkProcessing(c.Context(), id)
	})
}

// HandleMarkReady đánh dấu media đã sẵn sàng, nhận danh sách rendition trong body
func (h *LessonHandler) HandleMarkReady(c fiber.Ctx) error {
	var input contentdto.LessonMarkReadyInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleError(c, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest, err))
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	return h.markStatus(c, func(id primitive.ObjectID) (contentmodels.Lesson, error) {
		return h.lessonService.MarkReady(c.Context(), id, input.DurationSec, input.Renditions)
	})
}

// HandleMarkFailed đánh dấu transcode thất bại
func (h *LessonHandler) HandleMarkFailed(c fiber.Ctx) error {
	var input contentdto.LessonMarkFailedInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleError(c, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest, err))
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		basehdl.HandleError(c, err)
		return nil
	}

	return h.markStatus(c, func(id primitive.ObjectID) (contentmodels.Lesson, error) {
		return h.lessonService.MarkFailed(c.Context(), id, input.Reason)
	})
}
