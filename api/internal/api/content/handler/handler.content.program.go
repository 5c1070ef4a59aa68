// Package handler - HTTP handlers cho domain content (Program, Lesson).
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
	"wellness_admin/api/internal/utility"
)

// ProgramHandler xử lý các route liên quan đến Program
type ProgramHandler struct {
	*basehdl.BaseHandler[contentmodels.Program, contentdto.ProgramCreateInput, contentdto.ProgramUpdateInput]
	programService *contentsvc.ProgramService
	auditService   *auditsvc.AuditLogService
}

// NewProgramHandler tạo mới ProgramHandler
func NewProgramHandler() (*ProgramHandler, error) {
	programService, err := contentsvc.NewProgramService()
	if err != nil {
		return nil, fmt.Errorf("failed to create program service: %v", err)
	}
	auditService, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log service: %v", err)
	}

	return &ProgramHandler{
		BaseHandler:    basehdl.NewBaseHandler[contentmodels.Program, contentdto.ProgramCreateInput, contentdto.ProgramUpdateInput](programService),
		programService: programService,
		auditService:   auditService,
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

// parseIDParam validate và parse :id từ URI params
func parseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest, nil)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest, nil)
	}
	return utility.String2ObjectID(id), nil
}

// snapshot chuyển model thành map để tính diff ghi nhật ký
func snapshot(model interface{}) map[string]interface{} {
	m, err := utility.ToMap(model)
	if err != nil {
		return nil
	}
	return m
}

// checkProgramOwnership kiểm tra quyền sửa Program: admin sửa mọi chương trình,
// teacher chỉ sửa chương trình do mình tạo.
func (h *ProgramHandler) checkProgramOwnership(c fiber.Ctx, id primitive.ObjectID) (contentmodels.Program, error) {
	var zero contentmodels.Program

	program, err := h.programService.FindOneById(c.Context(), id)
	if err != nil {
		return zero, err
	}

	actor := actorFromContext(c)
	if !authmodels.CanEditResource(roleFromContext(c), authmodels.ResourceTypeProgram, actor.ID, program.AuthorID) {
		return zero, common.ErrNotResourceOwner
	}
	return program, nil
}

// InsertOne tạo Program mới ở trạng thái draft, gắn author là user đang thao tác
func (h *ProgramHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input contentdto.ProgramCreateInput
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
		model.Status = contentmodels.ProgramStatusDraft
		model.AuthorID = actor.ID
		if len(input.LessonIDs) > 0 {
			model.LessonIDs = utility.StringArray2ObjectIDArray(input.LessonIDs)
		}

		data, err := h.programService.InsertOne(c.Context(), *model)
		if err == nil {
			h.auditService.Record(actor, auditmodels.ActionCreate, auditmodels.ResourceProgram, data.ID.Hex(),
				nil, snapshot(data))
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật Program theo ID, kèm kiểm tra quyền sở hữu và ghi nhật ký
func (h *ProgramHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.checkProgramOwnership(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update, err := h.ParseUpdateBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.programService.UpdateById(c.Context(), id, update)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionUpdate, auditmodels.ResourceProgram, id.Hex(),
				snapshot(before), snapshot(data))
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById xóa Program theo ID, kèm kiểm tra quyền sở hữu và ghi nhật ký
func (h *ProgramHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.checkProgramOwnership(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.programService.DeleteById(c.Context(), id)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionDelete, auditmodels.ResourceProgram, id.Hex(),
				snapshot(before), nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandlePublish xử lý publish Program
func (h *ProgramHandler) HandlePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.checkProgramOwnership(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.programService.Publish(c.Context(), id)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionPublish, auditmodels.ResourceProgram, id.Hex(),
				map[string]interface{}{"status": before.Status},
				map[string]interface{}{"status": data.Status})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleArchive xử lý archive Program
func (h *ProgramHandler) HandleArchive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.checkProgramOwnership(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.programService.Archive(c.Context(), id)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionArchive, auditmodels.ResourceProgram, id.Hex(),
				map[string]interface{}{"status": before.Status},
				map[string]interface{}{"status": data.Status})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSchedule xử lý đặt lịch publish/archive cho Program
func (h *ProgramHandler) HandleSchedule(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input contentdto.ProgramScheduleInput
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

		before, err := h.checkProgramOwnership(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.programService.Schedule(c.Context(), id, input.PublishAt, input.ArchiveAt)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionUpdate, auditmodels.ResourceProgram, id.Hex(),
				map[string]interface{}{"publishAt": before.PublishAt, "archiveAt": before.ArchiveAt},
				map[string]interface{}{"publishAt": data.PublishAt, "archiveAt": data.ArchiveAt})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleReorderLessons xử lý sắp xếp lại thứ tự lesson trong Program
func (h *ProgramHandler) HandleReorderLessons(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input contentdto.ReorderLessonsInput
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

		before, err := h.checkProgramOwnership(c, id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		lessonIDs := utility.StringArray2ObjectIDArray(input.LessonIDs)
		data, err := h.programService.ReorderLessons(c.Context(), id, lessonIDs)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionReorder, auditmodels.ResourceProgram, id.Hex(),
				map[string]interface{}{"lessonIds": before.LessonIDs},
				map[string]interface{}{"lessonIds": data.LessonIDs})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}
