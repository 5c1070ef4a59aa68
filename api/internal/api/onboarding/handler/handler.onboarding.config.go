// Package handler - HTTP handlers cho domain onboarding.
package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	auditmodels "wellness_admin/api/internal/api/audit/models"
	auditsvc "wellness_admin/api/internal/api/audit/service"
	authmodels "wellness_admin/api/internal/api/auth/models"
	basehdl "wellness_admin/api/internal/api/base/handler"
	basesvc "wellness_admin/api/internal/api/base/service"
	onboardingdto "wellness_admin/api/internal/api/onboarding/dto"
	onboardingmodels "wellness_admin/api/internal/api/onboarding/models"
	onboardingsvc "wellness_admin/api/internal/api/onboarding/service"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/utility"
)

// OnboardingConfigHandler xử lý các route liên quan đến OnboardingConfig
type OnboardingConfigHandler struct {
	*basehdl.BaseHandler[onboardingmodels.OnboardingConfig, onboardingdto.OnboardingConfigCreateInput, onboardingdto.OnboardingConfigUpdateInput]
	configService *onboardingsvc.OnboardingConfigService
	auditService  *auditsvc.AuditLogService
}

// NewOnboardingConfigHandler tạo mới OnboardingConfigHandler
func NewOnboardingConfigHandler() (*OnboardingConfigHandler, error) {
	configService, err := onboardingsvc.NewOnboardingConfigService()
	if err != nil {
		return nil, fmt.Errorf("failed to create onboarding config service: %v", err)
	}
	auditService, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log service: %v", err)
	}

	return &OnboardingConfigHandler{
		BaseHandler:   basehdl.NewBaseHandler[onboardingmodels.OnboardingConfig, onboardingdto.OnboardingConfigCreateInput, onboardingdto.OnboardingConfigUpdateInput](configService),
		configService: configService,
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

// nextVersion tính số phiên bản kế tiếp dựa trên phiên bản lớn nhất hiện có
func (h *OnboardingConfigHandler) nextVersion(c fiber.Ctx) int {
	opts := mongoopts.FindOne().SetSort(bson.M{"version": -1})
	latest, err := h.configService.FindOne(c.Context(), bson.M{}, opts)
	if err != nil {
		return 1
	}
	return latest.Version + 1
}

// InsertOne tạo OnboardingConfig mới ở trạng thái draft.
// Version nếu không chỉ định sẽ tự tăng từ phiên bản lớn nhất hiện có.
func (h *OnboardingConfigHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input onboardingdto.OnboardingConfigCreateInput
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

		version := input.Version
		if version == 0 {
			version = h.nextVersion(c)
		}

		model := onboardingmodels.OnboardingConfig{
			Title:       input.Title,
			Description: input.Description,
			Status:      onboardingmodels.ConfigStatusDraft,
			Version:     version,
			Questions:   onboardingdto.ToQuestions(input.Questions),
			InfoScreens: onboardingdto.ToInfoScreens(input.InfoScreens),
			Rules:       onboardingdto.ToRules(input.Rules),
		}

		data, err := h.configService.InsertOne(c.Context(), model)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionCreate, auditmodels.ResourceOnboarding, data.ID.Hex(),
				nil, snapshot(data))
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật OnboardingConfig theo ID (partial update) và ghi nhật ký
func (h *OnboardingConfigHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input onboardingdto.OnboardingConfigUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu cập nhật không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.configService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		set := bson.M{}
		if input.Title != "" {
			set["title"] = input.Title
		}
		if input.Description != "" {
			set["description"] = input.Description
		}
		if input.Questions != nil {
			set["questions"] = onboardingdto.ToQuestions(input.Questions)
		}
		if input.InfoScreens != nil {
			set["infoScreens"] = onboardingdto.ToInfoScreens(input.InfoScreens)
		}
		if input.Rules != nil {
			set["rules"] = onboardingdto.ToRules(input.Rules)
		}
		if len(set) == 0 {
			h.HandleResponse(c, before, nil)
			return nil
		}

		data, err := h.configService.UpdateById(c.Context(), id, &basesvc.UpdateData{Set: set})
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionUpdate, auditmodels.ResourceOnboarding, id.Hex(),
				snapshot(before), snapshot(data))
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById xóa OnboardingConfig theo ID và ghi nhật ký.
// Config đang active không xóa được, phải activate config khác trước.
func (h *OnboardingConfigHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.configService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if !onboardingmodels.CanDeleteConfig(before.Status) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeBusinessState,
				"Không thể xóa config đang active. Hãy activate config khác trước khi xóa.",
				common.StatusConflict, nil))
			return nil
		}

		err = h.configService.DeleteById(c.Context(), id)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionDelete, auditmodels.ResourceOnboarding, id.Hex(),
				snapshot(before), nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleActivate kích hoạt một config và archive các config active khác
func (h *OnboardingConfigHandler) HandleActivate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.configService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.configService.Activate(c.Context(), id)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionActivate, auditmodels.ResourceOnboarding, id.Hex(),
				map[string]interface{}{"status": before.Status},
				map[string]interface{}{"status": data.Status})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleGetActive trả về config đang active
func (h *OnboardingConfigHandler) HandleGetActive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.configService.GetActive(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleRecommend chạy bộ câu trả lời qua các luật của config,
// trả về danh sách programId khớp theo thứ tự ưu tiên
func (h *OnboardingConfigHandler) HandleRecommend(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input onboardingdto.RecommendInput
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

		programIDs, err := h.configService.Recommend(c.Context(), id, input.Answers)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result := make([]string, len(programIDs))
		for i, programID := range programIDs {
			result[i] = programID.Hex()
		}
		h.HandleResponse(c, map[string]interface{}{"programIds": result}, nil)
		return nil
	})
}
