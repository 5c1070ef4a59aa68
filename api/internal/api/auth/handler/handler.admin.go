// Package authhdl - handler admin (block user, set role, invite user).
package authhdl

import (
	"fmt"

	auditmodels "wellness_admin/api/internal/api/audit/models"
	auditsvc "wellness_admin/api/internal/api/audit/service"
	authdto "wellness_admin/api/internal/api/auth/dto"
	authmodels "wellness_admin/api/internal/api/auth/models"
	authsvc "wellness_admin/api/internal/api/auth/service"
	basehdl "wellness_admin/api/internal/api/base/handler"
	"wellness_admin/api/internal/api/middleware"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler xử lý các route liên quan đến quản trị viên
type AdminHandler struct {
	basehdl.BaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	UserCRUD     *authsvc.UserService
	AdminService *authsvc.AdminService
	auditService *auditsvc.AuditLogService
}

// NewAdminHandler tạo một instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	h := &AdminHandler{}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	h.UserCRUD = userService
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	h.AdminService = adminService
	auditService, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log service: %v", err)
	}
	h.auditService = auditService
	h.BaseService = userService
	return h, nil
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

// HandleSetRole xử lý gán vai trò tĩnh cho người dùng
func (h *AdminHandler) HandleSetRole(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.SetRoleInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, findErr := h.UserCRUD.FindOne(c.Context(), map[string]interface{}{"email": input.Email}, nil)

		result, err := h.AdminService.SetRole(c.Context(), input.Email, input.Role)
		if err == nil && findErr == nil {
			actor := actorFromContext(c)
			h.auditService.Record(actor, auditmodels.ActionSetRole, auditmodels.ResourceUser, result.ID.Hex(),
				map[string]interface{}{"role": before.Role},
				map[string]interface{}{"role": result.Role})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleBlockUser xử lý khóa người dùng
func (h *AdminHandler) HandleBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.BlockUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, revoked, err := h.AdminService.BlockUser(c.Context(), input.Email, true, input.Note)
		if err == nil {
			// Xóa các token bị thu hồi khỏi cache xác thực để các phiên
			// đang mở của user bị khóa mất hiệu lực ngay
			authManager := middleware.GetAuthManager()
			for _, token := range revoked {
				authManager.InvalidateToken(token)
			}
			actor := actorFromContext(c)
			h.auditService.Record(actor, auditmodels.ActionBlock, auditmodels.ResourceUser, result.ID.Hex(),
				map[string]interface{}{"isBlock": false},
				map[string]interface{}{"isBlock": true, "blockNote": input.Note})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleUnBlockUser xử lý mở khóa người dùng
func (h *AdminHandler) HandleUnBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UnBlockUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.AdminService.UnBlockUser(c.Context(), input.Email)
		if err == nil {
			actor := actorFromContext(c)
			h.auditService.Record(actor, auditmodels.ActionUnblock, auditmodels.ResourceUser, result.ID.Hex(),
				map[string]interface{}{"isBlock": true},
				map[string]interface{}{"isBlock": false})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleInviteUser xử lý mời người dùng mới với vai trò được chỉ định
func (h *AdminHandler) HandleInviteUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.InviteUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.AdminService.InviteUser(c.Context(), &input)
		if err == nil {
			actor := actorFromContext(c)
			h.auditService.Record(actor, auditmodels.ActionInvite, auditmodels.ResourceUser, result.ID.Hex(), nil,
				map[string]interface{}{"email": input.Email, "name": input.Name, "role": input.Role})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}
