// Package authhdl - handler xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"

	auditmodels "wellness_admin/api/internal/api/audit/models"
	auditsvc "wellness_admin/api/internal/api/audit/service"
	authdto "wellness_admin/api/internal/api/auth/dto"
	models "wellness_admin/api/internal/api/auth/models"
	authsvc "wellness_admin/api/internal/api/auth/service"
	basehdl "wellness_admin/api/internal/api/base/handler"
	"wellness_admin/api/internal/api/middleware"
	"wellness_admin/api/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService  *authsvc.UserService
	auditService *auditsvc.AuditLogService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	auditService, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler:  baseHandler,
		userService:  userService,
		auditService: auditService,
	}, nil
}

// HandleLoginWithFirebase xử lý đăng nhập bằng Firebase ID token
func (h *UserHandler) HandleLoginWithFirebase(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.FirebaseLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.LoginWithFirebase(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor := actorFromContext(c)
		actor.ID = user.ID
		actor.Email = user.Email
		h.auditService.Record(actor, auditmodels.ActionLogin, auditmodels.ResourceUser, user.ID.Hex(), nil, map[string]interface{}{
			"email": user.Email,
			"role":  user.Role,
		})

		// Token chỉ trả qua field riêng của response login,
		// model User không serialize token ra JSON.
		user.Tokens = nil
		h.HandleResponse(c, fiber.Map{"user": user, "token": user.Token}, nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất người dùng
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := c.Locals("user_id")
		if userID == nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
			return nil
		}
		var input authdto.UserLogoutInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		objID, err := primitive.ObjectIDFromHex(userID.(string))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
			return nil
		}
		revoked, err := h.userService.Logout(c.Context(), objID, &input)
		if err == nil {
			// Xóa token khỏi cache xác thực để phiên mất hiệu lực ngay
			authManager := middleware.GetAuthManager()
			for _, token := range revoked {
				authManager.InvalidateToken(token)
			}
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetProfile lấy thông tin profile của người dùng
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := c.Locals("user_id")
		if userID == nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
			return nil
		}
		objID, err := primitive.ObjectIDFromHex(userID.(string))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
			return nil
		}
		user, err := h.userService.BaseServiceMongoImpl.FindOneById(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Token = ""
		user.Tokens = nil
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleUpdateProfile cập nhật thông tin profile của người dùng đang đăng nhập
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := c.Locals("user_id")
		if userID == nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
			return nil
		}
		var input authdto.UserChangeInfoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		objID, err := primitive.ObjectIDFromHex(userID.(string))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
			return nil
		}
		updatedUser, err := h.userService.UpdateProfile(c.Context(), objID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		updatedUser.Token = ""
		updatedUser.Tokens = nil
		h.HandleResponse(c, updatedUser, nil)
		return nil
	})
}

// InsertOne tạo người dùng mới (CRUD admin) và ghi nhật ký.
// Khác với invite, thao tác này không gửi email mời.
func (h *UserHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserCreateInput
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

		model := models.User{
			Name:  input.Name,
			Email: input.Email,
			Role:  input.Role,
		}
		data, err := h.userService.InsertOne(c.Context(), model)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionCreate, auditmodels.ResourceUser, data.ID.Hex(),
				nil, snapshot(data))
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật người dùng theo ID (CRUD admin) và ghi nhật ký.
// Vai trò không đổi được qua route này, dùng /admin/user/role.
func (h *UserHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.userService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update, err := h.ParseUpdateBody(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.userService.UpdateById(c.Context(), id, update)
		if err == nil {
			h.auditService.Record(actorFromContext(c), auditmodels.ActionUpdate, auditmodels.ResourceUser, id.Hex(),
				snapshot(before), snapshot(data))
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById xóa người dùng theo ID (CRUD admin) và ghi nhật ký.
// Admin không tự xóa được tài khoản của chính mình.
func (h *UserHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := parseIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		actor := actorFromContext(c)
		if actor.ID == id {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeBusinessState,
				"Không thể tự xóa tài khoản của chính mình",
				common.StatusConflict, nil))
			return nil
		}

		before, err := h.userService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.DeleteById(c.Context(), id)
		if err == nil {
			// Xóa các token của user bị xóa khỏi cache xác thực
			authManager := middleware.GetAuthManager()
			if before.Token != "" {
				authManager.InvalidateToken(before.Token)
			}
			for _, t := range before.Tokens {
				if t.JwtToken != "" {
					authManager.InvalidateToken(t.JwtToken)
				}
			}
			h.auditService.Record(actor, auditmodels.ActionDelete, auditmodels.ResourceUser, id.Hex(),
				snapshot(before), nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetRoutes trả về các route cấp trang mà vai trò hiện tại được truy cập.
// Frontend dùng kết quả này để ẩn/hiện menu.
func (h *UserHandler) HandleGetRoutes(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		role, _ := c.Locals("role").(string)
		routes := make([]string, 0)
		for _, route := range []string{models.RouteContent, models.RouteUsers, models.RouteCommands} {
			if models.CanAccessRoute(role, route) {
				routes = append(routes, route)
			}
		}
		h.HandleResponse(c, fiber.Map{"role": role, "routes": routes}, nil)
		return nil
	})
}
