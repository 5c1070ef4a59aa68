// Package authsvc - service quản trị (Admin): khóa user, gán vai trò, mời user mới.
package authsvc

import (
	"context"
	"fmt"

	authdto "wellness_admin/api/internal/api/auth/dto"
	models "wellness_admin/api/internal/api/auth/models"
	basesvc "wellness_admin/api/internal/api/base/service"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/global"
	"wellness_admin/api/internal/logger"
	"wellness_admin/api/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// AdminService là cấu trúc chứa các phương thức quản trị người dùng
type AdminService struct {
	userService *UserService
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &AdminService{
		userService: userService,
	}, nil
}

// SetRole gán vai trò tĩnh cho User dựa trên Email
func (s *AdminService) SetRole(ctx context.Context, email string, role string) (*models.User, error) {
	if !models.IsValidRole(role) {
		return nil, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Vai trò '%s' không hợp lệ. Các vai trò hợp lệ: %v", role, models.AllRoles),
			common.StatusBadRequest, nil)
	}

	user, err := s.userService.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"role": role},
	}
	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// BlockUser chặn hoặc bỏ chặn User dựa trên Email và trạng thái Block
func (s *AdminService) BlockUser(ctx context.Context, email string, block bool, note string) (*models.User, []string, error) {
	user, err := s.userService.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   block,
			"blockNote": note,
		},
	}
	// Thu hồi token khi khóa để chặn ngay các phiên đang mở.
	// Trả về danh sách token bị thu hồi để caller xóa khỏi cache xác thực.
	revoked := make([]string, 0)
	if block {
		if user.Token != "" {
			revoked = append(revoked, user.Token)
		}
		for _, t := range user.Tokens {
			if t.JwtToken != "" {
				revoked = append(revoked, t.JwtToken)
			}
		}
		updateData.Set["token"] = ""
		updateData.Set["tokens"] = []models.Token{}
	}

	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, nil, err
	}
	return &updatedUser, revoked, nil
}

// UnBlockUser mở khóa người dùng
func (s *AdminService) UnBlockUser(ctx context.Context, email string) (*models.User, error) {
	user, _, err := s.BlockUser(ctx, email, false, "")
	return user, err
}

// InviteUser tạo user mới với vai trò được chỉ định và gửi email mời.
// User được tạo trước khi đăng nhập lần đầu; khi đăng nhập bằng Firebase
// sẽ được ghép theo email và giữ nguyên vai trò đã gán.
func (s *AdminService) InviteUser(ctx context.Context, input *authdto.InviteUserInput) (*models.User, error) {
	if !models.IsValidRole(input.Role) {
		return nil, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Vai trò '%s' không hợp lệ. Các vai trò hợp lệ: %v", input.Role, models.AllRoles),
			common.StatusBadRequest, nil)
	}

	if err := utility.ValidateEmail(input.Email); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Email '%s' không đúng định dạng", input.Email),
			common.StatusBadRequest, err)
	}

	exists, err := s.userService.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeBusinessState,
			fmt.Sprintf("Email '%s' đã tồn tại trong hệ thống", input.Email),
			common.StatusConflict, nil)
	}

	user, err := s.userService.InsertOne(ctx, models.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	})
	if err != nil {
		return nil, err
	}

	// Gửi mail mời ở background, lỗi gửi mail không chặn việc tạo user
	utility.GoProtect(func() {
		if mailErr := utility.SendInviteEmail(global.ServerConfig, input.Email, input.Name, input.Role); mailErr != nil {
			logger.GetErrorLogger().WithField("email", input.Email).
				Errorf("InviteUser: Lỗi gửi email mời: %v", mailErr)
		}
	})

	return &user, nil
}
