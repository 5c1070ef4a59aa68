package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "wellness_admin/api/internal/api/auth/models"
	authsvc "wellness_admin/api/internal/api/auth/service"
	"wellness_admin/api/internal/common"
	"wellness_admin/api/internal/global"
	"wellness_admin/api/internal/logger"
	"wellness_admin/api/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng.
// Phân quyền là ma trận tĩnh theo vai trò (admin/teacher/viewer), không cần tra database.
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}

	return &AuthManager{
		UserCRUD: userService,
		// Cache user theo token với thời gian sống 5 phút, dọn dẹp mỗi 10 phút
		Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
	}, nil
}

// findUserByToken tìm user theo token, có cache để giảm tải database
func (am *AuthManager) findUserByToken(ctx context.Context, token string) (authmodels.User, error) {
	cacheKey := "auth_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(authmodels.User), nil
	}

	// Ưu tiên query field "token" (token mới nhất) vì nó được cập nhật mỗi lần login.
	// Nếu không tìm thấy, query trong array "tokens" (tokens theo hwid).
	user, err := am.UserCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		user, err = am.UserCRUD.FindOne(ctx, bson.M{"tokens.jwtToken": token}, nil)
		if err != nil {
			return authmodels.User{}, err
		}
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// InvalidateToken xóa token khỏi cache (gọi khi logout, block user)
func (am *AuthManager) InvalidateToken(token string) {
	am.Cache.Delete("auth_token:" + token)
}

// AuthMiddleware middleware xác thực cho Fiber.
// requirePermission rỗng nghĩa là chỉ cần đăng nhập.
func AuthMiddleware(requirePermission string) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		token := parts[1]

		// Kiểm tra chữ ký JWT trước, token giả mạo bị chặn mà không tốn query database
		if _, err := utility.ParseToken(global.ServerConfig.JwtSecret, token); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Chữ ký JWT không hợp lệ")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		user, err := authManager.findUserByToken(c.Context(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token không tồn tại trong database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		c.Locals("role", user.Role)

		// Kiểm tra quyền theo ma trận tĩnh
		if !authmodels.HasPermission(user.Role, requirePermission) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":             user.ID.Hex(),
				"user_email":          user.Email,
				"role":                user.Role,
				"required_permission": requirePermission,
				"path":                c.Path(),
			}).Warn("[AUTH] Vai trò không có quyền thực hiện thao tác")
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}

		c.Locals("permission_name", requirePermission)
		return c.Next()
	}
}
