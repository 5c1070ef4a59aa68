// Package router đăng ký các route thuộc domain auth: Admin, System, Auth, Users.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "wellness_admin/api/internal/api/auth/handler"
	basehdl "wellness_admin/api/internal/api/base/handler"
	"wellness_admin/api/internal/api/middleware"
	apirouter "wellness_admin/api/internal/api/router"
)

// Register đăng ký tất cả route auth (admin, system, auth, users) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerAdminRoutes(v1); err != nil {
		return err
	}
	if err := registerUserRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	router.Post("/auth/login/firebase", userHandler.HandleLoginWithFirebase)
	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/routes", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetRoutes)
	return nil
}

func registerAdminRoutes(router fiber.Router) error {
	adminHandler, err := authhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}
	blockMiddleware := middleware.AuthMiddleware("User.Block")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/block", []fiber.Handler{blockMiddleware}, adminHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/unblock", []fiber.Handler{blockMiddleware}, adminHandler.HandleUnBlockUser)
	setRoleMiddleware := middleware.AuthMiddleware("User.SetRole")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/role", []fiber.Handler{setRoleMiddleware}, adminHandler.HandleSetRole)
	inviteMiddleware := middleware.AuthMiddleware("User.Invite")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/invite", []fiber.Handler{inviteMiddleware}, adminHandler.HandleInviteUser)
	return nil
}

func registerUserRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	// Chỉ mở các route ghi theo từng document (insert-one, update/delete theo id):
	// các route ghi hàng loạt bỏ qua ghi nhật ký nên không đăng ký.
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.OwnedWriteConfig, "User")
	return nil
}
