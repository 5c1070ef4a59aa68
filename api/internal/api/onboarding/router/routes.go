// Package router đăng ký các route thuộc domain onboarding.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"wellness_admin/api/internal/api/middleware"
	onboardinghdl "wellness_admin/api/internal/api/onboarding/handler"
	apirouter "wellness_admin/api/internal/api/router"
)

// Register đăng ký tất cả route onboarding lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	configHandler, err := onboardinghdl.NewOnboardingConfigHandler()
	if err != nil {
		return fmt.Errorf("failed to create onboarding config handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/onboarding-config", configHandler, apirouter.OwnedWriteConfig, "Onboarding")

	readMiddleware := middleware.AuthMiddleware("Onboarding.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/onboarding-config", "GET", "/active", []fiber.Handler{readMiddleware}, configHandler.HandleGetActive)
	apirouter.RegisterRouteWithMiddleware(v1, "/onboarding-config", "POST", "/recommend/:id", []fiber.Handler{readMiddleware}, configHandler.HandleRecommend)

	updateMiddleware := middleware.AuthMiddleware("Onboarding.Update")
	apirouter.RegisterRouteWithMiddleware(v1, "/onboarding-config", "POST", "/activate/:id", []fiber.Handler{updateMiddleware}, configHandler.HandleActivate)
	return nil
}
