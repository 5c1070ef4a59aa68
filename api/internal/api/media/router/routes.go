// Package router đăng ký các route thuộc domain media.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	mediahdl "wellness_admin/api/internal/api/media/handler"
	"wellness_admin/api/internal/api/middleware"
	apirouter "wellness_admin/api/internal/api/router"
)

// Register đăng ký route upload media lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	mediaHandler, err := mediahdl.NewMediaHandler()
	if err != nil {
		return fmt.Errorf("failed to create media handler: %w", err)
	}

	uploadMiddleware := middleware.AuthMiddleware("Media.Upload")
	apirouter.RegisterRouteWithMiddleware(v1, "/media", "POST", "/init-upload", []fiber.Handler{uploadMiddleware}, mediaHandler.HandleInitUpload)
	return nil
}
