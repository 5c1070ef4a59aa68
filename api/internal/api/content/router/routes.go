// Package router đăng ký các route thuộc domain content: Program, Lesson.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "wellness_admin/api/internal/api/content/handler"
	"wellness_admin/api/internal/api/middleware"
	apirouter "wellness_admin/api/internal/api/router"
)

// Register đăng ký tất cả route content (program, lesson) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerProgramRoutes(v1, r); err != nil {
		return err
	}
	if err := registerLessonRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerProgramRoutes(router fiber.Router, r *apirouter.Router) error {
	programHandler, err := contenthdl.NewProgramHandler()
	if err != nil {
		return fmt.Errorf("failed to create program handler: %w", err)
	}

	r.RegisterCRUDRoutes(router, "/program", programHandler, apirouter.OwnedWriteConfig, "Program")

	updateMiddleware := middleware.AuthMiddleware("Program.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/program", "POST", "/publish/:id", []fiber.Handler{updateMiddleware}, programHandler.HandlePublish)
	apirouter.RegisterRouteWithMiddleware(router, "/program", "POST", "/archive/:id", []fiber.Handler{updateMiddleware}, programHandler.HandleArchive)
	apirouter.RegisterRouteWithMiddleware(router, "/program", "POST", "/schedule/:id", []fiber.Handler{updateMiddleware}, programHandler.HandleSchedule)
	apirouter.RegisterRouteWithMiddleware(router, "/program", "POST", "/reorder-lessons/:id", []fiber.Handler{updateMiddleware}, programHandler.HandleReorderLessons)
	return nil
}

func registerLessonRoutes(router fiber.Router, r *apirouter.Router) error {
	lessonHandler, err := contenthdl.NewLessonHandler()
	if err != nil {
		return fmt.Errorf("failed to create lesson handler: %w", err)
	}

	r.RegisterCRUDRoutes(router, "/lesson", lessonHandler, apirouter.OwnedWriteConfig, "Lesson")

	updateMiddleware := middleware.AuthMiddleware("Lesson.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/lesson", "POST", "/mark-uploading/:id", []fiber.Handler{updateMiddleware}, lessonHandler.HandleMarkUploading)
	apirouter.RegisterRouteWithMiddleware(router, "/lesson", "POST", "/mark-processing/:id", []fiber.Handler{updateMiddleware}, lessonHandler.HandleMarkProcessing)
	apirouter.RegisterRouteWithMiddleware(router, "/lesson", "POST", "/mark-ready/:id", []fiber.Handler{updateMiddleware}, lessonHandler.HandleMarkReady)
	apirouter.RegisterRouteWithMiddleware(router, "/lesson", "POST", "/mark-failed/:id", []fiber.Handler{updateMiddleware}, lessonHandler.HandleMarkFailed)
	return nil
}
