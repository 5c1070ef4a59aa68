// Package router đăng ký các route thuộc domain audit.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	audithdl "wellness_admin/api/internal/api/audit/handler"
	apirouter "wellness_admin/api/internal/api/router"
)

// Register đăng ký route nhật ký thao tác lên v1.
// Collection append-only: chỉ mở các route đọc, việc ghi đi qua AuditLogService.Record.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	auditHandler, err := audithdl.NewAuditLogHandler()
	if err != nil {
		return fmt.Errorf("failed to create audit log handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/audit-log", auditHandler, apirouter.ReadOnlyConfig, "AuditLog")
	return nil
}
