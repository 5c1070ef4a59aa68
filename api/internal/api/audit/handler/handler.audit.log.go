// Package audithdl - handler nhật ký thao tác (chỉ đọc).
package audithdl

import (
	"fmt"

	auditdto "wellness_admin/api/internal/api/audit/dto"
	models "wellness_admin/api/internal/api/audit/models"
	auditsvc "wellness_admin/api/internal/api/audit/service"
	basehdl "wellness_admin/api/internal/api/base/handler"
)

// AuditLogHandler xử lý các route đọc nhật ký thao tác
type AuditLogHandler struct {
	*basehdl.BaseHandler[models.AuditLog, auditdto.AuditLogCreateInput, auditdto.AuditLogUpdateInput]
}

// NewAuditLogHandler tạo instance mới của AuditLogHandler
func NewAuditLogHandler() (*AuditLogHandler, error) {
	auditService, err := auditsvc.NewAuditLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log service: %v", err)
	}
	return &AuditLogHandler{
		BaseHandler: basehdl.NewBaseHandler[models.AuditLog, auditdto.AuditLogCreateInput, auditdto.AuditLogUpdateInput](auditService),
	}, nil
}
