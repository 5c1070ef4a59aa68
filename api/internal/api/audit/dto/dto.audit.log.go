// Package auditdto - DTO nhật ký thao tác. Collection append-only nên
// DTO chỉ phục vụ interface chung của base handler, không có route ghi.
package auditdto

// AuditLogCreateInput đầu vào tạo bản ghi nhật ký (không mở qua API).
type AuditLogCreateInput struct {
	Action       string `json:"action" validate:"required"`
	ResourceType string `json:"resourceType" validate:"required"`
	ResourceID   string `json:"resourceId"`
}

// AuditLogUpdateInput nhật ký không cho phép cập nhật, struct rỗng để thỏa interface.
type AuditLogUpdateInput struct{}
