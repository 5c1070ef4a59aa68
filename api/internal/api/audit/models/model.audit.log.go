// Package models - model nhật ký thao tác (AuditLog) thuộc domain audit.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các action được ghi nhật ký
const (
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionPublish  = "publish"
	ActionArchive  = "archive"
	ActionActivate = "activate"
	ActionBlock    = "block"
	ActionUnblock  = "unblock"
	ActionSetRole  = "set_role"
	ActionInvite   = "invite"
	ActionLogin    = "login"
	ActionReorder  = "reorder"
	ActionUpload   = "upload"
)

// Các loại tài nguyên được ghi nhật ký
const (
	ResourceProgram    = "program"
	ResourceLesson     = "lesson"
	ResourceOnboarding = "onboarding_config"
	ResourceUser       = "user"
	ResourceMedia      = "media"
)

// AuditLog bản ghi nhật ký thao tác. Collection này là append-only:
// không có API cập nhật hay xóa, chỉ ghi và đọc.
type AuditLog struct {
	ID           primitive.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	ActorID      primitive.ObjectID     `json:"actorId,omitempty" bson:"actorId,omitempty" index:"single:1"`
	ActorEmail   string                 `json:"actorEmail,omitempty" bson:"actorEmail,omitempty"`
	Action       string                 `json:"action" bson:"action" index:"compound:resource_action"`
	ResourceType string                 `json:"resourceType" bson:"resourceType" index:"compound:resource_action"`
	ResourceID   string                 `json:"resourceId,omitempty" bson:"resourceId,omitempty" index:"single:1"`
	Changes      map[string]interface{} `json:"changes,omitempty" bson:"changes,omitempty"`
	IP           string                 `json:"ip,omitempty" bson:"ip,omitempty"`
	UserAgent    string                 `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	RequestID    string                 `json:"requestId,omitempty" bson:"requestId,omitempty"`
	CreatedAt    int64                  `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt    int64                  `json:"updatedAt" bson:"updatedAt"`
}
