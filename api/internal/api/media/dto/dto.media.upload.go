// Package dto - input cho domain media.
package dto

// InitUploadInput yêu cầu khởi tạo upload media qua signed URL
type InitUploadInput struct {
	ResourceType string `json:"resourceType" validate:"required,oneof=lesson program"`
	ResourceID   string `json:"resourceId" validate:"required,len=24"`
	FileName     string `json:"fileName" validate:"required,no_xss"`
	ContentType  string `json:"contentType" validate:"required"`
}
