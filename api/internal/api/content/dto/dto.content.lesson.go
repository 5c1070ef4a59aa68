package dto

import (
	contentmodels "wellness_admin/api/internal/api/content/models"
)

// LessonCreateInput dữ liệu tạo mới Lesson
type LessonCreateInput struct {
	Title       string `json:"title" validate:"required,no_xss"`
	MediaType   string `json:"mediaType" validate:"required,media_type"`
	ProgramID   string `json:"programId,omitempty" validate:"omitempty,len=24" transform:"str_objectid,optional,map=ProgramID"`
	Order       int    `json:"order,omitempty" validate:"omitempty,gte=0"`
	DurationSec int64  `json:"durationSec,omitempty" validate:"omitempty,gte=0"`
	PublishAt   int64  `json:"publishAt,omitempty"`
}

// LessonUpdateInput dữ liệu cập nhật Lesson (partial update)
type LessonUpdateInput struct {
	Title       string `json:"title,omitempty" validate:"omitempty,no_xss"`
	MediaType   string `json:"mediaType,omitempty" validate:"omitempty,media_type"`
	ProgramID   string `json:"programId,omitempty" validate:"omitempty,len=24" transform:"str_objectid,optional,map=ProgramID"`
	Order       int    `json:"order,omitempty" validate:"omitempty,gte=0"`
	DurationSec int64  `json:"durationSec,omitempty" validate:"omitempty,gte=0"`
	PublishAt   int64  `json:"publishAt,omitempty"`
}

// LessonMarkReadyInput kết quả transcode khi media sẵn sàng
type LessonMarkReadyInput struct {
	DurationSec int64                     `json:"durationSec,omitempty" validate:"omitempty,gte=0"`
	Renditions  []contentmodels.Rendition `json:"renditions" validate:"required,min=1,dive"`
}

// LessonMarkFailedInput lý do transcode thất bại
type LessonMarkFailedInput struct {
	Reason string `json:"reason,omitempty" validate:"omitempty,no_xss"`
}
