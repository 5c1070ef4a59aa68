// Package dto - input cho domain content (Program, Lesson).
package dto

// ProgramCreateInput dữ liệu tạo mới Program
type ProgramCreateInput struct {
	Title          string   `json:"title" validate:"required,no_xss" transform:"string"`
	Description    string   `json:"description,omitempty" validate:"omitempty,no_xss"`
	Category       string   `json:"category,omitempty" validate:"omitempty,no_xss"`
	Difficulty     string   `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationDays   int      `json:"durationDays,omitempty" validate:"omitempty,gte=0"`
	PublishAt      int64    `json:"publishAt,omitempty"`
	ArchiveAt      int64    `json:"archiveAt,omitempty"`
	CoverImagePath string   `json:"coverImagePath,omitempty"`
	LessonIDs      []string `json:"lessonIds,omitempty" validate:"omitempty,dive,len=24"`
}

// ProgramUpdateInput dữ liệu cập nhật Program (partial update, chỉ set field khác zero)
type ProgramUpdateInput struct {
	Title          string `json:"title,omitempty" validate:"omitempty,no_xss"`
	Description    string `json:"description,omitempty" validate:"omitempty,no_xss"`
	Category       string `json:"category,omitempty" validate:"omitempty,no_xss"`
	Difficulty     string `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationDays   int    `json:"durationDays,omitempty" validate:"omitempty,gte=0"`
	PublishAt      int64  `json:"publishAt,omitempty"`
	ArchiveAt      int64  `json:"archiveAt,omitempty"`
	CoverImagePath string `json:"coverImagePath,omitempty"`
}

// ProgramScheduleInput lịch publish/archive của Program (timestamp millis)
type ProgramScheduleInput struct {
	PublishAt int64 `json:"publishAt,omitempty" validate:"omitempty,gt=0"`
	ArchiveAt int64 `json:"archiveAt,omitempty" validate:"omitempty,gt=0"`
}

// ReorderLessonsInput thứ tự mới của toàn bộ lesson trong Program
type ReorderLessonsInput struct {
	LessonIDs []string `json:"lessonIds" validate:"required,min=1,dive,len=24"`
}
