package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionProgram(t *testing.T) {
	t.Run("chuyển hợp lệ", func(t *testing.T) {
		assert.True(t, CanTransitionProgram(ProgramStatusDraft, ProgramStatusPublished))
		assert.True(t, CanTransitionProgram(ProgramStatusPublished, ProgramStatusArchived))
		assert.True(t, CanTransitionProgram(ProgramStatusArchived, ProgramStatusPublished))
	})

	t.Run("chuyển không hợp lệ", func(t *testing.T) {
		assert.False(t, CanTransitionProgram(ProgramStatusDraft, ProgramStatusArchived))
		assert.False(t, CanTransitionProgram(ProgramStatusPublished, ProgramStatusDraft))
		assert.False(t, CanTransitionProgram(ProgramStatusArchived, ProgramStatusDraft))
	})

	t.Run("trạng thái lạ hoặc đứng yên", func(t *testing.T) {
		assert.False(t, CanTransitionProgram("unknown", ProgramStatusPublished))
		assert.False(t, CanTransitionProgram(ProgramStatusDraft, ProgramStatusDraft))
	})
}

func TestCanTransitionLesson(t *testing.T) {
	t.Run("luồng upload media đầy đủ", func(t *testing.T) {
		assert.True(t, CanTransitionLesson(LessonStatusDraft, LessonStatusUploading))
		assert.True(t, CanTransitionLesson(LessonStatusUploading, LessonStatusProcessing))
		assert.True(t, CanTransitionLesson(LessonStatusProcessing, LessonStatusReady))
	})

	t.Run("thất bại và upload lại", func(t *testing.T) {
		assert.True(t, CanTransitionLesson(LessonStatusUploading, LessonStatusFailed))
		assert.True(t, CanTransitionLesson(LessonStatusProcessing, LessonStatusFailed))
		assert.True(t, CanTransitionLesson(LessonStatusFailed, LessonStatusUploading))
	})

	t.Run("lesson ready có thể upload lại media", func(t *testing.T) {
		assert.True(t, CanTransitionLesson(LessonStatusReady, LessonStatusUploading))
	})

	t.Run("không được nhảy cóc trạng thái", func(t *testing.T) {
		assert.False(t, CanTransitionLesson(LessonStatusDraft, LessonStatusReady))
		assert.False(t, CanTransitionLesson(LessonStatusDraft, LessonStatusProcessing))
		assert.False(t, CanTransitionLesson(LessonStatusReady, LessonStatusDraft))
		assert.False(t, CanTransitionLesson(LessonStatusFailed, LessonStatusReady))
	})
}
