package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanDeleteConfig(t *testing.T) {
	t.Run("config active không được xóa", func(t *testing.T) {
		assert.False(t, CanDeleteConfig(ConfigStatusActive))
	})

	t.Run("config draft và archived xóa được", func(t *testing.T) {
		assert.True(t, CanDeleteConfig(ConfigStatusDraft))
		assert.True(t, CanDeleteConfig(ConfigStatusArchived))
	})
}
