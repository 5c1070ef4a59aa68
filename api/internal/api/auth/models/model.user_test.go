package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserJSONSerialization(t *testing.T) {
	user := User{
		ID:    primitive.NewObjectID(),
		Name:  "Giáo viên A",
		Email: "teacher@example.com",
		Role:  RoleTeacher,
		Token: "eyJhbGciOiJIUzI1NiJ9.secret-session-token",
		Tokens: []Token{
			{Hwid: "device-1", JwtToken: "eyJhbGciOiJIUzI1NiJ9.device-token"},
		},
		BlockNote: "ghi chú nội bộ",
	}

	raw, err := json.Marshal(user)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	t.Run("token phiên đăng nhập không lộ ra JSON", func(t *testing.T) {
		assert.NotContains(t, decoded, "token")
		assert.NotContains(t, decoded, "tokens")
		assert.NotContains(t, string(raw), "secret-session-token")
		assert.NotContains(t, string(raw), "device-token")
	})

	t.Run("ghi chú khóa tài khoản không lộ ra JSON", func(t *testing.T) {
		assert.NotContains(t, decoded, "blockNote")
	})

	t.Run("các field công khai vẫn serialize", func(t *testing.T) {
		assert.Equal(t, "teacher@example.com", decoded["email"])
		assert.Equal(t, RoleTeacher, decoded["role"])
	})
}
