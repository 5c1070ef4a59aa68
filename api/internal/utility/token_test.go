package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndParseToken(t *testing.T) {
	secret := "test-secret"
	userID := "64f1a2b3c4d5e6f7a8b9c0d1"

	t.Run("token hợp lệ parse ra đúng userID", func(t *testing.T) {
		tokenMap, err := CreateToken(secret, userID, "18f2a3", "42")
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenMap["token"])

		parsedID, err := ParseToken(secret, tokenMap["token"])
		assert.NoError(t, err)
		assert.Equal(t, userID, parsedID)
	})

	t.Run("sai secret bị từ chối", func(t *testing.T) {
		tokenMap, err := CreateToken(secret, userID, "18f2a3", "42")
		assert.NoError(t, err)

		_, err = ParseToken("wrong-secret", tokenMap["token"])
		assert.Error(t, err)
	})

	t.Run("chuỗi không phải JWT bị từ chối", func(t *testing.T) {
		_, err := ParseToken(secret, "not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("secret rỗng không tạo được token", func(t *testing.T) {
		_, err := CreateToken("", userID, "18f2a3", "42")
		assert.Error(t, err)
	})
}
