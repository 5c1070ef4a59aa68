package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	t.Run("set và get trả về giá trị đã lưu", func(t *testing.T) {
		cache := NewCache(time.Minute, time.Minute)
		defer cache.Stop()

		cache.Set("key", "value")
		got, found := cache.Get("key")
		assert.True(t, found)
		assert.Equal(t, "value", got)
	})

	t.Run("key không tồn tại", func(t *testing.T) {
		cache := NewCache(time.Minute, time.Minute)
		defer cache.Stop()

		_, found := cache.Get("missing")
		assert.False(t, found)
	})

	t.Run("entry hết ttl không còn đọc được", func(t *testing.T) {
		cache := NewCache(20*time.Millisecond, time.Hour)
		defer cache.Stop()

		cache.Set("auth_token:abc", "user")
		_, found := cache.Get("auth_token:abc")
		assert.True(t, found)

		// Quá ttl thì Get phải miss ngay cả khi vòng dọn dẹp chưa chạy
		time.Sleep(50 * time.Millisecond)
		_, found = cache.Get("auth_token:abc")
		assert.False(t, found)
	})

	t.Run("delete làm entry mất hiệu lực ngay", func(t *testing.T) {
		cache := NewCache(time.Minute, time.Minute)
		defer cache.Stop()

		cache.Set("auth_token:abc", "user")
		cache.Delete("auth_token:abc")
		_, found := cache.Get("auth_token:abc")
		assert.False(t, found)
	})

	t.Run("set lại gia hạn ttl", func(t *testing.T) {
		cache := NewCache(40*time.Millisecond, time.Hour)
		defer cache.Stop()

		cache.Set("key", 1)
		time.Sleep(25 * time.Millisecond)
		cache.Set("key", 2)
		time.Sleep(25 * time.Millisecond)

		got, found := cache.Get("key")
		assert.True(t, found)
		assert.Equal(t, 2, got)
	})
}
