package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("counter", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	// Đăng ký lại cùng key sẽ ghi đè
	isNew, err = r.Register("counter", 2)
	require.NoError(t, err)
	assert.False(t, isNew)

	value, exists := r.Get("counter")
	assert.True(t, exists)
	assert.Equal(t, 2, value)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("", "value")
	assert.Error(t, err)

	_, err = r.GetOrCreate("", func() (string, error) { return "", nil })
	assert.Error(t, err)
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0

	creator := func() (string, error) {
		calls++
		return "created", nil
	}

	value, err := r.GetOrCreate("item", creator)
	require.NoError(t, err)
	assert.Equal(t, "created", value)

	// Lần gọi thứ hai trả về item đã có, không gọi creator
	value, err = r.GetOrCreate("item", creator)
	require.NoError(t, err)
	assert.Equal(t, "created", value)
	assert.Equal(t, 1, calls)
}

func TestRegistryUpdate(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("counter", 10)

	err := r.Update("counter", func(current int) (int, error) {
		return current + 5, nil
	})
	require.NoError(t, err)

	value, _ := r.Get("counter")
	assert.Equal(t, 15, value)

	err = r.Update("missing", func(current int) (int, error) { return current, nil })
	assert.Error(t, err)
}

func TestRegistryClearWithCleanup(t *testing.T) {
	r := NewRegistry[string]()
	_, _ = r.Register("item", "value")

	cleaned := false
	deleted, err := r.Clear("item", func(s string) error {
		cleaned = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.True(t, cleaned)

	deleted, err = r.Clear("item", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistryClearCleanupFailureKeepsItem(t *testing.T) {
	r := NewRegistry[string]()
	_, _ = r.Register("item", "value")

	deleted, err := r.Clear("item", func(s string) error {
		return errors.New("cleanup failed")
	})
	assert.Error(t, err)
	assert.False(t, deleted)

	_, exists := r.Get("item")
	assert.True(t, exists)
}

func TestRegistryClearAll(t *testing.T) {
	r := NewRegistry[int]()
	_, _ = r.Register("a", 1)
	_, _ = r.Register("b", 2)

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, exists := r.Get("a")
	assert.False(t, exists)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = r.GetOrCreate("shared", func() (int, error) { return n, nil })
			_, _ = r.Get("shared")
		}(i)
	}
	wg.Wait()

	_, exists := r.Get("shared")
	assert.True(t, exists)
}
