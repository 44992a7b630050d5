package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("a", "first")
	require.NoError(t, err)
	assert.True(t, isNew)

	// Đăng ký trùng tên ghi đè giá trị cũ
	isNew, err = r.Register("a", "second")
	require.NoError(t, err)
	assert.False(t, isNew)

	item, exists := r.Get("a")
	assert.True(t, exists)
	assert.Equal(t, "second", item)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err)
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0

	item, err := r.GetOrCreate("x", func() (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, item)

	// Lần hai trả về item đã có, creator không được gọi lại
	item, err = r.GetOrCreate("x", func() (int, error) {
		calls++
		return 99, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, item)
	assert.Equal(t, 1, calls)

	_, err = r.GetOrCreate("y", func() (int, error) {
		return 0, errors.New("creator failed")
	})
	assert.Error(t, err)
	_, exists := r.Get("y")
	assert.False(t, exists)
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "value")

	cleaned := ""
	deleted, err := r.Clear("a", func(item string) error {
		cleaned = item
		return nil
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "value", cleaned)

	deleted, err = r.Clear("a", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistry_ClearKeepsItemOnCleanupError(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("a", "value")

	_, err := r.Clear("a", func(string) error {
		return errors.New("cleanup failed")
	})
	assert.Error(t, err)

	_, exists := r.Get("a")
	assert.True(t, exists)
}

func TestRegistry_ClearAll(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)
	r.Register("b", 2)

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
			r.Get("shared")
		}(i)
	}
	wg.Wait()

	_, exists := r.Get("shared")
	assert.True(t, exists)
}
