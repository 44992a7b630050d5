package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStringValues_OnlyConfiguredFields(t *testing.T) {
	s := NewBaseServiceMongo[struct{}](nil)
	s.SetNormalizeFields("category")

	m := map[string]interface{}{
		"category": "  NEW   PHONE ",
		"content":  "line one\nline two\n\n  indented line",
		"note":     "  giữ nguyên   khoảng trắng  ",
		"quantity": int64(3),
	}
	s.normalizeStringValues(m)

	assert.Equal(t, "NEW PHONE", m["category"])
	// Văn bản tự do giữ nguyên xuống dòng và khoảng trắng của client
	assert.Equal(t, "line one\nline two\n\n  indented line", m["content"])
	assert.Equal(t, "  giữ nguyên   khoảng trắng  ", m["note"])
	assert.Equal(t, int64(3), m["quantity"])
}

func TestNormalizeStringValues_NoConfigLeavesMapUntouched(t *testing.T) {
	s := NewBaseServiceMongo[struct{}](nil)

	m := map[string]interface{}{
		"title":   "  hai   khoảng trắng  ",
		"content": "a\nb",
	}
	s.normalizeStringValues(m)

	assert.Equal(t, "  hai   khoảng trắng  ", m["title"])
	assert.Equal(t, "a\nb", m["content"])
}

func TestNormalizeStringValues_MissingConfiguredField(t *testing.T) {
	s := NewBaseServiceMongo[struct{}](nil)
	s.SetNormalizeFields("category")

	m := map[string]interface{}{"name": "iPhone 13"}
	s.normalizeStringValues(m)

	assert.Equal(t, "iPhone 13", m["name"])
	_, exists := m["category"]
	assert.False(t, exists)
}
