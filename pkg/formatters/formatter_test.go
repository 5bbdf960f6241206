package formatters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForAccept(t *testing.T) {
	tests := []struct {
		accept string
		want   Formatter
	}{
		{"", CSV},
		{"*/*", CSV},
		{"text/plain", CSV},
		{"application/json", JSON},
		{"application/json; charset=utf-8", JSON},
		{"text/plain;q=0.5, application/json", JSON},
		{"application/json;q=0.4, text/plain", CSV},
		{"application/json;q=0", CSV},
		{"image/png", CSV},
		{"garbage;;", CSV},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			assert.Equal(t, tt.want, ForAccept(tt.accept))
		})
	}
}

func TestByName(t *testing.T) {
	f, ok := ByName("JSON")
	assert.True(t, ok)
	assert.Equal(t, JSON, f)

	f, ok = ByName("csv")
	assert.True(t, ok)
	assert.Equal(t, CSV, f)

	_, ok = ByName("xml")
	assert.False(t, ok)
}

func TestContentTypes(t *testing.T) {
	assert.Equal(t, ContentTypeJSON, JSON.ContentType())
	assert.Equal(t, ContentTypeText, CSV.ContentType())
	assert.Equal(t, `{"entities":{}}`, JSON.Empty())
	assert.Equal(t, "", CSV.Empty())
}
