package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/shared"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "multiple parts",
			parts:    []string{"limiter", "10.0.0.1", "curl"},
			expected: "limiter:10.0.0.1:curl",
		},
		{
			name:     "single part",
			parts:    []string{"limiter"},
			expected: "limiter",
		},
		{
			name:     "no parts",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.parts...))
		})
	}
}

func TestUpdateFields(t *testing.T) {
	type payload struct {
		Name     string   `db:"name"`
		Price    *float64 `db:"price"`
		Count    int64    `db:"count"`
		Internal string
	}

	price := 49.5

	t.Run("zero fields are omitted", func(t *testing.T) {
		fields := shared.UpdateFields(payload{Name: "deluxe"})

		assert.Equal(t, map[string]any{"name": "deluxe"}, fields)
	})

	t.Run("pointers are dereferenced", func(t *testing.T) {
		fields := shared.UpdateFields(payload{Price: &price})

		assert.Equal(t, map[string]any{"price": 49.5}, fields)
	})

	t.Run("untagged fields are skipped", func(t *testing.T) {
		fields := shared.UpdateFields(payload{Internal: "x"})

		assert.Empty(t, fields)
	})

	t.Run("all supplied", func(t *testing.T) {
		fields := shared.UpdateFields(payload{Name: "deluxe", Price: &price, Count: 2})

		assert.Equal(t, map[string]any{
			"name":  "deluxe",
			"price": 49.5,
			"count": int64(2),
		}, fields)
	})
}
