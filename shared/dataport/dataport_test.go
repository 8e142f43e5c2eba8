package dataport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/shared/dataport"
)

func TestID(t *testing.T) {
	tests := []struct {
		name     string
		rec      dataport.Record
		expected int64
	}{
		{
			name:     "int64 id",
			rec:      dataport.Record{"id": int64(42)},
			expected: 42,
		},
		{
			name:     "int id",
			rec:      dataport.Record{"id": 42},
			expected: 42,
		},
		{
			name:     "float64 id",
			rec:      dataport.Record{"id": float64(42)},
			expected: 42,
		},
		{
			name:     "absent id",
			rec:      dataport.Record{},
			expected: 0,
		},
		{
			name:     "non numeric id",
			rec:      dataport.Record{"id": "forty-two"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dataport.ID(tt.rec))
		})
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		rec      dataport.Record
		expected float64
	}{
		{
			name:     "float64 value",
			rec:      dataport.Record{"price": float64(99.5)},
			expected: 99.5,
		},
		{
			name:     "float32 value",
			rec:      dataport.Record{"price": float32(2.5)},
			expected: 2.5,
		},
		{
			name:     "int64 value",
			rec:      dataport.Record{"price": int64(100)},
			expected: 100,
		},
		{
			name:     "int value",
			rec:      dataport.Record{"price": 100},
			expected: 100,
		},
		{
			name:     "numeric bytes",
			rec:      dataport.Record{"price": []byte("149.99")},
			expected: 149.99,
		},
		{
			name:     "numeric string",
			rec:      dataport.Record{"price": "149.99"},
			expected: 149.99,
		},
		{
			name:     "non numeric string",
			rec:      dataport.Record{"price": "free"},
			expected: 0,
		},
		{
			name:     "absent field",
			rec:      dataport.Record{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, dataport.Number(tt.rec, "price"), 0.0001)
		})
	}
}
