package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lodge/internal/domains/booking/model/dto"
	"lodge/shared"
)

func TestCreateBookingRequest_Dates(t *testing.T) {
	req := dto.CreateBookingRequest{
		FromDate: "2026-02-01",
		ToDate:   "2026-02-04",
	}

	from, to, err := req.Dates()

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC), to)
}

func TestCreateBookingRequest_DatesInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateBookingRequest
	}{
		{
			name: "wrong layout",
			req:  dto.CreateBookingRequest{FromDate: "01-02-2026", ToDate: "2026-02-04"},
		},
		{
			name: "not a date",
			req:  dto.CreateBookingRequest{FromDate: "2026-02-01", ToDate: "someday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.req.Dates()

			assert.Error(t, err)
		})
	}
}

func TestCreateBookingRequest_ToRecord(t *testing.T) {
	req := dto.CreateBookingRequest{
		FromDate:   "2026-02-01",
		ToDate:     "2026-02-04",
		CustomerID: 5,
		RoomID:     7,
	}

	from, to, err := req.Dates()
	assert.NoError(t, err)

	rec := req.ToRecord(from, to, 300)

	assert.Equal(t, from, rec["from_date"])
	assert.Equal(t, to, rec["to_date"])
	assert.Equal(t, float64(300), rec["price"])
	assert.Equal(t, int64(5), rec["customer_id"])
	assert.Equal(t, int64(7), rec["room_id"])
	assert.NotContains(t, rec, "id")
}

func TestUpdateBookingRequest_Fields(t *testing.T) {
	fields := shared.UpdateFields(dto.UpdateBookingRequest{
		ToDate: "2026-02-05",
		RoomID: 8,
	})

	assert.Equal(t, map[string]any{
		"to_date": "2026-02-05",
		"room_id": int64(8),
	}, fields)
}
