package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/shared/failure"
	"lodge/shared/validator"
)

type bookingPayload struct {
	FromDate string `json:"from_date" validate:"required,bookdate"`
	ToDate   string `json:"to_date"   validate:"required,bookdate"`
	RoomID   int64  `json:"room_id"   validate:"required,gt=0"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid payload",
			body: `{"from_date": "2026-02-01", "to_date": "2026-02-04", "room_id": 7}`,
		},
		{
			name:    "malformed json",
			body:    `{"from_date": `,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"from_date": "2026-02-01", "to_date": "2026-02-04"}`,
			wantErr: true,
		},
		{
			name:    "date with wrong layout",
			body:    `{"from_date": "01/02/2026", "to_date": "2026-02-04", "room_id": 7}`,
			wantErr: true,
		},
		{
			name:    "date that does not exist",
			body:    `{"from_date": "2026-02-30", "to_date": "2026-03-04", "room_id": 7}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload bookingPayload

			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(7), payload.RoomID)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	valid := bookingPayload{FromDate: "2026-02-01", ToDate: "2026-02-04", RoomID: 7}

	assert.NoError(t, validator.ValidateStruct(&valid))

	invalid := bookingPayload{FromDate: "not-a-date", ToDate: "2026-02-04", RoomID: 7}

	err := validator.ValidateStruct(&invalid)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
