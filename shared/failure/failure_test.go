package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/shared/failure"
)

func TestBadRequest(t *testing.T) {
	err := failure.BadRequest(errors.New("malformed payload"))

	assert.EqualError(t, err, "malformed payload")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	assert.NoError(t, failure.BadRequest(nil))
}

func TestBadRequestFromString(t *testing.T) {
	err := failure.BadRequestFromString("first_name is required")

	assert.EqualError(t, err, "first_name is required")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestNotFound(t *testing.T) {
	err := failure.NotFound("booking")

	assert.EqualError(t, err, "booking not found")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.True(t, failure.IsNotFound(err))
}

func TestConflict(t *testing.T) {
	err := failure.Conflict("room already booked")

	assert.EqualError(t, err, "room already booked")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestInternalError(t *testing.T) {
	err := failure.InternalError(errors.New("connection reset"))

	assert.EqualError(t, err, "connection reset")
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))

	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain error")))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(failure.InvalidBookingDates))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(failure.EmptyUpdateRequest))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(failure.InvalidIDParam))
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, failure.IsNotFound(errors.New("plain error")))
	assert.False(t, failure.IsNotFound(failure.InvalidBookingDates))
	assert.True(t, failure.IsNotFound(failure.NotFound("customer")))
}
