package dto

import (
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	"lodge/shared/dataport"
	"time"
)

type CreateBookingRequest struct {
	FromDate   string `json:"from_date"   validate:"required,bookdate"`
	ToDate     string `json:"to_date"     validate:"required,bookdate"`
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	RoomID     int64  `json:"room_id"     validate:"required,gt=0"`
}

// Dates parses the requested stay boundaries.
func (c *CreateBookingRequest) Dates() (from, to time.Time, err error) {
	from, err = time.Parse(constant.DateFormat, c.FromDate)
	if err != nil {
		return from, to, err
	}

	to, err = time.Parse(constant.DateFormat, c.ToDate)

	return from, to, err
}

// ToRecord builds the booking record to persist. Price is the derived total
// for the stay, never a caller-supplied value.
func (c *CreateBookingRequest) ToRecord(from, to time.Time, price float64) dataport.Record {
	return dataport.Record{
		model.FieldFromDate:   from,
		model.FieldToDate:     to,
		model.FieldPrice:      price,
		model.FieldCustomerID: c.CustomerID,
		model.FieldRoomID:     c.RoomID,
	}
}

type UpdateBookingRequest struct {
	FromDate   string `db:"from_date"   json:"from_date"   validate:"omitempty,bookdate"`
	ToDate     string `db:"to_date"     json:"to_date"     validate:"omitempty,bookdate"`
	CustomerID int64  `db:"customer_id" json:"customer_id" validate:"omitempty,gt=0"`
	RoomID     int64  `db:"room_id"     json:"room_id"     validate:"omitempty,gt=0"`
}
