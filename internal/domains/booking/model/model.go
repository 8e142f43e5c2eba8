package model

import "lodge/shared/dataport"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldFromDate   = "from_date"
	FieldToDate     = "to_date"
	FieldPrice      = "price"
	FieldCustomerID = "customer_id"
	FieldRoomID     = "room_id"
)

// Entity describes the booking table for the storage adapter. The price
// column is writable at this layer; the operations layer is what guarantees
// it is always derived, never caller-supplied.
func Entity() dataport.Entity {
	return dataport.Entity{
		Name:        EntityName,
		Table:       TableName,
		Columns:     []string{FieldFromDate, FieldToDate, FieldPrice, FieldCustomerID, FieldRoomID},
		DateColumns: []string{FieldFromDate, FieldToDate},
	}
}
