package model

import "lodge/shared/dataport"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldNumber   = "number"
	FieldPrice    = "price"
	FieldPhotoURL = "photo_url"
)

func Entity() dataport.Entity {
	return dataport.Entity{
		Name:    EntityName,
		Table:   TableName,
		Columns: []string{FieldNumber, FieldPrice, FieldPhotoURL},
	}
}
