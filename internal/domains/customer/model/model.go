package model

import "lodge/shared/dataport"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID           = "id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldEmailAddress = "email_address"
)

func Entity() dataport.Entity {
	return dataport.Entity{
		Name:    EntityName,
		Table:   TableName,
		Columns: []string{FieldFirstName, FieldLastName, FieldEmailAddress},
	}
}
