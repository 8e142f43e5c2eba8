package dto

import (
	"lodge/internal/domains/customer/model"
	"lodge/shared/dataport"
)

type CreateCustomerRequest struct {
	FirstName    string `json:"first_name"    validate:"required,max=100"`
	LastName     string `json:"last_name"     validate:"required,max=100"`
	EmailAddress string `json:"email_address" validate:"required,email,max=100"`
}

func (c *CreateCustomerRequest) ToRecord() dataport.Record {
	return dataport.Record{
		model.FieldFirstName:    c.FirstName,
		model.FieldLastName:     c.LastName,
		model.FieldEmailAddress: c.EmailAddress,
	}
}

type UpdateCustomerRequest struct {
	FirstName    string `db:"first_name"    json:"first_name"    validate:"omitempty,max=100"`
	LastName     string `db:"last_name"     json:"last_name"     validate:"omitempty,max=100"`
	EmailAddress string `db:"email_address" json:"email_address" validate:"omitempty,email,max=100"`
}
