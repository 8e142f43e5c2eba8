package dto

import (
	"lodge/internal/domains/room/model"
	"lodge/shared/dataport"
)

type CreateRoomRequest struct {
	Number string   `json:"number" validate:"required,max=20"`
	Price  *float64 `json:"price"  validate:"required,gte=0"`
}

func (c *CreateRoomRequest) ToRecord() dataport.Record {
	return dataport.Record{
		model.FieldNumber: c.Number,
		model.FieldPrice:  *c.Price,
	}
}

type UpdateRoomRequest struct {
	Number string   `db:"number" json:"number" validate:"omitempty,max=20"`
	Price  *float64 `db:"price"  json:"price"  validate:"omitempty,gte=0"`
}
