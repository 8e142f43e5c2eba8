package repository

import (
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared/dataport"

	"github.com/jmoiron/sqlx"
)

// Booking is the data access port for booking records. Satisfied
// structurally; tests substitute non-persistent stand-ins.
type Booking interface {
	dataport.Port
}

func New(db *postgres.Connection, otl otel.Otel) Booking {
	return dataport.NewAdapter(model.Entity(), db, otl)
}

// NewTx binds the port to an externally supplied transaction so the caller
// controls the commit and rollback boundary.
func NewTx(tx *sqlx.Tx, otl otel.Otel) Booking {
	return dataport.NewAdapterTx(model.Entity(), tx, otl)
}
