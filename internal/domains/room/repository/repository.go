package repository

import (
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/room/model"
	"lodge/shared/dataport"

	"github.com/jmoiron/sqlx"
)

// Room is the data access port for room records.
type Room interface {
	dataport.Port
}

func New(db *postgres.Connection, otl otel.Otel) Room {
	return dataport.NewAdapter(model.Entity(), db, otl)
}

// NewTx binds the port to an externally supplied transaction so the caller
// controls the commit and rollback boundary.
func NewTx(tx *sqlx.Tx, otl otel.Otel) Room {
	return dataport.NewAdapterTx(model.Entity(), tx, otl)
}
