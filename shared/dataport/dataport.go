package dataport

//go:generate go run go.uber.org/mock/mockgen -source=./dataport.go -destination=./mocks/dataport_mock.go -package=mocks

import (
	"context"
	"strconv"
)

// Record is a flat keyed entity record, the common currency between the
// operations layer, the storage adapters and the transport layer.
type Record map[string]any

// Port is the data access contract separating business logic from storage
// technology. Any implementation exposing these five operations is
// interchangeable at the call site.
type Port interface {
	ReadByID(ctx context.Context, id int64) (Record, error)
	ReadAll(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, data Record) (Record, error)
	Update(ctx context.Context, id int64, data Record) (Record, error)
	Delete(ctx context.Context, id int64) (Record, error)
}

// ID returns the identifier of a record, or zero when absent.
func ID(rec Record) int64 {
	switch v := rec["id"].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// Number returns the named field of a record as a float64, or zero when the
// field is absent or not numeric.
func Number(rec Record, field string) float64 {
	switch v := rec[field].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case []byte:
		parsed, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0
		}

		return parsed
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}

		return parsed
	default:
		return 0
	}
}
