package dataport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/logger"
	"slices"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var errRequiredFields = errors.New("no writable fields in request")

// Entity describes the relational shape one Adapter manages.
type Entity struct {
	Name        string
	Table       string
	Columns     []string // writable columns, identifier excluded
	DateColumns []string // rendered as YYYY-MM-DD in emitted records
}

// Adapter is the Postgres implementation of Port for a single entity.
// Built from the process connection pair, every call is its own
// autocommitted statement; built from an external transaction, the caller
// owns the commit and rollback boundary.
type Adapter struct {
	entity Entity
	read   sqlx.ExtContext
	write  sqlx.ExtContext
	otel   otel.Otel
}

func NewAdapter(entity Entity, db *postgres.Connection, otl otel.Otel) *Adapter {
	return &Adapter{
		entity: entity,
		read:   db.Read,
		write:  db.Write,
		otel:   otl,
	}
}

// NewAdapterTx binds the adapter to an externally supplied transaction,
// leaving commit and rollback to the caller.
func NewAdapterTx(entity Entity, tx *sqlx.Tx, otl otel.Otel) *Adapter {
	return &Adapter{
		entity: entity,
		read:   tx,
		write:  tx,
		otel:   otl,
	}
}

func (a *Adapter) ReadByID(ctx context.Context, id int64) (Record, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ReadByID", constant.OtelRepositoryScopeName, a.entity.Name))
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", a.entity.Table)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rec := Record{}

	err := a.read.QueryRowxContext(ctx, query, id).MapScan(rec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, failure.NotFound(a.entity.Name) //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", a.entity.Name, err)
	}

	return a.normalize(rec), nil
}

func (a *Adapter) ReadAll(ctx context.Context) ([]Record, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ReadAll", constant.OtelRepositoryScopeName, a.entity.Name))
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id", a.entity.Table)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := a.read.QueryxContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", a.entity.Name, err)
	}
	defer rows.Close()

	records := []Record{}

	for rows.Next() {
		rec := Record{}
		if err := rows.MapScan(rec); err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return nil, fmt.Errorf("failed to scan data (%s): %w", a.entity.Name, err)
		}

		records = append(records, a.normalize(rec))
	}

	if err := rows.Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to iterate data (%s): %w", a.entity.Name, err)
	}

	return records, nil
}

func (a *Adapter) Create(ctx context.Context, data Record) (Record, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Create", constant.OtelRepositoryScopeName, a.entity.Name))
	defer scope.End()

	columns, args := a.writable(data)
	if len(columns) == 0 {
		return nil, errRequiredFields
	}

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		a.entity.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rec := Record{}

	err := a.write.QueryRowxContext(ctx, query, args...).MapScan(rec)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		if fail := a.constraintFailure(err); fail != nil {
			return nil, fail
		}

		return nil, fmt.Errorf("failed to insert data (%s): %w", a.entity.Name, err)
	}

	return a.normalize(rec), nil
}

func (a *Adapter) Update(ctx context.Context, id int64, data Record) (Record, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, a.entity.Name))
	defer scope.End()

	columns, args := a.writable(data)
	if len(columns) == 0 {
		return nil, errRequiredFields
	}

	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING *",
		a.entity.Table,
		strings.Join(assignments, ", "),
		len(args),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rec := Record{}

	err := a.write.QueryRowxContext(ctx, query, args...).MapScan(rec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, failure.NotFound(a.entity.Name) //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		if fail := a.constraintFailure(err); fail != nil {
			return nil, fail
		}

		return nil, fmt.Errorf("failed to update data (%s): %w", a.entity.Name, err)
	}

	return a.normalize(rec), nil
}

func (a *Adapter) Delete(ctx context.Context, id int64) (Record, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, a.entity.Name))
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING *", a.entity.Table)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rec := Record{}

	err := a.write.QueryRowxContext(ctx, query, id).MapScan(rec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, failure.NotFound(a.entity.Name) //nolint:wrapcheck
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to delete data (%s): %w", a.entity.Name, err)
	}

	return a.normalize(rec), nil
}

// writable filters the record down to the entity's writable columns,
// preserving the declared column order so query text is deterministic.
func (a *Adapter) writable(data Record) ([]string, []any) {
	columns := []string{}
	args := []any{}

	for _, col := range a.entity.Columns {
		value, ok := data[col]
		if !ok {
			continue
		}

		columns = append(columns, col)
		args = append(args, value)
	}

	return columns, args
}

// normalize converts driver types into the record shapes the rest of the
// system expects: byte slices become strings and declared date columns are
// rendered as YYYY-MM-DD.
func (a *Adapter) normalize(rec Record) Record {
	for key, value := range rec {
		switch v := value.(type) {
		case []byte:
			rec[key] = string(v)
		case time.Time:
			if slices.Contains(a.entity.DateColumns, key) {
				rec[key] = v.Format(constant.DateFormat)
			}
		}
	}

	return rec
}

func (a *Adapter) constraintFailure(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeFkViolation:
		return failure.BadRequestFromString(fmt.Sprintf("%s references a missing record", a.entity.Name)) //nolint:wrapcheck
	case constant.PqErrorCodeNotNullViolation:
		return failure.BadRequestFromString(fmt.Sprintf("%s is missing a required field", a.entity.Name)) //nolint:wrapcheck
	case constant.PqErrorCodeUniqueViolation:
		return failure.Conflict(fmt.Sprintf("%s already exists", a.entity.Name)) //nolint:wrapcheck
	default:
		return nil
	}
}
