// Package pgerr maps PostgreSQL constraint failures onto the domain error kinds.
package pgerr

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Translate classifies err for entity. Unique violations become ValueIsInvalid
// ("already exists"), foreign key violations become ObjectNotFound for the
// referenced row, check violations become ValueIsInvalid. Anything else is
// returned as is.
func Translate(err error, entity string, id any) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return errs.NewValueIsInvalidErrorWithCause(entity, fmt.Errorf("%v already exists: %w", id, err))
	case pgerrcode.ForeignKeyViolation:
		return errs.NewObjectNotFoundErrorWithCause(referenced(pgErr), id, err)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return errs.NewValueIsInvalidErrorWithCause(entity, err)
	default:
		return err
	}
}

func referenced(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return pgErr.TableName
}
