package postgres

import (
	"errors"

	"orders/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// TranslateError turns constraint violations into errs.ConflictError and
// returns any other error untouched.
func TranslateError(entity string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		return errs.NewConflictErrorWithCause(entity, "already exists", err)
	case foreignKeyViolation:
		return errs.NewConflictErrorWithCause(entity, "references a missing record", err)
	default:
		return err
	}
}
