package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	PgForeignKeyViolation = "23503"
	PgUniqueViolation     = "23505"
	PgNotNullViolation    = "23502"
)

// PgError unwraps the PostgreSQL error carried by err, if any.
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func IsForeignKeyViolation(err error) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == PgForeignKeyViolation
}
