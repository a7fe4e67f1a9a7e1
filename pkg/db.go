package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// PgErrorCode returns the SQLSTATE of a postgres error, "" for any other error.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolationError reports a duplicate exercise name and the like.
func IsUniqueViolationError(err error) bool {
	return PgErrorCode(err) == pgUniqueViolation
}

// IsForeignKeyViolationError reports a row referencing a missing (e.g. deleted) exercise.
func IsForeignKeyViolationError(err error) bool {
	return PgErrorCode(err) == pgForeignKeyViolation
}

func IsCheckViolationError(err error) bool {
	return PgErrorCode(err) == pgCheckViolation
}
