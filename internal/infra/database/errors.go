package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

// isUniqueViolation understands errors from both registered drivers.
func isUniqueViolation(err error) bool {
	return sqlState(err) == uniqueViolation
}

// isInvalidText reports a value Postgres could not parse, such as a
// malformed uuid in a WHERE clause.
func isInvalidText(err error) bool {
	return sqlState(err) == invalidTextRepresentation
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
