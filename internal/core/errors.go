package core

// errors.go classifies persistence failures for logging. The classification
// never reaches the end user: handlers downgrade every store error to a
// generic "Database Error: ..." message and the cause stays in the logs.

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes worth naming in logs.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// StoreErrorKind returns a short label for a persistence error, preferring
// the Postgres error code over message sniffing.
func StoreErrorKind(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return "duplicate_key"
		case pgForeignKeyViolation:
			return "foreign_key"
		case pgNotNullViolation:
			return "not_null"
		}
		return "pg_" + pgErr.Code
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "connection"):
		return "connection"
	case strings.Contains(s, "timeout"), strings.Contains(s, "deadline"):
		return "timeout"
	}
	return "unknown"
}

// IsDuplicateKey reports whether err is a Postgres unique violation.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// logStoreError records a persistence failure with its classification before
// the caller downgrades it to a generic user-facing message.
func logStoreError(op string, err error) {
	slog.Error("database operation failed",
		"op", op,
		"kind", StoreErrorKind(err),
		"error", err,
	)
}
