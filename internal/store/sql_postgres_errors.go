package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClass is the result of [ErrorClassificator.Classify].
type ErrorClass int

const (
	// ClassUnknown covers every error without a dedicated class.
	ClassUnknown ErrorClass = iota

	// ClassUniqueViolation is a unique constraint violation.
	ClassUniqueViolation

	// ClassNotNullViolation is a NOT NULL constraint violation.
	ClassNotNullViolation

	// ClassConnection is a lost, refused or busy connection.
	ClassConnection
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err as a *pgconn.PgError and maps its code. Errors that
// are not PostgreSQL errors are [ClassUnknown].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ClassUnknown
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClass] based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClass {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation

	case pgerrcode.NotNullViolation:
		return ClassNotNullViolation

	// Class 08 — connection exceptions, 57P03 — cannot connect now
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.CannotConnectNow:
		return ClassConnection
	}

	return ClassUnknown
}
