package store

import (
	"context"
	"database/sql"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClass is the result type returned by [ErrorClassificator.Classify].
// It tells a repository which domain error a driver failure stands for.
type ErrorClass int

const (
	// ClassUnknown is any failure without a dedicated mapping.
	ClassUnknown ErrorClass = iota

	// ClassUniqueViolation is a duplicate key on a unique index.
	ClassUniqueViolation

	// ClassInvalidInput is malformed input rejected by the database, such as
	// a non-UUID text compared with a UUID column.
	ClassInvalidInput

	// ClassUnavailable is a lost or refused connection.
	ClassUnavailable
)

// ErrorClassificator maps driver errors to an [ErrorClass].
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. Network errors and
// [sql.ErrConnDone] count as [ClassUnavailable]; context cancellation and
// everything else is [ClassUnknown].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ClassUnknown
	}

	var netErr net.Error
	if errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) || pgconn.SafeToRetry(err) {
		return ClassUnavailable
	}

	return ClassUnknown
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClass] based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23505 unique_violation → [ClassUniqueViolation]
//   - 22P02 invalid_text_representation → [ClassInvalidInput]
//   - Class 08 connection exceptions, 57P01..57P03 → [ClassUnavailable]
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClass {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation

	case pgerrcode.InvalidTextRepresentation:
		return ClassInvalidInput

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.SQLServerRejectedEstablishmentOfSQLConnection:
		return ClassUnavailable

	// Class 57: operator intervention
	case pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return ClassUnavailable
	}

	return ClassUnknown
}
