package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification says whether a failed database operation is worth
// retrying. Repositories log it alongside store errors so operators can
// separate transient connection trouble from real data problems.
type ErrorClassification int

const (
	// NonRetryable covers constraint violations, data exceptions, syntax
	// errors, and anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient failures: lost connections, serialization
	// failures, deadlock rollbacks.
	Retryable
)

// PostgresErrorClassifier classifies errors by their PostgreSQL error code.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its code.
// nil and non-driver errors come back NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err != nil && errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a PostgreSQL error code to a classification.
// Codes: https://www.postgresql.org/docs/current/errcodes-appendix.html
//
// Retryable: class 08 (connection exceptions), class 40 (transaction
// rollback, serialization failure, deadlock), 57P03 (cannot connect now).
// Everything else, including class 22 data exceptions, class 23 constraint
// violations, and class 42 syntax errors, is NonRetryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
