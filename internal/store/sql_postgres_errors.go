package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It indicates whether a failed database operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)

// Unique constraints of the schema, mapped to store sentinels.
const (
	constraintUsersEmail      = "users_email_key"
	constraintUsersPhone      = "users_phone_number_key"
	constraintUsersProvider   = "users_provider_provider_id_key"
	constraintLikesPostIDUser = "likes_post_id_user_id_key"
)

var uniqueConstraintErrors = map[string]error{
	constraintUsersEmail:      ErrEmailAlreadyExists,
	constraintUsersPhone:      ErrPhoneAlreadyExists,
	constraintUsersProvider:   ErrProviderAlreadyLinked,
	constraintLikesPostIDUser: ErrLikeAlreadyExists,
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err as a *pgconn.PgError and delegates to
// [ClassifyPgError]. Nil and non-PostgreSQL errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err != nil && errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification].
//
// Retryable codes:
//   - Class 08 : connection exceptions
//   - Class 40 : serialization failure, deadlock
//   - 57P03 : cannot connect now (server starting up)
//
// Every other code is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// uniqueViolation returns the sentinel of a unique_violation raised by a
// known constraint.
func uniqueViolation(err error) (error, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil, false
	}

	sentinel, ok := uniqueConstraintErrors[pgErr.ConstraintName]
	return sentinel, ok
}

// repositoryError translates a driver error into a store error: no rows
// become notFound, known unique violations become their sentinel, anything
// else is wrapped in [ErrExecutingQuery].
func repositoryError(err, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}
	if sentinel, ok := uniqueViolation(err); ok {
		return sentinel
	}
	if code := postgresError(err); code != "" {
		return fmt.Errorf("%w: postgres error %s: %w", ErrExecutingQuery, code, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
