// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure, ""), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure, ""), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected, ""), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow, ""), Retryable},
		{"wrapped deadlock", fmt.Errorf("tx: %w", pgError(pgerrcode.DeadlockDetected, "")), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation, constraintUsersEmail), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestRepositoryError(t *testing.T) {
	notFound := errors.New("not found")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, notFound},
		{"email", pgError(pgerrcode.UniqueViolation, constraintUsersEmail), ErrEmailAlreadyExists},
		{"like", pgError(pgerrcode.UniqueViolation, constraintLikesPostIDUser), ErrLikeAlreadyExists},
		{"unknown constraint", pgError(pgerrcode.UniqueViolation, "other_key"), ErrExecutingQuery},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation, ""), ErrExecutingQuery},
		{"driver", errors.New("broken pipe"), ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, repositoryError(tt.err, notFound), tt.want)
		})
	}
}

func TestRepositoryError_NoRowsWithoutNotFound(t *testing.T) {
	err := repositoryError(sql.ErrNoRows, nil)

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Empty(t, postgresError(errors.New("x")))
}
