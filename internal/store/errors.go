// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when the users_email_key unique
	// constraint rejects an insert or update.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPhoneAlreadyExists is returned when the users_phone_number_key
	// unique constraint rejects an insert or update.
	ErrPhoneAlreadyExists = errors.New("phone number already exists")

	// ErrProviderAlreadyLinked is returned when a federated identity is
	// already linked to another account.
	ErrProviderAlreadyLinked = errors.New("provider identity already linked")

	// ErrLikeAlreadyExists is returned when a user likes the same post twice.
	ErrLikeAlreadyExists = errors.New("like already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	ErrPostNotFound           = errors.New("post was not found")
	ErrCommentNotFound        = errors.New("comment was not found")
	ErrPlanNotFound           = errors.New("learning plan was not found")
	ErrMilestoneNotFound      = errors.New("milestone was not found")
	ErrMaterialNotFound       = errors.New("learning material was not found")
	ErrReminderNotFound       = errors.New("reminder was not found")
	ErrProgressUpdateNotFound = errors.New("progress update was not found")

	// ErrFileNotFound is returned by [FileStorage] when no blob is stored
	// under the requested key.
	ErrFileNotFound = errors.New("file was not found")

	// ErrInvalidFileKey is returned for keys that could escape the storage
	// root (path separators, "..", empty keys).
	ErrInvalidFileKey = errors.New("invalid file key")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
