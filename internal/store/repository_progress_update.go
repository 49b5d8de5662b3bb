// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
	sq "github.com/Masterminds/squirrel"
)

type progressUpdateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProgressUpdateRepository constructs a [ProgressUpdateRepository] backed by db.
func NewProgressUpdateRepository(db *DB, logger *logger.Logger) ProgressUpdateRepository {
	logger.Debug().Msg("creating progress update repository")
	return &progressUpdateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *progressUpdateRepository) CreateProgressUpdate(ctx context.Context, update models.ProgressUpdate) (models.ProgressUpdate, error) {
	query, args, err := buildInsertProgressUpdateQuery(update)
	if err != nil {
		return models.ProgressUpdate{}, buildQueryError(err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&update.ID, &update.CreatedAt, &update.UpdatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*progressUpdateRepository.CreateProgressUpdate").
			Int64("user_id", update.UserID).Msg("error inserting progress update")
		return models.ProgressUpdate{}, repositoryError(err, nil)
	}
	return update, nil
}

func (r *progressUpdateRepository) FindProgressUpdateByID(ctx context.Context, updateID int64) (models.ProgressUpdate, error) {
	query, args, err := selectProgressUpdates().Where(sq.Eq{"id": updateID}).ToSql()
	if err != nil {
		return models.ProgressUpdate{}, buildQueryError(err)
	}

	update, err := scanProgressUpdate(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.ProgressUpdate{}, repositoryError(err, ErrProgressUpdateNotFound)
	}
	return update, nil
}

// ListProgressUpdates returns the updates of every user, newest first.
func (r *progressUpdateRepository) ListProgressUpdates(ctx context.Context) ([]models.ProgressUpdate, error) {
	return r.list(ctx, selectProgressUpdates())
}

func (r *progressUpdateRepository) ListProgressUpdatesByUser(ctx context.Context, userID int64) ([]models.ProgressUpdate, error) {
	return r.list(ctx, selectProgressUpdates().Where(sq.Eq{"user_id": userID}))
}

func (r *progressUpdateRepository) UpdateProgressUpdate(ctx context.Context, update models.ProgressUpdate) (models.ProgressUpdate, error) {
	query, args, err := buildUpdateProgressUpdateQuery(update)
	if err != nil {
		return models.ProgressUpdate{}, buildQueryError(err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&update.CreatedAt, &update.UpdatedAt); err != nil {
		return models.ProgressUpdate{}, repositoryError(err, ErrProgressUpdateNotFound)
	}
	return update, nil
}

func (r *progressUpdateRepository) DeleteProgressUpdate(ctx context.Context, updateID int64) error {
	query, args, err := buildDeleteByIDQuery("progress_updates", updateID)
	if err != nil {
		return buildQueryError(err)
	}

	return execAffectingOne(ctx, r.db.DB, ErrProgressUpdateNotFound, query, args...)
}

func (r *progressUpdateRepository) list(ctx context.Context, builder sq.SelectBuilder) ([]models.ProgressUpdate, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, buildQueryError(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*progressUpdateRepository.list").Msg("error selecting progress updates")
		return nil, repositoryError(err, nil)
	}
	defer rows.Close()

	updates := make([]models.ProgressUpdate, 0)
	for rows.Next() {
		update, err := scanProgressUpdate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		updates = append(updates, update)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return updates, nil
}

func scanProgressUpdate(row rowScanner) (models.ProgressUpdate, error) {
	var (
		u        models.ProgressUpdate
		template string
	)
	err := row.Scan(&u.ID, &u.UserID, &template, &u.Description, &u.Plan, &u.CreatedAt, &u.UpdatedAt)
	u.Template = models.ProgressTemplate(template)
	return u, err
}
