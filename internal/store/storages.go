// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/config"
	"github.com/MKhiriev/inkspire/internal/logger"
)

// Storages groups every repository together with the blob storage picked by
// configuration.
type Storages struct {
	UserRepository           UserRepository
	PostRepository           PostRepository
	CommentRepository        CommentRepository
	LikeRepository           LikeRepository
	LearningPlanRepository   LearningPlanRepository
	ReminderRepository       ReminderRepository
	ProgressUpdateRepository ProgressUpdateRepository
	FileStorage              FileStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and opens the
// configured file storage backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	files, err := NewFileStorage(ctx, cfg.Files, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return newStorages(db, files, log), nil
}

func newStorages(db *DB, files FileStorage, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:           NewUserRepository(db, log),
		PostRepository:           NewPostRepository(db, log),
		CommentRepository:        NewCommentRepository(db, log),
		LikeRepository:           NewLikeRepository(db, log),
		LearningPlanRepository:   NewLearningPlanRepository(db, log),
		ReminderRepository:       NewReminderRepository(db, log),
		ProgressUpdateRepository: NewProgressUpdateRepository(db, log),
		FileStorage:              files,
		db:                       db,
	}
}

// NewFileStorage returns the backend named by cfg.Backend.
func NewFileStorage(ctx context.Context, cfg config.Files, log *logger.Logger) (FileStorage, error) {
	switch cfg.Backend {
	case config.FilesBackendLocal:
		return NewLocalFileStorage(cfg.UploadDir, log)
	case config.FilesBackendS3:
		return NewS3FileStorage(ctx, cfg.S3, log)
	default:
		return nil, fmt.Errorf("unknown files backend %q", cfg.Backend)
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
