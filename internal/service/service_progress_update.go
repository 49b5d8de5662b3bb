// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/store"
	"github.com/MKhiriev/inkspire/internal/validators"
	"github.com/MKhiriev/inkspire/models"
)

type progressUpdateService struct {
	progressRepository store.ProgressUpdateRepository
	validator          validators.Validator
	logger             *logger.Logger
}

func NewProgressUpdateService(progressRepository store.ProgressUpdateRepository, logger *logger.Logger) ProgressUpdateService {
	return &progressUpdateService{
		progressRepository: progressRepository,
		validator:          validators.NewRequestValidator(),
		logger:             logger,
	}
}

func (s *progressUpdateService) CreateProgressUpdate(ctx context.Context, callerID int64, req models.ProgressUpdateRequest) (models.ProgressUpdate, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ProgressUpdate{}, fmt.Errorf("invalid progress update: %w", err)
	}

	return s.progressRepository.CreateProgressUpdate(ctx, models.ProgressUpdate{
		UserID:      callerID,
		Template:    req.ProgressTemplate,
		Description: req.Description,
		Plan:        req.Plan,
	})
}

func (s *progressUpdateService) GetProgressUpdate(ctx context.Context, updateID int64) (models.ProgressUpdate, error) {
	return s.progressRepository.FindProgressUpdateByID(ctx, updateID)
}

func (s *progressUpdateService) ListProgressUpdates(ctx context.Context) ([]models.ProgressUpdate, error) {
	return s.progressRepository.ListProgressUpdates(ctx)
}

func (s *progressUpdateService) ListUserProgressUpdates(ctx context.Context, userID int64) ([]models.ProgressUpdate, error) {
	return s.progressRepository.ListProgressUpdatesByUser(ctx, userID)
}

func (s *progressUpdateService) UpdateProgressUpdate(ctx context.Context, callerID, updateID int64, req models.ProgressUpdateRequest) (models.ProgressUpdate, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.ProgressUpdate{}, fmt.Errorf("invalid progress update: %w", err)
	}

	update, err := loadOwned(ctx, s.progressRepository.FindProgressUpdateByID, updateID, callerID)
	if err != nil {
		return models.ProgressUpdate{}, err
	}

	update.Template = req.ProgressTemplate
	update.Description = req.Description
	update.Plan = req.Plan
	return s.progressRepository.UpdateProgressUpdate(ctx, update)
}

func (s *progressUpdateService) DeleteProgressUpdate(ctx context.Context, callerID, updateID int64) error {
	if _, err := loadOwned(ctx, s.progressRepository.FindProgressUpdateByID, updateID, callerID); err != nil {
		return err
	}
	return s.progressRepository.DeleteProgressUpdate(ctx, updateID)
}
