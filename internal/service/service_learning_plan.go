// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/store"
	"github.com/MKhiriev/inkspire/internal/utils"
	"github.com/MKhiriev/inkspire/internal/validators"
	"github.com/MKhiriev/inkspire/models"
)

const (
	// planReminderDelay is how far in the future the reminder created with
	// a new plan is due.
	planReminderDelay = 7 * 24 * time.Hour

	planReminderMessage = "New learning plan created: "

	// milestoneTitleLength bounds titles derived from descriptions.
	milestoneTitleLength = 50
)

// learningPlanService owns learning plans and everything attached to them.
// Reads of public plans are open to every caller; all mutations are
// reserved to the plan owner.
type learningPlanService struct {
	planRepository     store.LearningPlanRepository
	reminderRepository store.ReminderRepository
	files              store.FileStorage
	validator          validators.Validator
	keys               *utils.UUIDGenerator

	// now stamps the reminder created together with a plan.
	now func() time.Time

	logger *logger.Logger
}

func NewLearningPlanService(
	planRepository store.LearningPlanRepository,
	reminderRepository store.ReminderRepository,
	files store.FileStorage,
	logger *logger.Logger,
) LearningPlanService {
	return &learningPlanService{
		planRepository:     planRepository,
		reminderRepository: reminderRepository,
		files:              files,
		validator:          validators.NewRequestValidator(),
		keys:               utils.NewUUIDGenerator(),
		now:                time.Now,
		logger:             logger,
	}
}

// CreatePlan saves a plan for callerID and schedules a reminder about it a
// week ahead. A failed reminder does not undo the plan.
func (s *learningPlanService) CreatePlan(ctx context.Context, callerID int64, req models.LearningPlanRequest) (models.LearningPlan, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.LearningPlan{}, fmt.Errorf("invalid learning plan: %w", err)
	}

	plan := models.LearningPlan{UserID: callerID}
	applyPlanRequest(&plan, req)

	created, err := s.planRepository.CreatePlan(ctx, plan)
	if err != nil {
		return models.LearningPlan{}, err
	}

	_, err = s.reminderRepository.CreateReminder(ctx, models.Reminder{
		UserID:  callerID,
		PlanID:  &created.ID,
		Message: planReminderMessage + created.Title,
		DueDate: s.now().Add(planReminderDelay),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*learningPlanService.CreatePlan").
			Int64("plan_id", created.ID).Msg("error creating reminder for new plan")
	}

	return created, nil
}

func (s *learningPlanService) GetPlan(ctx context.Context, callerID, planID int64) (models.LearningPlan, error) {
	return loadReadable(ctx, s.planRepository.FindPlanByID, planID, callerID)
}

func (s *learningPlanService) ListUserPlans(ctx context.Context, userID int64) ([]models.LearningPlan, error) {
	return s.planRepository.ListPlansByUser(ctx, userID)
}

func (s *learningPlanService) ListPublicPlans(ctx context.Context) ([]models.LearningPlan, error) {
	return s.planRepository.ListPublicPlans(ctx)
}

// UpdatePlan overwrites the plan fields and replaces its milestones.
func (s *learningPlanService) UpdatePlan(ctx context.Context, callerID, planID int64, req models.LearningPlanRequest) (models.LearningPlan, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.LearningPlan{}, fmt.Errorf("invalid learning plan: %w", err)
	}

	plan, err := loadOwned(ctx, s.planRepository.FindPlanByID, planID, callerID)
	if err != nil {
		return models.LearningPlan{}, err
	}

	applyPlanRequest(&plan, req)
	return s.planRepository.UpdatePlan(ctx, plan)
}

func (s *learningPlanService) DeletePlan(ctx context.Context, callerID, planID int64) error {
	plan, err := loadOwned(ctx, s.planRepository.FindPlanByID, planID, callerID)
	if err != nil {
		return err
	}

	if err = s.planRepository.DeletePlan(ctx, planID); err != nil {
		return err
	}

	keys := make([]string, 0, len(plan.Materials))
	for _, m := range plan.Materials {
		keys = append(keys, m.Key)
	}
	removeFiles(ctx, s.files, keys...)
	return nil
}

// UpdateMilestone records the completion state of a milestone of the
// caller's plan. Notes are kept when req.Notes is nil.
func (s *learningPlanService) UpdateMilestone(ctx context.Context, callerID, planID, milestoneID int64, req models.MilestoneProgressRequest) (models.Milestone, error) {
	plan, err := loadOwned(ctx, s.planRepository.FindPlanByID, planID, callerID)
	if err != nil {
		return models.Milestone{}, err
	}

	for _, milestone := range plan.Milestones {
		if milestone.ID != milestoneID {
			continue
		}

		milestone.PlanID = planID
		milestone.Completed = req.Completed
		if req.Notes != nil {
			milestone.Notes = *req.Notes
		}
		return s.planRepository.UpdateMilestone(ctx, milestone)
	}

	return models.Milestone{}, store.ErrMilestoneNotFound
}

// AddMaterial stores file and attaches it to the caller's plan.
func (s *learningPlanService) AddMaterial(ctx context.Context, callerID, planID int64, file models.MediaFile) (models.Material, error) {
	if err := s.validator.Validate(ctx, file); err != nil {
		return models.Material{}, fmt.Errorf("invalid material: %w", err)
	}

	if _, err := loadOwned(ctx, s.planRepository.FindPlanByID, planID, callerID); err != nil {
		return models.Material{}, err
	}

	key, err := saveFile(ctx, s.files, s.keys, file)
	if err != nil {
		return models.Material{}, err
	}

	material, err := s.planRepository.AddMaterial(ctx, models.Material{
		PlanID:      planID,
		Key:         key,
		FileName:    file.FileName,
		ContentType: contentTypeOf(file),
		Size:        file.Size,
	})
	if err != nil {
		removeFiles(ctx, s.files, key)
		return models.Material{}, err
	}
	return material, nil
}

// OpenMaterial opens the material at index of a plan the caller can read.
// The caller closes the returned blob.
func (s *learningPlanService) OpenMaterial(ctx context.Context, callerID, planID int64, index int) (models.Material, models.Blob, error) {
	plan, err := loadReadable(ctx, s.planRepository.FindPlanByID, planID, callerID)
	if err != nil {
		return models.Material{}, models.Blob{}, err
	}

	material, ok := plan.MaterialAt(index)
	if !ok {
		return models.Material{}, models.Blob{}, store.ErrMaterialNotFound
	}

	blob, err := s.files.Open(ctx, material.Key)
	if err != nil {
		return models.Material{}, models.Blob{}, err
	}
	return material, blob, nil
}

func (s *learningPlanService) DeleteMaterial(ctx context.Context, callerID, planID int64, index int) error {
	plan, err := loadOwned(ctx, s.planRepository.FindPlanByID, planID, callerID)
	if err != nil {
		return err
	}

	material, ok := plan.MaterialAt(index)
	if !ok {
		return store.ErrMaterialNotFound
	}

	if err = s.planRepository.DeleteMaterial(ctx, material.ID); err != nil {
		return err
	}

	removeFiles(ctx, s.files, material.Key)
	return nil
}

func applyPlanRequest(plan *models.LearningPlan, req models.LearningPlanRequest) {
	plan.Title = req.Title
	plan.Description = req.Description
	plan.Public = req.IsPublic

	plan.Milestones = make([]models.Milestone, 0, len(req.Milestones))
	for _, m := range req.Milestones {
		title := m.Title
		if title == "" {
			title = truncateRunes(strings.TrimSpace(m.Description), milestoneTitleLength)
		}

		plan.Milestones = append(plan.Milestones, models.Milestone{
			PlanID:      plan.ID,
			Title:       title,
			Description: m.Description,
			Completed:   m.Completed,
			Notes:       m.Notes,
		})
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
