package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/store"
	"github.com/MKhiriev/inkspire/internal/validators"
	"github.com/MKhiriev/inkspire/models"
)

type reminderService struct {
	reminderRepository store.ReminderRepository
	planRepository     store.LearningPlanRepository
	validator          validators.Validator
	logger             *logger.Logger
}

func NewReminderService(reminderRepository store.ReminderRepository, planRepository store.LearningPlanRepository, logger *logger.Logger) ReminderService {
	return &reminderService{
		reminderRepository: reminderRepository,
		planRepository:     planRepository,
		validator:          validators.NewRequestValidator(),
		logger:             logger,
	}
}

// CreateReminder schedules a reminder for callerID. A referenced plan must
// belong to the caller.
func (s *reminderService) CreateReminder(ctx context.Context, callerID int64, req models.ReminderRequest) (models.Reminder, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Reminder{}, fmt.Errorf("invalid reminder: %w", err)
	}

	if req.LearningPlanID != nil {
		if _, err := loadOwned(ctx, s.planRepository.FindPlanByID, *req.LearningPlanID, callerID); err != nil {
			return models.Reminder{}, err
		}
	}

	return s.reminderRepository.CreateReminder(ctx, models.Reminder{
		UserID:  callerID,
		PlanID:  req.LearningPlanID,
		Message: req.Message,
		DueDate: req.DueDate,
	})
}

func (s *reminderService) ListReminders(ctx context.Context, callerID int64) ([]models.Reminder, error) {
	return s.reminderRepository.ListRemindersByUser(ctx, callerID)
}

func (s *reminderService) DeleteReminder(ctx context.Context, callerID, reminderID int64) error {
	if _, err := loadOwned(ctx, s.reminderRepository.FindReminderByID, reminderID, callerID); err != nil {
		return err
	}
	return s.reminderRepository.DeleteReminder(ctx, reminderID)
}
