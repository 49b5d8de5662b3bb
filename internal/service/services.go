package service

import (
	"fmt"

	"github.com/MKhiriev/inkspire/internal/config"
	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/oauth"
	"github.com/MKhiriev/inkspire/internal/store"
)

type Services struct {
	TokenService          TokenService
	AuthService           AuthService
	PostService           PostService
	CommentService        CommentService
	LikeService           LikeService
	LearningPlanService   LearningPlanService
	ReminderService       ReminderService
	ProgressUpdateService ProgressUpdateService
	MediaService          MediaService
	AppInfoService        AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokenService := NewTokenService(cfg.App, logger)
	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, tokenService, oauth.NewVerifiers(cfg.OAuth, logger), cfg.App, logger),
	)

	return &Services{
		TokenService:          tokenService,
		AuthService:           authService,
		PostService:           NewPostService(storages.PostRepository, storages.FileStorage, logger),
		CommentService:        NewCommentService(storages.PostRepository, storages.CommentRepository, logger),
		LikeService:           NewLikeService(storages.PostRepository, storages.LikeRepository, logger),
		LearningPlanService:   NewLearningPlanService(storages.LearningPlanRepository, storages.ReminderRepository, storages.FileStorage, logger),
		ReminderService:       NewReminderService(storages.ReminderRepository, storages.LearningPlanRepository, logger),
		ProgressUpdateService: NewProgressUpdateService(storages.ProgressUpdateRepository, logger),
		MediaService:          NewMediaService(storages.FileStorage, logger),
		AppInfoService:        appInfoService,
	}, nil
}
