package http

import (
	"github.com/MKhiriev/inkspire/internal/config"
	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/service"
)

type Handler struct {
	services *service.Services

	// allowedOrigins feeds the CORS middleware.
	allowedOrigins []string

	// maxUploadBytes caps multipart request bodies.
	maxUploadBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		maxUploadBytes: cfg.MaxUploadBytes,
		logger:         logger,
	}
}
