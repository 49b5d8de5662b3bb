// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/service"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// The gRPC listener serves the standard grpc.health.v1.Health service so
// orchestrators can probe the process independently of the REST API.
// Handler owns the health state and flips it with SetServing and
// SetNotServing around the server lifecycle.
type Handler struct {
	// services is kept for parity with the HTTP transport; the health
	// service does not call into it.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as
// NOT_SERVING until SetServing is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks the process healthy.
func (h *Handler) SetServing() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// SetNotServing marks the process unhealthy and ends open Watch streams.
func (h *Handler) SetNotServing() {
	h.health.Shutdown()
}

// UnaryLogging is a server interceptor that writes one log entry per call
// and makes a trace-scoped logger available via logger.FromContext.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	l := h.logger.WithTraceID(uuid.NewString())
	start := time.Now()

	resp, err := next(l.WithContext(ctx), req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
	return resp, err
}
