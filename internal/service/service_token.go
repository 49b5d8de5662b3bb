// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/inkspire/internal/config"
	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/utils"
	"github.com/MKhiriev/inkspire/models"
)

// tokenService signs and verifies HS256 bearer tokens with a single
// process-wide key.
type tokenService struct {
	// signKey is read once from configuration and never changes.
	signKey []byte

	// lifetime is added to the issue time to obtain the expiry.
	lifetime time.Duration

	// now is the clock used for both issuing and validating.
	now func() time.Time

	logger *logger.Logger
}

// TokenOption customizes a token service.
type TokenOption func(*tokenService)

// WithClock replaces the wall clock used to stamp and check tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService builds a TokenService from the signing key and the token
// lifetime in cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(cfg config.App, logger *logger.Logger, opts ...TokenOption) TokenService {
	s := &tokenService{
		signKey:  []byte(cfg.TokenSignKey),
		lifetime: cfg.TokenLifetime(),
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs a token for subject valid from now for the configured
// lifetime.
func (s *tokenService) Issue(subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(subject, s.now(), s.lifetime, s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// Validate reports whether token is well formed, signed with the service
// key and not yet expired. Every parsing failure yields false.
func (s *tokenService) Validate(token string) (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Str("func", "*tokenService.Validate").Any("panic", r).Msg("token validation panicked")
			valid = false
		}
	}()

	if _, err := utils.ParseJWTToken(token, s.signKey, s.now); err != nil {
		s.logger.Debug().Err(err).Str("func", "*tokenService.Validate").Msg("token rejected")
		return false
	}
	return true
}

// SubjectOf returns the email carried by token. It fails with
// ErrTokenInvalid when the token does not validate.
func (s *tokenService) SubjectOf(token string) (string, error) {
	parsed, err := utils.ParseJWTToken(token, s.signKey, s.now)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	return parsed.Subject, nil
}
