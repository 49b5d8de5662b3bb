// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package oauth turns provider credentials presented by the frontend into
// federated profiles (email, name, provider subject).
//
// Google sign-in sends an ID token that is verified offline against
// Google's published keys; GitHub sign-in sends an access token that is
// exchanged for the user profile through the GitHub REST API.
package oauth

import (
	"context"

	"github.com/MKhiriev/inkspire/internal/config"
	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
)

// Provider names accepted in /api/auth/oauth2/{provider}.
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// ProfileVerifier verifies a provider credential and returns the profile
// it asserts.
type ProfileVerifier interface {
	Verify(ctx context.Context, credential string) (models.OAuth2Profile, error)
}

// Verifiers maps provider names to their verifiers.
type Verifiers map[string]ProfileVerifier

// NewVerifiers registers GitHub always and Google only when a client id is
// configured.
func NewVerifiers(cfg config.OAuth, logger *logger.Logger) Verifiers {
	verifiers := Verifiers{
		ProviderGitHub: NewGitHubVerifier(cfg.GitHubAPIURL, logger),
	}
	if cfg.GoogleClientID != "" {
		verifiers[ProviderGoogle] = NewGoogleVerifier(cfg.GoogleClientID, logger)
	} else {
		logger.Warn().Msg("google client id is not set, google sign-in is disabled")
	}

	return verifiers
}

// Get returns the verifier registered for provider.
func (v Verifiers) Get(provider string) (ProfileVerifier, error) {
	verifier, ok := v[provider]
	if !ok {
		return nil, ErrUnknownProvider
	}
	return verifier, nil
}
