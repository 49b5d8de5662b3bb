// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
	"google.golang.org/api/idtoken"
)

type idTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// GoogleVerifier validates Google ID tokens issued for clientID.
type GoogleVerifier struct {
	clientID string
	validate idTokenValidator
	logger   *logger.Logger
}

func NewGoogleVerifier(clientID string, logger *logger.Logger) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// Verify checks signature, audience and expiry of the ID token and reads
// the email, name and sub claims.
func (g *GoogleVerifier) Verify(ctx context.Context, credential string) (models.OAuth2Profile, error) {
	payload, err := g.validate(ctx, credential, g.clientID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*GoogleVerifier.Verify").Msg("google id token rejected")
		return models.OAuth2Profile{}, fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	profile := models.OAuth2Profile{Subject: payload.Subject}
	profile.Email, _ = payload.Claims["email"].(string)
	profile.Name, _ = payload.Claims["name"].(string)
	if profile.Subject == "" {
		profile.Subject, _ = payload.Claims["sub"].(string)
	}

	if profile.Subject == "" {
		return models.OAuth2Profile{}, fmt.Errorf("%w: token has no subject", ErrVerificationFailed)
	}
	return profile, nil
}
