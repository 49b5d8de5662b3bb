// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/validators"
	"github.com/MKhiriev/inkspire/models"
)

// AuthValidationService checks request bodies before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("invalid registration: %w", err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("invalid login: %w", err)
	}
	return v.inner.Authenticate(ctx, req)
}

func (v *AuthValidationService) ResolveOAuth2(ctx context.Context, profile models.OAuth2Profile, provider string) (models.User, error) {
	return v.inner.ResolveOAuth2(ctx, profile, provider)
}

func (v *AuthValidationService) LoginOAuth2(ctx context.Context, provider, credential string) (models.User, models.Token, error) {
	return v.inner.LoginOAuth2(ctx, provider, credential)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (bool, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return false, fmt.Errorf("invalid password reset: %w", err)
	}
	return v.inner.ResetPassword(ctx, req)
}

func (v *AuthValidationService) ResolvePrincipal(ctx context.Context, token string) (models.Principal, bool) {
	return v.inner.ResolvePrincipal(ctx, token)
}

func (v *AuthValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *AuthValidationService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("invalid profile update: %w", err)
	}
	return v.inner.UpdateProfile(ctx, userID, req)
}

func (v *AuthValidationService) DeleteUser(ctx context.Context, userID int64) error {
	return v.inner.DeleteUser(ctx, userID)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
