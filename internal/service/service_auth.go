// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/inkspire/internal/config"
	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/oauth"
	"github.com/MKhiriev/inkspire/internal/store"
	"github.com/MKhiriev/inkspire/internal/utils"
	"github.com/MKhiriev/inkspire/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It resolves users from password credentials, federated profiles and
// bearer tokens, using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the credential store. Its unique constraints are the
	// authoritative guard against duplicate emails and phone numbers.
	userRepository store.UserRepository

	// tokens issues and validates bearer tokens.
	tokens TokenService

	// verifiers turn provider credentials into federated profiles.
	verifiers oauth.Verifiers

	// hashCost is the bcrypt cost factor used for new hashes.
	hashCost int

	// placeholders generates the random secret behind the unusable
	// password of accounts created through federated login.
	placeholders *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, TokenService and provider verifiers.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokens TokenService, verifiers oauth.Verifiers, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		verifiers:      verifiers,
		hashCost:       cfg.PasswordHashCost,
		placeholders:   utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Register creates a new enabled user account.
//
// The existence checks only fail fast; a unique violation raised by the
// store at insert time is reported the same way.
//
// Returns the persisted user or:
//   - ErrDuplicateEmail if the email is taken.
//   - ErrDuplicatePhone if the phone number is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	emailTaken, err := a.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("checking email: %w", err)
	}
	if emailTaken {
		return models.User{}, ErrDuplicateEmail
	}

	phoneTaken, err := a.userRepository.ExistsByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		return models.User{}, fmt.Errorf("checking phone number: %w", err)
	}
	if phoneTaken {
		return models.User{}, ErrDuplicatePhone
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		PhoneNumber:  req.PhoneNumber,
		Enabled:      true,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, userStoreError(err)
	}

	return registeredUser, nil
}

// Authenticate checks password credentials and issues a token whose subject
// is the user's email. Unknown emails, disabled accounts and wrong
// passwords all yield ErrInvalidCredentials.
func (a *authService) Authenticate(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.Enabled {
		log.Info().Int64("user_id", user.ID).Msg("login attempt for disabled user")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.Email)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// ResolveOAuth2 maps a federated profile onto a local user.
//
// An existing account with the profile's email is linked to the provider
// identity without further confirmation: the provider's assertion of the
// email is trusted. Otherwise a new account with an unusable password is
// created. Profiles without an email can only sign in to an account that
// is already linked to the same provider identity.
func (a *authService) ResolveOAuth2(ctx context.Context, profile models.OAuth2Profile, provider string) (models.User, error) {
	if profile.Email == "" {
		user, err := a.userRepository.FindUserByProvider(ctx, provider, profile.Subject)
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: provider did not share an email", oauth.ErrVerificationFailed)
		}
		if err != nil {
			return models.User{}, fmt.Errorf("user search by provider failed: %w", err)
		}
		return user, nil
	}

	user, err := a.userRepository.FindUserByEmail(ctx, profile.Email)
	if err == nil {
		return a.linkProvider(ctx, user, provider, profile.Subject)
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	placeholder, err := a.hashPassword(a.placeholders.Generate())
	if err != nil {
		return models.User{}, err
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         profileName(profile),
		Email:        profile.Email,
		PasswordHash: placeholder,
		Provider:     provider,
		ProviderID:   profile.Subject,
		Enabled:      true,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// a concurrent login created the account first
		existing, findErr := a.userRepository.FindUserByEmail(ctx, profile.Email)
		if findErr != nil {
			return models.User{}, fmt.Errorf("user search by email failed: %w", findErr)
		}
		return a.linkProvider(ctx, existing, provider, profile.Subject)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ResolveOAuth2").
			Str("provider", provider).Msg("federated user creation ended with error")
		return models.User{}, userStoreError(err)
	}

	return created, nil
}

func (a *authService) linkProvider(ctx context.Context, user models.User, provider, providerID string) (models.User, error) {
	if user.Provider == provider && user.ProviderID == providerID {
		return user, nil
	}

	user.Provider = provider
	user.ProviderID = providerID
	updated, err := a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, userStoreError(err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.ID).Str("provider", provider).Msg("federated identity linked")
	return updated, nil
}

// LoginOAuth2 verifies a provider credential, resolves the local user and
// issues a token for it.
func (a *authService) LoginOAuth2(ctx context.Context, provider, credential string) (models.User, models.Token, error) {
	verifier, err := a.verifiers.Get(provider)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	profile, err := verifier.Verify(ctx, credential)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	user, err := a.ResolveOAuth2(ctx, profile, provider)
	if err != nil {
		return models.User{}, models.Token{}, err
	}
	if !user.Enabled {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.Email)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// ResetPassword overwrites the password of the account using req.Email.
// The old password is not required.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (bool, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.PasswordHash, err = a.hashPassword(req.NewPassword); err != nil {
		return false, err
	}

	if _, err = a.userRepository.UpdateUser(ctx, user); err != nil {
		return false, userStoreError(err)
	}

	return true, nil
}

// ResolvePrincipal turns a bearer token into the principal of the request.
// Every failure, including a panic, is logged and reported as ok == false.
func (a *authService) ResolvePrincipal(ctx context.Context, token string) (principal models.Principal, ok bool) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("func", "*authService.ResolvePrincipal").Any("panic", r).Msg("principal resolution panicked")
			principal, ok = models.Principal{}, false
		}
	}()

	if !a.tokens.Validate(token) {
		log.Debug().Msg("invalid bearer token, continuing anonymously")
		return models.Principal{}, false
	}

	email, err := a.tokens.SubjectOf(token)
	if err != nil {
		log.Warn().Err(err).Msg("token subject could not be read")
		return models.Principal{}, false
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("token subject could not be resolved")
		return models.Principal{}, false
	}

	if !user.Enabled {
		log.Info().Int64("user_id", user.ID).Msg("token of disabled user")
		return models.Principal{}, false
	}

	return models.NewPrincipal(user), true
}

func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, userStoreError(err)
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of req to the caller's account.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, userStoreError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != user.PhoneNumber {
		taken, err := a.userRepository.ExistsByPhoneNumber(ctx, *req.PhoneNumber)
		if err != nil {
			return models.User{}, fmt.Errorf("checking phone number: %w", err)
		}
		if taken {
			return models.User{}, ErrDuplicatePhone
		}
		user.PhoneNumber = *req.PhoneNumber
	}

	updated, err := a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, userStoreError(err)
	}
	return updated, nil
}

func (a *authService) DeleteUser(ctx context.Context, userID int64) error {
	if err := a.userRepository.DeleteUserByID(ctx, userID); err != nil {
		return userStoreError(err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Msg("account deleted")
	return nil
}

func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.hashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// userStoreError translates credential store sentinels into the service
// taxonomy. The store error stays in the chain.
func userStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
	case errors.Is(err, store.ErrPhoneAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicatePhone, err)
	case errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	default:
		return err
	}
}

// profileName falls back to the local part of the email when the provider
// reports no display name.
func profileName(profile models.OAuth2Profile) string {
	if profile.Name != "" {
		return profile.Name
	}
	name, _, _ := strings.Cut(profile.Email, "@")
	return name
}
