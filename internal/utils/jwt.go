package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/inkspire/models"
	"github.com/golang-jwt/jwt/v5"
)

// BearerPrefix precedes the token in the Authorization header.
const BearerPrefix = "Bearer "

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following standard claims:
//   - Subject   (sub): the user's email
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus lifetime
//
// Returns an error if subject or signKey are empty or lifetime is not positive.
func GenerateJWTToken(subject string, issuedAt time.Time, lifetime time.Duration, signKey []byte) (models.Token, error) {
	if subject == "" || lifetime <= 0 || len(signKey) == 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(lifetime)),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ParseJWTToken verifies the signature and expiry of tokenString and
// returns its claims. now supplies the validation clock.
//
// Only HS256 is accepted, and tokens without an exp claim or with an empty
// subject are rejected.
func ParseJWTToken(tokenString string, signKey []byte, now func() time.Time) (models.Token, error) {
	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	claims.SignedString = tokenString
	return *claims, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
// ok is false when the header does not use the Bearer scheme or carries
// no token.
func ParseBearerToken(authorizationHeader string) (string, bool) {
	token, found := strings.CutPrefix(authorizationHeader, BearerPrefix)
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}
	return token, true
}
