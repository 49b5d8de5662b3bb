// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import "errors"

var (
	// ErrUnknownProvider is returned for provider names without a
	// configured verifier.
	ErrUnknownProvider = errors.New("unknown oauth2 provider")

	// ErrVerificationFailed is returned when the provider rejects the
	// presented credential or returns an unusable profile.
	ErrVerificationFailed = errors.New("oauth2 credential verification failed")
)
