// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Identity and authorization failures reported to the transport layer.
var (
	ErrDuplicateEmail     = errors.New("email is already in use")
	ErrDuplicatePhone     = errors.New("phone number is already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user was not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrTokenInvalid       = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// application version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
