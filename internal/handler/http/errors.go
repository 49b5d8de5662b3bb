// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding requests, before any service runs.
// Callers can match against them with [errors.Is].
var (
	// ErrUnauthenticated is returned for protected routes when the
	// authentication gate did not attach a principal to the request.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidRequestBody is returned when a JSON body cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrInvalidPathParam is returned when a numeric path segment such as
	// {postId} does not parse as a positive integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidMultipartForm is returned when a multipart body is malformed.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")

	// ErrPayloadTooLarge is returned when a multipart body exceeds the
	// configured upload limit.
	ErrPayloadTooLarge = errors.New("request body is too large")

	// ErrMissingFile is returned when a multipart body has no file under the
	// expected field name.
	ErrMissingFile = errors.New("file is missing")

	// ErrRouteNotFound and ErrMethodNotAllowed back the router fallbacks.
	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
