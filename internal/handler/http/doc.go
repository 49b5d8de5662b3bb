// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the inkspire server.
//
// It exposes route wiring, request handlers, and middleware. Every request
// passes through trace id assignment, access logging, CORS, compression and
// the authentication gate before reaching a handler. The gate never rejects
// a request: it only attaches a principal when the bearer token resolves to
// an enabled user. Routes that need a caller are wrapped in requireAuth.
package http
