// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound replaces chi's plain-text 404 so unknown routes answer with the
// same {"code","message"} body as every other error.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

// methodNotAllowed replaces chi's bare 405 for routes that exist under a
// different method. chi has already set the Allow header at this point.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrMethodNotAllowed)
}
