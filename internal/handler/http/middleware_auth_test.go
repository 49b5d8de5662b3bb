// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/service"
	"github.com/MKhiriev/inkspire/internal/utils"
	"github.com/MKhiriev/inkspire/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- authenticate: the gate never rejects ----

func TestAuthenticate_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		wantResolved  string
		wantPrincipal bool
	}{
		{
			name: "no header, anonymous",
		},
		{
			name:   "basic scheme, anonymous",
			header: "Basic dXNlcjpwYXNz",
		},
		{
			name:   "bearer without token, anonymous",
			header: "Bearer ",
		},
		{
			name:         "unresolvable token, anonymous",
			header:       "Bearer expired-token",
			wantResolved: "expired-token",
		},
		{
			name:          "resolvable token, principal attached",
			header:        "Bearer " + aliceToken,
			wantResolved:  aliceToken,
			wantPrincipal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resolved string
			h := &Handler{
				logger: logger.Nop(),
				services: &service.Services{
					AuthService: &mockAuthService{
						resolvePrincipalFn: func(ctx context.Context, token string) (models.Principal, bool) {
							resolved = token
							return resolveAlice(ctx, token)
						},
					},
				},
			}

			var (
				nextCalled bool
				principal  models.Principal
				found      bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				principal, found = utils.GetPrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/anything", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.authenticate(next).ServeHTTP(rec, req)

			require.True(t, nextCalled, "gate must always call the next handler")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantResolved, resolved)
			assert.Equal(t, tt.wantPrincipal, found)
			if tt.wantPrincipal {
				assert.Equal(t, alicePrincipal, principal)
			}
		})
	}
}

// ---- requireAuth ----

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("anonymous request gets 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		requireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decodeErrorResponse(t, rec).Code)
	})

	t.Run("principal passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(utils.WithPrincipal(req.Context(), alicePrincipal))
		rec := httptest.NewRecorder()
		requireAuth(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

// ---- callerID ----

func TestCallerID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, int64(0), callerID(req), "anonymous caller is 0")

	req = req.WithContext(utils.WithPrincipal(req.Context(), alicePrincipal))
	assert.Equal(t, aliceID, callerID(req))
}
