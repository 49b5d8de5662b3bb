// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/MKhiriev/inkspire/internal/config"
	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/service"
	"github.com/MKhiriev/inkspire/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aliceToken = "alice-token"
	aliceID    = int64(1)
)

var alicePrincipal = models.Principal{
	UserID:      aliceID,
	Email:       "alice@x.io",
	Name:        "alice",
	Authorities: []string{models.AuthorityUser},
}

func resolveAlice(_ context.Context, token string) (models.Principal, bool) {
	if token == aliceToken {
		return alicePrincipal, true
	}
	return models.Principal{}, false
}

var testServerConfig = config.Server{
	AllowedOrigins: []string{"http://localhost:3000"},
	MaxUploadBytes: 1 << 20,
}

// newTestRouter builds the full router over svcs. Unless the test supplies
// its own AuthService, aliceToken resolves to alicePrincipal.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{resolvePrincipalFn: resolveAlice}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return NewHandler(svcs, testServerConfig, logger.Nop()).Init()
}

// serve sends one request through router. An empty token sends no
// Authorization header.
func serve(t *testing.T, router http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, testServerConfig, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, testServerConfig.AllowedOrigins, h.allowedOrigins)
	assert.Equal(t, testServerConfig.MaxUploadBytes, h.maxUploadBytes)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []string{
	"POST /api/auth/register",
	"POST /api/auth/login",
	"POST /api/auth/oauth2/{provider}",
	"POST /api/auth/reset-password",
	"GET /api/auth/verify",
	"GET /api/auth/me",
	"PUT /api/auth/profile",
	"DELETE /api/auth/account",

	"GET /api/posts/public",
	"GET /api/posts/{postId}",
	"POST /api/posts/create",
	"GET /api/posts/my-posts",
	"PUT /api/posts/update/{postId}",
	"DELETE /api/posts/delete/{postId}",

	"GET /posts/{postId}/comments",
	"POST /posts/{postId}/comments",
	"PUT /posts/{postId}/comments/{commentId}",
	"DELETE /posts/{postId}/comments/{commentId}",
	"GET /posts/{postId}/likes/count",
	"POST /posts/{postId}/likes/toggle",

	"GET /api/learning-plans/recommended",
	"GET /api/learning-plans/{planId}",
	"GET /api/learning-plans/{planId}/materials/{index}",
	"POST /api/learning-plans/",
	"GET /api/learning-plans/",
	"PUT /api/learning-plans/{planId}",
	"DELETE /api/learning-plans/{planId}",
	"PUT /api/learning-plans/{planId}/milestones/{milestoneId}",
	"PUT /api/learning-plans/{planId}/milestones/{milestoneId}/status",
	"POST /api/learning-plans/{planId}/materials",
	"DELETE /api/learning-plans/{planId}/materials/{index}",
	"POST /api/learning-plans/reminders",
	"GET /api/learning-plans/reminders",
	"DELETE /api/learning-plans/reminders/{reminderId}",

	"GET /api/progress-updates/",
	"GET /api/progress-updates/{updateId}",
	"GET /api/progress-updates/user/{userId}",
	"POST /api/progress-updates/",
	"PUT /api/progress-updates/{updateId}",
	"DELETE /api/progress-updates/{updateId}",

	"POST /api/upload",
	"GET /media/{key}",
	"GET /api/version",
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := NewHandler(&service.Services{}, testServerConfig, logger.Nop()).Init()

	var registered []string
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered = append(registered, method+" "+route)
		return nil
	})
	require.NoError(t, err)

	want := append([]string(nil), expectedRoutes...)
	sort.Strings(want)
	sort.Strings(registered)
	assert.Equal(t, want, registered)
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/verify"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPut, "/api/auth/profile"},
		{http.MethodDelete, "/api/auth/account"},
		{http.MethodPost, "/api/posts/create"},
		{http.MethodGet, "/api/posts/my-posts"},
		{http.MethodPut, "/api/posts/update/1"},
		{http.MethodDelete, "/api/posts/delete/1"},
		{http.MethodPost, "/posts/1/comments"},
		{http.MethodPut, "/posts/1/comments/2"},
		{http.MethodDelete, "/posts/1/comments/2"},
		{http.MethodPost, "/posts/1/likes/toggle"},
		{http.MethodPost, "/api/learning-plans"},
		{http.MethodGet, "/api/learning-plans"},
		{http.MethodPut, "/api/learning-plans/1"},
		{http.MethodDelete, "/api/learning-plans/1"},
		{http.MethodPut, "/api/learning-plans/1/milestones/2"},
		{http.MethodPut, "/api/learning-plans/1/milestones/2/status"},
		{http.MethodPost, "/api/learning-plans/1/materials"},
		{http.MethodDelete, "/api/learning-plans/1/materials/0"},
		{http.MethodPost, "/api/learning-plans/reminders"},
		{http.MethodGet, "/api/learning-plans/reminders"},
		{http.MethodDelete, "/api/learning-plans/reminders/1"},
		{http.MethodPost, "/api/progress-updates"},
		{http.MethodPut, "/api/progress-updates/1"},
		{http.MethodDelete, "/api/progress-updates/1"},
		{http.MethodPost, "/api/upload"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			for _, token := range []string{"", "bogus-token"} {
				rec := serve(t, router, tt.method, tt.path, nil, token)

				require.Equal(t, http.StatusUnauthorized, rec.Code, "token %q", token)
				assert.Equal(t, "UNAUTHORIZED", decodeErrorResponse(t, rec).Code)
			}
		})
	}
}

func TestInit_UnknownRoute_Returns404JSON(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := serve(t, router, http.MethodGet, "/api/unknown", nil, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeErrorResponse(t, rec).Code)
}

func TestInit_WrongMethod_Returns405JSON(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := serve(t, router, http.MethodPatch, "/api/auth/login", nil, "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", decodeErrorResponse(t, rec).Code)
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	t.Run("always set", func(t *testing.T) {
		rec := serve(t, router, http.MethodGet, "/api/version", nil, "")
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})

	t.Run("echoed from request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.Header.Set(traceIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
	})
}

func TestInit_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodOptions, "/api/posts/public", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_CORSRejectsUnknownOrigin(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_RecoversFromHandlerPanic(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		PostService: &mockPostService{
			listPublicPostsFn: func(context.Context) ([]models.Post, error) {
				panic("boom")
			},
		},
	})

	rec := serve(t, router, http.MethodGet, "/api/posts/public", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
