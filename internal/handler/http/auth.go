// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/inkspire/internal/service"
	"github.com/MKhiriev/inkspire/internal/utils"
	"github.com/MKhiriev/inkspire/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.RegisterResponse{Message: "User registered successfully", UserID: user.ID}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Authenticate(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewAuthResponse(token, user), http.StatusOK)
}

// oauth2Login exchanges a provider credential (Google ID token, GitHub
// access token) for an inkspire token.
func (h *Handler) oauth2Login(w http.ResponseWriter, r *http.Request) {
	var req models.OAuth2LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.LoginOAuth2(r.Context(), chi.URLParam(r, "provider"), req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewAuthResponse(token, user), http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ok, err := h.services.AuthService.ResetPassword(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		writeError(w, r, service.ErrUserNotFound)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: "Password reset successfully"}, http.StatusOK)
}

// verify reports the principal established by the gate. It is mounted
// behind requireAuth, so anonymous callers get 401 before reaching it.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	principal, _ := utils.GetPrincipalFromContext(r.Context())
	writeJSON(w, r, models.VerifyResponse{Valid: true, Email: principal.Email}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.GetUser(r.Context(), callerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), callerID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.DeleteUser(r.Context(), callerID(r)); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, models.MessageResponse{Message: "Account deleted successfully"}, http.StatusOK)
}
