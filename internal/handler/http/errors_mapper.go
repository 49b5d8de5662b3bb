package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/oauth"
	"github.com/MKhiriev/inkspire/internal/service"
	"github.com/MKhiriev/inkspire/internal/store"
	"github.com/MKhiriev/inkspire/internal/utils"
	"github.com/MKhiriev/inkspire/internal/validators"
	"github.com/MKhiriev/inkspire/models"
)

const (
	codeInternalError = "INTERNAL_ERROR"

	internalErrorMessage = "internal server error"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// errorCatalogue is scanned in order and the first errors.Is match wins, so
// specific sentinels must come before the ones they may wrap.
var errorCatalogue = []errorMapping{
	{ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHORIZED"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{service.ErrTokenInvalid, http.StatusUnauthorized, "TOKEN_INVALID"},
	{oauth.ErrVerificationFailed, http.StatusUnauthorized, "OAUTH2_VERIFICATION_FAILED"},

	{service.ErrAccessDenied, http.StatusForbidden, "ACCESS_DENIED"},

	{service.ErrDuplicateEmail, http.StatusConflict, "DUPLICATE_EMAIL"},
	{service.ErrDuplicatePhone, http.StatusConflict, "DUPLICATE_PHONE"},

	{oauth.ErrUnknownProvider, http.StatusNotFound, "UNKNOWN_PROVIDER"},
	{service.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{store.ErrNoUserWasFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{store.ErrPostNotFound, http.StatusNotFound, "POST_NOT_FOUND"},
	{store.ErrCommentNotFound, http.StatusNotFound, "COMMENT_NOT_FOUND"},
	{store.ErrPlanNotFound, http.StatusNotFound, "LEARNING_PLAN_NOT_FOUND"},
	{store.ErrMilestoneNotFound, http.StatusNotFound, "MILESTONE_NOT_FOUND"},
	{store.ErrMaterialNotFound, http.StatusNotFound, "MATERIAL_NOT_FOUND"},
	{store.ErrReminderNotFound, http.StatusNotFound, "REMINDER_NOT_FOUND"},
	{store.ErrProgressUpdateNotFound, http.StatusNotFound, "PROGRESS_UPDATE_NOT_FOUND"},
	{store.ErrFileNotFound, http.StatusNotFound, "FILE_NOT_FOUND"},
	{store.ErrInvalidFileKey, http.StatusNotFound, "FILE_NOT_FOUND"},
	{ErrRouteNotFound, http.StatusNotFound, "NOT_FOUND"},

	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},

	{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},

	{validators.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{ErrInvalidRequestBody, http.StatusBadRequest, "BAD_REQUEST"},
	{ErrInvalidPathParam, http.StatusBadRequest, "BAD_REQUEST"},
	{ErrInvalidMultipartForm, http.StatusBadRequest, "BAD_REQUEST"},
	{ErrMissingFile, http.StatusBadRequest, "BAD_REQUEST"},
}

// statusFromError returns the HTTP status and structured code for err.
// Errors missing from the catalogue are internal.
func statusFromError(err error) (int, string) {
	for _, m := range errorCatalogue {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, codeInternalError
}

// writeError renders err as {"code","message"}. Internal errors are logged
// with their cause and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, code := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", "http.writeError").Msg("request failed")
		message = internalErrorMessage
	} else {
		log.Debug().Err(err).Int("status", status).Str("code", code).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Code: code, Message: message}, status); wErr != nil {
		log.Err(wErr).Str("func", "http.writeError").Msg("error writing error response")
	}
}

// writeJSON writes data with status and logs encoding failures.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "http.writeJSON").Msg("error writing response")
	}
}
