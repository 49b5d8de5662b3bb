package http

import (
	"net/http"

	"github.com/MKhiriev/inkspire/models"
)

func (h *Handler) createProgressUpdate(w http.ResponseWriter, r *http.Request) {
	var req models.ProgressUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	update, err := h.services.ProgressUpdateService.CreateProgressUpdate(r.Context(), callerID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, update, http.StatusCreated)
}

func (h *Handler) listProgressUpdates(w http.ResponseWriter, r *http.Request) {
	updates, err := h.services.ProgressUpdateService.ListProgressUpdates(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, updates, http.StatusOK)
}

func (h *Handler) listUserProgressUpdates(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	updates, err := h.services.ProgressUpdateService.ListUserProgressUpdates(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, updates, http.StatusOK)
}

func (h *Handler) getProgressUpdate(w http.ResponseWriter, r *http.Request) {
	updateID, err := pathID(r, "updateId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	update, err := h.services.ProgressUpdateService.GetProgressUpdate(r.Context(), updateID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, update, http.StatusOK)
}

func (h *Handler) updateProgressUpdate(w http.ResponseWriter, r *http.Request) {
	updateID, err := pathID(r, "updateId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ProgressUpdateRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	update, err := h.services.ProgressUpdateService.UpdateProgressUpdate(r.Context(), callerID(r), updateID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, update, http.StatusOK)
}

func (h *Handler) deleteProgressUpdate(w http.ResponseWriter, r *http.Request) {
	updateID, err := pathID(r, "updateId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProgressUpdateService.DeleteProgressUpdate(r.Context(), callerID(r), updateID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
