// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/inkspire/models"
)

func (h *Handler) createReminder(w http.ResponseWriter, r *http.Request) {
	var req models.ReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	reminder, err := h.services.ReminderService.CreateReminder(r.Context(), callerID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, reminder, http.StatusCreated)
}

func (h *Handler) listReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.services.ReminderService.ListReminders(r.Context(), callerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, reminders, http.StatusOK)
}

func (h *Handler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	reminderID, err := pathID(r, "reminderId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ReminderService.DeleteReminder(r.Context(), callerID(r), reminderID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
