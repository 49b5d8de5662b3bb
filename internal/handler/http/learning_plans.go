// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/inkspire/models"
)

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	var req models.LearningPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	plan, err := h.services.LearningPlanService.CreatePlan(r.Context(), callerID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, plan, http.StatusCreated)
}

func (h *Handler) listMyPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.services.LearningPlanService.ListUserPlans(r.Context(), callerID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, plans, http.StatusOK)
}

func (h *Handler) listRecommendedPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.services.LearningPlanService.ListPublicPlans(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, plans, http.StatusOK)
}

func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "planId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	plan, err := h.services.LearningPlanService.GetPlan(r.Context(), callerID(r), planID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, plan, http.StatusOK)
}

func (h *Handler) updatePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "planId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.LearningPlanRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	plan, err := h.services.LearningPlanService.UpdatePlan(r.Context(), callerID(r), planID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, plan, http.StatusOK)
}

func (h *Handler) deletePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r, "planId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.LearningPlanService.DeletePlan(r.Context(), callerID(r), planID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// updateMilestone sets completion and, when present, the notes.
func (h *Handler) updateMilestone(w http.ResponseWriter, r *http.Request) {
	var req models.MilestoneProgressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	h.applyMilestoneProgress(w, r, req)
}

// updateMilestoneStatus only toggles completion; notes are left untouched.
func (h *Handler) updateMilestoneStatus(w http.ResponseWriter, r *http.Request) {
	var req models.MilestoneProgressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.Notes = nil
	h.applyMilestoneProgress(w, r, req)
}

func (h *Handler) applyMilestoneProgress(w http.ResponseWriter, r *http.Request, req models.MilestoneProgressRequest) {
	planID, err := pathID(r, "planId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	milestoneID, err := pathID(r, "milestoneId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	milestone, err := h.services.LearningPlanService.UpdateMilestone(r.Context(), callerID(r), planID, milestoneID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, milestone, http.StatusOK)
}
