// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProgressTemplate classifies a progress update.
type ProgressTemplate string

const (
	ProgressTemplateWorkout ProgressTemplate = "WORKOUT"
	ProgressTemplateStudy   ProgressTemplate = "STUDY"
	ProgressTemplatePoetry  ProgressTemplate = "POETRY"
	ProgressTemplateEssay   ProgressTemplate = "ESSAY"
	ProgressTemplateStory   ProgressTemplate = "STORY"
	ProgressTemplatePlan    ProgressTemplate = "PLAN"
)

// Valid reports whether t is one of the known templates.
func (t ProgressTemplate) Valid() bool {
	switch t {
	case ProgressTemplateWorkout, ProgressTemplateStudy, ProgressTemplatePoetry,
		ProgressTemplateEssay, ProgressTemplateStory, ProgressTemplatePlan:
		return true
	}
	return false
}

// ProgressUpdate is a short status post about a user's learning progress.
type ProgressUpdate struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId"`
	Template    ProgressTemplate `json:"progressTemplate"`
	Description string           `json:"description"`
	Plan        string           `json:"plan"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// OwnerID returns the id of the user that posted the update.
func (p ProgressUpdate) OwnerID() int64 { return p.UserID }

// ProgressUpdateRequest is the body of progress update create and update calls.
type ProgressUpdateRequest struct {
	ProgressTemplate ProgressTemplate `json:"progressTemplate"`
	Description      string           `json:"description"`
	Plan             string           `json:"plan"`
}
