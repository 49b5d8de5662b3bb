package models

import "time"

// LearningPlan is a user's study plan made of ordered milestones and
// uploaded learning materials.
type LearningPlan struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"userId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Public      bool        `json:"isPublic"`
	Milestones  []Milestone `json:"milestones"`
	Materials   []Material  `json:"materials"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OwnerID returns the id of the plan author.
func (p LearningPlan) OwnerID() int64 { return p.UserID }

// IsPublic reports whether the plan is readable by every caller.
func (p LearningPlan) IsPublic() bool { return p.Public }

// MaterialAt returns the material at index in upload order.
func (p LearningPlan) MaterialAt(index int) (Material, bool) {
	if index < 0 || index >= len(p.Materials) {
		return Material{}, false
	}
	return p.Materials[index], true
}

// Milestone is a single step of a learning plan.
type Milestone struct {
	ID          int64  `json:"id"`
	PlanID      int64  `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Notes       string `json:"notes"`
}

// Material is a file attached to a learning plan.
type Material struct {
	ID          int64     `json:"id"`
	PlanID      int64     `json:"-"`
	Key         string    `json:"-"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LearningPlanRequest is the body of plan create and update calls.
type LearningPlanRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	IsPublic    bool               `json:"isPublic"`
	Milestones  []MilestoneRequest `json:"milestones"`
}

// MilestoneRequest describes one milestone of a plan being saved.
type MilestoneRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Notes       string `json:"notes"`
}

// MilestoneProgressRequest updates the completion state of a milestone.
// Notes are left untouched when nil.
type MilestoneProgressRequest struct {
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes,omitempty"`
}

// Reminder is a dated note, optionally tied to a learning plan.
type Reminder struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	PlanID    *int64    `json:"learningPlanId,omitempty"`
	PlanTitle string    `json:"learningPlanTitle,omitempty"`
	Message   string    `json:"message"`
	DueDate   time.Time `json:"dueDate"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// OwnerID returns the id of the user the reminder belongs to.
func (r Reminder) OwnerID() int64 { return r.UserID }

// ReminderRequest is the body of a reminder create call.
type ReminderRequest struct {
	Message        string    `json:"message"`
	DueDate        time.Time `json:"dueDate"`
	LearningPlanID *int64    `json:"learningPlanId,omitempty"`
}
