// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/inkspire/models"
)

// UserRepository is the credential store. Uniqueness of email, phone number
// and (provider, provider id) is enforced by database constraints; violations
// surface as [ErrEmailAlreadyExists], [ErrPhoneAlreadyExists] and
// [ErrProviderAlreadyLinked].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByPhoneNumber(ctx context.Context, phoneNumber string) (models.User, error)
	FindUserByProvider(ctx context.Context, provider, providerID string) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error)
	DeleteUserByID(ctx context.Context, userID int64) error
}

// PostRepository persists posts together with their ordered media keys.
// Returned posts carry the creator's name.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID int64) (models.Post, error)
	ListPublicPosts(ctx context.Context) ([]models.Post, error)
	ListPostsByUser(ctx context.Context, userID int64) ([]models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

// CommentRepository persists post comments.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindCommentByID(ctx context.Context, commentID int64) (models.Comment, error)
	ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

// LikeRepository persists likes; one like per (post, user).
type LikeRepository interface {
	CreateLike(ctx context.Context, postID, userID int64) error
	// DeleteLike reports whether a like was removed.
	DeleteLike(ctx context.Context, postID, userID int64) (bool, error)
	CountLikes(ctx context.Context, postID int64) (int64, error)
}

// LearningPlanRepository persists learning plans with their milestones and
// material metadata.
type LearningPlanRepository interface {
	CreatePlan(ctx context.Context, plan models.LearningPlan) (models.LearningPlan, error)
	FindPlanByID(ctx context.Context, planID int64) (models.LearningPlan, error)
	ListPlansByUser(ctx context.Context, userID int64) ([]models.LearningPlan, error)
	ListPublicPlans(ctx context.Context) ([]models.LearningPlan, error)
	// UpdatePlan overwrites plan fields and replaces its milestones.
	UpdatePlan(ctx context.Context, plan models.LearningPlan) (models.LearningPlan, error)
	DeletePlan(ctx context.Context, planID int64) error
	UpdateMilestone(ctx context.Context, milestone models.Milestone) (models.Milestone, error)
	AddMaterial(ctx context.Context, material models.Material) (models.Material, error)
	DeleteMaterial(ctx context.Context, materialID int64) error
}

// ReminderRepository persists reminders.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	FindReminderByID(ctx context.Context, reminderID int64) (models.Reminder, error)
	// ListRemindersByUser returns the user's reminders with the title of the
	// linked plan, soonest first.
	ListRemindersByUser(ctx context.Context, userID int64) ([]models.Reminder, error)
	DeleteReminder(ctx context.Context, reminderID int64) error
}

// ProgressUpdateRepository persists progress updates.
type ProgressUpdateRepository interface {
	CreateProgressUpdate(ctx context.Context, update models.ProgressUpdate) (models.ProgressUpdate, error)
	FindProgressUpdateByID(ctx context.Context, updateID int64) (models.ProgressUpdate, error)
	ListProgressUpdates(ctx context.Context) ([]models.ProgressUpdate, error)
	ListProgressUpdatesByUser(ctx context.Context, userID int64) ([]models.ProgressUpdate, error)
	UpdateProgressUpdate(ctx context.Context, update models.ProgressUpdate) (models.ProgressUpdate, error)
	DeleteProgressUpdate(ctx context.Context, updateID int64) error
}

// FileStorage stores uploaded blobs under flat keys.
type FileStorage interface {
	Save(ctx context.Context, key string, content io.Reader, size int64, contentType string) error
	// Open returns [ErrFileNotFound] for unknown keys. The caller closes the blob.
	Open(ctx context.Context, key string) (models.Blob, error)
	Delete(ctx context.Context, key string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
