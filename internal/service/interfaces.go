package service

import (
	"context"

	"github.com/MKhiriev/inkspire/models"
)

// TokenService issues and checks bearer tokens whose subject is a user's
// email.
type TokenService interface {
	Issue(subject string) (models.Token, error)
	// Validate reports whether token carries a valid signature and has not
	// expired. It never fails.
	Validate(token string) bool
	// SubjectOf returns the subject of a token; callers validate first.
	SubjectOf(token string) (string, error)
}

// AuthService resolves identities from password credentials, federated
// profiles and bearer tokens, and manages the caller's account.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Authenticate(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	ResolveOAuth2(ctx context.Context, profile models.OAuth2Profile, provider string) (models.User, error)
	LoginOAuth2(ctx context.Context, provider, credential string) (models.User, models.Token, error)
	// ResetPassword reports false when no account uses the email.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (bool, error)
	// ResolvePrincipal never fails: any problem yields ok == false and the
	// request continues anonymously.
	ResolvePrincipal(ctx context.Context, token string) (models.Principal, bool)

	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PostService manages media posts. callerID is zero for anonymous callers.
type PostService interface {
	CreatePost(ctx context.Context, callerID int64, post models.NewPost) (models.Post, error)
	GetPost(ctx context.Context, callerID, postID int64) (models.Post, error)
	ListPublicPosts(ctx context.Context) ([]models.Post, error)
	ListUserPosts(ctx context.Context, userID int64) ([]models.Post, error)
	UpdatePost(ctx context.Context, callerID, postID int64, req models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, callerID, postID int64) error
}

// CommentService manages comments of readable posts.
type CommentService interface {
	AddComment(ctx context.Context, callerID, postID int64, req models.CommentRequest) (models.Comment, error)
	ListComments(ctx context.Context, callerID, postID int64) ([]models.Comment, error)
	UpdateComment(ctx context.Context, callerID, postID, commentID int64, req models.CommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, callerID, postID, commentID int64) error
}

type LikeService interface {
	// ToggleLike reports whether the caller likes the post afterwards.
	ToggleLike(ctx context.Context, callerID, postID int64) (bool, error)
	CountLikes(ctx context.Context, callerID, postID int64) (int64, error)
}

// LearningPlanService manages learning plans, their milestones and
// attached materials. Materials are addressed by upload order.
type LearningPlanService interface {
	CreatePlan(ctx context.Context, callerID int64, req models.LearningPlanRequest) (models.LearningPlan, error)
	GetPlan(ctx context.Context, callerID, planID int64) (models.LearningPlan, error)
	ListUserPlans(ctx context.Context, userID int64) ([]models.LearningPlan, error)
	ListPublicPlans(ctx context.Context) ([]models.LearningPlan, error)
	UpdatePlan(ctx context.Context, callerID, planID int64, req models.LearningPlanRequest) (models.LearningPlan, error)
	DeletePlan(ctx context.Context, callerID, planID int64) error

	UpdateMilestone(ctx context.Context, callerID, planID, milestoneID int64, req models.MilestoneProgressRequest) (models.Milestone, error)

	AddMaterial(ctx context.Context, callerID, planID int64, file models.MediaFile) (models.Material, error)
	OpenMaterial(ctx context.Context, callerID, planID int64, index int) (models.Material, models.Blob, error)
	DeleteMaterial(ctx context.Context, callerID, planID int64, index int) error
}

type ReminderService interface {
	CreateReminder(ctx context.Context, callerID int64, req models.ReminderRequest) (models.Reminder, error)
	ListReminders(ctx context.Context, callerID int64) ([]models.Reminder, error)
	DeleteReminder(ctx context.Context, callerID, reminderID int64) error
}

type ProgressUpdateService interface {
	CreateProgressUpdate(ctx context.Context, callerID int64, req models.ProgressUpdateRequest) (models.ProgressUpdate, error)
	GetProgressUpdate(ctx context.Context, updateID int64) (models.ProgressUpdate, error)
	ListProgressUpdates(ctx context.Context) ([]models.ProgressUpdate, error)
	ListUserProgressUpdates(ctx context.Context, userID int64) ([]models.ProgressUpdate, error)
	UpdateProgressUpdate(ctx context.Context, callerID, updateID int64, req models.ProgressUpdateRequest) (models.ProgressUpdate, error)
	DeleteProgressUpdate(ctx context.Context, callerID, updateID int64) error
}

// MediaService stores standalone uploads and serves stored blobs.
type MediaService interface {
	// Upload stores file and returns its public URL.
	Upload(ctx context.Context, file models.MediaFile) (string, error)
	Open(ctx context.Context, key string) (models.Blob, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
