// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/inkspire/models"
)

// Hand-written service mocks. Each method delegates to its fn field, so a
// test only sets the functions its route actually calls.

type mockAuthService struct {
	registerFn         func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	authenticateFn     func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	resolveOAuth2Fn    func(ctx context.Context, profile models.OAuth2Profile, provider string) (models.User, error)
	loginOAuth2Fn      func(ctx context.Context, provider, credential string) (models.User, models.Token, error)
	resetPasswordFn    func(ctx context.Context, req models.ResetPasswordRequest) (bool, error)
	resolvePrincipalFn func(ctx context.Context, token string) (models.Principal, bool)
	getUserFn          func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn    func(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error)
	deleteUserFn       func(ctx context.Context, userID int64) error
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Authenticate(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	return m.authenticateFn(ctx, req)
}

func (m *mockAuthService) ResolveOAuth2(ctx context.Context, profile models.OAuth2Profile, provider string) (models.User, error) {
	return m.resolveOAuth2Fn(ctx, profile, provider)
}

func (m *mockAuthService) LoginOAuth2(ctx context.Context, provider, credential string) (models.User, models.Token, error) {
	return m.loginOAuth2Fn(ctx, provider, credential)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (bool, error) {
	return m.resetPasswordFn(ctx, req)
}

// ResolvePrincipal treats every token as anonymous unless overridden.
func (m *mockAuthService) ResolvePrincipal(ctx context.Context, token string) (models.Principal, bool) {
	if m.resolvePrincipalFn == nil {
		return models.Principal{}, false
	}
	return m.resolvePrincipalFn(ctx, token)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error) {
	return m.updateProfileFn(ctx, userID, req)
}

func (m *mockAuthService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

type mockPostService struct {
	createPostFn      func(ctx context.Context, callerID int64, post models.NewPost) (models.Post, error)
	getPostFn         func(ctx context.Context, callerID, postID int64) (models.Post, error)
	listPublicPostsFn func(ctx context.Context) ([]models.Post, error)
	listUserPostsFn   func(ctx context.Context, userID int64) ([]models.Post, error)
	updatePostFn      func(ctx context.Context, callerID, postID int64, req models.UpdatePostRequest) (models.Post, error)
	deletePostFn      func(ctx context.Context, callerID, postID int64) error
}

func (m *mockPostService) CreatePost(ctx context.Context, callerID int64, post models.NewPost) (models.Post, error) {
	return m.createPostFn(ctx, callerID, post)
}

func (m *mockPostService) GetPost(ctx context.Context, callerID, postID int64) (models.Post, error) {
	return m.getPostFn(ctx, callerID, postID)
}

func (m *mockPostService) ListPublicPosts(ctx context.Context) ([]models.Post, error) {
	return m.listPublicPostsFn(ctx)
}

func (m *mockPostService) ListUserPosts(ctx context.Context, userID int64) ([]models.Post, error) {
	return m.listUserPostsFn(ctx, userID)
}

func (m *mockPostService) UpdatePost(ctx context.Context, callerID, postID int64, req models.UpdatePostRequest) (models.Post, error) {
	return m.updatePostFn(ctx, callerID, postID, req)
}

func (m *mockPostService) DeletePost(ctx context.Context, callerID, postID int64) error {
	return m.deletePostFn(ctx, callerID, postID)
}

type mockCommentService struct {
	addCommentFn    func(ctx context.Context, callerID, postID int64, req models.CommentRequest) (models.Comment, error)
	listCommentsFn  func(ctx context.Context, callerID, postID int64) ([]models.Comment, error)
	updateCommentFn func(ctx context.Context, callerID, postID, commentID int64, req models.CommentRequest) (models.Comment, error)
	deleteCommentFn func(ctx context.Context, callerID, postID, commentID int64) error
}

func (m *mockCommentService) AddComment(ctx context.Context, callerID, postID int64, req models.CommentRequest) (models.Comment, error) {
	return m.addCommentFn(ctx, callerID, postID, req)
}

func (m *mockCommentService) ListComments(ctx context.Context, callerID, postID int64) ([]models.Comment, error) {
	return m.listCommentsFn(ctx, callerID, postID)
}

func (m *mockCommentService) UpdateComment(ctx context.Context, callerID, postID, commentID int64, req models.CommentRequest) (models.Comment, error) {
	return m.updateCommentFn(ctx, callerID, postID, commentID, req)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, callerID, postID, commentID int64) error {
	return m.deleteCommentFn(ctx, callerID, postID, commentID)
}

type mockLikeService struct {
	toggleLikeFn func(ctx context.Context, callerID, postID int64) (bool, error)
	countLikesFn func(ctx context.Context, callerID, postID int64) (int64, error)
}

func (m *mockLikeService) ToggleLike(ctx context.Context, callerID, postID int64) (bool, error) {
	return m.toggleLikeFn(ctx, callerID, postID)
}

func (m *mockLikeService) CountLikes(ctx context.Context, callerID, postID int64) (int64, error) {
	return m.countLikesFn(ctx, callerID, postID)
}

type mockLearningPlanService struct {
	createPlanFn      func(ctx context.Context, callerID int64, req models.LearningPlanRequest) (models.LearningPlan, error)
	getPlanFn         func(ctx context.Context, callerID, planID int64) (models.LearningPlan, error)
	listUserPlansFn   func(ctx context.Context, userID int64) ([]models.LearningPlan, error)
	listPublicPlansFn func(ctx context.Context) ([]models.LearningPlan, error)
	updatePlanFn      func(ctx context.Context, callerID, planID int64, req models.LearningPlanRequest) (models.LearningPlan, error)
	deletePlanFn      func(ctx context.Context, callerID, planID int64) error
	updateMilestoneFn func(ctx context.Context, callerID, planID, milestoneID int64, req models.MilestoneProgressRequest) (models.Milestone, error)
	addMaterialFn     func(ctx context.Context, callerID, planID int64, file models.MediaFile) (models.Material, error)
	openMaterialFn    func(ctx context.Context, callerID, planID int64, index int) (models.Material, models.Blob, error)
	deleteMaterialFn  func(ctx context.Context, callerID, planID int64, index int) error
}

func (m *mockLearningPlanService) CreatePlan(ctx context.Context, callerID int64, req models.LearningPlanRequest) (models.LearningPlan, error) {
	return m.createPlanFn(ctx, callerID, req)
}

func (m *mockLearningPlanService) GetPlan(ctx context.Context, callerID, planID int64) (models.LearningPlan, error) {
	return m.getPlanFn(ctx, callerID, planID)
}

func (m *mockLearningPlanService) ListUserPlans(ctx context.Context, userID int64) ([]models.LearningPlan, error) {
	return m.listUserPlansFn(ctx, userID)
}

func (m *mockLearningPlanService) ListPublicPlans(ctx context.Context) ([]models.LearningPlan, error) {
	return m.listPublicPlansFn(ctx)
}

func (m *mockLearningPlanService) UpdatePlan(ctx context.Context, callerID, planID int64, req models.LearningPlanRequest) (models.LearningPlan, error) {
	return m.updatePlanFn(ctx, callerID, planID, req)
}

func (m *mockLearningPlanService) DeletePlan(ctx context.Context, callerID, planID int64) error {
	return m.deletePlanFn(ctx, callerID, planID)
}

func (m *mockLearningPlanService) UpdateMilestone(ctx context.Context, callerID, planID, milestoneID int64, req models.MilestoneProgressRequest) (models.Milestone, error) {
	return m.updateMilestoneFn(ctx, callerID, planID, milestoneID, req)
}

func (m *mockLearningPlanService) AddMaterial(ctx context.Context, callerID, planID int64, file models.MediaFile) (models.Material, error) {
	return m.addMaterialFn(ctx, callerID, planID, file)
}

func (m *mockLearningPlanService) OpenMaterial(ctx context.Context, callerID, planID int64, index int) (models.Material, models.Blob, error) {
	return m.openMaterialFn(ctx, callerID, planID, index)
}

func (m *mockLearningPlanService) DeleteMaterial(ctx context.Context, callerID, planID int64, index int) error {
	return m.deleteMaterialFn(ctx, callerID, planID, index)
}

type mockReminderService struct {
	createReminderFn func(ctx context.Context, callerID int64, req models.ReminderRequest) (models.Reminder, error)
	listRemindersFn  func(ctx context.Context, callerID int64) ([]models.Reminder, error)
	deleteReminderFn func(ctx context.Context, callerID, reminderID int64) error
}

func (m *mockReminderService) CreateReminder(ctx context.Context, callerID int64, req models.ReminderRequest) (models.Reminder, error) {
	return m.createReminderFn(ctx, callerID, req)
}

func (m *mockReminderService) ListReminders(ctx context.Context, callerID int64) ([]models.Reminder, error) {
	return m.listRemindersFn(ctx, callerID)
}

func (m *mockReminderService) DeleteReminder(ctx context.Context, callerID, reminderID int64) error {
	return m.deleteReminderFn(ctx, callerID, reminderID)
}

type mockProgressUpdateService struct {
	createFn   func(ctx context.Context, callerID int64, req models.ProgressUpdateRequest) (models.ProgressUpdate, error)
	getFn      func(ctx context.Context, updateID int64) (models.ProgressUpdate, error)
	listFn     func(ctx context.Context) ([]models.ProgressUpdate, error)
	listUserFn func(ctx context.Context, userID int64) ([]models.ProgressUpdate, error)
	updateFn   func(ctx context.Context, callerID, updateID int64, req models.ProgressUpdateRequest) (models.ProgressUpdate, error)
	deleteFn   func(ctx context.Context, callerID, updateID int64) error
}

func (m *mockProgressUpdateService) CreateProgressUpdate(ctx context.Context, callerID int64, req models.ProgressUpdateRequest) (models.ProgressUpdate, error) {
	return m.createFn(ctx, callerID, req)
}

func (m *mockProgressUpdateService) GetProgressUpdate(ctx context.Context, updateID int64) (models.ProgressUpdate, error) {
	return m.getFn(ctx, updateID)
}

func (m *mockProgressUpdateService) ListProgressUpdates(ctx context.Context) ([]models.ProgressUpdate, error) {
	return m.listFn(ctx)
}

func (m *mockProgressUpdateService) ListUserProgressUpdates(ctx context.Context, userID int64) ([]models.ProgressUpdate, error) {
	return m.listUserFn(ctx, userID)
}

func (m *mockProgressUpdateService) UpdateProgressUpdate(ctx context.Context, callerID, updateID int64, req models.ProgressUpdateRequest) (models.ProgressUpdate, error) {
	return m.updateFn(ctx, callerID, updateID, req)
}

func (m *mockProgressUpdateService) DeleteProgressUpdate(ctx context.Context, callerID, updateID int64) error {
	return m.deleteFn(ctx, callerID, updateID)
}

type mockMediaService struct {
	uploadFn func(ctx context.Context, file models.MediaFile) (string, error)
	openFn   func(ctx context.Context, key string) (models.Blob, error)
}

func (m *mockMediaService) Upload(ctx context.Context, file models.MediaFile) (string, error) {
	return m.uploadFn(ctx, file)
}

func (m *mockMediaService) Open(ctx context.Context, key string) (models.Blob, error) {
	return m.openFn(ctx, key)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
