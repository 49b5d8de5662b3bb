// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/inkspire/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{
		"id", "name", "email", "password_hash", "phone_number",
		"provider", "provider_id", "enabled", "created_at", "updated_at",
	}
	postColumns = []string{
		"p.id", "p.user_id", "u.name", "p.description", "p.is_private",
		"p.is_video", "p.created_at", "p.updated_at",
	}
	commentColumns = []string{
		"c.id", "c.post_id", "c.user_id", "u.name", "c.content", "c.created_at", "c.updated_at",
	}
	planColumns = []string{
		"id", "user_id", "title", "description", "is_public", "created_at", "updated_at",
	}
	milestoneColumns = []string{
		"id", "plan_id", "title", "description", "completed", "notes",
	}
	materialColumns = []string{
		"id", "plan_id", "key", "file_name", "content_type", "size", "created_at",
	}
	reminderColumns = []string{
		"r.id", "r.user_id", "r.plan_id", "COALESCE(lp.title, '')", "r.message",
		"r.due_date", "r.completed", "r.created_at",
	}
	progressUpdateColumns = []string{
		"id", "user_id", "progress_template", "description", "plan", "created_at", "updated_at",
	}
)

func buildQueryError(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// ── users ────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("name", "email", "password_hash", "phone_number", "provider", "provider_id", "enabled").
		Values(user.Name, user.Email, user.PasswordHash, nullString(user.PhoneNumber),
			nullString(user.Provider), nullString(user.ProviderID), user.Enabled).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildUpdateUserQuery(user models.User) (string, []any, error) {
	return psql.Update("users").
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("phone_number", nullString(user.PhoneNumber)).
		Set("provider", nullString(user.Provider)).
		Set("provider_id", nullString(user.ProviderID)).
		Set("enabled", user.Enabled).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildFindUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).From("users").Where(where).ToSql()
}

func buildUserExistsQuery(where sq.Eq) (string, []any, error) {
	inner, args, err := psql.Select("1").From("users").Where(where).ToSql()
	if err != nil {
		return "", nil, err
	}
	// inner already carries $n placeholders; wrap it without renumbering.
	return "SELECT EXISTS (" + inner + ")", args, nil
}

func buildDeleteByIDQuery(table string, id int64) (string, []any, error) {
	return psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
}

// ── posts ────────────────────────────────────────────────────────────────────

func selectPosts() sq.SelectBuilder {
	return psql.Select(postColumns...).
		From("posts p").
		Join("users u ON u.id = p.user_id").
		OrderBy("p.created_at DESC", "p.id DESC")
}

func buildInsertPostQuery(post models.Post) (string, []any, error) {
	return psql.Insert("posts").
		Columns("user_id", "description", "is_private", "is_video").
		Values(post.UserID, post.Description, post.IsPrivate, post.IsVideo).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildInsertPostMediaQuery(postID int64, keys []string) (string, []any, error) {
	builder := psql.Insert("post_media").Columns("post_id", "position", "key")
	for i, key := range keys {
		builder = builder.Values(postID, i, key)
	}
	return builder.ToSql()
}

func buildSelectPostMediaQuery(postIDs []int64) (string, []any, error) {
	return psql.Select("post_id", "key").
		From("post_media").
		Where(sq.Eq{"post_id": postIDs}).
		OrderBy("post_id", "position").
		ToSql()
}

func buildUpdatePostQuery(post models.Post) (string, []any, error) {
	return psql.Update("posts").
		Set("description", post.Description).
		Set("is_private", post.IsPrivate).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
}

// ── comments ─────────────────────────────────────────────────────────────────

func selectComments() sq.SelectBuilder {
	return psql.Select(commentColumns...).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		OrderBy("c.created_at", "c.id")
}

func buildInsertCommentQuery(comment models.Comment) (string, []any, error) {
	return psql.Insert("comments").
		Columns("post_id", "user_id", "content").
		Values(comment.PostID, comment.UserID, comment.Content).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildUpdateCommentQuery(comment models.Comment) (string, []any, error) {
	return psql.Update("comments").
		Set("content", comment.Content).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": comment.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
}

// ── likes ────────────────────────────────────────────────────────────────────

func buildInsertLikeQuery(postID, userID int64) (string, []any, error) {
	return psql.Insert("likes").Columns("post_id", "user_id").Values(postID, userID).ToSql()
}

func buildDeleteLikeQuery(postID, userID int64) (string, []any, error) {
	return psql.Delete("likes").Where(sq.Eq{"post_id": postID, "user_id": userID}).ToSql()
}

func buildCountLikesQuery(postID int64) (string, []any, error) {
	return psql.Select("COUNT(*)").From("likes").Where(sq.Eq{"post_id": postID}).ToSql()
}

// ── learning plans ───────────────────────────────────────────────────────────

func selectPlans() sq.SelectBuilder {
	return psql.Select(planColumns...).From("learning_plans").OrderBy("created_at DESC", "id DESC")
}

func buildInsertPlanQuery(plan models.LearningPlan) (string, []any, error) {
	return psql.Insert("learning_plans").
		Columns("user_id", "title", "description", "is_public").
		Values(plan.UserID, plan.Title, plan.Description, plan.Public).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildUpdatePlanQuery(plan models.LearningPlan) (string, []any, error) {
	return psql.Update("learning_plans").
		Set("title", plan.Title).
		Set("description", plan.Description).
		Set("is_public", plan.Public).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": plan.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildInsertMilestonesQuery(planID int64, milestones []models.Milestone) (string, []any, error) {
	builder := psql.Insert("milestones").
		Columns("plan_id", "position", "title", "description", "completed", "notes")
	for i, m := range milestones {
		builder = builder.Values(planID, i, m.Title, m.Description, m.Completed, m.Notes)
	}
	return builder.Suffix("RETURNING id").ToSql()
}

func buildDeleteMilestonesQuery(planID int64) (string, []any, error) {
	return psql.Delete("milestones").Where(sq.Eq{"plan_id": planID}).ToSql()
}

func buildSelectMilestonesQuery(planIDs []int64) (string, []any, error) {
	return psql.Select(milestoneColumns...).
		From("milestones").
		Where(sq.Eq{"plan_id": planIDs}).
		OrderBy("plan_id", "position").
		ToSql()
}

func buildUpdateMilestoneQuery(m models.Milestone) (string, []any, error) {
	return psql.Update("milestones").
		Set("completed", m.Completed).
		Set("notes", m.Notes).
		Where(sq.Eq{"id": m.ID, "plan_id": m.PlanID}).
		Suffix("RETURNING " + strings.Join(milestoneColumns, ", ")).
		ToSql()
}

func buildInsertMaterialQuery(m models.Material) (string, []any, error) {
	return psql.Insert("learning_materials").
		Columns("plan_id", "key", "file_name", "content_type", "size").
		Values(m.PlanID, m.Key, m.FileName, m.ContentType, m.Size).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildSelectMaterialsQuery(planIDs []int64) (string, []any, error) {
	return psql.Select(materialColumns...).
		From("learning_materials").
		Where(sq.Eq{"plan_id": planIDs}).
		OrderBy("plan_id", "id").
		ToSql()
}

// ── reminders ────────────────────────────────────────────────────────────────

func selectReminders() sq.SelectBuilder {
	return psql.Select(reminderColumns...).
		From("reminders r").
		LeftJoin("learning_plans lp ON lp.id = r.plan_id")
}

func buildInsertReminderQuery(r models.Reminder) (string, []any, error) {
	return psql.Insert("reminders").
		Columns("user_id", "plan_id", "message", "due_date").
		Values(r.UserID, nullInt64(r.PlanID), r.Message, r.DueDate).
		Suffix("RETURNING id, completed, created_at").
		ToSql()
}

// ── progress updates ─────────────────────────────────────────────────────────

func selectProgressUpdates() sq.SelectBuilder {
	return psql.Select(progressUpdateColumns...).From("progress_updates").OrderBy("created_at DESC", "id DESC")
}

func buildInsertProgressUpdateQuery(u models.ProgressUpdate) (string, []any, error) {
	return psql.Insert("progress_updates").
		Columns("user_id", "progress_template", "description", "plan").
		Values(u.UserID, string(u.Template), u.Description, u.Plan).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildUpdateProgressUpdateQuery(u models.ProgressUpdate) (string, []any, error) {
	return psql.Update("progress_updates").
		Set("progress_template", string(u.Template)).
		Set("description", u.Description).
		Set("plan", u.Plan).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": u.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}
