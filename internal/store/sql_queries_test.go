package store

import (
	"testing"

	"github.com/MKhiriev/inkspire/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertUserQuery(t *testing.T) {
	query, args, err := buildInsertUserQuery(models.User{Name: "Alice", Email: "alice@x.io", PasswordHash: "h", Enabled: true})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (name,email,password_hash,phone_number,provider,provider_id,enabled) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7) "+
			"RETURNING id, name, email, password_hash, phone_number, provider, provider_id, enabled, created_at, updated_at",
		query)
	require.Len(t, args, 7)
	assert.Equal(t, nullString(""), args[3])
}

func TestBuildUserExistsQuery(t *testing.T) {
	query, args, err := buildUserExistsQuery(sq.Eq{"email": "alice@x.io"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", query)
	assert.Equal(t, []any{"alice@x.io"}, args)
}

func TestBuildFindUserQuery_Provider(t *testing.T) {
	query, args, err := buildFindUserQuery(sq.Eq{"provider_id": "42", "provider": "github"})
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE provider = $1 AND provider_id = $2")
	assert.Equal(t, []any{"github", "42"}, args)
}

func TestBuildDeleteByIDQuery(t *testing.T) {
	query, args, err := buildDeleteByIDQuery("posts", 4)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM posts WHERE id = $1", query)
	assert.Equal(t, []any{int64(4)}, args)
}

func TestBuildInsertPostMediaQuery(t *testing.T) {
	query, args, err := buildInsertPostMediaQuery(3, []string{"a.png", "b.png"})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO post_media (post_id,position,key) VALUES ($1,$2,$3),($4,$5,$6)", query)
	assert.Equal(t, []any{int64(3), 0, "a.png", int64(3), 1, "b.png"}, args)
}

func TestBuildSelectPostMediaQuery(t *testing.T) {
	query, args, err := buildSelectPostMediaQuery([]int64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, "SELECT post_id, key FROM post_media WHERE post_id IN ($1,$2) ORDER BY post_id, position", query)
	assert.Equal(t, []any{int64(1), int64(2)}, args)
}

func TestSelectPosts_PublicOnly(t *testing.T) {
	query, args, err := selectPosts().Where(sq.Eq{"p.is_private": false}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM posts p JOIN users u ON u.id = p.user_id WHERE p.is_private = $1")
	assert.Contains(t, query, "ORDER BY p.created_at DESC, p.id DESC")
	assert.Equal(t, []any{false}, args)
}

func TestBuildUpdateMilestoneQuery(t *testing.T) {
	query, args, err := buildUpdateMilestoneQuery(models.Milestone{ID: 7, PlanID: 2, Completed: true, Notes: "done"})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE milestones SET completed = $1, notes = $2 WHERE id = $3 AND plan_id = $4 "+
			"RETURNING id, plan_id, title, description, completed, notes",
		query)
	assert.Equal(t, []any{true, "done", int64(7), int64(2)}, args)
}

func TestBuildInsertReminderQuery_NoPlan(t *testing.T) {
	_, args, err := buildInsertReminderQuery(models.Reminder{UserID: 1, Message: "m"})
	require.NoError(t, err)

	require.Len(t, args, 4)
	assert.Equal(t, nullInt64(nil), args[1])
}

func TestSelectReminders(t *testing.T) {
	query, _, err := selectReminders().Where(sq.Eq{"r.user_id": 1}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "COALESCE(lp.title, '')")
	assert.Contains(t, query, "LEFT JOIN learning_plans lp ON lp.id = r.plan_id")
}
