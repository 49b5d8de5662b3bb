// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: N/A\n", info.String())
}

func TestOwnershipAccessors(t *testing.T) {
	var _ Shareable = Post{}
	var _ Shareable = LearningPlan{}
	var _ Owned = Comment{}
	var _ Owned = Reminder{}
	var _ Owned = ProgressUpdate{}

	assert.True(t, Post{IsPrivate: false}.IsPublic())
	assert.False(t, Post{IsPrivate: true}.IsPublic())
	assert.Equal(t, int64(7), Comment{UserID: 7}.OwnerID())
	assert.True(t, LearningPlan{Public: true}.IsPublic())
}

func TestLearningPlan_MaterialAt(t *testing.T) {
	plan := LearningPlan{Materials: []Material{{Key: "a"}, {Key: "b"}}}

	m, ok := plan.MaterialAt(1)
	assert.True(t, ok)
	assert.Equal(t, "b", m.Key)

	_, ok = plan.MaterialAt(2)
	assert.False(t, ok)
	_, ok = plan.MaterialAt(-1)
	assert.False(t, ok)
}

func TestProgressTemplate_Valid(t *testing.T) {
	assert.True(t, ProgressTemplateStudy.Valid())
	assert.False(t, ProgressTemplate("DANCE").Valid())
	assert.False(t, ProgressTemplate("").Valid())
}

func TestPrincipal(t *testing.T) {
	p := NewPrincipal(User{ID: 3, Email: "alice@x.com", Name: "Alice"})

	assert.Equal(t, int64(3), p.UserID)
	assert.True(t, p.HasAuthority(AuthorityUser))
	assert.False(t, p.HasAuthority("ROLE_ADMIN"))
}

func TestNewAuthResponse(t *testing.T) {
	resp := NewAuthResponse(Token{SignedString: "a.b.c"}, User{ID: 1, Name: "Alice", Email: "alice@x.com", PhoneNumber: "1234567890"})

	assert.Equal(t, AuthResponse{
		Token:       "a.b.c",
		Type:        "Bearer",
		ID:          1,
		Name:        "Alice",
		Email:       "alice@x.com",
		PhoneNumber: "1234567890",
	}, resp)
}
