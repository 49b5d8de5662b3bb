// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/internal/mock"
	"github.com/MKhiriev/inkspire/internal/store"
	"github.com/MKhiriev/inkspire/internal/validators"
	"github.com/MKhiriev/inkspire/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type planMocks struct {
	plans     *mock.MockLearningPlanRepository
	reminders *mock.MockReminderRepository
	files     *mock.MockFileStorage
}

func newTestPlanService(t *testing.T, now time.Time) (*learningPlanService, planMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := planMocks{
		plans:     mock.NewMockLearningPlanRepository(ctrl),
		reminders: mock.NewMockReminderRepository(ctrl),
		files:     mock.NewMockFileStorage(ctrl),
	}

	svc := NewLearningPlanService(m.plans, m.reminders, m.files, logger.Nop()).(*learningPlanService)
	svc.now = func() time.Time { return now }
	return svc, m
}

func alicePlan(public bool) models.LearningPlan {
	return models.LearningPlan{
		ID:     20,
		UserID: aliceID,
		Title:  "Go",
		Public: public,
		Milestones: []models.Milestone{
			{ID: 1, PlanID: 20, Title: "Tour", Notes: "halfway"},
			{ID: 2, PlanID: 20, Title: "Effective Go"},
		},
		Materials: []models.Material{
			{ID: 5, PlanID: 20, Key: "m1_notes.pdf", FileName: "notes.pdf", ContentType: "application/pdf"},
		},
	}
}

// ─────────────────────────────────────────────
// CreatePlan
// ─────────────────────────────────────────────

func TestLearningPlanService_CreatePlan(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	svc, m := newTestPlanService(t, now)
	ctx := context.Background()

	longDescription := strings.Repeat("a", 60)

	m.plans.EXPECT().CreatePlan(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.LearningPlan) (models.LearningPlan, error) {
			assert.Equal(t, aliceID, p.UserID)
			assert.True(t, p.Public)
			require.Len(t, p.Milestones, 2)
			assert.Equal(t, "Tour", p.Milestones[0].Title)
			assert.Equal(t, strings.Repeat("a", 50), p.Milestones[1].Title)
			assert.Equal(t, longDescription, p.Milestones[1].Description)
			assert.Equal(t, "", p.Milestones[1].Notes)
			p.ID = 20
			return p, nil
		},
	)
	m.reminders.EXPECT().CreateReminder(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Reminder) (models.Reminder, error) {
			assert.Equal(t, aliceID, r.UserID)
			require.NotNil(t, r.PlanID)
			assert.Equal(t, int64(20), *r.PlanID)
			assert.Equal(t, "New learning plan created: Go", r.Message)
			assert.Equal(t, now.Add(7*24*time.Hour), r.DueDate)
			return r, nil
		},
	)

	plan, err := svc.CreatePlan(ctx, aliceID, models.LearningPlanRequest{
		Title:    "Go",
		IsPublic: true,
		Milestones: []models.MilestoneRequest{
			{Title: "Tour"},
			{Description: longDescription},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), plan.ID)
}

func TestLearningPlanService_CreatePlan_ReminderFailureKeepsPlan(t *testing.T) {
	svc, m := newTestPlanService(t, time.Now())
	ctx := context.Background()

	m.plans.EXPECT().CreatePlan(ctx, gomock.Any()).Return(models.LearningPlan{ID: 21, Title: "Rust"}, nil)
	m.reminders.EXPECT().CreateReminder(ctx, gomock.Any()).Return(models.Reminder{}, store.ErrExecutingQuery)

	plan, err := svc.CreatePlan(ctx, aliceID, models.LearningPlanRequest{Title: "Rust"})
	require.NoError(t, err)
	assert.Equal(t, int64(21), plan.ID)
}

func TestLearningPlanService_CreatePlan_Invalid(t *testing.T) {
	svc, _ := newTestPlanService(t, time.Now())

	_, err := svc.CreatePlan(context.Background(), aliceID, models.LearningPlanRequest{})
	require.ErrorIs(t, err, validators.ErrEmptyTitle)
}

// ─────────────────────────────────────────────
// Visibility and ownership
// ─────────────────────────────────────────────

func TestLearningPlanService_GetPlan_Visibility(t *testing.T) {
	ctx := context.Background()

	t.Run("public plan readable by bob", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(true), nil)

		plan, err := svc.GetPlan(ctx, bobID, 20)
		require.NoError(t, err)
		assert.Equal(t, "Go", plan.Title)
	})

	t.Run("private plan hidden from bob", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(false), nil)

		_, err := svc.GetPlan(ctx, bobID, 20)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("private plan readable by alice", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(false), nil)

		_, err := svc.GetPlan(ctx, aliceID, 20)
		require.NoError(t, err)
	})
}

func TestLearningPlanService_MutationsRequireOwner(t *testing.T) {
	ctx := context.Background()
	req := models.LearningPlanRequest{Title: "Go"}

	tests := []struct {
		name string
		call func(svc *learningPlanService) error
	}{
		{name: "update", call: func(svc *learningPlanService) error {
			_, err := svc.UpdatePlan(ctx, bobID, 20, req)
			return err
		}},
		{name: "delete", call: func(svc *learningPlanService) error {
			return svc.DeletePlan(ctx, bobID, 20)
		}},
		{name: "milestone", call: func(svc *learningPlanService) error {
			_, err := svc.UpdateMilestone(ctx, bobID, 20, 1, models.MilestoneProgressRequest{Completed: true})
			return err
		}},
		{name: "add material", call: func(svc *learningPlanService) error {
			_, err := svc.AddMaterial(ctx, bobID, 20, pngFile("a.png"))
			return err
		}},
		{name: "delete material", call: func(svc *learningPlanService) error {
			return svc.DeleteMaterial(ctx, bobID, 20, 0)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestPlanService(t, time.Now())
			// public plans are still owner-only for mutations
			m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(true), nil)

			require.ErrorIs(t, tt.call(svc), ErrAccessDenied)
		})
	}
}

func TestLearningPlanService_UpdatePlan(t *testing.T) {
	svc, m := newTestPlanService(t, time.Now())
	ctx := context.Background()

	m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(false), nil)
	m.plans.EXPECT().UpdatePlan(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.LearningPlan) (models.LearningPlan, error) {
			assert.Equal(t, int64(20), p.ID)
			assert.Equal(t, aliceID, p.UserID)
			assert.Equal(t, "Go 2", p.Title)
			require.Len(t, p.Milestones, 1)
			assert.Equal(t, "Generics", p.Milestones[0].Title)
			assert.Equal(t, int64(20), p.Milestones[0].PlanID)
			return p, nil
		},
	)

	_, err := svc.UpdatePlan(ctx, aliceID, 20, models.LearningPlanRequest{
		Title:      "Go 2",
		Milestones: []models.MilestoneRequest{{Title: "Generics"}},
	})
	require.NoError(t, err)
}

func TestLearningPlanService_DeletePlan_RemovesMaterials(t *testing.T) {
	svc, m := newTestPlanService(t, time.Now())
	ctx := context.Background()

	gomock.InOrder(
		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(false), nil),
		m.plans.EXPECT().DeletePlan(ctx, int64(20)).Return(nil),
		m.files.EXPECT().Delete(ctx, "m1_notes.pdf").Return(nil),
	)

	require.NoError(t, svc.DeletePlan(ctx, aliceID, 20))
}

// ─────────────────────────────────────────────
// Milestones and materials
// ─────────────────────────────────────────────

func TestLearningPlanService_UpdateMilestone(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps notes when omitted", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(false), nil)
		m.plans.EXPECT().UpdateMilestone(ctx, models.Milestone{ID: 1, PlanID: 20, Title: "Tour", Completed: true, Notes: "halfway"}).
			Return(models.Milestone{ID: 1, Completed: true, Notes: "halfway"}, nil)

		got, err := svc.UpdateMilestone(ctx, aliceID, 20, 1, models.MilestoneProgressRequest{Completed: true})
		require.NoError(t, err)
		assert.True(t, got.Completed)
	})

	t.Run("overwrites notes", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		notes := "done"
		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(false), nil)
		m.plans.EXPECT().UpdateMilestone(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, ms models.Milestone) (models.Milestone, error) {
				assert.Equal(t, "done", ms.Notes)
				return ms, nil
			},
		)

		_, err := svc.UpdateMilestone(ctx, aliceID, 20, 1, models.MilestoneProgressRequest{Completed: true, Notes: &notes})
		require.NoError(t, err)
	})

	t.Run("milestone of another plan", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(false), nil)

		_, err := svc.UpdateMilestone(ctx, aliceID, 20, 99, models.MilestoneProgressRequest{})
		require.ErrorIs(t, err, store.ErrMilestoneNotFound)
	})
}

func TestLearningPlanService_Materials(t *testing.T) {
	ctx := context.Background()

	t.Run("add stores blob and metadata", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		var savedKey string

		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(false), nil)
		m.files.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), int64(10), "image/png").DoAndReturn(
			func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
				savedKey = key
				return nil
			},
		)
		m.plans.EXPECT().AddMaterial(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, mat models.Material) (models.Material, error) {
				assert.Equal(t, savedKey, mat.Key)
				assert.Equal(t, int64(20), mat.PlanID)
				assert.Equal(t, "diagram.png", mat.FileName)
				mat.ID = 6
				return mat, nil
			},
		)

		mat, err := svc.AddMaterial(ctx, aliceID, 20, pngFile("diagram.png"))
		require.NoError(t, err)
		assert.Equal(t, int64(6), mat.ID)
	})

	t.Run("add removes blob when metadata fails", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		var savedKey string

		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(false), nil)
		m.files.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
				savedKey = key
				return nil
			},
		)
		m.plans.EXPECT().AddMaterial(ctx, gomock.Any()).Return(models.Material{}, store.ErrExecutingQuery)
		m.files.EXPECT().Delete(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, key string) error {
				assert.Equal(t, savedKey, key)
				return nil
			},
		)

		_, err := svc.AddMaterial(ctx, aliceID, 20, pngFile("diagram.png"))
		require.ErrorIs(t, err, store.ErrExecutingQuery)
	})

	t.Run("open by index on public plan", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(true), nil)
		m.files.EXPECT().Open(ctx, "m1_notes.pdf").Return(models.Blob{
			Content:     io.NopCloser(strings.NewReader("pdf")),
			ContentType: "application/pdf",
			Size:        3,
		}, nil)

		mat, blob, err := svc.OpenMaterial(ctx, bobID, 20, 0)
		require.NoError(t, err)
		defer blob.Content.Close()
		assert.Equal(t, "notes.pdf", mat.FileName)
	})

	t.Run("index out of range", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(true), nil)

		_, _, err := svc.OpenMaterial(ctx, aliceID, 20, 3)
		require.ErrorIs(t, err, store.ErrMaterialNotFound)
	})

	t.Run("delete by index", func(t *testing.T) {
		svc, m := newTestPlanService(t, time.Now())
		gomock.InOrder(
			m.plans.EXPECT().FindPlanByID(ctx, int64(20)).Return(alicePlan(false), nil),
			m.plans.EXPECT().DeleteMaterial(ctx, int64(5)).Return(nil),
			m.files.EXPECT().Delete(ctx, "m1_notes.pdf").Return(nil),
		)

		require.NoError(t, svc.DeleteMaterial(ctx, aliceID, 20, 0))
	})
}

// ─────────────────────────────────────────────
// Reminders
// ─────────────────────────────────────────────

func TestReminderService(t *testing.T) {
	ctx := context.Background()
	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	planID := int64(20)

	t.Run("plan of another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		plans := mock.NewMockLearningPlanRepository(ctrl)
		svc := NewReminderService(mock.NewMockReminderRepository(ctrl), plans, logger.Nop())

		plans.EXPECT().FindPlanByID(ctx, planID).Return(alicePlan(true), nil)

		_, err := svc.CreateReminder(ctx, bobID, models.ReminderRequest{Message: "study", DueDate: due, LearningPlanID: &planID})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("own plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		plans := mock.NewMockLearningPlanRepository(ctrl)
		reminders := mock.NewMockReminderRepository(ctrl)
		svc := NewReminderService(reminders, plans, logger.Nop())

		plans.EXPECT().FindPlanByID(ctx, planID).Return(alicePlan(false), nil)
		reminders.EXPECT().CreateReminder(ctx, models.Reminder{UserID: aliceID, PlanID: &planID, Message: "study", DueDate: due}).
			Return(models.Reminder{ID: 3, UserID: aliceID}, nil)

		r, err := svc.CreateReminder(ctx, aliceID, models.ReminderRequest{Message: "study", DueDate: due, LearningPlanID: &planID})
		require.NoError(t, err)
		assert.Equal(t, int64(3), r.ID)
	})

	t.Run("without plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reminders := mock.NewMockReminderRepository(ctrl)
		svc := NewReminderService(reminders, mock.NewMockLearningPlanRepository(ctrl), logger.Nop())

		reminders.EXPECT().CreateReminder(ctx, gomock.Any()).Return(models.Reminder{ID: 4}, nil)

		_, err := svc.CreateReminder(ctx, bobID, models.ReminderRequest{Message: "stretch", DueDate: due})
		require.NoError(t, err)
	})

	t.Run("delete requires owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reminders := mock.NewMockReminderRepository(ctrl)
		svc := NewReminderService(reminders, mock.NewMockLearningPlanRepository(ctrl), logger.Nop())

		reminders.EXPECT().FindReminderByID(ctx, int64(3)).Return(models.Reminder{ID: 3, UserID: aliceID}, nil).Times(2)
		reminders.EXPECT().DeleteReminder(ctx, int64(3)).Return(nil)

		require.ErrorIs(t, svc.DeleteReminder(ctx, bobID, 3), ErrAccessDenied)
		require.NoError(t, svc.DeleteReminder(ctx, aliceID, 3))
	})
}

// ─────────────────────────────────────────────
// Progress updates
// ─────────────────────────────────────────────

func TestProgressUpdateService(t *testing.T) {
	ctx := context.Background()
	existing := models.ProgressUpdate{ID: 30, UserID: aliceID, Template: models.ProgressTemplateStudy, Description: "ch. 1"}
	req := models.ProgressUpdateRequest{ProgressTemplate: models.ProgressTemplateEssay, Description: "draft", Plan: "Go"}

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		updates := mock.NewMockProgressUpdateRepository(ctrl)
		svc := NewProgressUpdateService(updates, logger.Nop())

		updates.EXPECT().CreateProgressUpdate(ctx, models.ProgressUpdate{
			UserID: aliceID, Template: models.ProgressTemplateEssay, Description: "draft", Plan: "Go",
		}).Return(models.ProgressUpdate{ID: 31}, nil)

		got, err := svc.CreateProgressUpdate(ctx, aliceID, req)
		require.NoError(t, err)
		assert.Equal(t, int64(31), got.ID)
	})

	t.Run("unknown template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewProgressUpdateService(mock.NewMockProgressUpdateRepository(ctrl), logger.Nop())

		_, err := svc.CreateProgressUpdate(ctx, aliceID, models.ProgressUpdateRequest{ProgressTemplate: "DANCE"})
		require.ErrorIs(t, err, validators.ErrInvalidTemplate)
	})

	t.Run("update and delete require owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		updates := mock.NewMockProgressUpdateRepository(ctrl)
		svc := NewProgressUpdateService(updates, logger.Nop())

		updates.EXPECT().FindProgressUpdateByID(ctx, int64(30)).Return(existing, nil).Times(2)

		_, err := svc.UpdateProgressUpdate(ctx, bobID, 30, req)
		require.ErrorIs(t, err, ErrAccessDenied)
		require.ErrorIs(t, svc.DeleteProgressUpdate(ctx, bobID, 30), ErrAccessDenied)
	})

	t.Run("owner updates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		updates := mock.NewMockProgressUpdateRepository(ctrl)
		svc := NewProgressUpdateService(updates, logger.Nop())

		updates.EXPECT().FindProgressUpdateByID(ctx, int64(30)).Return(existing, nil)
		updates.EXPECT().UpdateProgressUpdate(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.ProgressUpdate) (models.ProgressUpdate, error) {
				assert.Equal(t, models.ProgressTemplateEssay, u.Template)
				assert.Equal(t, "draft", u.Description)
				return u, nil
			},
		)

		_, err := svc.UpdateProgressUpdate(ctx, aliceID, 30, req)
		require.NoError(t, err)
	})
}

// ─────────────────────────────────────────────
// Media
// ─────────────────────────────────────────────

func TestMediaService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileStorage(ctrl)
	svc := NewMediaService(files, logger.Nop())
	ctx := context.Background()

	var savedKey string
	files.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), int64(10), "image/png").DoAndReturn(
		func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
			savedKey = key
			return nil
		},
	)

	url, err := svc.Upload(ctx, pngFile("../../etc/passwd.png"))
	require.NoError(t, err)
	assert.Equal(t, "/media/"+savedKey, url)
	assert.True(t, strings.HasSuffix(savedKey, "_passwd.png"))

	_, err = svc.Upload(ctx, models.MediaFile{FileName: "empty.txt"})
	require.ErrorIs(t, err, validators.ErrEmptyFile)
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "photo.png", want: "photo.png"},
		{in: "my photo (1).jpg", want: "my_photo__1_.jpg"},
		{in: "dir/sub/file.pdf", want: "file.pdf"},
		{in: `C:\Users\me\cv.pdf`, want: "cv.pdf"},
		{in: "", want: "file"},
		{in: "фото.png", want: "____.png"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFileName(tt.in))
		})
	}
}

func TestContentTypeOf(t *testing.T) {
	assert.Equal(t, "image/gif", contentTypeOf(models.MediaFile{FileName: "x.png", ContentType: "image/gif"}))
	assert.Equal(t, "image/png", contentTypeOf(models.MediaFile{FileName: "x.PNG"}))
	assert.Equal(t, "application/octet-stream", contentTypeOf(models.MediaFile{FileName: "x.unknownext"}))
}
