// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(h.authenticate)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/oauth2/{provider}", h.oauth2Login)
		r.Post("/reset-password", h.resetPassword)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/verify", h.verify)
			r.Get("/me", h.me)
			r.Put("/profile", h.updateProfile)
			r.Delete("/account", h.deleteAccount)
		})
	})

	router.Route("/api/posts", func(r chi.Router) {
		r.Get("/public", h.listPublicPosts)
		r.Get("/{postId}", h.getPost)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/create", h.createPost)
			r.Get("/my-posts", h.listMyPosts)
			r.Put("/update/{postId}", h.updatePost)
			r.Delete("/delete/{postId}", h.deletePost)
		})
	})

	router.Route("/posts/{postId}", func(r chi.Router) {
		r.Get("/comments", h.listComments)
		r.Get("/likes/count", h.countLikes)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/comments", h.addComment)
			r.Put("/comments/{commentId}", h.updateComment)
			r.Delete("/comments/{commentId}", h.deleteComment)
			r.Post("/likes/toggle", h.toggleLike)
		})
	})

	router.Route("/api/learning-plans", func(r chi.Router) {
		r.Get("/recommended", h.listRecommendedPlans)
		r.Get("/{planId}", h.getPlan)
		r.Get("/{planId}/materials/{index}", h.downloadMaterial)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.createPlan)
			r.Get("/", h.listMyPlans)
			r.Put("/{planId}", h.updatePlan)
			r.Delete("/{planId}", h.deletePlan)

			r.Put("/{planId}/milestones/{milestoneId}", h.updateMilestone)
			r.Put("/{planId}/milestones/{milestoneId}/status", h.updateMilestoneStatus)

			r.Post("/{planId}/materials", h.addMaterial)
			r.Delete("/{planId}/materials/{index}", h.deleteMaterial)

			r.Post("/reminders", h.createReminder)
			r.Get("/reminders", h.listReminders)
			r.Delete("/reminders/{reminderId}", h.deleteReminder)
		})
	})

	router.Route("/api/progress-updates", func(r chi.Router) {
		r.Get("/", h.listProgressUpdates)
		r.Get("/{updateId}", h.getProgressUpdate)
		r.Get("/user/{userId}", h.listUserProgressUpdates)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", h.createProgressUpdate)
			r.Put("/{updateId}", h.updateProgressUpdate)
			r.Delete("/{updateId}", h.deleteProgressUpdate)
		})
	})

	router.With(requireAuth).Post("/api/upload", h.upload)
	router.Get("/media/{key}", h.serveMedia)
	router.Get("/api/version", h.getServerVersion)

	return router
}
