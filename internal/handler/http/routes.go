// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-user-keeper/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withMetrics, middleware.Recoverer)

	// promhttp negotiates its own compression
	router.Get("/metrics", promhttp.Handler().ServeHTTP)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		r.Get("/api/version/", h.getServerVersion)
		r.Post("/api/auth/login", h.login)

		// routes for any authenticated user
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/api/auth/change-password", h.changePassword)
			r.Get("/api/users", h.listUsers)
			r.Get("/api/users/{id}", h.getUser)
			r.Put("/api/users/profile", h.updateProfile)

			// account management
			r.Group(func(r chi.Router) {
				r.Use(requireRole(models.RoleAdmin))

				r.Post("/api/users", h.createUser)
				r.Put("/api/users/{id}", h.updateUser)
				r.Delete("/api/users/{id}", h.deleteUser)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
