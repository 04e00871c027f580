package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Timeout(h.requestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
	})

	// routes for any authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/attendance", h.markAttendance)
		r.Get("/api/attendance/me", h.myAttendance)

		// admin-only routes
		r.Group(func(ar chi.Router) {
			ar.Use(h.requireAdmin)

			ar.Post("/api/users", h.createUser)
			ar.Put("/api/users/{username}/password", h.resetPassword)
			ar.Get("/api/admin/dashboard", h.dashboard)
		})
	})

	return router
}
