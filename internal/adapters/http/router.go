// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard/internal/adapters/http/handlers"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Board         *handlers.BoardHandler
	Task          *handlers.TaskHandler
	Session       *handlers.SessionHandler
	Notifications *handlers.NotificationHandler
	Health        *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/session", h.Session.GetSession)
		r.Post("/session", h.Session.SignIn)
		r.Delete("/session", h.Session.SignOut)

		r.Get("/board", h.Board.GetBoard)
		r.Post("/board/refresh", h.Board.Refresh)
		r.Post("/board/moves", h.Board.Move)

		r.Post("/tasks", h.Task.CreateTask)
		r.Patch("/tasks/{id}", h.Task.UpdateTask)
		r.Delete("/tasks/{id}", h.Task.DeleteTask)

		r.Get("/activities", h.Board.Activities)
		r.Get("/notifications", h.Notifications.ListNotifications)
	})

	return r
}
