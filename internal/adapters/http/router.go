// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/handlers"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Property     *handlers.PropertyHandler
	Client       *handlers.ClientHandler
	Task         *handlers.TaskHandler
	Collaborator *handlers.CollaboratorHandler
	Dashboard    *handlers.DashboardHandler
	Health       *handlers.HealthHandler
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
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.Property.ListProperties)
			r.Post("/", h.Property.CreateProperty)
			r.Get("/stats", h.Property.Stats)
			r.Get("/{id}", h.Property.GetProperty)
			r.Patch("/{id}", h.Property.UpdateProperty)
			r.Delete("/{id}", h.Property.DeleteProperty)
			r.Post("/{id}/sold", h.Property.MarkAsSold)
			r.Post("/{id}/pending", h.Property.MarkAsPending)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.Client.ListClients)
			r.Post("/", h.Client.CreateClient)
			r.Get("/buyers", h.Client.Buyers)
			r.Get("/sellers", h.Client.Sellers)
			r.Get("/{id}", h.Client.GetClient)
			r.Patch("/{id}", h.Client.UpdateClient)
			r.Delete("/{id}", h.Client.DeleteClient)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.Task.ListTasks)
			r.Post("/", h.Task.CreateTask)
			r.Get("/overdue", h.Task.Overdue)
			r.Get("/upcoming", h.Task.Upcoming)
			r.Get("/{id}", h.Task.GetTask)
			r.Patch("/{id}", h.Task.UpdateTask)
			r.Delete("/{id}", h.Task.DeleteTask)
			r.Post("/{id}/complete", h.Task.MarkComplete)
			r.Post("/{id}/start", h.Task.MarkInProgress)
		})

		r.Route("/collaborators", func(r chi.Router) {
			r.Get("/", h.Collaborator.ListCollaborators)
			r.Post("/", h.Collaborator.CreateCollaborator)
			r.Get("/{id}", h.Collaborator.GetCollaborator)
			r.Patch("/{id}", h.Collaborator.UpdateCollaborator)
			r.Delete("/{id}", h.Collaborator.DeleteCollaborator)
			r.Get("/{id}/workload", h.Collaborator.Workload)
		})

		r.Get("/dashboard", h.Dashboard.Summary)
		r.Get("/choices", h.Dashboard.Choices)
	})

	return r
}
