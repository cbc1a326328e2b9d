// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/AndrewSerra/serverless-todo-api/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The auth middleware is
// applied only to the /todos subtree; health endpoints stay unauthenticated
// so orchestrators can probe them without credentials.
//
// All origins are allowed with credentials, matching the browser clients this
// API serves.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	auth func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Todo CRUD and attachment routes, scoped to the authenticated caller.
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/todos", todoHandler.ListTodos)
		r.Post("/todos", todoHandler.CreateTodo)
		r.Get("/todos/{todoId}", todoHandler.GetTodo)
		r.Patch("/todos/{todoId}", todoHandler.UpdateTodo)
		r.Delete("/todos/{todoId}", todoHandler.DeleteTodo)
		r.Post("/todos/{todoId}/attachment", todoHandler.GenerateUploadURL)
	})

	return r
}
