package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/taskwell/taskboard-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.RequestLogger(app.logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.taskHandler.Health)
		r.Post("/login", app.authHandler.Login)

		// Listing and creation are deliberately unauthenticated; only the
		// update operation sits behind the auth gate.
		r.Get("/tasks", app.taskHandler.ListTasks)
		r.Post("/tasks", app.taskHandler.CreateTask)

		r.Group(func(r chi.Router) {
			r.Use(app.authMiddleware.Authenticate)
			r.Patch("/tasks/{id}", app.taskHandler.UpdateTask)
		})
	})

	return r
}
