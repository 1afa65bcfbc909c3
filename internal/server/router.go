package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bhaskara/internal/equation"
	"bhaskara/internal/handlers"
	"bhaskara/internal/observability"
)

// NewRouter wires the middleware chain, the operational endpoints and the
// equation API. Form sessions live in forms.
func NewRouter(forms *equation.Store) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	equation.RegisterRoutes(r, forms)

	return r
}
