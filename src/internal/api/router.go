package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the HTTP router with all endpoints.
func NewRouter(builder *Builder) http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery)
	r.Use(Logger)
	r.Use(PrivateSubnetOnly)

	h := NewHandler(builder)

	r.Get("/hosts.txt", h.GetHosts)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", h.GetStatus)
		r.Post("/build", h.RunBuild)
		r.Get("/config", h.GetConfig)
		r.Get("/health", h.CheckHealth)
	})

	return r
}
