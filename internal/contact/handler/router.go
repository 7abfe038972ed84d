package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agenda/internal/platform/middleware"
)

// NewRouter wires the contact routes plus the metrics endpoint. Any
// unmatched method/path combination gets the 404 body the API promises,
// including method mismatches on known paths.
func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))

	h.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(endpointNotFound)
	r.MethodNotAllowed(endpointNotFound)

	return r
}

func endpointNotFound(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusNotFound, "Endpoint not found")
}
