// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/undoable/internal/adapters/http/dto"
	"github.com/jsamuelsen11/undoable/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/undoable/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown routes answer
// with an RFC 9457 404.
func NewRouter(
	registerHandler *handlers.RegisterHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrNotFound)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/entries", registerHandler.ListEntries)
		r.Get("/entries/{key}", registerHandler.GetEntry)
		r.Put("/entries/{key}", registerHandler.PutEntry)
		r.Delete("/entries/{key}", registerHandler.DeleteEntry)

		r.Get("/history", registerHandler.GetHistory)
		r.Delete("/history", registerHandler.ClearHistory)
		r.Post("/history/undo", registerHandler.Undo)
		r.Post("/history/redo", registerHandler.Redo)
	})

	return r
}
