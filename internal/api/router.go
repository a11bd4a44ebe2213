package api

import (
	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted behind the
// auth middleware. mode selects the auth scheme; secret is the static
// token or the HS256 signing secret depending on mode.
func NewRouter(h *Handler, mode, secret string) chi.Router {
	r := chi.NewRouter()
	r.Use(AuthMiddleware(mode, secret))

	// Activity log.
	r.Post("/log", h.AppendLog)
	r.Get("/log", h.ListLogs)
	r.Get("/log/summary", h.LogSummary)

	// Journal provisioning.
	r.Post("/journal/{kind}", h.ProvisionJournal)

	// Reading-highlights upload (the browser extension's PUT target).
	r.Put("/highlights", h.PutHighlights)

	// Full-text search.
	r.Get("/search", h.Search)

	return r
}
