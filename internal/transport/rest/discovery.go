package rest

import (
	"log/slog"
	"net/http"
)

// DiscoveryHandler serves the public, read-only endpoints under /discovery.
type DiscoveryHandler struct {
	showReader
}

// NewDiscoveryHandler creates a DiscoveryHandler.
func NewDiscoveryHandler(svc showService, logger *slog.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{showReader{svc: svc, log: logger.With("handler", "discovery")}}
}

// Register mounts the Discovery routes on mux.
func (h *DiscoveryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /discovery/shows", h.list)
	mux.HandleFunc("GET /discovery/shows/{id}", h.get)
	mux.HandleFunc("GET /discovery/categories", h.categories)
	mux.HandleFunc("GET /discovery/languages", h.languages)
	mux.HandleFunc("GET /discovery/search/fulltext", h.FullTextSearch)
}

// FullTextSearch handles GET /discovery/search/fulltext?q=.
// A missing or blank q yields an empty list.
func (h *DiscoveryHandler) FullTextSearch(w http.ResponseWriter, r *http.Request) {
	shows, err := h.svc.FullTextSearch(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, shows)
}
