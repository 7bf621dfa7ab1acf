package rest

import (
	"log/slog"
	"net/http"
)

// CMSHandler serves the content management endpoints under /cms/shows.
type CMSHandler struct {
	showReader
}

// NewCMSHandler creates a CMSHandler.
func NewCMSHandler(svc showService, logger *slog.Logger) *CMSHandler {
	return &CMSHandler{showReader{svc: svc, log: logger.With("handler", "cms")}}
}

// Register mounts the CMS routes on mux.
func (h *CMSHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /cms/shows", h.Create)
	mux.HandleFunc("GET /cms/shows", h.list)
	mux.HandleFunc("GET /cms/shows/{id}", h.get)
	mux.HandleFunc("PATCH /cms/shows/{id}", h.Update)
	mux.HandleFunc("DELETE /cms/shows/{id}", h.Delete)
	mux.HandleFunc("GET /cms/shows/categories/list", h.categories)
	mux.HandleFunc("GET /cms/shows/languages/list", h.languages)
}

// Create handles POST /cms/shows.
func (h *CMSHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createShowRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	show, err := h.svc.CreateShow(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, show)
}

// Update handles PATCH /cms/shows/{id}.
func (h *CMSHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateShowRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	show, err := h.svc.UpdateShow(r.Context(), req.toInput(id))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, show)
}

// Delete handles DELETE /cms/shows/{id}.
func (h *CMSHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteShow(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
