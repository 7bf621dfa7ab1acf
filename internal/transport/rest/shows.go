package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/php-ini/thamaneya/internal/domain"
	showsvc "github.com/php-ini/thamaneya/internal/service/show"
)

// showService is the subset of the show engine used by the HTTP handlers.
type showService interface {
	ListShows(ctx context.Context, input showsvc.ListShowsInput) (*domain.ShowPage, error)
	GetShow(ctx context.Context, id uuid.UUID) (*domain.Show, error)
	CreateShow(ctx context.Context, input showsvc.CreateShowInput) (*domain.Show, error)
	UpdateShow(ctx context.Context, input showsvc.UpdateShowInput) (*domain.Show, error)
	DeleteShow(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]string, error)
	ListLanguages(ctx context.Context) ([]string, error)
	FullTextSearch(ctx context.Context, term string) ([]domain.Show, error)
}

// showReader serves the read endpoints shared by the CMS and Discovery
// surfaces.
type showReader struct {
	svc showService
	log *slog.Logger
}

func (h showReader) list(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListShows(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h showReader) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	show, err := h.svc.GetShow(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, show)
}

func (h showReader) categories(w http.ResponseWriter, r *http.Request) {
	h.writeValues(w, r, h.svc.ListCategories)
}

func (h showReader) languages(w http.ResponseWriter, r *http.Request) {
	h.writeValues(w, r, h.svc.ListLanguages)
}

func (h showReader) writeValues(w http.ResponseWriter, r *http.Request, list func(context.Context) ([]string, error)) {
	values, err := list(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}
