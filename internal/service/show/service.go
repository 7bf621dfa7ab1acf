// Package show implements the show query engine: filtered, sorted, paginated
// listing, CRUD with partial updates, distinct-value listings and
// relevance-ranked full-text search over the show catalog.
package show

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/php-ini/thamaneya/internal/domain"
)

type showRepo interface {
	Find(ctx context.Context, filter domain.ShowFilter) ([]domain.Show, error)
	Count(ctx context.Context, filter domain.ShowFilter) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Show, error)
	Create(ctx context.Context, s *domain.Show) (*domain.Show, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ShowUpdateParams) (*domain.Show, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Distinct(ctx context.Context, field domain.DistinctField) ([]string, error)
	FullTextSearch(ctx context.Context, term string) ([]domain.Show, error)
}

type txManager interface {
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides show catalog operations. It holds no mutable state and is
// safe for concurrent use.
type Service struct {
	shows showRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Show service.
func NewService(log *slog.Logger, shows showRepo, tx txManager) *Service {
	return &Service{
		shows: shows,
		tx:    tx,
		log:   log.With("service", "show"),
	}
}

// cleanOrNil applies domain.CleanText. Returns nil if the input is nil.
// A blank value becomes a pointer to "", which clears the column on update.
func cleanOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := domain.CleanText(*s)
	return &cleaned
}

// nonEmptyOrNil drops blank values, used on create where "" means absent.
func nonEmptyOrNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
