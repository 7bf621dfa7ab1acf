package show

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/php-ini/thamaneya/internal/domain"
)

// UpdateShow merges the provided fields into an existing show and refreshes
// its updated_at. Concurrent updates of the same show are last-write-wins.
func (s *Service) UpdateShow(ctx context.Context, input UpdateShowInput) (*domain.Show, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ShowUpdateParams{
		Category:    cleanOrNil(input.Category),
		Language:    cleanOrNil(input.Language),
		Duration:    input.Duration,
		PublishDate: input.PublishDate,
	}
	if input.Title != nil {
		trimmed := domain.CleanText(*input.Title)
		params.Title = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description) // "" clears -> NULL in DB
		params.Description = &trimmed
	}

	updated, err := s.shows.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update show: %w", err)
	}

	s.log.InfoContext(ctx, "show updated",
		slog.String("show_id", input.ID.String()),
	)

	return updated, nil
}
