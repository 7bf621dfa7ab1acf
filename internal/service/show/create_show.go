package show

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/php-ini/thamaneya/internal/domain"
)

// CreateShow validates and stores a new show. Id and timestamps are assigned
// by storage. Blank optional text fields are stored as absent.
func (s *Service) CreateShow(ctx context.Context, input CreateShowInput) (*domain.Show, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var description *string
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		description = nonEmptyOrNil(&trimmed)
	}

	created, err := s.shows.Create(ctx, &domain.Show{
		Title:       domain.CleanText(input.Title),
		Description: description,
		Category:    nonEmptyOrNil(cleanOrNil(input.Category)),
		Language:    nonEmptyOrNil(cleanOrNil(input.Language)),
		Duration:    input.Duration,
		PublishDate: input.PublishDate,
	})
	if err != nil {
		return nil, fmt.Errorf("create show: %w", err)
	}

	s.log.InfoContext(ctx, "show created",
		slog.String("show_id", created.ID.String()),
		slog.String("title", created.Title),
	)

	return created, nil
}
