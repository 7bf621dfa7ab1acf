package show

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/php-ini/thamaneya/internal/domain"
)

// DeleteShow permanently removes a show.
func (s *Service) DeleteShow(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.shows.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete show: %w", err)
	}

	s.log.InfoContext(ctx, "show deleted",
		slog.String("show_id", id.String()),
	)

	return nil
}
