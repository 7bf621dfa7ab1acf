package show

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/php-ini/thamaneya/internal/domain"
)

// GetShow returns a single show by id.
func (s *Service) GetShow(ctx context.Context, id uuid.UUID) (*domain.Show, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	show, err := s.shows.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get show: %w", err)
	}

	return show, nil
}
