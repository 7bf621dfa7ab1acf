package show

import (
	"context"
	"fmt"

	"github.com/php-ini/thamaneya/internal/domain"
)

// ListShows returns one page of shows matching the input's filters, with the
// total number of matches. The count and the page are read in one read-only
// transaction so they describe the same snapshot.
func (s *Service) ListShows(ctx context.Context, input ListShowsInput) (*domain.ShowPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := input.filter()

	var (
		shows []domain.Show
		total int
	)
	err := s.tx.RunReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		total, err = s.shows.Count(txCtx, filter)
		if err != nil {
			return fmt.Errorf("count shows: %w", err)
		}

		if total <= filter.Offset() {
			shows = []domain.Show{}
			return nil
		}

		shows, err = s.shows.Find(txCtx, filter)
		if err != nil {
			return fmt.Errorf("find shows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return domain.NewShowPage(shows, total, filter.Page, filter.Limit), nil
}
