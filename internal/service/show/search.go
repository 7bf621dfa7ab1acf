package show

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/php-ini/thamaneya/internal/domain"
)

// ListDistinct returns the distinct non-empty values of field in ascending
// order. Only category and language can be listed.
func (s *Service) ListDistinct(ctx context.Context, field domain.DistinctField) ([]string, error) {
	if !field.IsValid() {
		return nil, domain.NewValidationError("field", "must be category or language")
	}

	values, err := s.shows.Distinct(ctx, field)
	if err != nil {
		return nil, fmt.Errorf("list distinct %s: %w", field, err)
	}
	if values == nil {
		values = []string{}
	}

	return values, nil
}

// ListCategories returns the distinct show categories.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.ListDistinct(ctx, domain.DistinctCategory)
}

// ListLanguages returns the distinct show languages.
func (s *Service) ListLanguages(ctx context.Context) ([]string, error) {
	return s.ListDistinct(ctx, domain.DistinctLanguage)
}

// FullTextSearch returns shows ranked by relevance to term, best first.
// A blank term matches nothing.
func (s *Service) FullTextSearch(ctx context.Context, term string) ([]domain.Show, error) {
	term = domain.CleanText(term)
	if term == "" {
		return []domain.Show{}, nil
	}
	if utf8.RuneCountInString(term) > MaxSearchLength {
		return nil, domain.NewValidationError("q", fmt.Sprintf("max %d characters", MaxSearchLength))
	}

	shows, err := s.shows.FullTextSearch(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("full-text search: %w", err)
	}
	if shows == nil {
		shows = []domain.Show{}
	}

	return shows, nil
}
