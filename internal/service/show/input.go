package show

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/php-ini/thamaneya/internal/domain"
)

// MaxSearchLength bounds search terms for both substring and full-text search.
const MaxSearchLength = 255

// ListShowsInput holds the client-supplied listing parameters.
// Zero values select the defaults: page 1, limit 10, createdAt DESC.
type ListShowsInput struct {
	Search    string
	Category  string
	Language  string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Validate checks all fields and collects all errors.
// An unknown SortBy is not an error: it falls back to the default sort field.
func (i ListShowsInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if i.Limit < 0 || i.Limit > domain.MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", domain.MaxLimit)})
	}
	if _, ok := domain.ParseSortOrder(i.SortOrder); !ok {
		errs = append(errs, domain.FieldError{Field: "sortOrder", Message: "must be ASC or DESC"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Search)) > MaxSearchLength {
		errs = append(errs, domain.FieldError{Field: "search", Message: fmt.Sprintf("max %d characters", MaxSearchLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// filter resolves defaults. Call only after Validate succeeded.
func (i ListShowsInput) filter() domain.ShowFilter {
	order, _ := domain.ParseSortOrder(i.SortOrder)

	f := domain.ShowFilter{
		Search:    domain.CleanText(i.Search),
		Category:  domain.CleanText(i.Category),
		Language:  domain.CleanText(i.Language),
		SortBy:    domain.ParseShowSortField(i.SortBy),
		SortOrder: order,
		Page:      i.Page,
		Limit:     i.Limit,
	}
	if f.Page == 0 {
		f.Page = domain.DefaultPage
	}
	if f.Limit == 0 {
		f.Limit = domain.DefaultLimit
	}
	return f
}

// CreateShowInput holds the parameters for creating a show.
type CreateShowInput struct {
	Title       string
	Description *string
	Category    *string
	Language    *string
	Duration    *int
	PublishDate *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateShowInput) Validate() error {
	var errs []domain.FieldError

	title := domain.CleanText(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	errs = appendShowFieldErrors(errs, &title, i.Category, i.Language, i.Duration)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateShowInput holds the parameters for a partial show update.
// A nil field is left unchanged; ptr("") clears description, category or language.
type UpdateShowInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Category    *string
	Language    *string
	Duration    *int
	PublishDate *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateShowInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Category == nil &&
		i.Language == nil && i.Duration == nil && i.PublishDate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	var title *string
	if i.Title != nil {
		trimmed := domain.CleanText(*i.Title)
		if trimmed == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		}
		title = &trimmed
	}
	errs = appendShowFieldErrors(errs, title, i.Category, i.Language, i.Duration)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// appendShowFieldErrors checks the limits shared by create and update.
// Lengths count characters, not bytes, to match varchar(n).
func appendShowFieldErrors(errs []domain.FieldError, title, category, language *string, duration *int) []domain.FieldError {
	if title != nil && utf8.RuneCountInString(*title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", domain.MaxTitleLength)})
	}
	if category != nil && utf8.RuneCountInString(domain.CleanText(*category)) > domain.MaxCategoryLength {
		errs = append(errs, domain.FieldError{Field: "category", Message: fmt.Sprintf("max %d characters", domain.MaxCategoryLength)})
	}
	if language != nil && utf8.RuneCountInString(domain.CleanText(*language)) > domain.MaxLanguageLength {
		errs = append(errs, domain.FieldError{Field: "language", Message: fmt.Sprintf("max %d characters", domain.MaxLanguageLength)})
	}
	if duration != nil && (*duration <= 0 || *duration > math.MaxInt32) {
		errs = append(errs, domain.FieldError{Field: "duration", Message: "must be a positive number of seconds"})
	}
	return errs
}
