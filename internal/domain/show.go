package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits of the shows table.
const (
	MaxTitleLength    = 255
	MaxCategoryLength = 100
	MaxLanguageLength = 50
)

// KnownCategories and KnownLanguages are the vocabularies offered by the CMS
// forms. The storage does not enforce them: category and language are free text.
var (
	KnownCategories = []string{"Documentary", "Educational", "Cultural", "Entertainment"}
	KnownLanguages  = []string{"English", "Arabic", "French", "Spanish"}
)

// Show is the single content record of the catalog.
type Show struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Language    *string    `json:"language,omitempty"`
	Duration    *int       `json:"duration,omitempty"` // seconds
	PublishDate *time.Time `json:"publishDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ShowUpdateParams carries a partial update. A nil field keeps the stored value.
// For Description, Category and Language a pointer to "" clears the column (NULL).
type ShowUpdateParams struct {
	Title       *string
	Description *string
	Category    *string
	Language    *string
	Duration    *int
	PublishDate *time.Time
}

// IsEmpty reports whether no field is set.
func (p ShowUpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.Language == nil && p.Duration == nil && p.PublishDate == nil
}

// ShowPage is one page of a filtered, sorted show listing.
type ShowPage struct {
	Shows      []Show `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

// NewShowPage builds a page and derives TotalPages from total and limit.
func NewShowPage(shows []Show, total, page, limit int) *ShowPage {
	if shows == nil {
		shows = []Show{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = total / limit
		if total%limit > 0 {
			totalPages++
		}
	}
	return &ShowPage{
		Shows:      shows,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
