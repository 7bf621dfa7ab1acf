package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/php-ini/thamaneya/internal/domain"
	showsvc "github.com/php-ini/thamaneya/internal/service/show"
)

const dateOnlyLayout = "2006-01-02"

// date accepts an RFC 3339 timestamp or a bare YYYY-MM-DD (midnight UTC).
type date struct {
	time.Time
}

type dateError struct {
	value string
}

func (e *dateError) Error() string { return "invalid date " + strconv.Quote(e.value) }

func (d *date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &dateError{value: string(bytes.TrimSpace(b))}
	}
	t, err := parseDate(s)
	if err != nil {
		return &dateError{value: s}
	}
	d.Time = t
	return nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateOnlyLayout, s)
}

func (d *date) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// createShowRequest is the body of POST /cms/shows.
type createShowRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Language    *string `json:"language"`
	Duration    *int    `json:"duration"`
	PublishDate *date   `json:"publishDate"`
}

func (req createShowRequest) toInput() showsvc.CreateShowInput {
	return showsvc.CreateShowInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Language:    req.Language,
		Duration:    req.Duration,
		PublishDate: req.PublishDate.timePtr(),
	}
}

// updateShowRequest is the body of PATCH /cms/shows/{id}. Absent or null
// fields are left unchanged; "" clears description, category or language.
type updateShowRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Language    *string `json:"language"`
	Duration    *int    `json:"duration"`
	PublishDate *date   `json:"publishDate"`
}

func (req updateShowRequest) toInput(id uuid.UUID) showsvc.UpdateShowInput {
	return showsvc.UpdateShowInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Language:    req.Language,
		Duration:    req.Duration,
		PublishDate: req.PublishDate.timePtr(),
	}
}

// parseListQuery reads the listing parameters from the query string.
// Non-integer page or limit values are reported together.
func parseListQuery(r *http.Request) (showsvc.ListShowsInput, error) {
	q := r.URL.Query()
	input := showsvc.ListShowsInput{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		Language:  q.Get("language"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	var errs []domain.FieldError
	var err error
	if input.Page, err = queryInt(q.Get("page")); err != nil {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be an integer"})
	}
	if input.Limit, err = queryInt(q.Get("limit")); err != nil {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
	}
	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

// queryInt parses an optional integer parameter; empty means 0 (default).
func queryInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// parseID reads the {id} path value.
func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a valid UUID")
	}
	return id, nil
}
