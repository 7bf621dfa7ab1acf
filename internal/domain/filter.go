package domain

import "math"

// Pagination bounds for show listings.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ShowFilter contains filtering, sorting and pagination parameters for a show listing.
// Empty strings impose no constraint.
type ShowFilter struct {
	Search    string
	Category  string
	Language  string
	SortBy    ShowSortField
	SortOrder SortOrder
	Page      int
	Limit     int
}

// Offset returns the number of rows skipped before the requested page.
// It saturates at math.MaxInt instead of overflowing for huge page numbers,
// so such pages compare as past the end of any result.
func (f ShowFilter) Offset() int {
	if f.Page <= 1 || f.Limit <= 0 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}
