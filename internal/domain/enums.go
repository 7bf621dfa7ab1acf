package domain

import "strings"

// ShowSortField is a sortable show attribute, named as the API exposes it.
type ShowSortField string

const (
	SortByTitle       ShowSortField = "title"
	SortByCategory    ShowSortField = "category"
	SortByLanguage    ShowSortField = "language"
	SortByDuration    ShowSortField = "duration"
	SortByPublishDate ShowSortField = "publishDate"
	SortByCreatedAt   ShowSortField = "createdAt"

	DefaultSortField = SortByCreatedAt
)

func (f ShowSortField) String() string { return string(f) }

func (f ShowSortField) IsValid() bool {
	switch f {
	case SortByTitle, SortByCategory, SortByLanguage, SortByDuration, SortByPublishDate, SortByCreatedAt:
		return true
	}
	return false
}

// ParseShowSortField resolves client input to a known sort field.
// Empty or unknown values resolve to DefaultSortField.
func ParseShowSortField(s string) ShowSortField {
	f := ShowSortField(strings.TrimSpace(s))
	if f.IsValid() {
		return f
	}
	return DefaultSortField
}

// SortOrder is the sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "ASC"
	SortOrderDesc SortOrder = "DESC"

	DefaultSortOrder = SortOrderDesc
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

// ParseSortOrder accepts "asc"/"desc" in any case. Empty input yields
// DefaultSortOrder; anything else reports ok=false.
func ParseSortOrder(s string) (SortOrder, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSortOrder, true
	}
	o := SortOrder(strings.ToUpper(s))
	if !o.IsValid() {
		return "", false
	}
	return o, true
}

// DistinctField is a show attribute whose distinct values can be listed.
type DistinctField string

const (
	DistinctCategory DistinctField = "category"
	DistinctLanguage DistinctField = "language"
)

func (f DistinctField) String() string { return string(f) }

func (f DistinctField) IsValid() bool {
	return f == DistinctCategory || f == DistinctLanguage
}
