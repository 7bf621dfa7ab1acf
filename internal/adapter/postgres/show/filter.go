package show

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/php-ini/thamaneya/internal/domain"
)

const tableName = "shows"

// showColumns is the select list every scan helper expects, in order.
var showColumns = []string{
	"id", "title", "description", "category", "language",
	"duration", "publish_date", "created_at", "updated_at",
}

// psql is the statement builder for PostgreSQL ($n placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// normalize applies defaults and clamps values. The service validates client
// input first; this keeps direct repo callers within bounds as well.
func normalize(f domain.ShowFilter) domain.ShowFilter {
	f.Search = strings.TrimSpace(f.Search)
	f.Category = strings.TrimSpace(f.Category)
	f.Language = strings.TrimSpace(f.Language)

	if !f.SortBy.IsValid() {
		f.SortBy = domain.DefaultSortField
	}
	if !f.SortOrder.IsValid() {
		f.SortOrder = domain.DefaultSortOrder
	}

	if f.Page < 1 {
		f.Page = domain.DefaultPage
	}
	if f.Limit <= 0 {
		f.Limit = domain.DefaultLimit
	}
	if f.Limit > domain.MaxLimit {
		f.Limit = domain.MaxLimit
	}

	return f
}

// sortColumn returns the SQL column name for a sort field. Client text never
// reaches the ORDER BY clause: unknown fields map to created_at.
func sortColumn(field domain.ShowSortField) string {
	switch field {
	case domain.SortByTitle:
		return "title"
	case domain.SortByCategory:
		return "category"
	case domain.SortByLanguage:
		return "language"
	case domain.SortByDuration:
		return "duration"
	case domain.SortByPublishDate:
		return "publish_date"
	default:
		return "created_at"
	}
}

// distinctColumn returns the SQL column for a distinct-value listing.
func distinctColumn(field domain.DistinctField) (string, bool) {
	switch field {
	case domain.DistinctCategory:
		return "category", true
	case domain.DistinctLanguage:
		return "language", true
	default:
		return "", false
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere in the value.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// buildWhere returns the conjunction of the filter's predicates.
func buildWhere(f domain.ShowFilter) sq.And {
	where := sq.And{}

	if f.Search != "" {
		pattern := containsPattern(f.Search)
		where = append(where, sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}
	if f.Category != "" {
		where = append(where, sq.Eq{"category": f.Category})
	}
	if f.Language != "" {
		where = append(where, sq.Eq{"language": f.Language})
	}

	return where
}

// buildListQuery builds the page query: predicates, whitelisted sort with an
// id tie-breaker, LIMIT and OFFSET.
func buildListQuery(f domain.ShowFilter) sq.SelectBuilder {
	f = normalize(f)

	q := psql.
		Select(showColumns...).
		From(tableName)
	if where := buildWhere(f); len(where) > 0 {
		q = q.Where(where)
	}

	return q.
		OrderBy(sortColumn(f.SortBy)+" "+f.SortOrder.String(), "id ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset()))
}

// buildCountQuery builds the total-count query over the same predicates.
func buildCountQuery(f domain.ShowFilter) sq.SelectBuilder {
	f = normalize(f)

	q := psql.
		Select("count(*)").
		From(tableName)
	if where := buildWhere(f); len(where) > 0 {
		q = q.Where(where)
	}

	return q
}

// buildDistinctQuery lists non-null, non-empty distinct values of column.
func buildDistinctQuery(column string) sq.SelectBuilder {
	return psql.
		Select(column).
		Distinct().
		From(tableName).
		Where(sq.NotEq{column: nil}).
		Where(sq.NotEq{column: ""}).
		OrderBy(column)
}
