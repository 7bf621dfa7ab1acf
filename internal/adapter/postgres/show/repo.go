// Package show implements the show repository using PostgreSQL.
// Listing and partial updates are built with squirrel; full-text search uses
// the native tsvector/tsquery machinery.
package show

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/php-ini/thamaneya/internal/adapter/postgres"
	"github.com/php-ini/thamaneya/internal/domain"
)

const entityName = "show"

// DefaultTextSearchConfig is used when New receives an empty configuration name.
const DefaultTextSearchConfig = "english"

// Repo provides show persistence backed by PostgreSQL.
type Repo struct {
	pool             *pgxpool.Pool
	textSearchConfig string
}

// New creates a new show repository. textSearchConfig names the PostgreSQL
// text search configuration (regconfig) used by FullTextSearch.
func New(pool *pgxpool.Pool, textSearchConfig string) *Repo {
	if textSearchConfig == "" {
		textSearchConfig = DefaultTextSearchConfig
	}
	return &Repo{pool: pool, textSearchConfig: textSearchConfig}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// $1 is the regconfig name, $2 the user's search term. Title lexemes weigh 'A',
// description lexemes 'B', so title hits outrank description-only hits.
const fullTextSearchSQL = `
WITH cfg AS (
    SELECT $1::text::regconfig AS name
)
SELECT
    s.id, s.title, s.description, s.category, s.language,
    s.duration, s.publish_date, s.created_at, s.updated_at
FROM shows s
CROSS JOIN cfg
CROSS JOIN LATERAL (
    SELECT
        setweight(to_tsvector(cfg.name, s.title), 'A') ||
        setweight(to_tsvector(cfg.name, coalesce(s.description, '')), 'B') AS document,
        plainto_tsquery(cfg.name, $2::text) AS query
) d
WHERE d.document @@ d.query
ORDER BY ts_rank(d.document, d.query) DESC, s.created_at DESC, s.id ASC`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a show by primary key.
// Returns domain.ErrNotFound if the show does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Show, error) {
	query, args, err := psql.
		Select(showColumns...).
		From(tableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get show query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)

	s, err := scanShow(row)
	if err != nil {
		return nil, postgres.MapError(err, entityName, id)
	}

	return &s, nil
}

// Find returns one page of shows matching the filter, ordered by the
// whitelisted sort column with id as tie-breaker.
// Returns an empty slice (not nil) when nothing matches or the page is past the end.
func (r *Repo) Find(ctx context.Context, filter domain.ShowFilter) ([]domain.Show, error) {
	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list shows query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list shows", uuid.Nil)
	}
	defer rows.Close()

	shows, err := scanShows(rows)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}

	return shows, nil
}

// Count returns the number of shows matching the filter's predicates.
// Pagination fields are ignored.
func (r *Repo) Count(ctx context.Context, filter domain.ShowFilter) (int, error) {
	query, args, err := buildCountQuery(filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count shows query: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "count shows", uuid.Nil)
	}

	return count, nil
}

// Distinct returns the distinct non-empty values of a category-like column in
// ascending order. Returns an empty slice (not nil) when no show has a value.
func (r *Repo) Distinct(ctx context.Context, field domain.DistinctField) ([]string, error) {
	column, ok := distinctColumn(field)
	if !ok {
		return nil, domain.NewValidationError("field", fmt.Sprintf("cannot list distinct values of %q", field))
	}

	query, args, err := buildDistinctQuery(column).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build distinct %s query: %w", column, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "distinct "+column, uuid.Nil)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}

	if values == nil {
		values = []string{}
	}

	return values, nil
}

// FullTextSearch returns shows whose title or description match term under the
// configured text search configuration, best match first.
// A blank term matches nothing and does not touch the database.
func (r *Repo) FullTextSearch(ctx context.Context, term string) ([]domain.Show, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Show{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, fullTextSearchSQL, r.textSearchConfig, term)
	if err != nil {
		return nil, postgres.MapError(err, "full-text search", uuid.Nil)
	}
	defer rows.Close()

	shows, err := scanShows(rows)
	if err != nil {
		return nil, fmt.Errorf("full-text search: %w", err)
	}

	return shows, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new show and returns it with the generated id and timestamps.
func (r *Repo) Create(ctx context.Context, s *domain.Show) (*domain.Show, error) {
	duration, err := ptrIntToPgInt4(s.Duration)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.
		Insert(tableName).
		Columns("title", "description", "category", "language", "duration", "publish_date").
		Values(
			s.Title,
			ptrStringToPgText(s.Description),
			ptrStringToPgText(s.Category),
			ptrStringToPgText(s.Language),
			duration,
			ptrTimeToPgTimestamptz(s.PublishDate),
		).
		Suffix("RETURNING " + strings.Join(showColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create show query: %w", err)
	}

	created, err := scanShow(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entityName, uuid.Nil)
	}

	return &created, nil
}

// Update applies a partial update: only non-nil params are written, and
// updated_at is refreshed in the same statement. A pointer to "" clears
// description, category or language.
// Returns domain.ErrNotFound if the show does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ShowUpdateParams) (*domain.Show, error) {
	if params.IsEmpty() {
		return nil, domain.NewValidationError("body", "at least one field must be provided")
	}

	q := psql.Update(tableName)

	if params.Title != nil {
		q = q.Set("title", *params.Title)
	}
	if params.Description != nil {
		q = q.Set("description", clearableText(*params.Description))
	}
	if params.Category != nil {
		q = q.Set("category", clearableText(*params.Category))
	}
	if params.Language != nil {
		q = q.Set("language", clearableText(*params.Language))
	}
	if params.Duration != nil {
		duration, err := ptrIntToPgInt4(params.Duration)
		if err != nil {
			return nil, err
		}
		q = q.Set("duration", duration)
	}
	if params.PublishDate != nil {
		q = q.Set("publish_date", *params.PublishDate)
	}

	query, args, err := q.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(showColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update show query: %w", err)
	}

	updated, err := scanShow(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entityName, id)
	}

	return &updated, nil
}

// Delete permanently removes a show.
// Returns domain.ErrNotFound if the show does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.
		Delete(tableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete show query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entityName, id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entityName, id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanShows scans all rows into domain.Show values.
func scanShows(rows pgx.Rows) ([]domain.Show, error) {
	result := []domain.Show{}
	for rows.Next() {
		s, err := scanShow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// scanShow scans a single row selected with showColumns. Timestamps are
// returned in UTC regardless of the session time zone.
func scanShow(row pgx.Row) (domain.Show, error) {
	var (
		id          uuid.UUID
		title       string
		description pgtype.Text
		category    pgtype.Text
		language    pgtype.Text
		duration    pgtype.Int4
		publishDate pgtype.Timestamptz
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(
		&id, &title, &description, &category, &language,
		&duration, &publishDate, &createdAt, &updatedAt,
	); err != nil {
		return domain.Show{}, err
	}

	return domain.Show{
		ID:          id,
		Title:       title,
		Description: pgTextToPtr(description),
		Category:    pgTextToPtr(category),
		Language:    pgTextToPtr(language),
		Duration:    pgInt4ToPtr(duration),
		PublishDate: pgTimestamptzToPtr(publishDate),
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   updatedAt.UTC(),
	}, nil
}

// ---------------------------------------------------------------------------
// pgtype conversion helpers
// ---------------------------------------------------------------------------

// clearableText maps "" to NULL.
func clearableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// ptrIntToPgInt4 converts a duration in seconds for the integer column.
// Values outside int4 are rejected instead of wrapping.
func ptrIntToPgInt4(v *int) (pgtype.Int4, error) {
	if v == nil {
		return pgtype.Int4{}, nil
	}
	if *v < math.MinInt32 || *v > math.MaxInt32 {
		return pgtype.Int4{}, domain.NewValidationError("duration", fmt.Sprintf("must be at most %d seconds", math.MaxInt32))
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}, nil
}

func ptrTimeToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func pgTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}

func pgInt4ToPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func pgTimestamptzToPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	utc := t.Time.UTC()
	return &utc
}
