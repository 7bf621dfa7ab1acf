package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/php-ini/thamaneya/internal/domain"
)

// UniqueTag returns a short unique string for scoping test data in the shared database.
func UniqueTag() string {
	return "t-" + uuid.New().String()[:8]
}

// SeedShow inserts a show with the given fields and returns it with the
// storage-assigned id and timestamps. An empty title becomes "Show <tag>".
func SeedShow(t *testing.T, pool *pgxpool.Pool, s domain.Show) domain.Show {
	t.Helper()

	if s.Title == "" {
		s.Title = "Show " + UniqueTag()
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO shows (title, description, category, language, duration, publish_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		s.Title, s.Description, s.Category, s.Language, s.Duration, s.PublishDate,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedShow insert: %v", err)
	}

	return s
}

// SeedShows inserts n shows in the given category, titled "<prefix> 01".."<prefix> NN".
func SeedShows(t *testing.T, pool *pgxpool.Pool, category string, n int) []domain.Show {
	t.Helper()

	shows := make([]domain.Show, 0, n)
	for i := 1; i <= n; i++ {
		shows = append(shows, SeedShow(t, pool, domain.Show{
			Title:    fmt.Sprintf("%s %02d", category, i),
			Category: &category,
		}))
	}
	return shows
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
