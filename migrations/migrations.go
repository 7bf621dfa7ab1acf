// Package migrations embeds the goose SQL migrations for the shows schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedded embed.FS

// FS returns the embedded migration files.
func FS() fs.FS {
	return embedded
}

// Up applies all pending migrations and returns the number applied.
// goose.NewProvider is used instead of the legacy goose.Up so that
// concurrent callers do not share global state.
func Up(ctx context.Context, db *sql.DB) (int, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, embedded)
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	return len(results), nil
}
