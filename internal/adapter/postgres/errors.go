package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/php-ini/thamaneya/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped — they pass through.
// A uuid.Nil id (inserts, list queries) is left out of the message.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if id != uuid.Nil {
		prefix = fmt.Sprintf("%s %s", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("%s: %s: %w", prefix, pgErr.ConstraintName, domain.ErrValidation)
		case "22001": // string_data_right_truncation
			return fmt.Errorf("%s: value too long: %w", prefix, domain.ErrValidation)
		case "22P02": // invalid_text_representation
			return fmt.Errorf("%s: invalid input: %w", prefix, domain.ErrValidation)
		case "22021": // character_not_in_repertoire, e.g. NUL in text
			return fmt.Errorf("%s: invalid character: %w", prefix, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", prefix, err)
}
