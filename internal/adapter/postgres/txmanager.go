package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrWriteInReadOnlyTx is returned when RunInTx is called from inside a
// RunReadOnly callback.
var ErrWriteInReadOnlyTx = errors.New("read-write transaction requested inside a read-only transaction")

// TxManager runs callbacks inside a transaction carried by the context.
//
// A call made while ctx already carries a transaction joins it instead of
// opening a second one: the seeder creates shows through the service inside
// its own RunInTx, and List's read-only snapshot works the same whether or
// not a caller already opened one.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx executes fn within a read-write transaction (Read Committed).
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{}, fn)
}

// RunReadOnly executes fn within a REPEATABLE READ, READ ONLY transaction,
// so a page and its total count observe one snapshot.
func (m *TxManager) RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

func (m *TxManager) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) (err error) {
	readOnly := opts.AccessMode == pgx.ReadOnly

	if outer, ok := scopeFromCtx(ctx); ok {
		if outer.readOnly && !readOnly {
			return ErrWriteInReadOnlyTx
		}
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withScope(ctx, txScope{tx: tx, readOnly: readOnly})); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
