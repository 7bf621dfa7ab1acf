package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx, so repositories run the
// same statements inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txScope is the transaction a TxManager callback runs in.
type txScope struct {
	tx       pgx.Tx
	readOnly bool
}

type txScopeKey struct{}

func withScope(ctx context.Context, s txScope) context.Context {
	return context.WithValue(ctx, txScopeKey{}, s)
}

func scopeFromCtx(ctx context.Context) (txScope, bool) {
	s, ok := ctx.Value(txScopeKey{}).(txScope)
	return s, ok
}

// QuerierFromCtx returns the transaction carried by ctx, or pool when the
// caller is not inside TxManager.RunInTx / RunReadOnly.
func QuerierFromCtx(ctx context.Context, pool *pgxpool.Pool) Querier {
	if s, ok := scopeFromCtx(ctx); ok {
		return s.tx
	}
	return pool
}
