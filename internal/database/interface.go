package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGXDB is an interface that both pgxpool.Pool and pgx.Tx implement.
// Repositories accept it instead of a concrete pool so tests can run every
// repository call inside a rolled-back transaction.
type PGXDB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Compile-time checks.
var (
	_ PGXDB = (*pgxpool.Pool)(nil)
	_ PGXDB = (pgx.Tx)(nil)
)
