package db

import (
	"context"
	"database/sql"
)

// DBTX is what the query log repositories need from a connection. Both the
// pooled *sql.DB and a *sql.Tx handed out by WithinTx satisfy it, so the
// same repository code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
