package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/LinFrancis/aucca-app/internal/db"
)

// FailOnNthExecUoW behaves like the production unit of work except that the
// FailOn-th write (counted from 1) inside each transaction returns Err. Tests
// use it to check that a query log entry and its gap counter are stored
// together or not at all. Reads are not counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	var writes atomic.Int32
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingWrites{DBTX: tx, writes: &writes, failOn: u.FailOn, err: u.Err})
	})
}

type failingWrites struct {
	db.DBTX
	writes *atomic.Int32
	failOn int32
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
