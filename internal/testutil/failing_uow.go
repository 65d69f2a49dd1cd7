package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gbtux/teammanager/internal/db"
)

// FailingUoW runs the callback in a real transaction but makes the Nth write
// statement return Err, so tests can check that multi-row writes roll back.
// Reads are passed through and not counted.
type FailingUoW struct {
	DB         *sql.DB
	FailOnExec int
	Err        error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &failingTx{DBTX: tx, failOn: u.FailOnExec, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	execs  int
	failOn int
	err    error
}

func (t *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	t.execs++
	if t.execs == t.failOn {
		return nil, t.err
	}
	return t.DBTX.ExecContext(ctx, query, args...)
}
