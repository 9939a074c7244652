package db

import (
	"context"
	"database/sql"
)

// Executor is the subset of database/sql the repositories query through.
// Both *sql.DB and *sql.Tx satisfy it, so an append can run against the
// pool or inside a request-scoped transaction without knowing which.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type TxManager interface {
	// RunInTx executes fn within a database transaction carried in fn's
	// context, committing when fn returns nil and rolling back otherwise.
	// A nil return means the transaction committed, not just that fn ran.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
