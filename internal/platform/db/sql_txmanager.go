package db

import (
	"context"
	"database/sql"
	"log/slog"
)

type txCtxKey int

const txKey txCtxKey = iota

func NewContextWithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context.
// It's used by repositories to get the current transaction if available.
func TxFromContext(ctx context.Context) *sql.Tx {
	if tx, ok := ctx.Value(txKey).(*sql.Tx); ok {
		return tx
	}
	return nil
}

type SQLTxManager struct {
	db *sql.DB
}

// RunInTx returns an error when the commit itself fails, not just when fn
// does: the result is named so the deferred commit error reaches the
// caller. A request is only acknowledged after the commit has returned.
func (tm *SQLTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	txCtx := NewContextWithTx(ctx, tx)

	// Rollback on error or panic, commit otherwise.
	defer func() {
		if r := recover(); r != nil {
			rollback(tx)
			panic(r)
		} else if err != nil {
			rollback(tx)
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(txCtx)
	return err
}

func NewSQLTxManager(db *sql.DB) *SQLTxManager {
	return &SQLTxManager{db: db}
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		slog.Error("failed to rollback transaction", "reason", err)
	}
}
