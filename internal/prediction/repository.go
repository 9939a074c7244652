package prediction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mlserve/internal/feature"
	"mlserve/internal/platform/db"
)

var (
	ErrQueryFailed  = errors.New("prediction repository: query failed")
	ErrStoreOffline = errors.New("prediction repository: connectivity check failed")
)

type Repository struct {
	db *sql.DB
}

var _ LogStore = (*Repository)(nil)

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{db: conn}
}

// executor returns the transaction carried in ctx if there is one, so an
// append inside TxManager.RunInTx commits with the surrounding request.
func (r *Repository) executor(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

// pgx runs Exec over the extended protocol, which rejects multi-statement
// strings, so each DDL statement is issued on its own.
var migrationQueries = []string{queryCreateTable, queryIndexTimestamp, queryIndexPrediction}

const queryCreateTable = `
CREATE TABLE IF NOT EXISTS prediction_logs (
	id BIGSERIAL PRIMARY KEY,
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now(),
	feature_0 DOUBLE PRECISION NOT NULL,
	feature_1 DOUBLE PRECISION NOT NULL,
	feature_2 DOUBLE PRECISION NOT NULL,
	feature_3 DOUBLE PRECISION NOT NULL,
	feature_4 DOUBLE PRECISION NOT NULL,
	feature_5 DOUBLE PRECISION NOT NULL,
	feature_6 DOUBLE PRECISION NOT NULL,
	feature_7 DOUBLE PRECISION NOT NULL,
	feature_8 DOUBLE PRECISION NOT NULL,
	feature_9 DOUBLE PRECISION NOT NULL,
	feature_10 DOUBLE PRECISION NOT NULL,
	feature_11 DOUBLE PRECISION NOT NULL,
	feature_12 DOUBLE PRECISION NOT NULL,
	feature_13 DOUBLE PRECISION NOT NULL,
	feature_14 DOUBLE PRECISION NOT NULL,
	prediction INTEGER NOT NULL
)
`

const (
	queryIndexTimestamp  = "CREATE INDEX IF NOT EXISTS idx_prediction_logs_timestamp ON prediction_logs (timestamp)"
	queryIndexPrediction = "CREATE INDEX IF NOT EXISTS idx_prediction_logs_prediction ON prediction_logs (prediction)"
)

// Migrate creates the log table and its indexes if they do not exist yet.
// Runs once at startup before the server accepts traffic.
func (r *Repository) Migrate(ctx context.Context) error {
	for _, query := range migrationQueries {
		if _, err := r.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("%w: migrate prediction_logs: %v", ErrQueryFailed, err)
		}
	}
	return nil
}

const queryAppendLog = `
INSERT INTO prediction_logs (
	feature_0, feature_1, feature_2, feature_3, feature_4,
	feature_5, feature_6, feature_7, feature_8, feature_9,
	feature_10, feature_11, feature_12, feature_13, feature_14,
	prediction
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id, timestamp
`

// Append inserts one log row and returns it with the assigned identifier
// and timestamp. No retries: a storage error fails the request.
func (r *Repository) Append(ctx context.Context, vec feature.Vector, prediction int) (LogEntry, error) {
	vals := vec.Values()
	args := make([]any, 0, feature.FieldCount+1)
	for _, v := range vals {
		args = append(args, v)
	}
	args = append(args, prediction)

	entry := LogEntry{Vector: vec, Prediction: prediction}
	row := r.executor(ctx).QueryRowContext(ctx, queryAppendLog, args...)
	if err := row.Scan(&entry.ID, &entry.Timestamp); err != nil {
		return LogEntry{}, fmt.Errorf("%w: append prediction log: %v", ErrQueryFailed, err)
	}
	entry.Timestamp = entry.Timestamp.UTC()

	return entry, nil
}

const queryConnCheck = "SELECT 1"

// CheckConnectivity performs a trivial round trip against the store. Used
// by the readiness probe only, never on the prediction path.
func (r *Repository) CheckConnectivity(ctx context.Context) error {
	var one int
	if err := r.db.QueryRowContext(ctx, queryConnCheck).Scan(&one); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreOffline, err)
	}
	return nil
}
