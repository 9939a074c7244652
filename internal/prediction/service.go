package prediction

import (
	"context"

	"mlserve/internal/feature"
	"mlserve/internal/model"
	"mlserve/internal/platform/db"
)

// LogStore is the persistence interface for prediction logs.
type LogStore interface {
	Append(ctx context.Context, vec feature.Vector, prediction int) (LogEntry, error)
	CheckConnectivity(ctx context.Context) error
}

// service scores a validated vector and durably logs the result before
// reporting it. Scoring strictly precedes logging, which strictly
// precedes the response.
type service struct {
	classifier model.Classifier
	store      LogStore
	txMgr      db.TxManager
}

var _ Service = (*service)(nil)

func NewService(classifier model.Classifier, store LogStore, txMgr db.TxManager) *service {
	return &service{
		classifier: classifier,
		store:      store,
		txMgr:      txMgr,
	}
}

func (s *service) Predict(ctx context.Context, vec feature.Vector) (LogEntry, error) {
	prediction, err := s.classifier.Predict(vec)
	if err != nil {
		return LogEntry{}, err
	}

	// The append runs in its own transaction scoped to this request, so
	// the entry is committed before the caller is acknowledged and rolled
	// back on any failure.
	var entry LogEntry
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		logged, err := s.store.Append(txCtx, vec, prediction)
		if err != nil {
			return err
		}
		entry = logged
		return nil
	})
	if err != nil {
		return LogEntry{}, err
	}

	return entry, nil
}
