package prediction

import (
	"context"
	"errors"

	"mlserve/internal/feature"
)

type StubService struct {
	PredictFunc func(ctx context.Context, vec feature.Vector) (LogEntry, error)
}

var _ Service = &StubService{}

func (s *StubService) Predict(ctx context.Context, vec feature.Vector) (LogEntry, error) {
	if s.PredictFunc == nil {
		return LogEntry{}, errors.New("Predict() not implemented by stub")
	}
	return s.PredictFunc(ctx, vec)
}

type StubLogStore struct {
	AppendFunc            func(ctx context.Context, vec feature.Vector, prediction int) (LogEntry, error)
	CheckConnectivityFunc func(ctx context.Context) error
}

var _ LogStore = &StubLogStore{}

func (s *StubLogStore) Append(ctx context.Context, vec feature.Vector, prediction int) (LogEntry, error) {
	if s.AppendFunc == nil {
		return LogEntry{}, errors.New("Append() not implemented by stub")
	}
	return s.AppendFunc(ctx, vec, prediction)
}

func (s *StubLogStore) CheckConnectivity(ctx context.Context) error {
	if s.CheckConnectivityFunc == nil {
		return errors.New("CheckConnectivity() not implemented by stub")
	}
	return s.CheckConnectivityFunc(ctx)
}
