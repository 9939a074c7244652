package db

import (
	"context"
	"errors"
)

type StubTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TxManager = &StubTxManager{}

func (s *StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.RunInTxFunc == nil {
		return errors.New("RunInTx not implemented by StubTxManager")
	}

	return s.RunInTxFunc(ctx, fn)
}
