package blob

import (
	"context"
	"errors"
)

type StubFetcher struct {
	FetchFunc func(ctx context.Context) ([]byte, error)
}

var _ Fetcher = &StubFetcher{}

func (f *StubFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if f.FetchFunc == nil {
		return nil, errors.New("Fetch() not implemented by stub")
	}
	return f.FetchFunc(ctx)
}
