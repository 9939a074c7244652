package blob

import "context"

// Fetcher retrieves a single named object from blob storage.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}
