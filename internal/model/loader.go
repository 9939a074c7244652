package model

import (
	"context"
	"fmt"
	"log/slog"

	"mlserve/internal/platform/blob"
)

// Load fetches and decodes the trained artifact. It runs exactly once at
// startup; any failure here is fatal since the service must not accept
// traffic without a loaded model.
func Load(ctx context.Context, fetcher blob.Fetcher) (*LinearClassifier, error) {
	slog.Info("Loading model artifact...")

	raw, err := fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch model artifact: %w", err)
	}

	artifact, err := DecodeArtifact(raw)
	if err != nil {
		return nil, err
	}

	slog.Info("Model artifact loaded.", "columns", len(artifact.Columns))
	return NewLinearClassifier(artifact), nil
}
