package blob

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"mlserve/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioFetcher struct {
	client *minio.Client
	bucket string
	key    string
}

var _ Fetcher = (*MinioFetcher)(nil)

func NewMinioFetcher(cfg *config.Model) (*MinioFetcher, error) {
	accessKey := os.Getenv("BLOB_ACCESS_KEY")
	secretKey := os.Getenv("BLOB_SECRET_KEY")

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("new object storage client: %w", err)
	}

	return &MinioFetcher{
		client: client,
		bucket: cfg.Bucket,
		key:    cfg.Key,
	}, nil
}

func (f *MinioFetcher) Fetch(ctx context.Context) ([]byte, error) {
	slog.Info("Fetching object...", "bucket", f.bucket, "key", f.key)

	obj, err := f.client.GetObject(ctx, f.bucket, f.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s/%s: %w", f.bucket, f.key, err)
	}
	defer func() {
		if err := obj.Close(); err != nil {
			slog.Error("failed to close object reader", "reason", err)
		}
	}()

	contents, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read object %s/%s: %w", f.bucket, f.key, err)
	}

	slog.Info("Object fetched.", "bucket", f.bucket, "key", f.key, "bytes", len(contents))
	return contents, nil
}
