package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// ObjectWriter stores a blob and returns its public URL.
type ObjectWriter interface {
	Write(ctx context.Context, name, contentType string, data []byte) (string, error)
}

type GCS struct {
	client *storage.Client
	bucket string
}

func NewGCS(client *storage.Client, bucket string) *GCS {
	return &GCS{client: client, bucket: bucket}
}

func (g *GCS) Write(ctx context.Context, name, contentType string, data []byte) (string, error) {
	wc := g.client.Bucket(g.bucket).Object(name).NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=3600"
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("storage: writing object: %w", err)
	}
	// The upload is only committed on Close.
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("storage: closing object: %w", err)
	}
	return PublicURL(g.bucket, name), nil
}

func PublicURL(bucket, name string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, name)
}
