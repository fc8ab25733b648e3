package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

// GCSStore keeps images as objects in a single GCS bucket.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSStore(client *gcs.Client, bucket string) *GCSStore {
	return &GCSStore{client: client, bucket: bucket}
}

func (s *GCSStore) Put(ctx context.Context, suggestedName string, data []byte) (string, error) {
	name := storedName(suggestedName)

	writer := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("%w: writing image to bucket: %v", m.ErrStorage, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: writing image to bucket: %v", m.ErrStorage, err)
	}

	return name, nil
}

func (s *GCSStore) Open(ctx context.Context, storedName string) (io.ReadCloser, error) {
	reader, err := s.client.Bucket(s.bucket).Object(storedName).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, m.ErrNotFound
		}
		return nil, fmt.Errorf("%w: reading image from bucket: %v", m.ErrStorage, err)
	}
	return reader, nil
}

func (s *GCSStore) Remove(ctx context.Context, storedName string) error {
	err := s.client.Bucket(s.bucket).Object(storedName).Delete(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return m.ErrNotFound
		}
		return fmt.Errorf("%w: deleting image from bucket: %v", m.ErrStorage, err)
	}
	return nil
}
