package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

// uploadPrefix is the object-name subfolder used for staged documents.
const uploadPrefix = "uploads"

// GCSStore implements ObjectStore on top of Google Cloud Storage.
type GCSStore struct {
	client *gcs.Client
	bucket string
	log    zerolog.Logger
}

// NewGCSStore creates a staging store with credentials from the environment.
// It expects either GOOGLE_APPLICATION_CREDENTIALS path or GOOGLE_CREDENTIALS
// JSON in env; bare Application Default Credentials work as a fallback.
func NewGCSStore(ctx context.Context, bucket string) (*GCSStore, error) {
	const op = "NewGCSStore"

	if bucket == "" {
		return nil, fmt.Errorf("%s: bucket name is required", op)
	}

	var client *gcs.Client
	var err error

	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = gcs.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = gcs.NewClient(ctx, option.WithCredentialsFile(credFile))
	} else {
		client, err = gcs.NewClient(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create storage client: %w", op, err)
	}

	return &GCSStore{
		client: client,
		bucket: bucket,
		log:    logger.WithComponent("gcs-store"),
	}, nil
}

// NewGCSStoreWithClient creates a staging store with an explicit client (for testing).
func NewGCSStoreWithClient(client *gcs.Client, bucket string) *GCSStore {
	return &GCSStore{
		client: client,
		bucket: bucket,
		log:    logger.WithComponent("gcs-store"),
	}
}

// Put uploads the object under the uploads/ prefix and returns its gs:// URI.
func (s *GCSStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	const op = "Put"

	objectName := path.Join(uploadPrefix, name)
	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage: %s failed for %q: %w", op, objectName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: %s failed for %q: %w", op, objectName, err)
	}

	uri := fmt.Sprintf("gs://%s/%s", s.bucket, objectName)
	s.log.Info().
		Str("uri", uri).
		Int("bytes", len(data)).
		Msg("Staged object in GCS")
	return uri, nil
}

// Delete removes a staged object by its gs:// URI.
func (s *GCSStore) Delete(ctx context.Context, uri string) error {
	const op = "Delete"

	bucket, objectName, err := parseURI(uri)
	if err != nil {
		return fmt.Errorf("storage: %s: %w", op, err)
	}

	if err := s.client.Bucket(bucket).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("storage: %s failed for %q: %w", op, uri, err)
	}

	s.log.Info().Str("uri", uri).Msg("Deleted staged object from GCS")
	return nil
}

// Close closes the underlying storage client.
func (s *GCSStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// parseURI splits a gs://bucket/object URI into its parts.
func parseURI(uri string) (bucket, object string, err error) {
	trimmed, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", fmt.Errorf("unsupported object URI format: %q", uri)
	}
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed object URI: %q", uri)
	}
	return parts[0], parts[1], nil
}
