// Package storage stages document bytes in Google Cloud Storage so that the
// Vision API can read them by URI.
//
// Staged objects are short-lived: the extractor uploads an image, runs OCR
// against the returned gs:// URI and deletes the object again on both the
// success and failure path. Nothing in this package is a system of record.
//
// Required Environment Variables:
//   - GOOGLE_APPLICATION_CREDENTIALS: Path to service account JSON file, OR
//   - GOOGLE_CREDENTIALS: Inline JSON credentials string
//   - GCS_BUCKET_NAME: Bucket used for staging uploads
package storage

import "context"

// ObjectStore defines the contract for staging and removing binary objects.
type ObjectStore interface {
	// Put uploads the object and returns a gs:// URI referencing it.
	Put(ctx context.Context, name string, data []byte) (string, error)

	// Delete removes a previously staged object by its gs:// URI.
	Delete(ctx context.Context, uri string) error
}
