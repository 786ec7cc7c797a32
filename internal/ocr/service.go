// Package ocr provides OCR (Optical Character Recognition) capabilities using Google Cloud Vision API.
//
// This package reads images that have been staged in Google Cloud Storage and
// extracts their text with document text detection. The Vision API pulls the
// image directly from the gs:// URI, so nothing is sent inline.
//
// Required Environment Variables:
//   - GOOGLE_APPLICATION_CREDENTIALS: Path to service account JSON file, OR
//   - GOOGLE_CREDENTIALS: Inline JSON credentials string
//   - GCP_PROJECT_ID: Google Cloud project ID
//
// Cloud Vision API Limitations:
//   - Supported formats: PNG, JPEG (the formats accepted by the extractor)
//   - The service account needs read access to the staging bucket
//   - Quota limits apply (check Google Cloud Console)
package ocr

import "context"

// Service defines the interface for image text extraction.
type Service interface {
	// DetectImageText extracts text from an image referenced by a gs:// URI.
	// Returns the empty string when the image contains no detectable text.
	DetectImageText(ctx context.Context, imageURI string) (string, error)
}
