package ocr

import (
	"context"
	"os"

	vision "cloud.google.com/go/vision/apiv1"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

// GoogleVisionService implements Service using Google Cloud Vision API.
type GoogleVisionService struct {
	client *vision.ImageAnnotatorClient
	log    zerolog.Logger
}

// NewGoogleVisionService creates a new OCR service with credentials from environment.
// It expects either GOOGLE_APPLICATION_CREDENTIALS path or GOOGLE_CREDENTIALS JSON in env.
func NewGoogleVisionService(ctx context.Context) (*GoogleVisionService, error) {
	const op = "NewGoogleVisionService"

	var client *vision.ImageAnnotatorClient
	var err error

	// Check for inline credentials first
	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
		if err != nil {
			return nil, WrapOCRError(op, err, "failed to create client with GOOGLE_CREDENTIALS")
		}
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		client, err = vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credFile))
		if err != nil {
			return nil, WrapOCRError(op, err, "failed to create client with GOOGLE_APPLICATION_CREDENTIALS")
		}
	} else {
		// Try default credentials as fallback
		client, err = vision.NewImageAnnotatorClient(ctx)
		if err != nil {
			return nil, WrapOCRError(op, ErrMissingCredentials, "no credentials found in environment")
		}
	}

	return &GoogleVisionService{
		client: client,
		log:    logger.WithComponent("vision-ocr"),
	}, nil
}

// NewGoogleVisionServiceWithClient creates a new OCR service with an explicit client (for testing).
func NewGoogleVisionServiceWithClient(client *vision.ImageAnnotatorClient) *GoogleVisionService {
	return &GoogleVisionService{
		client: client,
		log:    logger.WithComponent("vision-ocr"),
	}
}

// DetectImageText extracts text from a staged image via document text detection.
func (g *GoogleVisionService) DetectImageText(ctx context.Context, imageURI string) (string, error) {
	const op = "DetectImageText"

	g.log.Info().Str("uri", imageURI).Msg("Performing OCR on staged image")

	annotation, err := g.client.DetectDocumentText(ctx, vision.NewImageFromURI(imageURI), nil)
	if err != nil {
		return "", WrapOCRError(op, ErrOCRFailed, "Vision API call failed: "+err.Error())
	}

	if annotation == nil || annotation.Text == "" {
		g.log.Warn().Str("uri", imageURI).Msg("No text detected by OCR for the image")
		return "", nil
	}

	g.log.Info().
		Str("uri", imageURI).
		Int("text_length", len(annotation.Text)).
		Msg("OCR extraction completed")
	return annotation.Text, nil
}

// Close closes the underlying Vision client.
func (g *GoogleVisionService) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
