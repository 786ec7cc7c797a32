// Package extract turns user-supplied documents into plain text.
//
// Three input shapes are handled: pasted text (returned verbatim), PDF files
// (parsed locally with github.com/ledongthuc/pdf) and images (staged in object
// storage and OCRed via Cloud Vision). Scanned PDFs without an embedded text
// layer yield nothing; there is no OCR fallback for them.
//
// Extraction degrades rather than fails: any storage or OCR problem is logged
// and produces empty text, which the pipeline treats as a user-correctable
// "no text extracted" outcome. Only an unsupported media kind is a hard error.
package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vikaskrsingh/finai-mitra/internal/logger"
	"github.com/vikaskrsingh/finai-mitra/internal/ocr"
	"github.com/vikaskrsingh/finai-mitra/internal/storage"
)

// Kind is the declared media kind of an uploaded document.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindPNG  Kind = "png"
	KindJPG  Kind = "jpg"
	KindJPEG Kind = "jpeg"
	KindText Kind = "text"
)

// KindFromExtension maps a file extension (without dot, any case) to a Kind.
// Unknown extensions map to the empty Kind, which Extract rejects.
func KindFromExtension(ext string) Kind {
	switch strings.ToLower(ext) {
	case "pdf":
		return KindPDF
	case "png":
		return KindPNG
	case "jpg":
		return KindJPG
	case "jpeg":
		return KindJPEG
	case "txt", "text":
		return KindText
	default:
		return ""
	}
}

// Document is one user-submitted file, alive only for the current request.
type Document struct {
	Name string
	Kind Kind
	Data []byte
}

// Input is the raw material of one pipeline run: an uploaded file, pasted
// text, or neither (which the orchestrator rejects before extraction).
type Input struct {
	File       *Document
	PastedText string
}

// Empty reports whether the input carries neither a file nor pasted text.
func (in Input) Empty() bool {
	return in.File == nil && strings.TrimSpace(in.PastedText) == ""
}

// Extractor converts an Input into plain text.
type Extractor struct {
	store storage.ObjectStore
	ocr   ocr.Service
	log   zerolog.Logger
}

// NewExtractor creates an extractor with explicit dependencies.
func NewExtractor(store storage.ObjectStore, ocrService ocr.Service) *Extractor {
	return &Extractor{
		store: store,
		ocr:   ocrService,
		log:   logger.WithComponent("extract"),
	}
}

// Extract returns the plain text of the input. Empty text with a nil error is
// a valid terminal result; only an unsupported media kind returns an error.
func (e *Extractor) Extract(ctx context.Context, in Input) (string, error) {
	if in.File != nil {
		return e.extractFile(ctx, in.File)
	}

	if in.PastedText != "" {
		e.log.Info().Int("length", len(in.PastedText)).Msg("Using pasted text as document content")
		return in.PastedText, nil
	}

	return "", nil
}

func (e *Extractor) extractFile(ctx context.Context, doc *Document) (string, error) {
	switch doc.Kind {
	case KindPDF:
		return e.extractPDF(doc), nil
	case KindPNG, KindJPG, KindJPEG:
		return e.extractImage(ctx, doc), nil
	case KindText:
		return string(doc.Data), nil
	default:
		e.log.Warn().
			Str("file", doc.Name).
			Str("kind", string(doc.Kind)).
			Msg("Unsupported file kind uploaded")
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaKind, doc.Kind)
	}
}

// extractPDF parses all pages and concatenates their text. Pages without an
// extractable text layer contribute nothing. Parse failures degrade to empty.
func (e *Extractor) extractPDF(doc *Document) string {
	text, err := readPDFText(doc.Data)
	if err != nil {
		e.log.Error().
			Err(err).
			Str("file", doc.Name).
			Msg("Failed to extract text from PDF")
		return ""
	}

	e.log.Info().
		Str("file", doc.Name).
		Int("text_length", len(text)).
		Msg("Text extracted from PDF")
	return text
}

// extractImage stages the image bytes in object storage, OCRs the staged copy
// and deletes it again whether or not OCR succeeded.
func (e *Extractor) extractImage(ctx context.Context, doc *Document) string {
	uri, err := e.store.Put(ctx, stagingName(doc.Name), doc.Data)
	if err != nil {
		e.log.Error().
			Err(err).
			Str("file", doc.Name).
			Msg("Failed to stage image for OCR")
		return ""
	}

	defer func() {
		if err := e.store.Delete(ctx, uri); err != nil {
			// Cleanup is best effort; a leaked staging object is not surfaced to the user.
			e.log.Warn().Err(err).Str("uri", uri).Msg("Failed to delete staged image")
		}
	}()

	text, err := e.ocr.DetectImageText(ctx, uri)
	if err != nil {
		e.log.Error().
			Err(err).
			Str("uri", uri).
			Msg("OCR on staged image failed")
		return ""
	}

	return text
}

// stagingName keeps staged objects unique across concurrent processes.
func stagingName(fileName string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileName)
}
