// Package speech converts pipeline output into audio using Google Cloud
// Text-to-Speech.
//
// Synthesis is an optional follow-on action and never sits in the document
// pipeline's critical path. For unspecified voices a higher-quality Neural2
// variant is tried first and the language's standard default voice is used as
// fallback, so voice availability never fails the whole operation.
//
// Required Environment Variables:
//   - GOOGLE_APPLICATION_CREDENTIALS: Path to service account JSON file, OR
//   - GOOGLE_CREDENTIALS: Inline JSON credentials string
package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

// Synthesizer converts text to MP3 audio.
type Synthesizer interface {
	// Synthesize returns MP3 bytes for the text, or nil for empty input.
	// voiceName may be empty to let the service pick a voice for the tag.
	Synthesize(ctx context.Context, text, languageTag, voiceName string) ([]byte, error)

	// ListVoices returns the available voice names for a BCP-47 language tag.
	ListVoices(ctx context.Context, languageTag string) ([]string, error)
}

// backend abstracts the raw text-to-speech API for testing.
type backend interface {
	synthesize(ctx context.Context, text, languageTag, voiceName string) ([]byte, error)
	listVoices(ctx context.Context, languageTag string) ([]string, error)
}

// GoogleSynthesizer implements Synthesizer on top of Cloud Text-to-Speech.
type GoogleSynthesizer struct {
	api backend
	log zerolog.Logger
}

func newSynthesizer(api backend) *GoogleSynthesizer {
	return &GoogleSynthesizer{
		api: api,
		log: logger.WithComponent("speech"),
	}
}

// Synthesize produces MP3 audio for the text. Empty input short-circuits to
// nil audio; the caller is expected to warn the user.
func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text, languageTag, voiceName string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		s.log.Warn().Msg("No text provided to synthesize for audio")
		return nil, nil
	}

	if voiceName != "" {
		return s.api.synthesize(ctx, text, languageTag, voiceName)
	}

	// Try a Neural2 voice for better quality first; fall back to the
	// language's default voice on any failure.
	premium := premiumVoiceName(languageTag)
	audio, err := s.api.synthesize(ctx, text, languageTag, premium)
	if err == nil {
		return audio, nil
	}

	s.log.Warn().
		Err(err).
		Str("voice", premium).
		Str("language_tag", languageTag).
		Msg("Premium voice unavailable, falling back to standard voice")

	return s.api.synthesize(ctx, text, languageTag, "")
}

// ListVoices returns the available voice names for a language tag.
func (s *GoogleSynthesizer) ListVoices(ctx context.Context, languageTag string) ([]string, error) {
	return s.api.listVoices(ctx, languageTag)
}

// premiumVoiceName guesses the common Neural2 voice name for a language tag.
func premiumVoiceName(languageTag string) string {
	return fmt.Sprintf("%s-Neural2-A", languageTag)
}
