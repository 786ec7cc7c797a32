package speech

import (
	"context"
	"os"
	"sort"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

// NewGoogleSynthesizer creates a synthesizer with credentials from environment.
// It expects either GOOGLE_APPLICATION_CREDENTIALS path or GOOGLE_CREDENTIALS JSON in env.
func NewGoogleSynthesizer(ctx context.Context) (*GoogleSynthesizer, error) {
	var opts []option.ClientOption
	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credJSON)))
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return newSynthesizer(&googleBackend{client: client}), nil
}

// googleBackend implements backend against the Cloud Text-to-Speech API.
type googleBackend struct {
	client *texttospeech.Client
}

func (b *googleBackend) synthesize(ctx context.Context, text, languageTag, voiceName string) ([]byte, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageTag,
			Name:         voiceName,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := b.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.GetAudioContent(), nil
}

func (b *googleBackend) listVoices(ctx context.Context, languageTag string) ([]string, error) {
	resp, err := b.client.ListVoices(ctx, &texttospeechpb.ListVoicesRequest{
		LanguageCode: languageTag,
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resp.GetVoices()))
	for _, voice := range resp.GetVoices() {
		names = append(names, voice.GetName())
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the underlying Text-to-Speech client.
func (b *googleBackend) Close() error {
	if b.client != nil {
		return b.client.Close()
	}
	return nil
}
