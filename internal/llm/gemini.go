package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

// GeminiModel implements Model using a Vertex AI Gemini generative model.
type GeminiModel struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    zerolog.Logger
}

// NewGeminiModel creates a Gemini model client with credentials from environment.
// It expects either GOOGLE_APPLICATION_CREDENTIALS path or GOOGLE_CREDENTIALS JSON in env.
func NewGeminiModel(ctx context.Context, projectID, location, modelName string) (*GeminiModel, error) {
	const op = "NewGeminiModel"

	if projectID == "" {
		return nil, fmt.Errorf("%s: project ID is required", op)
	}
	if location == "" {
		return nil, fmt.Errorf("%s: location is required", op)
	}

	var opts []option.ClientOption
	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credJSON)))
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		opts = append(opts, option.WithCredentialsFile(credFile))
	}

	client, err := genai.NewClient(ctx, projectID, location, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create Vertex AI client: %w", op, err)
	}

	return &GeminiModel{
		client: client,
		model:  client.GenerativeModel(modelName),
		log:    logger.WithComponent("gemini"),
	}, nil
}

// GenerateText produces the model's text response for a prompt. A response
// without text candidates yields the empty string; callers decide what an
// empty result means.
func (m *GeminiModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := m.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	text := joinTextParts(resp)
	if text == "" {
		m.log.Warn().Msg("Model returned an empty or non-text response")
	}
	return text, nil
}

// Close closes the underlying Vertex AI client.
func (m *GeminiModel) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

func joinTextParts(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
