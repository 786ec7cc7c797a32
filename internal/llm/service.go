// Package llm wraps the hosted language model behind a retrying gateway.
//
// The gateway issues a single generation call per request, retries transient
// failures (rate limiting, internal errors, unavailability, deadline
// exceeded) with a fixed delay, and fails through non-transient errors
// immediately. Response-quality validation is deliberately left to callers.
//
// Required Environment Variables:
//   - GOOGLE_APPLICATION_CREDENTIALS: Path to service account JSON file, OR
//   - GOOGLE_CREDENTIALS: Inline JSON credentials string
//   - GCP_PROJECT_ID, GCP_REGION: Vertex AI project and location
package llm

import "context"

// Gateway is the single entry point for language-model calls.
type Gateway interface {
	// Generate issues one generation request, appending a directive to answer
	// in the given language. Retries transient failures before giving up.
	Generate(ctx context.Context, prompt, languageCode string) (string, error)

	// GenerateRaw issues one generation request with the prompt passed through
	// unmodified. Used for prompts that already pin their output language,
	// such as the financial classification prompt.
	GenerateRaw(ctx context.Context, prompt string) (string, error)
}

// Model abstracts one call to a concrete hosted model.
type Model interface {
	// GenerateText produces the model's text response for a prompt.
	// An empty string with a nil error means the model returned no content.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
