package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vikaskrsingh/finai-mitra/internal/locale"
	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

const (
	// maxAttempts is the total number of generation attempts per request.
	maxAttempts = 3

	// retryDelay is the fixed wait between attempts.
	retryDelay = 2 * time.Second
)

// RetryingGateway implements Gateway with fixed-delay retry on transient failures.
type RetryingGateway struct {
	model    Model
	attempts int
	delay    time.Duration
	log      zerolog.Logger
}

// NewGateway creates a gateway over the given model with the default retry policy.
func NewGateway(model Model) *RetryingGateway {
	return &RetryingGateway{
		model:    model,
		attempts: maxAttempts,
		delay:    retryDelay,
		log:      logger.WithComponent("llm-gateway"),
	}
}

// NewGatewayWithPolicy creates a gateway with an explicit retry policy (for testing).
func NewGatewayWithPolicy(model Model, attempts int, delay time.Duration) *RetryingGateway {
	return &RetryingGateway{
		model:    model,
		attempts: attempts,
		delay:    delay,
		log:      logger.WithComponent("llm-gateway"),
	}
}

// Generate appends the output-language directive and issues the request.
func (g *RetryingGateway) Generate(ctx context.Context, prompt, languageCode string) (string, error) {
	directed := fmt.Sprintf("%s\n\nRespond exclusively in %s.", prompt, locale.LanguageName(languageCode))
	return g.generate(ctx, directed)
}

// GenerateRaw issues the request with the prompt unmodified.
func (g *RetryingGateway) GenerateRaw(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, prompt)
}

func (g *RetryingGateway) generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= g.attempts; attempt++ {
		text, err := g.model.GenerateText(ctx, prompt)
		if err == nil {
			g.log.Debug().
				Int("attempt", attempt).
				Int("prompt_length", len(prompt)).
				Int("response_length", len(text)).
				Msg("Generation succeeded")
			return text, nil
		}

		if !IsTransient(err) {
			g.log.Error().
				Err(err).
				Int("attempt", attempt).
				Msg("Non-transient generation failure, not retrying")
			return "", err
		}

		lastErr = err
		if attempt == g.attempts {
			break
		}

		g.log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", g.attempts).
			Dur("delay", g.delay).
			Msg("Transient generation failure, retrying")

		select {
		case <-ctx.Done():
			return "", lastErr
		case <-time.After(g.delay):
		}
	}

	g.log.Error().
		Err(lastErr).
		Int("attempts", g.attempts).
		Msg("Generation failed after exhausting retries")

	// The final attempt's failure is surfaced unchanged.
	return "", lastErr
}
