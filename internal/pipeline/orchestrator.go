// Package pipeline sequences text extraction, financial classification,
// prompt building and generation for one user session.
//
// One synchronous run at a time: extraction feeds classification, the
// classification gate decides whether generation happens at all, and the
// generated output becomes the grounding context for follow-on Q&A. External
// failures never cross this package's boundary unconverted; every run ends in
// one of the RunResult statuses or a sentinel error.
package pipeline

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vikaskrsingh/finai-mitra/internal/classify"
	"github.com/vikaskrsingh/finai-mitra/internal/extract"
	"github.com/vikaskrsingh/finai-mitra/internal/llm"
	"github.com/vikaskrsingh/finai-mitra/internal/logger"
	"github.com/vikaskrsingh/finai-mitra/internal/prompt"
)

// Status is the terminal outcome of one run.
type Status string

const (
	// StatusReady: generation succeeded, Q&A is available.
	StatusReady Status = "ready"
	// StatusRejected: the document was classified as non-financial.
	StatusRejected Status = "rejected"
	// StatusNoText: extraction produced no text; not an error.
	StatusNoText Status = "no_text"
	// StatusError: a service failure or invalid model response.
	StatusError Status = "error"
)

// User-facing messages for the non-Ready outcomes.
const (
	notFinancialMessage = "Document not recognized as financial. " +
		"FinAI Mitra is specifically designed to understand and process financial documents " +
		"(e.g., loan agreements, insurance policies, tax documents). Please upload a relevant financial document."

	noTextMessage = "No readable text could be extracted from the document or input was empty. " +
		"Please ensure it's clear and well-formatted."

	invalidResponseMessage = "AI generated an invalid response. Please retry with a clearer document."

	aiFailedMessage = "AI processing failed. Please try again."
)

// RunRequest describes one pipeline run. Country and LanguageCode select the
// prompt template; the input is a file, pasted text, or (invalidly) neither.
type RunRequest struct {
	Action       prompt.Action
	Country      string
	LanguageCode string
	Input        extract.Input
}

// RunResult is what the UI layer consumes.
type RunResult struct {
	Status       Status
	Output       string
	ErrorMessage string
}

// TextExtractor is the extraction stage as the orchestrator sees it.
type TextExtractor interface {
	Extract(ctx context.Context, in extract.Input) (string, error)
}

// FinancialClassifier is the gating stage as the orchestrator sees it.
type FinancialClassifier interface {
	IsFinancial(ctx context.Context, text, languageHint string) classify.Result
}

// Orchestrator drives the pipeline and owns the session state.
type Orchestrator struct {
	extractor  TextExtractor
	classifier FinancialClassifier
	builder    *prompt.Builder
	gateway    llm.Gateway
	session    Session
	log        zerolog.Logger
}

// NewOrchestrator wires the pipeline stages together around a fresh session.
func NewOrchestrator(extractor TextExtractor, classifier FinancialClassifier, builder *prompt.Builder, gateway llm.Gateway) *Orchestrator {
	return &Orchestrator{
		extractor:  extractor,
		classifier: classifier,
		builder:    builder,
		gateway:    gateway,
		log:        logger.WithComponent("pipeline"),
	}
}

// Session returns a snapshot of the current session state.
func (o *Orchestrator) Session() Session {
	return o.session
}

// Run executes one full pipeline pass. Previous results are cleared before
// extraction begins, even if this run subsequently fails.
func (o *Orchestrator) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	o.session.reset()

	if req.Input.Empty() {
		o.log.Warn().Msg("No input provided by user")
		return RunResult{}, ErrNoInputProvided
	}

	o.log.Info().
		Str("action", string(req.Action)).
		Str("country", req.Country).
		Str("language", req.LanguageCode).
		Msg("Processing initiated")

	// Extracting
	o.session.State = StateExtracting
	text, err := o.extractor.Extract(ctx, req.Input)
	if err != nil {
		// Unsupported media kind is the only hard extraction failure; I/O
		// problems degrade to empty text inside the extractor.
		o.session.State = StateIdle
		o.log.Warn().Err(err).Msg("Extraction rejected the input")
		return RunResult{Status: StatusError, ErrorMessage: err.Error()}, nil
	}
	if strings.TrimSpace(text) == "" {
		o.session.State = StateIdle
		o.log.Warn().Msg("No text extracted for processing")
		return RunResult{Status: StatusNoText, ErrorMessage: noTextMessage}, nil
	}
	o.session.ExtractedText = text
	o.log.Info().Int("text_length", len(text)).Msg("Text extracted successfully")

	// Classifying
	o.session.State = StateClassifying
	result := o.classifier.IsFinancial(ctx, text, req.LanguageCode)
	o.session.Classification = result
	if !result.Financial {
		o.session.ProcessedOutput = notFinancialMessage
		o.session.State = StateIdle
		o.log.Info().Msg("Document classified as non-financial, stopping further processing")
		return RunResult{Status: StatusRejected, Output: notFinancialMessage}, nil
	}

	// Prompting
	o.session.State = StatePrompting
	mainPrompt := o.builder.Build(req.Action, text, req.Country, req.LanguageCode)

	// Generating
	o.session.State = StateGenerating
	output, err := o.gateway.Generate(ctx, mainPrompt, req.LanguageCode)
	if err != nil {
		o.session.State = StateIdle
		o.log.Error().Err(err).Msg("Generation failed")
		return RunResult{Status: StatusError, ErrorMessage: aiFailedMessage}, nil
	}

	// Heuristic guard against empty or self-reported-error responses; the
	// user gets a retry message instead of raw model output.
	if !validOutput(output) {
		o.session.ProcessedOutput = invalidResponseMessage
		o.session.State = StateIdle
		o.log.Warn().Msg("AI response validation failed, possible hallucination detected")
		return RunResult{Status: StatusError, Output: invalidResponseMessage, ErrorMessage: invalidResponseMessage}, nil
	}

	o.session.ProcessedOutput = output
	o.session.CurrentSummary = output
	o.session.State = StateReady
	o.log.Info().Str("action", string(req.Action)).Msg("Document processing completed successfully")
	return RunResult{Status: StatusReady, Output: output}, nil
}

// Ask answers a question grounded on the current output. Only permitted once
// a run has reached Ready.
func (o *Orchestrator) Ask(ctx context.Context, question, languageCode string) (QAExchange, error) {
	if o.session.State != StateReady || o.session.CurrentSummary == "" {
		o.log.Warn().Msg("Q&A attempted without a processed document")
		return QAExchange{}, ErrNoSummaryAvailable
	}

	qaPrompt := o.builder.QA(o.session.CurrentSummary, question, languageCode)
	answer, err := o.gateway.Generate(ctx, qaPrompt, languageCode)
	if err != nil {
		o.log.Error().Err(err).Msg("Q&A generation failed")
		return QAExchange{}, err
	}

	exchange := QAExchange{Question: question, Answer: answer}
	o.session.LastQA = &exchange
	o.log.Info().Msg("Q&A answer generated successfully")
	return exchange, nil
}

// Recommend produces a financial-planning recommendation for a user profile.
// It is not gated by classification; any current output is used as context
// and the recommendation replaces it as the live output and Q&A grounding.
func (o *Orchestrator) Recommend(ctx context.Context, profile prompt.Profile, country, languageCode string) (string, error) {
	planPrompt := o.builder.Recommendation(profile, country, languageCode, o.session.ProcessedOutput)

	response, err := o.gateway.Generate(ctx, planPrompt, languageCode)
	if err != nil {
		o.log.Error().Err(err).Msg("Recommendation generation failed")
		return "", err
	}

	o.session.ProcessedOutput = response
	o.session.CurrentSummary = response
	o.session.State = StateReady
	o.log.Info().Msg("Recommendations generated")
	return response, nil
}

// validOutput rejects empty responses and responses that talk about errors,
// which in practice are refusals or failures the model narrated instead of
// returning content.
func validOutput(output string) bool {
	if strings.TrimSpace(output) == "" {
		return false
	}
	return !strings.Contains(strings.ToLower(output), "error")
}
