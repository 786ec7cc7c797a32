package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vikaskrsingh/finai-mitra/internal/classify"
	"github.com/vikaskrsingh/finai-mitra/internal/config"
	"github.com/vikaskrsingh/finai-mitra/internal/extract"
	"github.com/vikaskrsingh/finai-mitra/internal/llm"
	"github.com/vikaskrsingh/finai-mitra/internal/ocr"
	"github.com/vikaskrsingh/finai-mitra/internal/pipeline"
	"github.com/vikaskrsingh/finai-mitra/internal/prompt"
	"github.com/vikaskrsingh/finai-mitra/internal/storage"
)

// buildPipeline wires the full document pipeline from configuration: object
// storage and OCR for extraction, Gemini behind the retrying gateway for
// classification and generation.
func buildPipeline(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pipeline.Orchestrator, error) {
	store, err := storage.NewGCSStore(ctx, cfg.GCSBucketName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Cloud Storage client")
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	visionService, err := ocr.NewGoogleVisionService(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Vision client")
		return nil, fmt.Errorf("failed to create OCR service: %w", err)
	}

	model, err := llm.NewGeminiModel(ctx, cfg.GCPProjectID, cfg.GCPRegion, cfg.ModelName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create language model: %w", err)
	}

	gateway := llm.NewGateway(model)
	extractor := extract.NewExtractor(store, visionService)
	classifier := classify.NewClassifier(gateway)
	builder := prompt.NewBuilder(cfg.MaxSummaryWords)

	log.Debug().
		Str("model", cfg.ModelName).
		Str("region", cfg.GCPRegion).
		Msg("Pipeline services created successfully")

	return pipeline.NewOrchestrator(extractor, classifier, builder, gateway), nil
}
