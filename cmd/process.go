package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/rs/zerolog"

	"github.com/vikaskrsingh/finai-mitra/internal/config"
	"github.com/vikaskrsingh/finai-mitra/internal/extract"
	"github.com/vikaskrsingh/finai-mitra/internal/locale"
	"github.com/vikaskrsingh/finai-mitra/internal/logger"
	"github.com/vikaskrsingh/finai-mitra/internal/pipeline"
	"github.com/vikaskrsingh/finai-mitra/internal/prompt"
	"github.com/vikaskrsingh/finai-mitra/internal/speech"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Summarize or simplify a financial document",
	Long: `Process a financial document and generate a summary or simplified
explanation in the selected language.

The document is accepted as a PDF, PNG or JPEG file, or as pasted text.
Extracted text is first verified to be financial; non-financial documents are
rejected without generation. Scanned PDFs without an embedded text layer
cannot be read.

Required environment variables:
  GOOGLE_APPLICATION_CREDENTIALS - Path to service account JSON file, OR
  GOOGLE_CREDENTIALS - Inline JSON credentials string
  GCP_PROJECT_ID - Your Google Cloud project ID
  GCS_BUCKET_NAME - Bucket used to stage images for OCR`,
	Example: `  # Summarize a loan agreement in Hindi
  finai-mitra process --file loan.pdf --country India --language hi

  # Simplify a pasted insurance clause
  finai-mitra process --action Simplify --text "The insurer shall..." --country Germany --language de

  # Summarize, then ask a follow-up question
  finai-mitra process --file policy.pdf --question "What is the premium?"

  # Summarize and save the result as speech
  finai-mitra process --file tax.pdf --speak --audio-out summary.mp3`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().String("action", string(prompt.ActionSummarize), "Action to perform (Summarize, Simplify)")
	processCmd.Flags().String("country", "India", "Country context for the document")
	processCmd.Flags().String("language", "en", "Output language code (e.g. en, hi, de, ta)")
	processCmd.Flags().String("file", "", "Path to a PDF, PNG or JPEG document")
	processCmd.Flags().String("text", "", "Pasted document text instead of a file")
	processCmd.Flags().String("question", "", "Follow-up question over the generated output")
	processCmd.Flags().Bool("speak", false, "Also convert the output to speech")
	processCmd.Flags().String("audio-out", "output.mp3", "Destination file for synthesized audio")
	processCmd.Flags().String("voice", "", "Voice name for speech synthesis (default: auto)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("process")

	actionName, _ := cmd.Flags().GetString("action")
	country, _ := cmd.Flags().GetString("country")
	language, _ := cmd.Flags().GetString("language")
	filePath, _ := cmd.Flags().GetString("file")
	pastedText, _ := cmd.Flags().GetString("text")
	question, _ := cmd.Flags().GetString("question")
	speak, _ := cmd.Flags().GetBool("speak")
	audioOut, _ := cmd.Flags().GetString("audio-out")
	voice, _ := cmd.Flags().GetString("voice")

	action, err := prompt.ParseAction(actionName)
	if err != nil {
		return err
	}
	if action == prompt.ActionPlanning {
		return fmt.Errorf("financial planning has its own command, see: finai-mitra plan --help")
	}

	if !locale.Supported(country, language) {
		log.Warn().
			Str("country", country).
			Str("language", language).
			Msg("Language not in the country's catalog, proceeding anyway")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	orchestrator, err := buildPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}

	input, err := buildInput(filePath, pastedText, log)
	if err != nil {
		return err
	}

	log.Info().
		Str("action", string(action)).
		Str("country", country).
		Str("language", language).
		Msg("Starting document processing")

	startTime := time.Now()
	result, err := orchestrator.Run(ctx, pipeline.RunRequest{
		Action:       action,
		Country:      country,
		LanguageCode: language,
		Input:        input,
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("status", string(result.Status)).
		Dur("duration", time.Since(startTime)).
		Msg("Document processing finished")

	printResult(result)
	if result.Status != pipeline.StatusReady {
		return nil
	}

	if question != "" {
		exchange, err := orchestrator.Ask(ctx, question, language)
		if err != nil {
			return fmt.Errorf("question answering failed: %w", err)
		}
		fmt.Println()
		fmt.Printf("Q: %s\n", exchange.Question)
		fmt.Printf("A: %s\n", exchange.Answer)
	}

	if speak {
		if err := synthesizeToFile(ctx, result.Output, language, voice, audioOut, log); err != nil {
			return err
		}
	}

	return nil
}

// buildInput reads the optional file and classifies it by extension.
func buildInput(filePath, pastedText string, log zerolog.Logger) (extract.Input, error) {
	if filePath == "" {
		return extract.Input{PastedText: pastedText}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("Failed to read input file")
		return extract.Input{}, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	if len(data) == 0 {
		return extract.Input{}, fmt.Errorf("file is empty: %s", filePath)
	}

	ext := strings.TrimPrefix(filepath.Ext(filePath), ".")
	kind := extract.KindFromExtension(ext)
	if kind == "" {
		return extract.Input{}, fmt.Errorf("unsupported file type %q (supported: pdf, png, jpg, jpeg, txt)", ext)
	}

	return extract.Input{
		File: &extract.Document{
			Name: filepath.Base(filePath),
			Kind: kind,
			Data: data,
		},
		PastedText: pastedText,
	}, nil
}

func printResult(result pipeline.RunResult) {
	fmt.Println(strings.Repeat("=", 80))
	switch result.Status {
	case pipeline.StatusReady:
		fmt.Println(result.Output)
	case pipeline.StatusRejected:
		fmt.Println(result.Output)
	case pipeline.StatusNoText:
		fmt.Println(result.ErrorMessage)
	case pipeline.StatusError:
		if result.Output != "" {
			fmt.Println(result.Output)
		} else {
			fmt.Println(result.ErrorMessage)
		}
	}
	fmt.Println(strings.Repeat("=", 80))
}

// synthesizeToFile converts text to MP3 and writes it to outPath.
func synthesizeToFile(ctx context.Context, text, language, voice, outPath string, log zerolog.Logger) error {
	synthesizer, err := speech.NewGoogleSynthesizer(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Text-to-Speech client")
		return fmt.Errorf("failed to create speech client: %w", err)
	}

	audio, err := synthesizer.Synthesize(ctx, text, locale.SpeechTag(language), voice)
	if err != nil {
		log.Error().Err(err).Msg("Speech synthesis failed")
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	if len(audio) == 0 {
		fmt.Println("No audio generated: nothing to speak.")
		return nil
	}

	if err := os.WriteFile(outPath, audio, 0o644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	log.Info().
		Str("file", outPath).
		Int("bytes", len(audio)).
		Msg("Audio written successfully")
	fmt.Printf("Audio saved to %s\n", outPath)
	return nil
}
