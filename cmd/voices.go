package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vikaskrsingh/finai-mitra/internal/locale"
	"github.com/vikaskrsingh/finai-mitra/internal/logger"
	"github.com/vikaskrsingh/finai-mitra/internal/speech"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List available text-to-speech voices for a language",
	Example: `  # List Hindi voices
  finai-mitra voices --language hi`,
	RunE: runVoices,
}

func init() {
	rootCmd.AddCommand(voicesCmd)

	voicesCmd.Flags().String("language", "en", "Language code (e.g. en, hi, de, ta)")
}

func runVoices(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("voices")

	language, _ := cmd.Flags().GetString("language")
	tag := locale.SpeechTag(language)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	synthesizer, err := speech.NewGoogleSynthesizer(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Text-to-Speech client")
		return fmt.Errorf("failed to create speech client: %w", err)
	}

	names, err := synthesizer.ListVoices(ctx, tag)
	if err != nil {
		log.Error().Err(err).Str("language_tag", tag).Msg("Failed to list voices")
		return fmt.Errorf("failed to list voices: %w", err)
	}

	fmt.Printf("Voices for %s:\n", tag)
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
