package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

var speakCmd = &cobra.Command{
	Use:   "speak [text]",
	Short: "Convert text to speech",
	Long: `Convert text to an MP3 file using Google Cloud Text-to-Speech.

For unspecified voices a higher-quality Neural2 voice is tried first, falling
back to the language's standard voice if it is unavailable.

Required environment variables:
  GOOGLE_APPLICATION_CREDENTIALS - Path to service account JSON file, OR
  GOOGLE_CREDENTIALS - Inline JSON credentials string`,
	Example: `  # Speak a Hindi summary
  finai-mitra speak "यह आपके ऋण का सारांश है" --language hi --out summary.mp3

  # Speak text from a file
  finai-mitra speak --in summary.txt --language de --out summary.mp3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSpeak,
}

func init() {
	rootCmd.AddCommand(speakCmd)

	speakCmd.Flags().String("language", "en", "Language code of the text (e.g. en, hi, de, ta)")
	speakCmd.Flags().String("voice", "", "Voice name (default: auto with premium fallback)")
	speakCmd.Flags().String("in", "", "Read the text from a file instead of an argument")
	speakCmd.Flags().String("out", "output.mp3", "Destination MP3 file")
}

func runSpeak(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("speak")

	language, _ := cmd.Flags().GetString("language")
	voice, _ := cmd.Flags().GetString("voice")
	inPath, _ := cmd.Flags().GetString("in")
	outPath, _ := cmd.Flags().GetString("out")

	var text string
	switch {
	case inPath != "":
		data, err := os.ReadFile(inPath)
		if err != nil {
			return fmt.Errorf("failed to read text file %s: %w", inPath, err)
		}
		text = string(data)
	case len(args) == 1:
		text = args[0]
	default:
		return fmt.Errorf("provide the text as an argument or via --in")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return synthesizeToFile(ctx, text, language, voice, outPath, log)
}
