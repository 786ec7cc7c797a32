package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "finai-mitra",
	Short: "FinAI Mitra - AI assistant for understanding financial documents",
	Long: `FinAI Mitra is a command-line assistant that makes financial documents
(loan agreements, insurance policies, tax documents) understandable.

It extracts text from PDFs, images and pasted text, verifies the document is
financial, and generates summaries, simplified explanations and financial
planning recommendations in the user's language. Results can optionally be
converted to speech.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("FinAI Mitra executed")

		fmt.Println("Welcome to FinAI Mitra!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
