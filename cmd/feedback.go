package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vikaskrsingh/finai-mitra/internal/feedback"
	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [text]",
	Short: "Record feedback about the assistant",
	Long:  `Append a feedback entry to the local feedback file (FEEDBACK_PATH, default feedback.txt).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFeedback,
}

func init() {
	rootCmd.AddCommand(feedbackCmd)

	feedbackCmd.Flags().String("path", "", "Feedback file path (overrides FEEDBACK_PATH)")
}

func runFeedback(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("feedback")

	path, _ := cmd.Flags().GetString("path")
	if path == "" {
		path = feedbackPathFromEnv()
	}

	recorder := feedback.NewRecorder(path)
	if err := recorder.Record(args[0]); err != nil {
		log.Error().Err(err).Msg("Failed to record feedback")
		return fmt.Errorf("failed to record feedback: %w", err)
	}

	fmt.Println("Thank you for your feedback!")
	return nil
}

// feedbackPathFromEnv avoids a full configuration load; recording feedback
// needs no cloud credentials.
func feedbackPathFromEnv() string {
	if path := os.Getenv("FEEDBACK_PATH"); path != "" {
		return path
	}
	return "feedback.txt"
}
