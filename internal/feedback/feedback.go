// Package feedback persists free-form user feedback to a local file.
package feedback

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

// Recorder appends feedback entries to a text file, one timestamped line per
// entry. The file is created on first use.
type Recorder struct {
	path string
	log  zerolog.Logger
}

// NewRecorder returns a recorder writing to the given file path.
func NewRecorder(path string) *Recorder {
	return &Recorder{
		path: path,
		log:  logger.WithComponent("feedback"),
	}
}

// Record appends one feedback entry. Blank feedback is rejected.
func (r *Recorder) Record(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("feedback text is empty")
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.log.Error().Err(err).Str("path", r.path).Msg("Failed to open feedback file")
		return fmt.Errorf("open feedback file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s: %s\n", time.Now().Format(time.RFC3339), text)
	if _, err := f.WriteString(line); err != nil {
		r.log.Error().Err(err).Str("path", r.path).Msg("Failed to write feedback")
		return fmt.Errorf("write feedback: %w", err)
	}

	r.log.Info().Str("path", r.path).Msg("Feedback recorded")
	return nil
}
