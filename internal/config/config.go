package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vikaskrsingh/finai-mitra/internal/logger"
)

// Defaults matching the deployed service configuration.
const (
	DefaultRegion          = "us-central1"
	DefaultModelName       = "gemini-2.5-flash"
	DefaultMaxSummaryWords = 250
)

type Config struct {
	// Google Cloud Configuration
	GCPProjectID  string
	GCPRegion     string
	GCSBucketName string

	// AI Model Configuration
	ModelName       string
	MaxSummaryWords int

	// Feedback export
	FeedbackPath string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		GCPProjectID:    getEnv("GCP_PROJECT_ID", ""),
		GCPRegion:       getEnv("GCP_REGION", DefaultRegion),
		GCSBucketName:   getEnv("GCS_BUCKET_NAME", ""),
		ModelName:       getEnv("GEMINI_MODEL_NAME", DefaultModelName),
		MaxSummaryWords: getEnvInt("MAX_SUMMARY_WORDS", DefaultMaxSummaryWords),
		FeedbackPath:    getEnv("FEEDBACK_PATH", "feedback.txt"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:   getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:       getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.GCPProjectID == "" {
		return fmt.Errorf("GCP_PROJECT_ID is required")
	}
	if c.GCSBucketName == "" {
		return fmt.Errorf("GCS_BUCKET_NAME is required")
	}
	if c.MaxSummaryWords <= 0 {
		return fmt.Errorf("MAX_SUMMARY_WORDS must be positive")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
