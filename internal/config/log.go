package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/alphadepth-go/internal/errors"
)

// LogFormat selects the log encoding.
type LogFormat string

const (
	ConsoleFormat LogFormat = "console" // Human-readable lines
	JSONFormat    LogFormat = "json"    // One JSON object per event
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled
	Level string `yaml:"level"`

	// Format is ConsoleFormat or JSONFormat
	Format LogFormat `yaml:"format"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: ConsoleFormat,
	}
}

// Validate checks the level name and format.
func (l *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch l.Format {
	case ConsoleFormat, JSONFormat:
		return nil
	}
	return fmt.Errorf("unknown log format %q: %w", l.Format, errors.ErrInvalidConfig)
}
