package config

import (
	"fmt"

	"github.com/lgbarn/alphadepth-go/internal/errors"
)

// OutputFormat selects how batch results are written.
type OutputFormat string

const (
	JSONLines OutputFormat = "jsonl" // One JSON object per line
	JSONArray OutputFormat = "json"  // A single JSON array
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is JSONLines or JSONArray
	Format OutputFormat `yaml:"format"`

	// Indent pretty-prints JSON arrays
	Indent bool `yaml:"indent"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: JSONLines,
	}
}

// Validate checks that the output format is known.
func (o *OutputConfig) Validate() error {
	switch o.Format {
	case JSONLines, JSONArray:
		return nil
	}
	return fmt.Errorf("unknown output format %q: %w", o.Format, errors.ErrInvalidConfig)
}
