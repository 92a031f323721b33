package config

import (
	"fmt"

	"github.com/lgbarn/alphadepth-go/internal/errors"
)

// InspectConfig holds settings for position inspection.
type InspectConfig struct {
	// Workers is the number of batch workers (0 = one per CPU)
	Workers int `yaml:"workers"`

	// IncludeMoves lists the legal moves in every snapshot, not just their count
	IncludeMoves bool `yaml:"include_moves"`

	// MaxHistory caps the number of history keys accepted per request (0 = no limit)
	MaxHistory int `yaml:"max_history"`
}

// NewInspectConfig creates an InspectConfig with default values.
func NewInspectConfig() *InspectConfig {
	return &InspectConfig{
		MaxHistory: 1024,
	}
}

// Validate checks that the inspect configuration is valid.
func (i *InspectConfig) Validate() error {
	if i.Workers < 0 {
		return fmt.Errorf("negative worker count (%d): %w", i.Workers, errors.ErrInvalidConfig)
	}
	if i.MaxHistory < 0 {
		return fmt.Errorf("negative history limit (%d): %w", i.MaxHistory, errors.ErrInvalidConfig)
	}
	return nil
}
