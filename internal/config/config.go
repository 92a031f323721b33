// Package config provides configuration for the alphadepth service and
// batch tool.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds all program configuration. Each concern lives in its own
// sub-config so that YAML files and flags can set them independently.
type Config struct {
	Server    *ServerConfig    `yaml:"server"`
	Inspect   *InspectConfig   `yaml:"inspect"`
	Output    *OutputConfig    `yaml:"output"`
	Duplicate *DuplicateConfig `yaml:"duplicate"`
	Log       *LogConfig       `yaml:"log"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server:     NewServerConfig(),
		Inspect:    NewInspectConfig(),
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Log:        NewLogConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream batch results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the stream log lines are written to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-config. Errors wrap errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	validators := []struct {
		name string
		v    interface{ Validate() error }
	}{
		{"server", c.Server},
		{"inspect", c.Inspect},
		{"output", c.Output},
		{"log", c.Log},
	}
	for _, sub := range validators {
		if err := sub.v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", sub.name, err)
		}
	}
	return nil
}
