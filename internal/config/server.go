package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/alphadepth-go/internal/errors"
)

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":3000"
	Addr string `yaml:"addr"`

	// ReadTimeout bounds reading a whole request, body included
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout bounds writing a response
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// ShutdownTimeout is how long in-flight requests get after a signal
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxBodyBytes caps the size of a JSON request body
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":3000",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxBodyBytes:    1 << 20,
	}
}

// Validate checks that the server configuration is usable.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive (read %v, write %v): %w",
			s.ReadTimeout, s.WriteTimeout, errors.ErrInvalidConfig)
	}
	if s.ShutdownTimeout < 0 {
		return fmt.Errorf("negative shutdown timeout %v: %w", s.ShutdownTimeout, errors.ErrInvalidConfig)
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes (%d) must be positive: %w", s.MaxBodyBytes, errors.ErrInvalidConfig)
	}
	return nil
}
