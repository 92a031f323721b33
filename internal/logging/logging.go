// Package logging builds the zerolog loggers used by the server and the
// batch tool.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/alphadepth-go/internal/config"
	"github.com/lgbarn/alphadepth-go/internal/errors"
)

// New returns a logger writing to w at the configured level and format.
// Console output is uncoloured so that it stays readable when redirected.
func New(cfg *config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(errors.ErrInvalidConfig, "log level %q", cfg.Level)
	}

	if cfg.Format == config.ConsoleFormat {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
