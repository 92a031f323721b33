package config

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/alphadepth-go/internal/errors"
)

// TestNewConfig_Defaults verifies every sub-config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Server.Addr != ":3000" {
		t.Errorf("Server.Addr = %q, want :3000", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Inspect.Workers != 0 {
		t.Errorf("Inspect.Workers = %d, want 0", cfg.Inspect.Workers)
	}
	if cfg.Inspect.IncludeMoves {
		t.Error("Inspect.IncludeMoves should be false by default")
	}
	if cfg.Output.Format != JSONLines {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, JSONLines)
	}
	if cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be false by default")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != ConsoleFormat {
		t.Errorf("Log = %+v, want info/console", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_Validate verifies validation of each sub-config
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty address", func(c *Config) { c.Server.Addr = "" }},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }},
		{"negative shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }},
		{"zero body limit", func(c *Config) { c.Server.MaxBodyBytes = 0 }},
		{"negative workers", func(c *Config) { c.Inspect.Workers = -1 }},
		{"negative history limit", func(c *Config) { c.Inspect.MaxHistory = -5 }},
		{"unknown output format", func(c *Config) { c.Output.Format = "xml" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
		{"unknown log format", func(c *Config) { c.Log.Format = "logfmt" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)
	cfg.SetLogFile(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != buf {
		t.Error("SetLogFile did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithAddr(":9000").
		WithWorkers(8).
		WithMoves(true).
		WithOutputFormat(JSONArray).
		WithDuplicateSuppression(true).
		WithLogLevel("warn").
		WithLogFormat(JSONFormat).
		Build()

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Inspect.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Inspect.Workers)
	}
	if !cfg.Inspect.IncludeMoves {
		t.Error("IncludeMoves should be true")
	}
	if cfg.Output.Format != JSONArray {
		t.Errorf("Format = %q, want json", cfg.Output.Format)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != JSONFormat {
		t.Errorf("Log = %+v, want warn/json", cfg.Log)
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("testdata/full.yaml")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	want := &ServerConfig{
		Addr:            "127.0.0.1:8080",
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    4 * time.Second,
		ShutdownTimeout: time.Second,
		MaxBodyBytes:    4096,
	}
	if *cfg.Server != *want {
		t.Errorf("Server = %+v, want %+v", cfg.Server, want)
	}
	if cfg.Inspect.Workers != 4 || !cfg.Inspect.IncludeMoves || cfg.Inspect.MaxHistory != 200 {
		t.Errorf("Inspect = %+v", cfg.Inspect)
	}
	if cfg.Output.Format != JSONArray || !cfg.Output.Indent {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if !cfg.Duplicate.Suppress {
		t.Error("Duplicate.Suppress should be true")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != JSONFormat {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader("inspect:\n  workers: 2\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Inspect.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Inspect.Workers)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("Addr = %q, want default :3000", cfg.Server.Addr)
	}
	if cfg.Inspect.MaxHistory != 1024 {
		t.Errorf("MaxHistory = %d, want default 1024", cfg.Inspect.MaxHistory)
	}
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load(empty) error = %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "server:\n  port: 80\n"},
		{"bad duration", "server:\n  read_timeout: soon\n"},
		{"wrong type", "inspect:\n  workers: many\n"},
		{"fails validation", "log:\n  level: shouting\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("testdata/does-not-exist.yaml"); err == nil {
		t.Error("LoadFile(missing) = nil error")
	}
}
