// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/alphadepth-go/internal/config"
)

var (
	// Mode and configuration
	serveMode  = flag.Bool("serve", false, "Run the HTTP server instead of batch mode")
	configFile = flag.String("config", "", "YAML configuration file (flags override its values)")
	addr       = flag.String("addr", ":3000", "Listen address for -serve")

	// Batch options
	workers            = flag.Int("j", 0, "Number of inspection workers (0 = one per CPU)")
	includeMoves       = flag.Bool("moves", false, "List the legal moves in every snapshot")
	suppressDuplicates = flag.Bool("D", false, "Suppress positions already seen in this run")
	outputFile         = flag.String("o", "", "Output file (default: stdout)")
	jsonArray          = flag.Bool("J", false, "Write one JSON array instead of JSON lines")

	// Logging
	logLevel  = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormat = flag.String("log-format", "console", "Log format: console or json")
	logFile   = flag.String("l", "", "Write log to this file (default: stderr)")

	// Other
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// explicitFlags returns the names of the flags given on the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags copies command-line flags onto cfg. With a config file only the
// flags in set override it; without one every flag applies.
func applyFlags(cfg *config.Config, set map[string]bool) {
	use := func(name string) bool {
		return *configFile == "" || set[name]
	}

	if use("addr") {
		cfg.Server.Addr = *addr
	}
	if use("j") {
		cfg.Inspect.Workers = *workers
	}
	if use("moves") {
		cfg.Inspect.IncludeMoves = *includeMoves
	}
	if use("D") {
		cfg.Duplicate.Suppress = *suppressDuplicates
	}
	if use("J") {
		if *jsonArray {
			cfg.Output.Format = config.JSONArray
		} else {
			cfg.Output.Format = config.JSONLines
		}
	}
	if use("log-level") {
		cfg.Log.Level = *logLevel
	}
	if use("log-format") {
		cfg.Log.Format = config.LogFormat(*logFormat)
	}
}
