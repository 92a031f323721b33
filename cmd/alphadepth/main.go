// alphadepth inspects chess positions given as FEN, either in batch from
// files and stdin or as an HTTP service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/lgbarn/alphadepth-go/internal/config"
	"github.com/lgbarn/alphadepth-go/internal/logging"
	"github.com/lgbarn/alphadepth-go/internal/position"
)

const programVersion = "1.0.0"

// Exit statuses.
const (
	exitOK      = 0
	exitInvalid = 1 // Some input lines were rejected
	exitFailure = 2 // Setup or I/O failure
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("alphadepth version %s\n", programVersion)
		os.Exit(exitOK)
	}

	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}
	applyFlags(cfg, explicitFlags())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	// Set up logging and output files
	closers, err := setupFiles(cfg)
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	log, err := logging.New(cfg.Log, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := position.New(position.WithConfig(cfg.Inspect), position.WithLogger(log))

	if *serveMode {
		if err := serve(ctx, cfg, svc, log); err != nil {
			log.Error().Err(err).Msg("server failed")
			return exitFailure
		}
		return exitOK
	}

	if cfg.Inspect.Workers == 0 {
		cfg.Inspect.Workers = runtime.NumCPU()
	}
	stats, err := runBatch(ctx, cfg, svc, log, args)
	if err != nil {
		log.Error().Err(err).Msg("batch failed")
		return exitFailure
	}
	if stats.invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

// loadConfig reads -config if given, otherwise returns the defaults.
func loadConfig() (*config.Config, error) {
	if *configFile == "" {
		return config.NewConfig(), nil
	}
	return config.LoadFile(*configFile)
}

type closer interface{ Close() error }

// setupFiles opens the -o and -l files. The returned closers must be closed
// even when an error is returned.
func setupFiles(cfg *config.Config) ([]closer, error) {
	var closers []closer

	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			return closers, fmt.Errorf("creating output file %s: %w", *outputFile, err)
		}
		closers = append(closers, file)
		cfg.SetOutput(file)
	}

	if *logFile != "" {
		file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return closers, fmt.Errorf("opening log file %s: %w", *logFile, err)
		}
		closers = append(closers, file)
		cfg.SetLogFile(file)
	}

	return closers, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: alphadepth [options] [fen-files...]\n")
	fmt.Fprintf(os.Stderr, "       alphadepth -serve [-addr :3000]\n\n")
	fmt.Fprintf(os.Stderr, "Inspects chess positions given in Forsyth-Edwards Notation.\n")
	fmt.Fprintf(os.Stderr, "Batch mode reads one FEN per line from the files (or stdin, or \"-\"),\n")
	fmt.Fprintf(os.Stderr, "skipping blank lines and lines starting with '#', and writes one JSON\n")
	fmt.Fprintf(os.Stderr, "record per position in input order.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nHTTP routes (-serve):\n")
	fmt.Fprintf(os.Stderr, "  GET  /api/health\n")
	fmt.Fprintf(os.Stderr, "  GET  /api/game-info?fen=FEN\n")
	fmt.Fprintf(os.Stderr, "  POST /api/inspect  {\"fen\", \"history\", \"includeMoves\"}\n")
	fmt.Fprintf(os.Stderr, "  POST /api/move     {\"fen\", \"move\", \"history\"}\n")
	fmt.Fprintf(os.Stderr, "\nExit status: 0 ok, 1 some lines were invalid, 2 failure.\n")
}
