// batch.go - Batch inspection of FEN lines from files and stdin
package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/alphadepth-go/internal/config"
	"github.com/lgbarn/alphadepth-go/internal/errors"
	"github.com/lgbarn/alphadepth-go/internal/hashing"
	"github.com/lgbarn/alphadepth-go/internal/output"
	"github.com/lgbarn/alphadepth-go/internal/position"
	"github.com/lgbarn/alphadepth-go/internal/worker"
)

// stdin is read when no input files are named, or for "-".
var stdin io.Reader = os.Stdin

// maxLineBytes bounds a single input line.
const maxLineBytes = 64 * 1024

// batchStats summarises a batch run.
type batchStats struct {
	total      int // Positions read
	invalid    int // Lines rejected
	duplicates int // Positions suppressed by -D
}

// inspectFunc returns the worker function.
func inspectFunc(svc *position.Service) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Index: item.Index, Line: item.Line, FEN: item.FEN}
		snap, err := svc.Inspect(item.FEN, nil)
		if err != nil {
			result.Error = err
			return result
		}
		result.Snapshot = snap
		return result
	}
}

// runBatch inspects every FEN line of the inputs and writes the results to
// cfg.OutputFile in input order. With -D, later lines repeating an earlier
// position are dropped.
func runBatch(ctx context.Context, cfg *config.Config, svc *position.Service, log zerolog.Logger, args []string) (batchStats, error) {
	var stats batchStats

	// Only touched by the ordered emitter, so the earliest line of a
	// repeated position is the one kept.
	var table *hashing.RepetitionTable
	if cfg.Duplicate.Suppress {
		table = hashing.NewRepetitionTable()
	}

	pool := worker.NewPool(inspectFunc(svc), worker.WithWorkers(cfg.Inspect.Workers))
	pool.Start(ctx)

	out := output.NewWriter(cfg.OutputFile, cfg.Output)

	var g errgroup.Group
	g.Go(func() error {
		defer pool.Close()
		return readInputs(ctx, args, pool, log)
	})
	g.Go(func() error {
		err := worker.Ordered(pool.Results(), func(r worker.ProcessResult) error {
			stats.total++
			switch {
			case r.Error != nil:
				stats.invalid++
				log.Warn().Int("line", r.Line).Str("fen", r.FEN).Err(r.Error).Msg("invalid position")
				return out.WriteError(output.NewErrorRecord(r.Line, r.FEN, r.Error))
			case table != nil && table.CheckAndAdd(r.Snapshot.Hash):
				stats.duplicates++
				log.Debug().Int("line", r.Line).Str("hash", r.Snapshot.Hash).Msg("duplicate position")
				return nil
			}
			return out.WriteSnapshot(r.Snapshot)
		})
		// Unblock the workers if writing failed.
		for range pool.Results() {
		}
		return err
	})

	err := g.Wait()
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return stats, err
	}

	ev := log.Info().
		Int("positions", stats.total).
		Int("invalid", stats.invalid).
		Int("workers", pool.NumWorkers())
	if table != nil {
		ev = ev.Int("duplicates", table.DuplicateCount()).Int("unique", table.UniqueCount())
	}
	ev.Msg("batch complete")
	return stats, nil
}

// readInputs submits the FEN lines of each named file, or of stdin when
// there are none.
func readInputs(ctx context.Context, args []string, pool *worker.Pool, log zerolog.Logger) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, name := range args {
		if name == "-" {
			if err := readFENLines(ctx, "stdin", stdin, pool); err != nil {
				return err
			}
			continue
		}

		file, err := os.Open(name) //nolint:gosec // G304: input files are named by the user
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		log.Debug().Str("file", name).Msg("reading")
		err = readFENLines(ctx, name, file, pool)
		file.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// readFENLines submits every non-blank line of r that is not a # comment.
func readFENLines(ctx context.Context, name string, r io.Reader, pool *worker.Pool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		pool.Submit(line, text)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	return nil
}
