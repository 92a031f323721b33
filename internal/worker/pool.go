// Package worker provides a worker pool for inspecting FEN positions in parallel.
package worker

import (
	"context"
	"sync"

	"github.com/lgbarn/alphadepth-go/internal/position"
)

// WorkItem is one FEN line read from the input.
type WorkItem struct {
	Index int    // Sequence number among submitted items, from 0
	Line  int    // 1-based line number in the source
	FEN   string // FEN text as read, trimmed
}

// ProcessResult is the outcome of inspecting one WorkItem.
type ProcessResult struct {
	Index    int
	Line     int
	FEN      string
	Snapshot *position.Snapshot // nil when Error is set
	Error    error
}

// ProcessFunc inspects a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed number of goroutines.
// Results arrive on Results in completion order; use Ordered to restore
// submission order.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	submitted   int
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. Default: 1 worker, buffer size of 64.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  64,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Once ctx is cancelled the workers
// drain the remaining items without processing them.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if ctx.Err() != nil {
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a FEN line for processing and returns its sequence number.
// It blocks while the work buffer is full. Submit must not be called
// concurrently or after Close.
func (p *Pool) Submit(line int, fen string) int {
	idx := p.submitted
	p.submitted++
	p.workChan <- WorkItem{Index: idx, Line: line, FEN: fen}
	return idx
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once the workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
