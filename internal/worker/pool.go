// Package worker provides a worker pool for analysing many positions in
// parallel. Every job loads its own Game, so workers share no board state.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// WorkItem is one position to analyse: a saved-game path or a FEN string.
type WorkItem struct {
	Source string
	Index  int // position in the caller's list
}

// ProcessResult is the analysis of one position.
type ProcessResult struct {
	Source string
	Index  int
	Game   *engine.Game  // nil when the source could not be loaded
	Status engine.Status // side to move
	Moves  int           // legal moves for the side to move
	Err    error
}

// ProcessFunc analyses a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	process    ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
	closing sync.Once
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the item and result buffer size. Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool running process. By default there is 1 worker and
// a buffer of 10.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{numWorkers: 1, bufferSize: 10, process: process}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		// Queued items are drained unprocessed once stopped.
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the buffer is full. It returns
// false without queueing once the pool is stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	p.items <- item
	return true
}

// Stop makes workers skip every item not yet started. Results already
// produced are still delivered.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
// It is safe to call more than once.
func (p *Pool) Close() {
	p.closing.Do(func() {
		close(p.items)
		p.wg.Wait()
		close(p.results)
	})
}

// Results delivers processed items in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
