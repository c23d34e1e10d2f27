package worker

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// LoadSource reads a position from a saved-game file, or parses it as FEN
// when it contains a space.
func LoadSource(source string) (*engine.Game, error) {
	if strings.ContainsRune(strings.TrimSpace(source), ' ') {
		return engine.NewGameFromFEN(source)
	}
	return storage.LoadFile(source)
}

// AnalyzeItem loads an item and reports the status of the side to move.
func AnalyzeItem(item WorkItem) ProcessResult {
	res := ProcessResult{Source: item.Source, Index: item.Index}
	g, err := LoadSource(item.Source)
	if err != nil {
		res.Err = err
		return res
	}
	res.Game = g
	res.Status = g.Status()
	res.Moves = len(g.LegalMoves(g.ToMove()))
	return res
}

// Analyze runs fn over every source with the given number of workers and
// returns the results in source order. With stopOnError set, sources not yet
// started when an error is seen are skipped and have no Game or Err.
func Analyze(sources []string, workers int, stopOnError bool, fn ProcessFunc) []ProcessResult {
	pool := NewPool(fn, WithWorkers(workers), WithBufferSize(2*workers))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, src := range sources {
			if !pool.Submit(WorkItem{Source: src, Index: i}) {
				return
			}
		}
	}()

	results := make([]ProcessResult, len(sources))
	for i, src := range sources {
		results[i] = ProcessResult{Source: src, Index: i}
	}
	for res := range pool.Results() {
		if res.Err != nil && stopOnError {
			pool.Stop()
		}
		results[res.Index] = res
	}
	return results
}
