package main

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// runAnalysis reports the status of every source, one line each, and
// returns the number that could not be read.
func runAnalysis(cfg *config.Config, sources []string, stopOnError bool) int {
	results := worker.Analyze(sources, cfg.Workers, stopOnError, worker.AnalyzeItem)

	failed := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(cfg.OutputFile, "%s: error\n", res.Source)
			cfg.Logf(config.GameEvents, "%s: %v", res.Source, res.Err)
		case res.Game == nil:
			fmt.Fprintf(cfg.OutputFile, "%s: skipped\n", res.Source)
		default:
			fmt.Fprintf(cfg.OutputFile, "%s: %s\n", res.Source, summarize(res))
		}
	}
	cfg.Logf(config.GameEvents, "analysed %d positions, %d unreadable", len(sources), failed)
	return failed
}

// summarize describes a result, e.g. "Black to move, in check, 3 legal moves".
func summarize(res worker.ProcessResult) string {
	parts := []string{fmt.Sprintf("%s to move", res.Status.Side)}
	switch {
	case res.Status.Checkmate:
		parts = append(parts, "checkmate")
	case res.Status.Stalemate:
		parts = append(parts, "stalemate")
	case res.Status.Check:
		parts = append(parts, "in check")
	}
	if p := res.Game.PendingPromotion(); p != nil {
		parts = append(parts, fmt.Sprintf("promotion pending on %s", p.Square()))
	}
	parts = append(parts, fmt.Sprintf("%d legal moves", res.Moves))
	return strings.Join(parts, ", ")
}
