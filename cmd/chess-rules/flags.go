// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file for boards and messages (default: stdout)")
	renderMode = flag.String("render", "text", "Board display: text, svg, none")
	asciiBoard = flag.Bool("ascii", false, "Draw the text board with letters instead of chess symbols")
	flipBoard  = flag.Bool("flip", false, "Draw the board from Black's side")
	svgFile    = flag.String("svg", "", "Write an SVG diagram to this file after every move (implies -render svg)")
	svgSize    = flag.Int("svgsize", 360, "SVG diagram size in pixels")

	// Game setup
	startFEN = flag.String("fen", "", "Start from this FEN position")
	loadFile = flag.String("load", "", "Resume the game saved in this file")

	// Saving
	saveFormat = flag.String("format", "json", "Format for save files without a known extension: json, yaml")
	autoSave   = flag.String("autosave", "", "Save the game to this file after every move")

	// Batch analysis
	analyzeMode = flag.Bool("analyze", false, "Analyse the saved games or FEN strings given as arguments and exit")
	failFast    = flag.Bool("failfast", false, "Stop batch analysis at the first unreadable position")
	workers     = flag.Int("workers", 0, "Number of analysis workers (0 = auto-detect based on CPU cores)")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	verbose = flag.Bool("v", false, "Log every move verdict")
	debug   = flag.Bool("debug", false, "Check board invariants after every trial move")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyDisplayFlags(cfg); err != nil {
		return err
	}
	if err := applySaveFlags(cfg); err != nil {
		return err
	}
	applyWorkerFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Commentary
	}
	return nil
}

// applyDisplayFlags configures how the board is shown.
func applyDisplayFlags(cfg *config.Config) error {
	mode, err := config.ParseRenderMode(*renderMode)
	if err != nil {
		return err
	}
	cfg.Display.Mode = mode
	cfg.Display.ASCII = *asciiBoard
	cfg.Display.Flip = *flipBoard
	cfg.Display.SVGSize = *svgSize
	if *svgFile != "" {
		cfg.Display.Mode = config.RenderSVG
		cfg.Display.SVGPath = *svgFile
	}
	return nil
}

// applySaveFlags configures saving and loading.
func applySaveFlags(cfg *config.Config) error {
	format, err := storage.ParseFormat(*saveFormat)
	if err != nil {
		return err
	}
	cfg.Save.Format = format
	cfg.Save.AutoSavePath = *autoSave
	cfg.Save.LoadPath = *loadFile
	return nil
}

// applyWorkerFlags sets the analysis worker count.
func applyWorkerFlags(cfg *config.Config) {
	n := *workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	cfg.Workers = n
}
