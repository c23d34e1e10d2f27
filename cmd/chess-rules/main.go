// chess-rules plays a game of chess between two people at one terminal,
// enforcing the rules of movement, check and checkmate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	engine.Debug = *debug

	if *analyzeMode {
		if flag.NArg() == 0 {
			fmt.Fprintf(os.Stderr, "Error: -analyze needs saved games or FEN strings\n")
			os.Exit(2)
		}
		if failed := runAnalysis(cfg, flag.Args(), *failFast); failed > 0 {
			os.Exit(1)
		}
		return
	}

	game, err := startingGame(cfg, *startFEN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := newSession(cfg, game, os.Stdin).run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startingGame loads the configured saved game, or sets up fen, or the
// standard position.
func startingGame(cfg *config.Config, fen string) (*engine.Game, error) {
	switch {
	case cfg.Save.LoadPath != "":
		g, err := loadGame(cfg, cfg.Save.LoadPath)
		if err == nil {
			cfg.Logf(config.GameEvents, "loaded %s", cfg.Save.LoadPath)
		}
		return g, err
	case fen != "":
		return engine.NewGameFromFEN(fen)
	}
	return engine.NewGame(), nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n")
	fmt.Fprintf(os.Stderr, "       chess-rules -analyze [options] saved-game|FEN ...\n\n")
	fmt.Fprintf(os.Stderr, "Two-player chess at the terminal. Moves are typed as coordinates (e2 e4).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n%s", helpText)
}
