// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels for the log stream.
const (
	Quiet      = 0 // nothing
	GameEvents = 1 // checks, mates, saves and loads
	Commentary = 2 // every verdict, including rejected moves
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Display settings for the board shown after every move
	Display DisplayConfig

	// Save settings for the save and load commands
	Save SaveConfig

	// Workers is the number of goroutines used by batch analysis.
	Workers int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  GameEvents,
		Display:    *NewDisplayConfig(),
		Save:       *NewSaveConfig(),
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream boards and prompts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line to LogFile if the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w", c.Verbosity, Quiet, Commentary, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	return c.Save.Validate()
}
