package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RenderMode selects how the board is shown.
type RenderMode int

const (
	RenderText RenderMode = iota // Text grid on the output stream
	RenderSVG                    // SVG diagram written to SVGPath
	RenderNone                   // No board
)

var renderModeNames = [...]string{"text", "svg", "none"}

// String returns the flag spelling of the mode.
func (m RenderMode) String() string {
	if m >= RenderText && int(m) < len(renderModeNames) {
		return renderModeNames[m]
	}
	return "unknown"
}

// ParseRenderMode converts "text", "svg" or "none" to a RenderMode.
func ParseRenderMode(s string) (RenderMode, error) {
	for i, name := range renderModeNames {
		if strings.EqualFold(s, name) {
			return RenderMode(i), nil
		}
	}
	return RenderText, fmt.Errorf("unknown render mode %q: %w", s, errors.ErrInvalidConfig)
}

// DisplayConfig holds settings related to showing the board.
type DisplayConfig struct {
	// Mode is text, svg or none
	Mode RenderMode

	// ASCII uses letters instead of Unicode chess symbols in text mode
	ASCII bool

	// Flip draws the board from Black's side
	Flip bool

	// SVGPath is the file rewritten after every move in svg mode
	SVGPath string

	// SVGSize is the side length of the SVG diagram in pixels
	SVGSize int
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Mode:    RenderText,
		SVGPath: "board.svg",
		SVGSize: 360,
	}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.Mode == RenderSVG && d.SVGPath == "" {
		return fmt.Errorf("svg rendering needs a file: %w", errors.ErrInvalidConfig)
	}
	if d.SVGSize < 0 {
		return fmt.Errorf("svg size %d is negative: %w", d.SVGSize, errors.ErrInvalidConfig)
	}
	return nil
}
