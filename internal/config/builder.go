package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithRenderMode sets how the board is shown.
func (b *ConfigBuilder) WithRenderMode(mode RenderMode) *ConfigBuilder {
	b.cfg.Display.Mode = mode
	return b
}

// WithASCII selects letters instead of chess symbols.
func (b *ConfigBuilder) WithASCII(enabled bool) *ConfigBuilder {
	b.cfg.Display.ASCII = enabled
	return b
}

// WithFlip draws the board from Black's side.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Display.Flip = enabled
	return b
}

// WithSVG switches to SVG rendering into path.
func (b *ConfigBuilder) WithSVG(path string, size int) *ConfigBuilder {
	b.cfg.Display.Mode = RenderSVG
	b.cfg.Display.SVGPath = path
	b.cfg.Display.SVGSize = size
	return b
}

// WithSaveFormat sets the default save encoding.
func (b *ConfigBuilder) WithSaveFormat(format storage.Format) *ConfigBuilder {
	b.cfg.Save.Format = format
	return b
}

// WithAutoSave rewrites path after every move.
func (b *ConfigBuilder) WithAutoSave(path string) *ConfigBuilder {
	b.cfg.Save.AutoSavePath = path
	return b
}

// WithLoad resumes the game saved at path.
func (b *ConfigBuilder) WithLoad(path string) *ConfigBuilder {
	b.cfg.Save.LoadPath = path
	return b
}

// WithWorkers sets the number of batch analysis workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
