package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

// SaveConfig holds settings for saving and loading games.
type SaveConfig struct {
	// Format is used for save paths without a .json, .yaml or .yml extension
	Format storage.Format

	// AutoSavePath, if set, is rewritten after every applied move
	AutoSavePath string

	// LoadPath, if set, is loaded instead of starting a new game
	LoadPath string
}

// NewSaveConfig creates a SaveConfig with default values.
// Autosave is disabled by default.
func NewSaveConfig() *SaveConfig {
	return &SaveConfig{Format: storage.JSON}
}

// Validate checks that the save configuration is valid.
func (s *SaveConfig) Validate() error {
	if s.Format != storage.JSON && s.Format != storage.YAML {
		return fmt.Errorf("save format %d: %w", int(s.Format), errors.ErrInvalidConfig)
	}
	return nil
}

// FormatFor returns the encoding for path, from its extension when it has a
// known one.
func (s *SaveConfig) FormatFor(path string) storage.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return storage.JSON
	case ".yaml", ".yml":
		return storage.YAML
	}
	return s.Format
}
