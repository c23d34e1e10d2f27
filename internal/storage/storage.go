// Package storage saves and restores games in progress. A saved game holds
// the side to move, every piece with its square and moved flag, and the
// en-passant window, which is everything needed to resume play with the
// same legal moves.
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Format selects the encoding of a saved game.
type Format int

const (
	JSON Format = iota
	YAML
)

// String returns the format name.
func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// ParseFormat converts "json" or "yaml" ("yml") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("unknown save format %q: %w", s, errors.ErrInvalidConfig)
}

// FormatFromPath picks the format from a file extension: .yaml and .yml
// are YAML, anything else is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// SavedGame is the on-disk form of a game.
type SavedGame struct {
	ToMove     string          `json:"toMove" yaml:"to_move"`
	MoveNumber int             `json:"moveNumber,omitempty" yaml:"move_number,omitempty"`
	Pieces     []SavedPiece    `json:"pieces" yaml:"pieces"`
	EnPassant  *SavedEnPassant `json:"enPassant,omitempty" yaml:"en_passant,omitempty"`
	FEN        string          `json:"fen,omitempty" yaml:"fen,omitempty"`
}

// SavedPiece is one piece of a saved game.
type SavedPiece struct {
	File  string `json:"file" yaml:"file"`
	Rank  int    `json:"rank" yaml:"rank"`
	Type  string `json:"type" yaml:"type"`
	Side  string `json:"side" yaml:"side"`
	Moved bool   `json:"moved" yaml:"moved"`
}

// SavedEnPassant is the en-passant window of a saved game, by square.
type SavedEnPassant struct {
	Target         string   `json:"target" yaml:"target"`
	CapturingPawns []string `json:"capturingPawns" yaml:"capturing_pawns"`
}

// FromGame converts a game to its saved form.
func FromGame(g *engine.Game) *SavedGame {
	s := g.Setup()
	sg := &SavedGame{
		ToMove:     strings.ToLower(s.ToMove.String()),
		MoveNumber: s.MoveNumber,
		FEN:        g.FEN(),
	}
	for _, pl := range s.Pieces {
		sg.Pieces = append(sg.Pieces, SavedPiece{
			File:  string(pl.Square.FileLetter()),
			Rank:  pl.Square.Rank(),
			Type:  strings.ToLower(pl.Type.String()),
			Side:  strings.ToLower(pl.Side.String()),
			Moved: pl.Moved,
		})
	}
	if s.EnPassant != nil {
		ep := &SavedEnPassant{Target: s.EnPassant.Target.String(), CapturingPawns: []string{}}
		for _, sq := range s.EnPassant.Capturers {
			ep.CapturingPawns = append(ep.CapturingPawns, sq.String())
		}
		sg.EnPassant = ep
	}
	return sg
}

// Game rebuilds the game. Every malformed field is reported, not just the
// first; the FEN field is informational and ignored.
func (sg *SavedGame) Game() (*engine.Game, error) {
	var result *multierror.Error

	toMove, ok := chess.ParseSide(sg.ToMove)
	if !ok {
		result = multierror.Append(result, fmt.Errorf("side to move %q: %w", sg.ToMove, errors.ErrInvalidSave))
	}
	setup := engine.Setup{ToMove: toMove, MoveNumber: sg.MoveNumber}

	for i, sp := range sg.Pieces {
		pl, err := sp.placement()
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "piece %d", i+1))
			continue
		}
		setup.Pieces = append(setup.Pieces, pl)
	}

	if sg.EnPassant != nil {
		spec, err := sg.EnPassant.spec()
		if err != nil {
			result = multierror.Append(result, err)
		} else {
			setup.EnPassant = spec
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	g, err := engine.NewGameFromSetup(setup)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidSave, err)
	}
	return g, nil
}

func (sp SavedPiece) placement() (engine.Placement, error) {
	var result *multierror.Error

	sq, err := chess.ParseSquare(fmt.Sprintf("%s%d", sp.File, sp.Rank))
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("square %s%d: %w", sp.File, sp.Rank, errors.ErrInvalidSave))
	}
	kind, ok := chess.ParsePieceType(sp.Type)
	if !ok {
		result = multierror.Append(result, fmt.Errorf("piece type %q: %w", sp.Type, errors.ErrInvalidSave))
	}
	side, ok := chess.ParseSide(sp.Side)
	if !ok {
		result = multierror.Append(result, fmt.Errorf("side %q: %w", sp.Side, errors.ErrInvalidSave))
	}
	if err := result.ErrorOrNil(); err != nil {
		return engine.Placement{}, err
	}
	return engine.Placement{Square: sq, Type: kind, Side: side, Moved: sp.Moved}, nil
}

func (ep *SavedEnPassant) spec() (*engine.EnPassantSpec, error) {
	target, err := chess.ParseSquare(ep.Target)
	if err != nil {
		return nil, fmt.Errorf("en passant target %q: %w", ep.Target, errors.ErrInvalidSave)
	}
	spec := &engine.EnPassantSpec{Target: target}
	if ep.CapturingPawns == nil {
		return spec, nil
	}
	spec.Capturers = []chess.Square{}
	for _, s := range ep.CapturingPawns {
		sq, err := chess.ParseSquare(s)
		if err != nil {
			return nil, fmt.Errorf("en passant capturer %q: %w", s, errors.ErrInvalidSave)
		}
		spec.Capturers = append(spec.Capturers, sq)
	}
	return spec, nil
}

// Save writes g to w in the given format.
func Save(w io.Writer, g *engine.Game, format Format) error {
	sg := FromGame(g)
	if format == YAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sg); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sg); err != nil {
		return errors.Wrap(err, "encode json")
	}
	return nil
}

// Load reads a game from r in the given format.
func Load(r io.Reader, format Format) (*engine.Game, error) {
	var sg SavedGame
	var err error
	if format == YAML {
		err = yaml.NewDecoder(r).Decode(&sg)
	} else {
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&sg)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %v: %w", format, err, errors.ErrInvalidSave)
	}
	return sg.Game()
}

// SaveFile writes g to path, choosing the format from its extension.
func SaveFile(path string, g *engine.Game) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, g, FormatFromPath(path)); err != nil {
		f.Close()
		return errors.Wrap(err, path)
	}
	return f.Close()
}

// LoadFile reads a game from path, choosing the format from its extension.
func LoadFile(path string) (*engine.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Load(f, FormatFromPath(path))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return g, nil
}
