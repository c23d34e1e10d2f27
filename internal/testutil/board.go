package testutil

import (
	"fmt"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustGame builds a game from a FEN string, failing the test on error.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// Sq parses a coordinate such as "e4"; it panics on malformed input.
func Sq(s string) chess.Square {
	return chess.MustSquare(s)
}

// MustApply applies a move given as "e2e4", failing the test on error.
func MustApply(t *testing.T, g *engine.Game, move string) engine.Result {
	t.Helper()
	if len(move) != 4 {
		t.Fatalf("malformed move %q", move)
	}
	res, err := g.Apply(Sq(move[:2]), Sq(move[2:]), engine.ApplyOptions{})
	if err != nil {
		t.Fatalf("Apply(%s) error: %v", move, err)
	}
	return res
}

// DescribeBoard lists every occupied square with its piece, and then the
// roster entries in sorted order, so two boards can be compared with
// AssertEqual.
func DescribeBoard(b *chess.Board) []string {
	var out []string
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p := b.At(sq); p != nil {
			out = append(out, fmt.Sprintf("%s: %s moved=%t", sq, p, p.HasMoved()))
		}
	}
	var rosters []string
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range b.Pieces(side) {
			rosters = append(rosters, fmt.Sprintf("roster %s: %s", side, p))
		}
	}
	slices.Sort(rosters)
	return append(out, rosters...)
}

// AssertInvariants fails if occupancy and rosters disagree.
func AssertInvariants(t *testing.T, b *chess.Board) {
	t.Helper()
	if err := b.CheckInvariants(); err != nil {
		t.Fatalf("board invariant violated: %v", err)
	}
}
