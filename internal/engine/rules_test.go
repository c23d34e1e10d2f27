package engine_test

import (
	"os"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var sq = testutil.Sq

func TestMain(m *testing.M) {
	engine.Debug = true
	os.Exit(m.Run())
}

// TestValidate_SameSideTarget checks every piece against every square
// holding a piece of its own side.
func TestValidate_SameSideTarget(t *testing.T) {
	g := engine.NewGame()
	b := g.Board()
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range b.Pieces(side) {
			for _, own := range b.Pieces(side) {
				if g.IsLegal(p.Square(), own.Square()) {
					t.Errorf("IsLegal(%s, %s) = true, want false (own piece)", p.Square(), own.Square())
				}
			}
		}
	}
}

func TestValidate_Rook(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     bool
	}{
		{"blocked by own pawn", "4k3/8/8/8/8/8/P7/R3K3 w - - 0 1", "a1", "a5", false},
		{"open file", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a5", true},
		{"to far edge", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a8", true},
		{"along rank", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "d1", true},
		{"onto own king", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "e1", false},
		{"diagonal not allowed", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "b2", false},
		{"capture first blocker", "4k3/8/8/p7/8/8/8/R3K3 w - - 0 1", "a1", "a5", true},
		{"cannot pass enemy", "4k3/8/8/p7/8/8/8/R3K3 w - - 0 1", "a1", "a6", false},
		{"same square", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a1", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := testutil.MustGame(t, tt.fen)
			if got := g.IsLegal(sq(tt.from), sq(tt.to)); got != tt.want {
				t.Errorf("IsLegal(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidate_Pieces(t *testing.T) {
	const fen = "4k3/8/8/3p4/8/2N1B3/8/3QK3 w - - 0 1"
	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"knight jump", "c3", "b5", true},
		{"knight jumps over pieces", "c3", "d5", true},
		{"knight not a jump", "c3", "c5", false},
		{"bishop diagonal", "e3", "h6", true},
		{"bishop capture", "e3", "d4", true},
		{"bishop uneven diagonal", "e3", "g4", false},
		{"bishop straight", "e3", "e5", false},
		{"queen straight", "d1", "d4", true},
		{"queen captures pawn", "d1", "d5", true},
		{"queen past pawn", "d1", "d6", false},
		{"queen diagonal", "d1", "a4", true},
		{"king step", "e1", "f2", true},
		{"king two squares unmoved no rook", "e1", "g1", false},
		{"king long step", "e1", "e3", false},
		{"empty source", "a1", "a2", false},
	}

	g := testutil.MustGame(t, fen)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsLegal(sq(tt.from), sq(tt.to)); got != tt.want {
				t.Errorf("IsLegal(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestValidate_PawnSteps(t *testing.T) {
	g := engine.NewGame()

	for _, tt := range []struct {
		to   string
		want bool
	}{
		{"a3", true},
		{"a4", true},
		{"a5", false},
		{"b3", false},
	} {
		if got := g.IsLegal(sq("a2"), sq(tt.to)); got != tt.want {
			t.Errorf("IsLegal(a2, %s) = %v, want %v", tt.to, got, tt.want)
		}
	}

	v := g.Validate(sq("a2"), sq("a4"))
	if !v.DoubleStep {
		t.Error("Validate(a2, a4).DoubleStep = false, want true")
	}

	testutil.MustApply(t, g, "a2a3")
	testutil.MustApply(t, g, "h7h6")

	if g.IsLegal(sq("a3"), sq("a5")) {
		t.Error("IsLegal(a3, a5) = true after the pawn moved, want false")
	}
	if !g.IsLegal(sq("a3"), sq("a4")) {
		t.Error("IsLegal(a3, a4) = false, want true")
	}
}

func TestValidate_PawnBlocked(t *testing.T) {
	g := testutil.MustGame(t, "4k3/8/8/8/8/p7/P7/4K3 w - - 0 1")
	if g.IsLegal(sq("a2"), sq("a3")) {
		t.Error("pawn pushed into an occupied square")
	}
	if g.IsLegal(sq("a2"), sq("a4")) {
		t.Error("pawn double step jumped a blocker")
	}

	g = testutil.MustGame(t, "4k3/8/8/8/8/8/P7/4K3 w - - 0 1")
	if g.IsLegal(sq("a2"), sq("b3")) {
		t.Error("pawn moved diagonally onto an empty square")
	}
}

func TestValidate_BlackPawnDirection(t *testing.T) {
	g := engine.NewGame()
	if g.IsLegal(sq("e7"), sq("e8")) {
		t.Error("black pawn moved backwards")
	}
	if !g.IsLegal(sq("e7"), sq("e5")) {
		t.Error("black pawn double step rejected")
	}
}

func TestValidateAndDescribe_Pinned(t *testing.T) {
	g := testutil.MustGame(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")

	if !g.IsLegal(sq("e2"), sq("d3")) {
		t.Fatal("Validate(e2, d3) should ignore own-check safety")
	}
	if v := g.ValidateAndDescribe(sq("e2"), sq("d3")); v.Legal {
		t.Error("ValidateAndDescribe(e2, d3) = legal, want illegal (bishop pinned)")
	}
	if v := g.ValidateAndDescribe(sq("e1"), sq("d1")); !v.Legal {
		t.Error("ValidateAndDescribe(e1, d1) = illegal, want legal")
	}
	if v := g.ValidateAndDescribe(sq("e1"), sq("e2")); v.Legal {
		t.Error("king moved onto its own bishop")
	}
}

func TestValidateAndDescribe_KingCannotStepIntoCheck(t *testing.T) {
	g := testutil.MustGame(t, "4k3/8/8/8/8/8/r7/4K3 w - - 0 1")
	before := testutil.DescribeBoard(g.Board())

	for _, to := range []string{"d2", "e2", "f2"} {
		if v := g.ValidateAndDescribe(sq("e1"), sq(to)); v.Legal {
			t.Errorf("ValidateAndDescribe(e1, %s) = legal, want illegal", to)
		}
	}
	if v := g.ValidateAndDescribe(sq("e1"), sq("f1")); !v.Legal {
		t.Error("ValidateAndDescribe(e1, f1) = illegal, want legal")
	}

	testutil.AssertEqual(t, testutil.DescribeBoard(g.Board()), before, "board after probes")
}

func TestValidate_IllegalVerdictCarriesNoFlags(t *testing.T) {
	g := engine.NewGame()
	v := g.Validate(sq("e2"), sq("e5"))
	if v.Legal || v.DoubleStep || v.Captured != nil || v.Castle != nil {
		t.Errorf("Validate(e2, e5) = %+v, want a bare illegal verdict", v)
	}
	if v.Piece == nil || v.Piece.Type() != chess.Pawn {
		t.Errorf("Validate(e2, e5).Piece = %v, want the e2 pawn", v.Piece)
	}
}
