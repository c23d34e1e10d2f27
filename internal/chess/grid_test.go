package chess_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in         string
		file, rank int
	}{
		{"a1", 1, 1},
		{"h1", 8, 1},
		{"e4", 5, 4},
		{"h8", 8, 8},
		{"E4", 5, 4},
	}
	for _, tt := range tests {
		sq, err := chess.ParseSquare(tt.in)
		if err != nil {
			t.Errorf("ParseSquare(%q) error: %v", tt.in, err)
			continue
		}
		if sq.File() != tt.file || sq.Rank() != tt.rank {
			t.Errorf("ParseSquare(%q) = file %d rank %d; want %d %d", tt.in, sq.File(), sq.Rank(), tt.file, tt.rank)
		}
	}
}

func TestParseSquare_Errors(t *testing.T) {
	for _, in := range []string{"", "a", "a9", "i1", "a0", "11", "e44", "zz"} {
		sq, err := chess.ParseSquare(in)
		if sq != chess.NoSquare {
			t.Errorf("ParseSquare(%q) = %v; want NoSquare", in, sq)
		}
		testutil.AssertErrorIs(t, err, errors.ErrInvalidSquare, "ParseSquare(%q)", in)

		var pe *errors.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseSquare(%q) error %T is not a *ParseError", in, err)
		}
	}
}

func TestSquare_String(t *testing.T) {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		got, err := chess.ParseSquare(sq.String())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, sq, "round trip of %s", sq)
	}
	testutil.AssertEqual(t, chess.NoSquare.String(), "-")
	testutil.AssertEqual(t, chess.NewSquare(9, 1), chess.NoSquare, "file off the board")
	testutil.AssertEqual(t, chess.NewSquare(1, 0), chess.NoSquare, "rank off the board")
}

func TestNeighbor(t *testing.T) {
	sq := testutil.Sq
	tests := []struct {
		from string
		dir  chess.Direction
		want string // "" for off the board
	}{
		{"e4", chess.North, "e5"},
		{"e4", chess.NorthEast, "f5"},
		{"e4", chess.East, "f4"},
		{"e4", chess.SouthEast, "f3"},
		{"e4", chess.South, "e3"},
		{"e4", chess.SouthWest, "d3"},
		{"e4", chess.West, "d4"},
		{"e4", chess.NorthWest, "d5"},
		{"a1", chess.South, ""},
		{"a1", chess.West, ""},
		{"a1", chess.SouthWest, ""},
		{"h8", chess.NorthEast, ""},
		{"h8", chess.East, ""},
		{"h1", chess.NorthWest, "g2"},
	}

	for _, tt := range tests {
		got, ok := sq(tt.from).Neighbor(tt.dir)
		if tt.want == "" {
			if ok {
				t.Errorf("%s.Neighbor(%s) = %s; want none", tt.from, tt.dir, got)
			}
			continue
		}
		if !ok || got != sq(tt.want) {
			t.Errorf("%s.Neighbor(%s) = %s, %v; want %s", tt.from, tt.dir, got, ok, tt.want)
		}
	}
}

func TestNeighbors_Count(t *testing.T) {
	sq := testutil.Sq
	testutil.AssertEqual(t, len(sq("a1").Neighbors()), 3, "corner")
	testutil.AssertEqual(t, len(sq("a4").Neighbors()), 5, "edge")
	testutil.AssertEqual(t, len(sq("d4").Neighbors()), 8, "centre")
}

func TestNeighbor_OppositeReturns(t *testing.T) {
	for s := chess.Square(0); s < chess.NumSquares; s++ {
		for d := chess.North; d < chess.NumDirections; d++ {
			n, ok := s.Neighbor(d)
			if !ok {
				continue
			}
			back, ok := n.Neighbor(d.Opposite())
			if !ok || back != s {
				t.Fatalf("%s -%s-> %s -%s-> %s", s, d, n, d.Opposite(), back)
			}
		}
	}
}

func TestDirectionBetween(t *testing.T) {
	sq := testutil.Sq
	tests := []struct {
		from, to string
		want     chess.Direction
		ok       bool
	}{
		{"a1", "a8", chess.North, true},
		{"a1", "h8", chess.NorthEast, true},
		{"a1", "h1", chess.East, true},
		{"e4", "h1", chess.SouthEast, true},
		{"e4", "e1", chess.South, true},
		{"e4", "b1", chess.SouthWest, true},
		{"e4", "a4", chess.West, true},
		{"e4", "a8", chess.NorthWest, true},
		{"e4", "e4", 0, false},
		{"e4", "f6", 0, false},
		{"a1", "c2", 0, false},
	}

	for _, tt := range tests {
		got, ok := chess.DirectionBetween(sq(tt.from), sq(tt.to))
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("DirectionBetween(%s, %s) = %s, %v; want %s, %v", tt.from, tt.to, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBetween(t *testing.T) {
	sq := testutil.Sq
	got := chess.Between(sq("a1"), sq("a5"), chess.North)
	want := []chess.Square{sq("a2"), sq("a3"), sq("a4")}
	testutil.AssertEqual(t, got, want)

	testutil.AssertEqual(t, len(chess.Between(sq("a1"), sq("b2"), chess.NorthEast)), 0, "adjacent")
}

func TestIsKnightJump(t *testing.T) {
	sq := testutil.Sq
	from := sq("d4")
	count := 0
	for to := chess.Square(0); to < chess.NumSquares; to++ {
		if chess.IsKnightJump(from, to) {
			count++
		}
	}
	testutil.AssertEqual(t, count, 8, "knight jumps from d4")
	testutil.AssertFalse(t, chess.IsKnightJump(sq("a1"), sq("h8")))
}

func TestCapabilitiesOf(t *testing.T) {
	tests := []struct {
		kind chess.PieceType
		side chess.Side
		want []chess.Direction
		jump bool
	}{
		{chess.Pawn, chess.White, []chess.Direction{chess.North, chess.NorthEast, chess.NorthWest}, false},
		{chess.Pawn, chess.Black, []chess.Direction{chess.SouthEast, chess.South, chess.SouthWest}, false},
		{chess.Knight, chess.White, nil, true},
		{chess.Bishop, chess.White, []chess.Direction{chess.NorthEast, chess.SouthEast, chess.SouthWest, chess.NorthWest}, false},
		{chess.Rook, chess.Black, []chess.Direction{chess.North, chess.East, chess.South, chess.West}, false},
	}

	for _, tt := range tests {
		c := chess.CapabilitiesOf(tt.kind, tt.side)
		testutil.AssertEqual(t, c.Directions(), tt.want, "%s %s directions", tt.side, tt.kind)
		testutil.AssertEqual(t, c.CanJump(), tt.jump, "%s %s jump", tt.side, tt.kind)
	}

	testutil.AssertEqual(t, len(chess.CapabilitiesOf(chess.Queen, chess.White).Directions()), 8, "queen")
	testutil.AssertEqual(t, len(chess.CapabilitiesOf(chess.King, chess.Black).Directions()), 8, "king")
}

func TestParsePieceType(t *testing.T) {
	for _, in := range []string{"q", "Q", "queen", "Queen"} {
		got, ok := chess.ParsePieceType(in)
		testutil.AssertTrue(t, ok, "ParsePieceType(%q)", in)
		testutil.AssertEqual(t, got, chess.Queen)
	}
	_, ok := chess.ParsePieceType("x")
	testutil.AssertFalse(t, ok)

	testutil.AssertFalse(t, chess.King.IsPromotionTarget())
	testutil.AssertFalse(t, chess.Pawn.IsPromotionTarget())
	testutil.AssertTrue(t, chess.Knight.IsPromotionTarget())
}

func TestSide(t *testing.T) {
	testutil.AssertEqual(t, chess.White.PawnRank(), 2)
	testutil.AssertEqual(t, chess.Black.PawnRank(), 7)
	testutil.AssertEqual(t, chess.White.PromotionRank(), 8)
	testutil.AssertEqual(t, chess.Black.PromotionRank(), 1)
	testutil.AssertEqual(t, chess.White.Opposite(), chess.Black)
}
