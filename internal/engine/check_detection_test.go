package engine_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestAttackerOf(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		defender chess.Side
		target   string
		want     string // attacker square, "" for none
	}{
		{"pawn attacks diagonal empty square", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", chess.Black, "d3", "e2"},
		{"pawn push attacks nothing", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", chess.Black, "e3", ""},
		{"black pawn attacks downwards", "4k3/4p3/8/8/8/8/8/4K3 w - - 0 1", chess.White, "f6", "e7"},
		{"rook blocked", "4k3/8/8/8/8/8/P7/R3K3 w - - 0 1", chess.Black, "a5", ""},
		{"knight", "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", chess.Black, "c3", "b1"},
		{"king does not castle to attack", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", chess.Black, "g1", "h1"},
		{"first attacker in roster order", "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", chess.Black, "d2", "b1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			got := g.AttackerOf(tt.defender, sq(tt.target))
			switch {
			case tt.want == "" && got != nil:
				t.Errorf("AttackerOf(%s) = %v, want nil", tt.target, got)
			case tt.want != "" && (got == nil || got.Square() != sq(tt.want)):
				t.Errorf("AttackerOf(%s) = %v, want piece on %s", tt.target, got, tt.want)
			}
		})
	}
}

func TestInCheck(t *testing.T) {
	g := engine.NewGame()
	testutil.AssertFalse(t, g.InCheck(chess.White), "initial position")
	testutil.AssertFalse(t, g.InCheck(chess.Black), "initial position")

	g = testutil.MustGame(t, "4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	testutil.AssertTrue(t, g.InCheck(chess.White), "rook on the back rank")
	if a := g.KingAttacker(chess.White); a == nil || a.Square() != sq("h1") {
		t.Errorf("KingAttacker(White) = %v, want rook on h1", a)
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		side chess.Side
		want bool
	}{
		{"protected queen", "8/8/8/8/8/3k4/4q3/4K3 w - - 0 1", chess.White, true},
		{"rook captures queen", "8/8/8/8/8/3k4/4q2R/4K3 w - - 0 1", chess.White, false},
		{"smothered", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", chess.Black, true},
		{"queen captures knight", "6rk/5Npp/8/3q4/8/8/8/6K1 b - - 0 1", chess.Black, false},
		{"back rank", "4k3/8/8/8/8/8/5PPP/r5K1 w - - 0 1", chess.White, true},
		{"back rank with block", "4k3/8/8/8/8/8/2B2PPP/r5K1 w - - 0 1", chess.White, false},
		{"double check", "4k3/8/8/8/8/8/2B2PPP/r5Kq w - - 0 1", chess.White, true},
		{"king captures checker", "4k3/8/8/8/8/8/8/4Kq2 w - - 0 1", chess.White, false},
		{"not in check", engine.InitialFEN, chess.White, false},
		{"stalemate is not mate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			before := testutil.DescribeBoard(g.Board())
			if got := g.IsCheckmate(tt.side); got != tt.want {
				t.Errorf("IsCheckmate(%s) = %v, want %v", tt.side, got, tt.want)
			}
			testutil.AssertEqual(t, testutil.DescribeBoard(g.Board()), before, "board after IsCheckmate")
			testutil.AssertEqual(t, g.FEN(), testutil.MustGame(t, tt.fen).FEN(), "game after IsCheckmate")
		})
	}
}

func TestIsCheckmate_FoolsMate(t *testing.T) {
	g := engine.NewGame()
	var res engine.Result
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		res = testutil.MustApply(t, g, m)
	}
	testutil.AssertTrue(t, res.Status.Check, "check after Qh4")
	testutil.AssertTrue(t, res.Status.Checkmate, "mate after Qh4")
	testutil.AssertEqual(t, res.Status.Side, chess.White, "mated side")
	if res.Status.Attacker == nil || res.Status.Attacker.Square() != sq("h4") {
		t.Errorf("Status.Attacker = %v, want queen on h4", res.Status.Attacker)
	}
	testutil.AssertTrue(t, g.IsCheckmate(chess.White), "IsCheckmate(White)")
	testutil.AssertFalse(t, g.HasLegalMoves(chess.White), "no legal moves when mated")
}

func TestIsCheckmate_EnPassantEscape(t *testing.T) {
	// d7-d5 checks the king on e4. Every king move is covered and only
	// the e5 pawn capturing en passant removes the checker.
	g := testutil.MustGame(t, "5r1k/3p4/2p5/1n2P3/4K3/r7/8/8 b - - 0 1")
	res := testutil.MustApply(t, g, "d7d5")

	testutil.AssertTrue(t, res.Status.Check, "d5 gives check")
	testutil.AssertFalse(t, res.Status.Checkmate, "en passant answers the check")

	moves := g.LegalMoves(chess.White)
	testutil.AssertEqual(t, len(moves), 1, "legal replies")
	if len(moves) == 1 {
		testutil.AssertEqual(t, moves[0].String(), "e5d6", "only reply")
	}
}

func TestIsStalemate(t *testing.T) {
	g := testutil.MustGame(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	testutil.AssertTrue(t, g.IsStalemate(chess.Black), "king in the corner")
	testutil.AssertFalse(t, g.InCheck(chess.Black), "stalemate is not check")

	st := g.Status()
	testutil.AssertTrue(t, st.Stalemate, "Status().Stalemate")
	testutil.AssertFalse(t, st.Checkmate, "Status().Checkmate")

	testutil.AssertFalse(t, engine.NewGame().IsStalemate(chess.White), "initial position")
}

func TestLegalMoves_Initial(t *testing.T) {
	g := engine.NewGame()
	testutil.AssertEqual(t, len(g.LegalMoves(chess.White)), 20, "white moves")
	testutil.AssertEqual(t, len(g.LegalMoves(chess.Black)), 20, "black moves")
	testutil.AssertTrue(t, g.HasLegalMoves(chess.White), "HasLegalMoves")
}
