package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// validatePawn applies the pawn rules once the direction is known to be one
// of the pawn's forward directions.
func (g *Game) validatePawn(v Verdict, m mode) Verdict {
	pawn := v.Piece
	fwd := pawn.Side().Forward()
	df, dr := chess.Delta(v.From, v.To)

	switch {
	case df == 0 && dr == fwd:
		v.Legal = m == moveMode && v.Captured == nil

	case df == 0 && dr == 2*fwd:
		mid := v.From.Offset(0, fwd)
		v.Legal = m == moveMode && !pawn.HasMoved() && v.Captured == nil && g.board.IsEmpty(mid)
		v.DoubleStep = v.Legal

	case abs(df) == 1 && dr == fwd:
		switch {
		case m == attackMode || v.Captured != nil:
			v.Legal = true
		case g.canCaptureEnPassant(pawn, v.To):
			v.Legal = true
			v.EnPassant = true
			v.Captured = g.enPassant.Target
		}
	}

	v.Promotion = v.Legal && v.To.Rank() == pawn.Side().PromotionRank()
	return v
}

// canCaptureEnPassant reports whether pawn may take the live en-passant
// target by moving to to.
func (g *Game) canCaptureEnPassant(pawn *chess.Piece, to chess.Square) bool {
	ep := g.enPassant
	if !ep.CanCapture(pawn) || !g.board.Alive(ep.Target) {
		return false
	}
	return to.File() == ep.Target.Square().File() && to == ep.Square()
}

// openEnPassant builds the window for a pawn that just advanced two
// squares: the enemy pawns now beside it may capture it on the next ply.
func (g *Game) openEnPassant(pawn *chess.Piece) EnPassant {
	ep := EnPassant{Target: pawn}
	for _, d := range []chess.Direction{chess.East, chess.West} {
		sq, ok := pawn.Square().Neighbor(d)
		if !ok {
			continue
		}
		if p := g.board.At(sq); p.Is(pawn.Side().Opposite(), chess.Pawn) {
			ep.Capturers = append(ep.Capturers, p)
		}
	}
	return ep
}
