package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// AttackerOf returns the first piece of defender's opponent, in roster
// order, that attacks target, or nil if target is undefended against.
// Attacks ignore whether making the capture would itself be safe.
func (g *Game) AttackerOf(defender chess.Side, target chess.Square) *chess.Piece {
	for _, p := range g.board.Pieces(defender.Opposite()) {
		if g.validate(p.Square(), target, attackMode).Legal {
			return p
		}
	}
	return nil
}

// KingAttacker returns a piece giving check to side's king, or nil.
func (g *Game) KingAttacker(side chess.Side) *chess.Piece {
	king := g.board.King(side)
	if king == nil {
		return nil
	}
	return g.AttackerOf(side, king.Square())
}

// InCheck returns true if the given side's king is attacked.
func (g *Game) InCheck(side chess.Side) bool {
	return g.KingAttacker(side) != nil
}

// IsCheckmate returns true if side is in check and has no legal response.
func (g *Game) IsCheckmate(side chess.Side) bool {
	attacker := g.KingAttacker(side)
	if attacker == nil {
		return false
	}
	return g.IsCheckmateBy(side, attacker)
}

// IsCheckmateBy decides whether side, checked by attacker, is mated.
//
// The king is first tried on each neighbor square. Failing that, every
// other defending piece is tried on the attacker's square and on each
// square between attacker and king; capturing and blocking are the same
// test. A knight's check can only be answered by capture. Every trial is
// rolled back before the next.
func (g *Game) IsCheckmateBy(side chess.Side, attacker *chess.Piece) bool {
	king := g.board.King(side)
	if king == nil {
		return false
	}

	for _, sq := range king.Square().Neighbors() {
		if g.ValidateAndDescribe(king.Square(), sq).Legal {
			return false
		}
	}

	targets := interpositionSquares(attacker, king)
	for _, p := range g.board.Pieces(side) {
		if p.Type() == chess.King {
			continue
		}
		for _, sq := range targets {
			if g.ValidateAndDescribe(p.Square(), sq).Legal {
				return false
			}
		}
	}

	return !g.canCaptureCheckerEnPassant(side, attacker)
}

// interpositionSquares returns the attacker's own square followed by the
// squares strictly between attacker and king.
func interpositionSquares(attacker, king *chess.Piece) []chess.Square {
	squares := []chess.Square{attacker.Square()}
	if attacker.Type() == chess.Knight {
		return squares
	}
	dir, ok := chess.DirectionBetween(attacker.Square(), king.Square())
	if !ok {
		return squares
	}
	return append(squares, chess.Between(attacker.Square(), king.Square(), dir)...)
}

// canCaptureCheckerEnPassant covers a check given by a pawn that just
// advanced two squares: taking it en passant lands on neither its square
// nor the line to the king.
func (g *Game) canCaptureCheckerEnPassant(side chess.Side, attacker *chess.Piece) bool {
	if g.enPassant.Target != attacker {
		return false
	}
	for _, p := range g.enPassant.Capturers {
		if p.Side() != side || !g.board.Alive(p) {
			continue
		}
		if g.ValidateAndDescribe(p.Square(), g.enPassant.Square()).Legal {
			return true
		}
	}
	return false
}
