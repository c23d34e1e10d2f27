// Package engine provides chess move validation, special-move handling and
// check/checkmate detection on top of the chess package's board.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mode selects how a move is judged. Attack probes ask whether a piece
// strikes a square: pawns strike diagonally whatever stands there, pawn
// pushes strike nothing and a king never castles.
type mode int

const (
	moveMode mode = iota
	attackMode
)

// Castle describes the rook half of a castling move.
type Castle struct {
	Rook     *chess.Piece
	RookFrom chess.Square
	RookTo   chess.Square
	Kingside bool
}

// Verdict is the decision on one proposed move together with everything
// the coordinator needs to carry it out.
type Verdict struct {
	Legal bool
	From  chess.Square
	To    chess.Square
	// Piece is the piece on From, nil if From was empty.
	Piece *chess.Piece
	// Captured is the piece removed by the move. For an en-passant capture it
	// is the pawn beside From, not anything on To.
	Captured   *chess.Piece
	Castle     *Castle
	EnPassant  bool
	DoubleStep bool
	Promotion  bool
}

// Validate decides whether the piece on from may move to to under its
// movement rules and the current occupancy. It does not consider whether
// the move leaves the mover's own king attacked; see ValidateAndDescribe.
// Validate never changes the game.
func (g *Game) Validate(from, to chess.Square) Verdict {
	return g.validate(from, to, moveMode)
}

// IsLegal reports Validate(from, to).Legal.
func (g *Game) IsLegal(from, to chess.Square) bool {
	return g.validate(from, to, moveMode).Legal
}

// ValidateAndDescribe is Validate plus own-check safety: the move is tried
// on the live board, the mover's king is probed for attackers and the
// board is restored. A castle additionally requires that the king does not
// start in check and that the rook's destination, the square the king
// passes over, is not attacked.
func (g *Game) ValidateAndDescribe(from, to chess.Square) Verdict {
	v := g.validate(from, to, moveMode)
	if !v.Legal {
		return v
	}
	side := v.Piece.Side()
	if v.Castle != nil && g.InCheck(side) {
		return illegal(v)
	}
	safe := g.speculate(func() bool {
		g.perform(v)
		if g.KingAttacker(side) != nil {
			return false
		}
		return v.Castle == nil || g.AttackerOf(side, v.Castle.RookTo) == nil
	})
	if !safe {
		return illegal(v)
	}
	return v
}

func illegal(v Verdict) Verdict {
	return Verdict{From: v.From, To: v.To, Piece: v.Piece}
}

func (g *Game) validate(from, to chess.Square, m mode) Verdict {
	v := g.classify(from, to, m)
	if !v.Legal {
		return illegal(v)
	}
	return v
}

func (g *Game) classify(from, to chess.Square, m mode) Verdict {
	v := Verdict{From: from, To: to}
	if !from.Valid() || !to.Valid() {
		return v
	}
	piece := g.board.At(from)
	if piece == nil {
		return v
	}
	v.Piece = piece

	target := g.board.At(to)
	if target != nil && target.Side() == piece.Side() {
		return v
	}
	v.Captured = target

	if piece.Type() == chess.Knight {
		v.Legal = piece.Capabilities().CanJump() && chess.IsKnightJump(from, to)
		return v
	}

	dir, ok := chess.DirectionBetween(from, to)
	if !ok {
		return v
	}

	switch piece.Type() {
	case chess.King:
		return g.validateKing(v, dir, m)
	case chess.Pawn:
		if !piece.CanMove(dir) {
			return v
		}
		return g.validatePawn(v, m)
	case chess.Bishop, chess.Rook, chess.Queen:
		if !piece.CanMove(dir) {
			return v
		}
		v.Legal = g.pathClear(from, to, dir)
	}
	return v
}

// validateKing allows single steps in any direction and, for an unmoved
// king making a two-square step along its rank, a castle.
func (g *Game) validateKing(v Verdict, dir chess.Direction, m mode) Verdict {
	df, dr := chess.Delta(v.From, v.To)
	switch {
	case abs(df) <= 1 && abs(dr) <= 1:
		v.Legal = g.pathClear(v.From, v.To, dir)
	case abs(df) == 2 && dr == 0 && m == moveMode:
		if castle, ok := g.castleFor(v.Piece, dir); ok {
			v.Castle = castle
			v.Legal = true
		}
	}
	return v
}
