package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PromotionChooser supplies the piece type a pawn reaching the last rank
// becomes. Only Queen, Rook, Bishop and Knight are accepted.
type PromotionChooser interface {
	ChoosePromotion(side chess.Side, at chess.Square) chess.PieceType
}

// PromotionFunc adapts a function to PromotionChooser.
type PromotionFunc func(side chess.Side, at chess.Square) chess.PieceType

// ChoosePromotion calls f.
func (f PromotionFunc) ChoosePromotion(side chess.Side, at chess.Square) chess.PieceType {
	return f(side, at)
}

// ApplyOptions carries the caller's context for a move.
type ApplyOptions struct {
	// Promotion is used when the move promotes a pawn. If it is
	// NoPieceType, Chooser is asked; if both are unset the promotion is
	// left pending until Promote is called.
	Promotion chess.PieceType
	Chooser   PromotionChooser
}

// Result describes an applied move.
type Result struct {
	Verdict
	// Promoted is the piece that replaced the pawn, if the move promoted.
	Promoted *chess.Piece
	// PromotionPending is set when the move reached the last rank and no
	// choice was available. The mover keeps the turn until Promote.
	PromotionPending bool
	// Status is the position as seen by the side now to move.
	Status Status
}

// Apply validates and performs a move for the side to move, then updates
// the en-passant window, promotes if needed and passes the turn.
// An illegal move returns an error wrapping errors.ErrIllegalMove and
// leaves the game unchanged.
func (g *Game) Apply(from, to chess.Square, opts ApplyOptions) (Result, error) {
	if g.pending != nil {
		return Result{}, g.moveError(errors.ErrPromotionPending, from, to)
	}
	piece := g.board.At(from)
	if piece == nil {
		return Result{}, g.moveError(errors.ErrNoPiece, from, to)
	}
	if piece.Side() != g.toMove {
		return Result{}, g.moveError(errors.ErrWrongSide, from, to)
	}

	v := g.ValidateAndDescribe(from, to)
	if !v.Legal {
		return Result{}, g.moveError(errors.ErrIllegalMove, from, to)
	}

	kind := chess.NoPieceType
	if v.Promotion {
		kind = opts.Promotion
		if kind == chess.NoPieceType && opts.Chooser != nil {
			kind = opts.Chooser.ChoosePromotion(piece.Side(), to)
		}
		if kind != chess.NoPieceType && !kind.IsPromotionTarget() {
			return Result{}, g.moveError(errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %s", kind), from, to)
		}
	}

	g.perform(v)

	g.enPassant = EnPassant{}
	if v.DoubleStep {
		g.enPassant = g.openEnPassant(piece)
	}

	res := Result{Verdict: v}
	if v.Promotion {
		if kind == chess.NoPieceType {
			g.pending = piece
			res.PromotionPending = true
			return res, nil
		}
		res.Promoted = g.board.Promote(to, piece, kind)
	}

	g.endTurn()
	res.Status = g.Status()
	return res, nil
}

// Promote completes a pending promotion on sq with kind and passes the turn.
func (g *Game) Promote(sq chess.Square, kind chess.PieceType) (*chess.Piece, Status, error) {
	if !kind.IsPromotionTarget() {
		return nil, Status{}, errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %s", kind)
	}
	pawn := g.pending
	if pawn == nil || pawn.Square() != sq {
		return nil, Status{}, errors.Wrapf(errors.ErrInvalidPromotion, "no pawn awaiting promotion on %s", sq)
	}
	p := g.board.Promote(sq, pawn, kind)
	g.pending = nil
	g.endTurn()
	return p, g.Status(), nil
}

// perform carries out a validated move on the board: the capture, the
// relocation of the moving piece and, for a castle, of the rook. It does
// not touch turn state.
func (g *Game) perform(v Verdict) {
	if v.Captured != nil {
		g.board.Capture(v.Captured)
	}
	g.board.Relocate(v.From, v.To, v.Piece)
	g.board.MarkMoved(v.Piece)
	if c := v.Castle; c != nil {
		g.board.Relocate(c.RookFrom, c.RookTo, c.Rook)
		g.board.MarkMoved(c.Rook)
	}
}

func (g *Game) endTurn() {
	if g.toMove == chess.Black {
		g.moveNumber++
	}
	g.toMove = g.toMove.Opposite()
}

func (g *Game) moveError(err error, from, to chess.Square) error {
	return &errors.MoveError{
		Err:  err,
		Side: g.toMove.String(),
		From: from.String(),
		To:   to.String(),
	}
}
