package chess

import "fmt"

// Piece is a movable unit on the board. Its square and moved flag can only
// be changed by the Board that owns it, which keeps the piece and the
// board's occupancy in agreement.
type Piece struct {
	kind   PieceType
	side   Side
	square Square
	moved  bool
	caps   Capabilities
}

func newPiece(kind PieceType, side Side, sq Square) *Piece {
	return &Piece{
		kind:   kind,
		side:   side,
		square: sq,
		caps:   CapabilitiesOf(kind, side),
	}
}

// Type returns the piece's kind.
func (p *Piece) Type() PieceType { return p.kind }

// Side returns the owning side.
func (p *Piece) Side() Side { return p.side }

// Square returns the square the piece stands on.
func (p *Piece) Square() Square { return p.square }

// HasMoved reports whether the piece has completed a move this game.
func (p *Piece) HasMoved() bool { return p.moved }

// Capabilities returns the movement directions the piece may attempt.
func (p *Piece) Capabilities() Capabilities { return p.caps }

// CanMove reports whether the piece may attempt a move in direction d.
func (p *Piece) CanMove(d Direction) bool { return p.caps.Has(d) }

// Is reports whether the piece is of the given side and kind.
func (p *Piece) Is(side Side, kind PieceType) bool {
	return p != nil && p.side == side && p.kind == kind
}

// String returns e.g. "White Rook a1".
func (p *Piece) String() string {
	if p == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s %s %s", p.side, p.kind, p.square)
}
