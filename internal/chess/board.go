package chess

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board holds the occupancy of every square and the two sides' rosters of
// live pieces. It is the only place where a piece's position changes.
//
// The rosters are the authoritative record of which pieces are alive: a
// piece removed from its roster is captured.
type Board struct {
	squares [NumSquares]*Piece
	rosters [NumSides][]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard creates a board with the standard starting position.
func NewStandardBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and sets up the standard chess
// starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for _, side := range []Side{White, Black} {
		for i, kind := range backRank {
			b.add(kind, side, NewSquare(i+1, side.BackRank()))
		}
		for file := 1; file <= BoardSize; file++ {
			b.add(Pawn, side, NewSquare(file, side.PawnRank()))
		}
	}
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.squares = [NumSquares]*Piece{}
	b.rosters = [NumSides][]*Piece{}
}

func (b *Board) add(kind PieceType, side Side, sq Square) *Piece {
	p := newPiece(kind, side, sq)
	b.squares[sq] = p
	b.rosters[side] = append(b.rosters[side], p)
	return p
}

// Place creates a piece on an empty square and adds it to its side's roster.
// It is the bulk-setup path used when restoring a saved game.
func (b *Board) Place(kind PieceType, side Side, sq Square, moved bool) (*Piece, error) {
	if !sq.Valid() {
		return nil, errors.Wrapf(errors.ErrInvalidSquare, "place %s", kind)
	}
	if kind < Pawn || kind > King {
		return nil, errors.Wrapf(errors.ErrInvalidPosition, "place on %s: unknown piece type %d", sq, kind)
	}
	if occupant := b.squares[sq]; occupant != nil {
		return nil, errors.Wrapf(errors.ErrInvalidPosition, "place %s %s: %s already occupied by %s", side, kind, sq, occupant)
	}
	p := b.add(kind, side, sq)
	p.moved = moved
	return p, nil
}

// At returns the piece on sq, or nil if it is empty.
func (b *Board) At(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq]
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq) == nil
}

// Pieces returns a copy of the side's roster in roster order.
func (b *Board) Pieces(side Side) []*Piece {
	return slices.Clone(b.rosters[side])
}

// Count returns the number of live pieces of a side.
func (b *Board) Count(side Side) int {
	return len(b.rosters[side])
}

// Alive reports whether p is still on its side's roster.
func (b *Board) Alive(p *Piece) bool {
	return p != nil && slices.Contains(b.rosters[p.side], p)
}

// King returns the side's king, or nil if it has none.
func (b *Board) King(side Side) *Piece {
	i := slices.IndexFunc(b.rosters[side], func(p *Piece) bool { return p.kind == King })
	if i < 0 {
		return nil
	}
	return b.rosters[side][i]
}

// Relocate moves p from one square to another unconditionally: to becomes
// occupied by p, from becomes empty and p's square is updated. No legality
// checking is done; a rollback is the same call with from and to swapped.
// A piece previously on to is displaced but stays on its roster until
// Capture is called for it.
func (b *Board) Relocate(from, to Square, p *Piece) {
	if from != to {
		b.squares[from] = nil
	}
	b.squares[to] = p
	p.square = to
}

// Capture removes p from its roster and clears its square if p still
// occupies it.
func (b *Board) Capture(p *Piece) {
	roster := b.rosters[p.side]
	if i := slices.Index(roster, p); i >= 0 {
		b.rosters[p.side] = slices.Delete(roster, i, i+1)
	}
	if p.square.Valid() && b.squares[p.square] == p {
		b.squares[p.square] = nil
	}
}

// MarkMoved records that p has completed a move.
func (b *Board) MarkMoved(p *Piece) {
	p.moved = true
}

// Promote replaces old on sq with a freshly created piece of kind, removing
// old from its roster and adding the new piece in its place.
func (b *Board) Promote(sq Square, old *Piece, kind PieceType) *Piece {
	side := old.side
	b.Capture(old)
	p := newPiece(kind, side, sq)
	p.moved = true
	b.squares[sq] = p
	b.rosters[side] = append(b.rosters[side], p)
	return p
}

// pieceState is the mutable part of a piece.
type pieceState struct {
	piece  *Piece
	square Square
	moved  bool
}

// State captures everything a trial move can touch: occupancy, rosters and
// every live piece's square and moved flag.
type State struct {
	squares [NumSquares]*Piece
	rosters [NumSides][]*Piece
	pieces  []pieceState
}

// Save captures the current board state for later restoration.
func (b *Board) Save() State {
	s := State{squares: b.squares}
	for side := range b.rosters {
		s.rosters[side] = slices.Clone(b.rosters[side])
		for _, p := range b.rosters[side] {
			s.pieces = append(s.pieces, pieceState{piece: p, square: p.square, moved: p.moved})
		}
	}
	return s
}

// Restore puts the board back to a previously saved state. Pieces created
// after the save (promotions) are discarded.
func (b *Board) Restore(s State) {
	b.squares = s.squares
	for side := range s.rosters {
		b.rosters[side] = slices.Clone(s.rosters[side])
	}
	for _, ps := range s.pieces {
		ps.piece.square = ps.square
		ps.piece.moved = ps.moved
	}
}

// Clone returns a deep copy of the board with its own pieces. The copy
// shares nothing with b, so it can be mutated on another goroutine.
func (b *Board) Clone() (*Board, map[*Piece]*Piece) {
	c := NewBoard()
	mapping := make(map[*Piece]*Piece, len(b.rosters[White])+len(b.rosters[Black]))
	for side := range b.rosters {
		for _, p := range b.rosters[side] {
			cp := *p
			c.rosters[side] = append(c.rosters[side], &cp)
			c.squares[cp.square] = &cp
			mapping[p] = &cp
		}
	}
	return c, mapping
}

// CheckInvariants verifies that occupancy and rosters agree: every roster
// piece stands on its own square and every occupied square holds a live
// piece that knows where it is.
func (b *Board) CheckInvariants() error {
	seen := 0
	for side := range b.rosters {
		for _, p := range b.rosters[side] {
			if p.side != Side(side) {
				return fmt.Errorf("%s on %s roster", p, Side(side))
			}
			if !p.square.Valid() || b.squares[p.square] != p {
				return fmt.Errorf("%s not found on its square", p)
			}
			seen++
		}
	}
	occupied := 0
	for sq, p := range b.squares {
		if p == nil {
			continue
		}
		occupied++
		if p.square != Square(sq) {
			return fmt.Errorf("square %s holds %s", Square(sq), p)
		}
	}
	if occupied != seen {
		return fmt.Errorf("%d occupied squares for %d live pieces", occupied, seen)
	}
	return nil
}
