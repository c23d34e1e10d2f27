package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Move is a source-destination square pair.
type Move struct {
	From chess.Square
	To   chess.Square
}

// String returns the coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// LegalMoves returns every check-safe move available to side, ordered by
// roster and then destination square.
func (g *Game) LegalMoves(side chess.Side) []Move {
	var moves []Move
	g.eachLegalMove(side, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given side has at least one legal move.
func (g *Game) HasLegalMoves(side chess.Side) bool {
	found := false
	g.eachLegalMove(side, func(Move) bool {
		found = true
		return false
	})
	return found
}

// IsStalemate returns true if side is not in check but cannot move.
func (g *Game) IsStalemate(side chess.Side) bool {
	return !g.InCheck(side) && !g.HasLegalMoves(side)
}

// eachLegalMove calls fn for each legal move of side until fn returns false.
func (g *Game) eachLegalMove(side chess.Side, fn func(Move) bool) {
	for _, p := range g.board.Pieces(side) {
		from := p.Square()
		for to := chess.Square(0); to < chess.NumSquares; to++ {
			if !g.ValidateAndDescribe(from, to).Legal {
				continue
			}
			if !fn(Move{From: from, To: to}) {
				return
			}
		}
	}
}

// Status summarises the position for one side.
type Status struct {
	Side chess.Side
	// Attacker is a piece giving check, nil when not in check.
	Attacker  *chess.Piece
	Check     bool
	Checkmate bool
	Stalemate bool
}

// StatusOf reports check, checkmate and stalemate for side.
func (g *Game) StatusOf(side chess.Side) Status {
	st := Status{Side: side, Attacker: g.KingAttacker(side)}
	st.Check = st.Attacker != nil
	if st.Check {
		st.Checkmate = g.IsCheckmateBy(side, st.Attacker)
	} else {
		st.Stalemate = !g.HasLegalMoves(side)
	}
	return st
}

// Status reports check, checkmate and stalemate for the side to move.
func (g *Game) Status() Status {
	return g.StatusOf(g.toMove)
}
