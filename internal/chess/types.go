// Package chess provides the board topology, pieces and board state for the
// rules engine.
package chess

// Side represents the owner of a piece or the player to move.
type Side int

const (
	Black Side = iota
	White
)

// NumSides is the number of sides in a game.
const NumSides = 2

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposing side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction along ranks).
func (s Side) Forward() int {
	if s == White {
		return 1
	}
	return -1
}

// BackRank returns the rank the side's pieces start on.
func (s Side) BackRank() int {
	if s == White {
		return 1
	}
	return BoardSize
}

// PawnRank returns the rank the side's pawns start on.
func (s Side) PawnRank() int {
	return s.BackRank() + s.Forward()
}

// PromotionRank returns the farthest rank for the side's pawns.
func (s Side) PromotionRank() int {
	return s.Opposite().BackRank()
}

// ParseSide converts "white"/"black" (or "w"/"b") to a Side.
func ParseSide(s string) (Side, bool) {
	switch s {
	case "white", "White", "w":
		return White, true
	case "black", "Black", "b":
		return Black, true
	}
	return Black, false
}

// PieceType is the closed set of chess piece kinds.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	if t >= NoPieceType && int(t) < len(pieceNames) {
		return pieceNames[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= NoPieceType && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may promote to t.
func (t PieceType) IsPromotionTarget() bool {
	switch t {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// IsSlider reports whether the piece moves along open lines.
func (t PieceType) IsSlider() bool {
	return t == Bishop || t == Rook || t == Queen
}

// PromotionTargets lists the piece types a pawn may become.
var PromotionTargets = []PieceType{Queen, Rook, Bishop, Knight}

// ParsePieceType converts a name ("queen") or letter ("Q", "q") to a piece type.
func ParsePieceType(s string) (PieceType, bool) {
	switch s {
	case "pawn", "Pawn", "P", "p":
		return Pawn, true
	case "knight", "Knight", "N", "n":
		return Knight, true
	case "bishop", "Bishop", "B", "b":
		return Bishop, true
	case "rook", "Rook", "R", "r":
		return Rook, true
	case "queen", "Queen", "Q", "q":
		return Queen, true
	case "king", "King", "K", "k":
		return King, true
	}
	return NoPieceType, false
}

// Capabilities is the set of movement directions a piece may attempt,
// independent of board occupancy. KnightJump marks the knight's L-shaped move.
type Capabilities uint16

// KnightJump is the capability bit for the knight's jump.
const KnightJump Capabilities = 1 << NumDirections

// With returns the set extended by direction d.
func (c Capabilities) With(d Direction) Capabilities {
	return c | 1<<uint(d)
}

// Has reports whether direction d is in the set.
func (c Capabilities) Has(d Direction) bool {
	return d >= 0 && d < NumDirections && c&(1<<uint(d)) != 0
}

// CanJump reports whether the set carries the knight jump.
func (c Capabilities) CanJump() bool {
	return c&KnightJump != 0
}

// Directions lists the directions in the set in compass order.
func (c Capabilities) Directions() []Direction {
	var dirs []Direction
	for d := North; d < NumDirections; d++ {
		if c.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func capabilitySet(dirs ...Direction) Capabilities {
	var c Capabilities
	for _, d := range dirs {
		c = c.With(d)
	}
	return c
}

var (
	orthogonal = capabilitySet(North, East, South, West)
	diagonal   = capabilitySet(NorthEast, SouthEast, SouthWest, NorthWest)
	allLines   = orthogonal | diagonal
)

// CapabilitiesOf returns the static capability set of a piece type.
// Pawns depend on side because they only move forward.
func CapabilitiesOf(t PieceType, side Side) Capabilities {
	switch t {
	case Pawn:
		if side == White {
			return capabilitySet(North, NorthEast, NorthWest)
		}
		return capabilitySet(South, SouthEast, SouthWest)
	case Knight:
		return KnightJump
	case Bishop:
		return diagonal
	case Rook:
		return orthogonal
	case Queen, King:
		return allLines
	}
	return 0
}
