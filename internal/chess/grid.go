package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square identifies one of the 64 squares. Index 0 is a1, 7 is h1, 63 is h8.
type Square int8

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// NewSquare returns the square at file and rank (both 1..8), or NoSquare
// when either coordinate is off the board.
func NewSquare(file, rank int) Square {
	if file < 1 || file > BoardSize || rank < 1 || rank > BoardSize {
		return NoSquare
	}
	return Square((rank-1)*BoardSize + (file - 1))
}

// MustSquare parses a coordinate such as "e4" and panics if it is malformed.
// Intended for fixtures and tables.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare converts a coordinate of the form file 'a'-'h' followed by
// rank '1'-'8' into a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Expected: "two characters",
			Got:      fmt.Sprintf("%q", s),
		}
	}
	file := s[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < FileBase || file >= FileBase+BoardSize {
		return NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Column:   1,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", s[0]),
		}
	}
	rank := s[1]
	if rank < RankBase || rank >= RankBase+BoardSize {
		return NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Column:   2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", s[1]),
		}
	}
	return NewSquare(int(file-FileBase)+1, int(rank-RankBase)+1), nil
}

// Valid reports whether s names a square on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// File returns the 1-based file (a=1).
func (s Square) File() int {
	return int(s)%BoardSize + 1
}

// Rank returns the 1-based rank.
func (s Square) Rank() int {
	return int(s)/BoardSize + 1
}

// FileLetter returns the file as 'a'-'h'.
func (s Square) FileLetter() byte {
	return byte(FileBase + s.File() - 1)
}

// String returns the coordinate form, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileLetter(), byte(RankBase + s.Rank() - 1)})
}

// Direction is one of the eight compass directions.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections
)

var directionNames = [NumDirections]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

// directionDeltas holds {file delta, rank delta} per direction.
var directionDeltas = [NumDirections][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// String returns the short compass name.
func (d Direction) String() string {
	if d >= 0 && d < NumDirections {
		return directionNames[d]
	}
	return "?"
}

// Delta returns the file and rank step of d.
func (d Direction) Delta() (int, int) {
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + NumDirections/2) % NumDirections
}

// IsDiagonal reports whether d changes both file and rank.
func (d Direction) IsDiagonal() bool {
	return d%2 == 1
}

// neighbors is the immutable grid topology, computed once.
var neighbors [NumSquares][NumDirections]Square

func init() {
	for sq := Square(0); sq < NumSquares; sq++ {
		for d := North; d < NumDirections; d++ {
			df, dr := d.Delta()
			neighbors[sq][d] = NewSquare(sq.File()+df, sq.Rank()+dr)
		}
	}
}

// Neighbor returns the adjacent square in direction d, if it exists.
func (s Square) Neighbor(d Direction) (Square, bool) {
	n := neighbors[s][d]
	return n, n != NoSquare
}

// Neighbors returns every existing adjacent square in compass order.
// Edge squares have fewer than eight.
func (s Square) Neighbors() []Square {
	out := make([]Square, 0, NumDirections)
	for _, n := range neighbors[s] {
		if n != NoSquare {
			out = append(out, n)
		}
	}
	return out
}

// Offset returns the square df files and dr ranks away, or NoSquare.
func (s Square) Offset(df, dr int) Square {
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// Delta returns the file and rank difference from -> to.
func Delta(from, to Square) (int, int) {
	return to.File() - from.File(), to.Rank() - from.Rank()
}

// DirectionBetween returns the compass direction from -> to. Same-square
// targets and targets that are neither on a rank, a file nor a true
// diagonal have no direction.
func DirectionBetween(from, to Square) (Direction, bool) {
	df, dr := Delta(from, to)
	if df == 0 && dr == 0 {
		return 0, false
	}
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return 0, false
	}
	for d := North; d < NumDirections; d++ {
		ddf, ddr := d.Delta()
		if ddf == sign(df) && ddr == sign(dr) {
			return d, true
		}
	}
	return 0, false
}

// IsKnightJump reports whether to is one of the eight knight offsets of from.
func IsKnightJump(from, to Square) bool {
	df, dr := Delta(from, to)
	df, dr = abs(df), abs(dr)
	return (df == 1 && dr == 2) || (df == 2 && dr == 1)
}

// Between returns the squares strictly between from and to along d.
// The walk stops early if it runs off the board.
func Between(from, to Square, d Direction) []Square {
	var out []Square
	for cur, ok := from.Neighbor(d); ok && cur != to; cur, ok = cur.Neighbor(d) {
		out = append(out, cur)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
