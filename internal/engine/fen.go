package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castling rook corners keyed by FEN castling letter.
var castlingCorners = map[rune]chess.Square{
	'K': chess.NewSquare(8, 1),
	'Q': chess.NewSquare(1, 1),
	'k': chess.NewSquare(8, 8),
	'q': chess.NewSquare(1, 8),
}

// FENLetter returns the FEN letter for a piece: uppercase for White,
// lowercase for Black.
func FENLetter(p *chess.Piece) byte {
	letter := p.Type().Letter()
	if p.Side() == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewGameFromFEN creates a game from a FEN string. FEN carries no moved
// flags, so they are derived: a pawn off its starting rank has moved, and a
// king or rook has moved unless a castling right keeps it fresh. The
// halfmove clock is accepted and ignored.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	setup := Setup{ToMove: chess.White, MoveNumber: 1}

	pieces, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}

	if err := parseSideToMove(&setup, parts); err != nil {
		return nil, err
	}

	fresh, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}
	setup.Pieces = deriveMovedFlags(pieces, fresh)

	if err := parseEnPassant(&setup, parts); err != nil {
		return nil, err
	}
	if err := parseMoveNumber(&setup, parts); err != nil {
		return nil, err
	}

	g, err := NewGameFromSetup(setup)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err)
	}
	return g, nil
}

// MustGameFromFEN is NewGameFromFEN for fixtures; it panics on error.
func MustGameFromFEN(fen string) *Game {
	g, err := NewGameFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return g
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) ([]Placement, error) {
	var pieces []Placement
	rank := chess.BoardSize
	file := 1

	for _, c := range positions {
		switch {
		case c == '/':
			rank--
			file = 1
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind, ok := chess.ParsePieceType(string(c))
			if !ok {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.NewSquare(file, rank)
			if sq == chess.NoSquare {
				return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			side := chess.White
			if unicode.IsLower(c) {
				side = chess.Black
			}
			pieces = append(pieces, Placement{Square: sq, Type: kind, Side: side})
			file++
		}
	}
	return pieces, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(setup *Setup, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		setup.ToMove = chess.White
	case "b":
		setup.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights returns the rook corners whose castling right is
// still available.
func parseCastlingRights(parts []string) (map[chess.Square]bool, error) {
	fresh := make(map[chess.Square]bool)
	if len(parts) < 3 || parts[2] == "-" {
		return fresh, nil
	}
	for _, c := range parts[2] {
		corner, ok := castlingCorners[c]
		if !ok {
			return nil, fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}
		fresh[corner] = true
	}
	return fresh, nil
}

func deriveMovedFlags(pieces []Placement, fresh map[chess.Square]bool) []Placement {
	for i := range pieces {
		pl := &pieces[i]
		switch pl.Type {
		case chess.Pawn:
			pl.Moved = pl.Square.Rank() != pl.Side.PawnRank()
		case chess.Rook:
			pl.Moved = !fresh[pl.Square] || pl.Square.Rank() != pl.Side.BackRank()
		case chess.King:
			pl.Moved = true
			for corner := range fresh {
				if corner.Rank() == pl.Side.BackRank() && pl.Square.Rank() == pl.Side.BackRank() {
					pl.Moved = false
				}
			}
		}
	}
	return pieces
}

// parseEnPassant parses the en passant target square field. The window's
// target is the pawn that passed over the square.
func parseEnPassant(setup *Setup, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %v: %w", parts[3], err, errors.ErrInvalidFEN)
	}
	target := sq.Offset(0, setup.ToMove.Opposite().Forward())
	if target == chess.NoSquare {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	setup.EnPassant = &EnPassantSpec{Target: target}
	return nil
}

// parseMoveNumber parses the fullmove number field.
func parseMoveNumber(setup *Setup, parts []string) error {
	if len(parts) < 6 {
		return nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
	}
	setup.MoveNumber = n
	return nil
}

// FEN converts the game to a FEN string. The halfmove clock is always 0.
func (g *Game) FEN() string {
	var sb strings.Builder

	g.writePiecePositions(&sb)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	g.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	if g.enPassant.Active() {
		sb.WriteString(g.enPassant.Square().String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " 0 %d", g.moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (g *Game) writePiecePositions(sb *strings.Builder) {
	for rank := chess.BoardSize; rank >= 1; rank-- {
		emptyCount := 0
		for file := 1; file <= chess.BoardSize; file++ {
			p := g.board.At(chess.NewSquare(file, rank))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(FENLetter(p))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability: a right exists
// while the king and that corner's rook are both unmoved.
func (g *Game) writeCastlingRights(sb *strings.Builder) {
	hasCastling := false
	for _, c := range "KQkq" {
		corner := castlingCorners[c]
		side := chess.White
		if unicode.IsLower(c) {
			side = chess.Black
		}
		king := g.board.King(side)
		rook := g.board.At(corner)
		if king == nil || king.HasMoved() || king.Square().Rank() != side.BackRank() {
			continue
		}
		if !rook.Is(side, chess.Rook) || rook.HasMoved() {
			continue
		}
		sb.WriteRune(c)
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
