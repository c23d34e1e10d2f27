package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Debug enables an invariant check of the board after every rollback.
// A failed check panics: it means a trial leaked into the live game.
var Debug = false

// EnPassant is the window opened by a pawn's two-square advance. It lasts
// exactly one ply: the opponent's next move.
type EnPassant struct {
	// Target is the pawn that just advanced two squares.
	Target *chess.Piece
	// Capturers are the enemy pawns that stood beside Target when it landed.
	Capturers []*chess.Piece
}

// Active reports whether a capture en passant is currently possible.
func (e EnPassant) Active() bool {
	return e.Target != nil
}

// CanCapture reports whether p was registered as a capturer.
func (e EnPassant) CanCapture(p *chess.Piece) bool {
	return e.Active() && slices.Contains(e.Capturers, p)
}

// Square returns the square a capturing pawn lands on, the one the target
// passed over.
func (e EnPassant) Square() chess.Square {
	if !e.Active() {
		return chess.NoSquare
	}
	return e.Target.Square().Offset(0, -e.Target.Side().Forward())
}

// Game is the complete state of a game in progress: the board, the side to
// move and the cross-turn special-move state.
type Game struct {
	board      *chess.Board
	toMove     chess.Side
	moveNumber int
	enPassant  EnPassant
	pending    *chess.Piece
}

// NewGame creates a game at the standard starting position, White to move.
func NewGame() *Game {
	return &Game{
		board:      chess.NewStandardBoard(),
		toMove:     chess.White,
		moveNumber: 1,
	}
}

// Board returns the game's board for reading. Pieces can only be moved
// through the game's operations.
func (g *Game) Board() *chess.Board { return g.board }

// ToMove returns the side whose turn it is.
func (g *Game) ToMove() chess.Side { return g.toMove }

// MoveNumber returns the full-move number, starting at 1 and incremented
// after each Black move.
func (g *Game) MoveNumber() int { return g.moveNumber }

// EnPassant returns the current en-passant window.
func (g *Game) EnPassant() EnPassant {
	return EnPassant{Target: g.enPassant.Target, Capturers: slices.Clone(g.enPassant.Capturers)}
}

// PendingPromotion returns the pawn waiting on the last rank for a
// promotion choice, or nil.
func (g *Game) PendingPromotion() *chess.Piece { return g.pending }

// Clone returns an independent copy of the game. Copies share no pieces, so
// they can be analysed concurrently.
func (g *Game) Clone() *Game {
	board, mapping := g.board.Clone()
	c := &Game{
		board:      board,
		toMove:     g.toMove,
		moveNumber: g.moveNumber,
		pending:    mapping[g.pending],
	}
	if g.enPassant.Active() {
		c.enPassant.Target = mapping[g.enPassant.Target]
		for _, p := range g.enPassant.Capturers {
			c.enPassant.Capturers = append(c.enPassant.Capturers, mapping[p])
		}
	}
	return c
}

// snapshot is everything a trial move can touch.
type snapshot struct {
	board      chess.State
	toMove     chess.Side
	moveNumber int
	enPassant  EnPassant
	pending    *chess.Piece
}

func (g *Game) save() snapshot {
	return snapshot{
		board:      g.board.Save(),
		toMove:     g.toMove,
		moveNumber: g.moveNumber,
		enPassant:  g.enPassant,
		pending:    g.pending,
	}
}

func (g *Game) restore(s snapshot) {
	g.board.Restore(s.board)
	g.toMove = s.toMove
	g.moveNumber = s.moveNumber
	g.enPassant = s.enPassant
	g.pending = s.pending
	if Debug {
		if err := g.board.CheckInvariants(); err != nil {
			panic(fmt.Sprintf("engine: rollback left an inconsistent board: %v", err))
		}
	}
}

// speculate runs fn against the live game and restores the game afterwards,
// whatever fn does or returns.
func (g *Game) speculate(fn func() bool) bool {
	s := g.save()
	defer g.restore(s)
	return fn()
}

// Placement is one piece of a bulk setup.
type Placement struct {
	Square chess.Square
	Type   chess.PieceType
	Side   chess.Side
	Moved  bool
}

// EnPassantSpec names the en-passant window by squares.
type EnPassantSpec struct {
	// Target is the square of the pawn that just advanced two squares.
	Target chess.Square
	// Capturers are the squares of pawns allowed to capture it. When nil
	// they are derived from the pawns beside Target.
	Capturers []chess.Square
}

// Setup is the bulk form of a game used by persistence and FEN import.
type Setup struct {
	ToMove     chess.Side
	MoveNumber int
	Pieces     []Placement
	EnPassant  *EnPassantSpec
}

// NewGameFromSetup replaces the whole board with the given placements.
// Every problem found is reported, not just the first.
func NewGameFromSetup(s Setup) (*Game, error) {
	var result *multierror.Error

	board := chess.NewBoard()
	for _, pl := range s.Pieces {
		if pl.Type == chess.Pawn && pl.Square.Valid() && pl.Square.Rank() == pl.Side.BackRank() {
			result = multierror.Append(result, errors.Wrapf(errors.ErrInvalidPosition,
				"%s pawn on its own back rank %s", pl.Side, pl.Square))
			continue
		}
		if _, err := board.Place(pl.Type, pl.Side, pl.Square, pl.Moved); err != nil {
			result = multierror.Append(result, err)
		}
	}

	for _, side := range []chess.Side{chess.White, chess.Black} {
		kings := 0
		for _, p := range board.Pieces(side) {
			if p.Type() == chess.King {
				kings++
			}
		}
		if kings != 1 {
			result = multierror.Append(result, errors.Wrapf(errors.ErrInvalidPosition,
				"%s has %d kings", side, kings))
		}
	}

	g := &Game{board: board, toMove: s.ToMove, moveNumber: s.MoveNumber}
	if g.moveNumber < 1 {
		g.moveNumber = 1
	}

	for _, p := range board.Pieces(chess.White) {
		result = g.checkPromotionRank(p, result)
	}
	for _, p := range board.Pieces(chess.Black) {
		result = g.checkPromotionRank(p, result)
	}

	if s.EnPassant != nil {
		ep, err := g.buildEnPassant(*s.EnPassant)
		if err != nil {
			result = multierror.Append(result, err)
		} else {
			g.enPassant = ep
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, errors.Wrap(err, "setup")
	}
	return g, nil
}

// checkPromotionRank accepts a single pawn of the side to move on its
// promotion rank as a pending promotion and rejects any other.
func (g *Game) checkPromotionRank(p *chess.Piece, result *multierror.Error) *multierror.Error {
	if p.Type() != chess.Pawn || p.Square().Rank() != p.Side().PromotionRank() {
		return result
	}
	if p.Side() != g.toMove || g.pending != nil {
		return multierror.Append(result, errors.Wrapf(errors.ErrInvalidPosition,
			"unpromoted pawn %s", p))
	}
	g.pending = p
	return result
}

func (g *Game) buildEnPassant(spec EnPassantSpec) (EnPassant, error) {
	target := g.board.At(spec.Target)
	mover := g.toMove.Opposite()
	if !target.Is(mover, chess.Pawn) {
		return EnPassant{}, errors.Wrapf(errors.ErrInvalidPosition,
			"en passant target %s is not a %s pawn", spec.Target, mover)
	}
	if spec.Target.Rank() != mover.PawnRank()+2*mover.Forward() {
		return EnPassant{}, errors.Wrapf(errors.ErrInvalidPosition,
			"en passant target %s has not just advanced two squares", spec.Target)
	}
	if spec.Capturers == nil {
		return g.openEnPassant(target), nil
	}
	ep := EnPassant{Target: target}
	for _, sq := range spec.Capturers {
		p := g.board.At(sq)
		df, dr := chess.Delta(spec.Target, sq)
		if !p.Is(g.toMove, chess.Pawn) || dr != 0 || (df != 1 && df != -1) {
			return EnPassant{}, errors.Wrapf(errors.ErrInvalidPosition,
				"en passant capturer %s is not a %s pawn beside %s", sq, g.toMove, spec.Target)
		}
		ep.Capturers = append(ep.Capturers, p)
	}
	return ep, nil
}

// Setup exports the game in bulk form, pieces ordered by square.
func (g *Game) Setup() Setup {
	s := Setup{ToMove: g.toMove, MoveNumber: g.moveNumber}
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		p := g.board.At(sq)
		if p == nil {
			continue
		}
		s.Pieces = append(s.Pieces, Placement{
			Square: sq,
			Type:   p.Type(),
			Side:   p.Side(),
			Moved:  p.HasMoved(),
		})
	}
	if g.enPassant.Active() {
		spec := &EnPassantSpec{Target: g.enPassant.Target.Square(), Capturers: []chess.Square{}}
		for _, p := range g.enPassant.Capturers {
			spec.Capturers = append(spec.Capturers, p.Square())
		}
		s.EnPassant = spec
	}
	return s
}
