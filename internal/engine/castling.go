package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleFor checks the occupancy half of castling for an unmoved king
// stepping two squares toward dir: the corner rook on that side must be an
// unmoved rook of the same side and every square between king and rook
// must be empty. Attack conditions are checked by ValidateAndDescribe.
func (g *Game) castleFor(king *chess.Piece, dir chess.Direction) (*Castle, bool) {
	if king.HasMoved() || king.Square().Rank() != king.Side().BackRank() {
		return nil, false
	}
	if dir != chess.East && dir != chess.West {
		return nil, false
	}

	kingside := dir == chess.East
	file := 1
	if kingside {
		file = chess.BoardSize
	}
	corner := chess.NewSquare(file, king.Square().Rank())
	rook := g.board.At(corner)
	if !rook.Is(king.Side(), chess.Rook) || rook.HasMoved() {
		return nil, false
	}
	if !g.pathClear(king.Square(), corner, dir) {
		return nil, false
	}

	kingTo := king.Square().Offset(2*dirFile(dir), 0)
	rookTo, _ := kingTo.Neighbor(dir.Opposite())
	return &Castle{
		Rook:     rook,
		RookFrom: corner,
		RookTo:   rookTo,
		Kingside: kingside,
	}, true
}

func dirFile(d chess.Direction) int {
	df, _ := d.Delta()
	return df
}
