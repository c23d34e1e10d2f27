package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pathClear walks neighbor squares from from toward to along dir. Every
// intermediate square must be empty; the walk fails if it runs off the
// board before reaching to.
func (g *Game) pathClear(from, to chess.Square, dir chess.Direction) bool {
	cur := from
	for {
		next, ok := cur.Neighbor(dir)
		if !ok {
			return false
		}
		if next == to {
			return true
		}
		if !g.board.IsEmpty(next) {
			return false
		}
		cur = next
	}
}
