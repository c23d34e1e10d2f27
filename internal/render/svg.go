package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	labelStyle  = "font-family:sans-serif;fill:#333333"
)

// DefaultSVGSize is the side length in pixels used when SVG is given a
// size too small to draw.
const DefaultSVGSize = 360

// SVG writes the board as an SVG diagram of the given pixel size, rank 8
// at the top. Pieces are drawn as Unicode chess symbols.
func SVG(w io.Writer, b *chess.Board, size int) error {
	if size < chess.BoardSize {
		size = DefaultSVGSize
	}
	cell := size / chess.BoardSize
	size = cell * chess.BoardSize

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(size, size)
	canvas.Title("chess board")

	pieceStyle := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", cell*3/4)
	labelSize := fmt.Sprintf("%s;font-size:%dpx", labelStyle, cell/6)

	for rank := 1; rank <= chess.BoardSize; rank++ {
		for file := 1; file <= chess.BoardSize; file++ {
			x := (file - 1) * cell
			y := (chess.BoardSize - rank) * cell
			style := lightSquare
			if (file+rank)%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, cell, cell, style)

			if p := b.At(chess.NewSquare(file, rank)); p != nil {
				canvas.Text(x+cell/2, y+cell/2, string(Symbol(p, false)), pieceStyle)
			}
			if file == 1 {
				canvas.Text(x+2, y+cell/6+1, fmt.Sprint(rank), labelSize)
			}
			if rank == 1 {
				canvas.Text(x+cell-cell/6, y+cell-3, string(rune(chess.FileBase+file-1)), labelSize)
			}
		}
	}
	canvas.End()
	return ew.err
}

// errWriter remembers the first write error, since svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
