// Package render draws a board for people: a text grid for terminals and an
// SVG diagram. It only reads occupancy and each piece's type and side.
package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// TextOptions controls the text board.
type TextOptions struct {
	// ASCII uses FEN letters instead of Unicode chess symbols.
	ASCII bool
	// Flip draws the board from Black's side.
	Flip bool
	// NoLabels omits the file and rank labels.
	NoLabels bool
}

var unicodePieces = [chess.NumSides][]rune{
	chess.Black: {' ', '♟', '♞', '♝', '♜', '♛', '♚'},
	chess.White: {' ', '♙', '♘', '♗', '♖', '♕', '♔'},
}

// Symbol returns the character used for p, or '.' for an empty square.
func Symbol(p *chess.Piece, ascii bool) rune {
	if p == nil {
		return '.'
	}
	if ascii {
		letter := rune(p.Type().Letter())
		if p.Side() == chess.Black {
			letter += 'a' - 'A'
		}
		return letter
	}
	return unicodePieces[p.Side()][p.Type()]
}

// Text writes the board as an 8x8 grid, rank 8 at the top unless flipped.
func Text(w io.Writer, b *chess.Board, opts TextOptions) error {
	bw := bufio.NewWriter(w)

	ranks, files := order(opts.Flip)
	for _, rank := range ranks {
		if !opts.NoLabels {
			bw.WriteByte(byte(chess.RankBase + rank - 1))
			bw.WriteByte(' ')
		}
		cells := make([]string, 0, chess.BoardSize)
		for _, file := range files {
			cells = append(cells, string(Symbol(b.At(chess.NewSquare(file, rank)), opts.ASCII)))
		}
		bw.WriteString(strings.Join(cells, " "))
		bw.WriteByte('\n')
	}
	if !opts.NoLabels {
		bw.WriteString("  ")
		labels := make([]string, 0, chess.BoardSize)
		for _, file := range files {
			labels = append(labels, string(rune(chess.FileBase+file-1)))
		}
		bw.WriteString(strings.Join(labels, " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// order returns ranks top to bottom and files left to right as drawn.
func order(flip bool) (ranks, files []int) {
	for i := 1; i <= chess.BoardSize; i++ {
		ranks = append(ranks, chess.BoardSize+1-i)
		files = append(files, i)
	}
	if flip {
		for i, j := 0, chess.BoardSize-1; i < j; i, j = i+1, j-1 {
			ranks[i], ranks[j] = ranks[j], ranks[i]
			files[i], files[j] = files[j], files[i]
		}
	}
	return ranks, files
}
