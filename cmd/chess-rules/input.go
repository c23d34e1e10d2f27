package main

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// parseMoveInput reads a move typed as "e2 e4", "e2e4" or "e2-e4", with an
// optional promotion piece: "e7e8q", "e7 e8 q".
func parseMoveInput(line string) (from, to chess.Square, promo chess.PieceType, err error) {
	fields := strings.FieldsFunc(strings.TrimSpace(line), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-'
	})
	if len(fields) == 1 && (len(fields[0]) == 4 || len(fields[0]) == 5) {
		compact := fields[0]
		fields = []string{compact[:2], compact[2:4]}
		if len(compact) == 5 {
			fields = append(fields, compact[4:])
		}
	}
	if len(fields) < 2 || len(fields) > 3 {
		return chess.NoSquare, chess.NoSquare, chess.NoPieceType,
			fmt.Errorf("expected a move like e2 e4, got %q: %w", line, errors.ErrInvalidSquare)
	}

	if from, err = chess.ParseSquare(strings.ToLower(fields[0])); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoPieceType, err
	}
	if to, err = chess.ParseSquare(strings.ToLower(fields[1])); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoPieceType, err
	}
	promo = chess.NoPieceType
	if len(fields) == 3 {
		if promo, err = parsePromotion(fields[2]); err != nil {
			return chess.NoSquare, chess.NoSquare, chess.NoPieceType, err
		}
	}
	return from, to, promo, nil
}

// parsePromotion accepts a letter or name of a piece a pawn may become.
func parsePromotion(s string) (chess.PieceType, error) {
	kind, ok := chess.ParsePieceType(strings.ToLower(strings.TrimSpace(s)))
	if !ok || !kind.IsPromotionTarget() {
		return chess.NoPieceType, errors.Wrapf(errors.ErrInvalidPromotion, "%q is not q, r, b or n", s)
	}
	return kind, nil
}
