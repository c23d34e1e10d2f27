package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/render"
	"github.com/lgbarn/chess-rules-go/internal/storage"
)

const helpText = `Commands:
  e2 e4, e2e4, e7e8q   move a piece (optional promotion piece)
  promote q|r|b|n      finish a pending promotion
  moves                list legal moves
  board                show the board
  fen                  print the position as FEN
  save FILE            save the game (.json, .yaml or .yml)
  load FILE            resume a saved game
  help                 show this help
  quit                 leave the game
`

// session is the interactive turn loop around one game.
type session struct {
	cfg  *config.Config
	game *engine.Game
	in   *bufio.Scanner
	out  io.Writer
}

func newSession(cfg *config.Config, game *engine.Game, in io.Reader) *session {
	return &session{
		cfg:  cfg,
		game: game,
		in:   bufio.NewScanner(in),
		out:  cfg.OutputFile,
	}
}

// run plays until checkmate, stalemate, quit or end of input.
func (s *session) run() error {
	if err := s.show(); err != nil {
		return err
	}
	if s.announce(s.game.Status()) {
		return nil
	}
	for {
		s.prompt()
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}
		done, err := s.handle(line)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			s.cfg.Logf(config.Commentary, "rejected %q: %v", line, err)
		}
		if done {
			return nil
		}
	}
}

func (s *session) prompt() {
	if p := s.game.PendingPromotion(); p != nil {
		fmt.Fprintf(s.out, "%s must promote the pawn on %s: ", p.Side(), p.Square())
		return
	}
	fmt.Fprintf(s.out, "%s to move (%d): ", s.game.ToMove(), s.game.MoveNumber())
}

func (s *session) readLine() (string, bool) {
	for s.in.Scan() {
		if line := strings.TrimSpace(s.in.Text()); line != "" {
			return line, true
		}
	}
	return "", false
}

// handle runs one command or move. done is set when the game is over.
func (s *session) handle(line string) (done bool, err error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.out, helpText)
		return false, nil
	case "board":
		return false, s.show()
	case "fen":
		fmt.Fprintln(s.out, s.game.FEN())
		return false, nil
	case "moves":
		s.listMoves()
		return false, nil
	case "save":
		if arg == "" {
			return false, fmt.Errorf("save needs a file name: %w", errors.ErrInvalidSave)
		}
		if err := s.saveTo(arg); err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "Saved to %s\n", arg)
		return false, nil
	case "load":
		if arg == "" {
			return false, fmt.Errorf("load needs a file name: %w", errors.ErrInvalidSave)
		}
		g, err := loadGame(s.cfg, arg)
		if err != nil {
			return false, err
		}
		s.game = g
		s.cfg.Logf(config.GameEvents, "loaded %s", arg)
		if err := s.show(); err != nil {
			return false, err
		}
		return s.announce(g.Status()), nil
	case "promote":
		return s.promote(arg)
	}
	return s.move(line)
}

func (s *session) move(line string) (bool, error) {
	if p := s.game.PendingPromotion(); p != nil {
		return false, errors.Wrapf(errors.ErrPromotionPending, "promote the pawn on %s first", p.Square())
	}
	from, to, promo, err := parseMoveInput(line)
	if err != nil {
		return false, err
	}

	mover := s.game.ToMove()
	res, err := s.game.Apply(from, to, engine.ApplyOptions{Promotion: promo, Chooser: s})
	if err != nil {
		return false, err
	}
	s.cfg.Logf(config.Commentary, "%s %s%s", mover, res.From, res.To)
	if res.PromotionPending {
		return false, nil
	}
	return s.afterMove(res.Status)
}

func (s *session) promote(arg string) (bool, error) {
	pawn := s.game.PendingPromotion()
	if pawn == nil {
		return false, errors.Wrap(errors.ErrInvalidPromotion, "no pawn is waiting to promote")
	}
	kind, err := parsePromotion(arg)
	if err != nil {
		return false, err
	}
	_, st, err := s.game.Promote(pawn.Square(), kind)
	if err != nil {
		return false, err
	}
	return s.afterMove(st)
}

// ChoosePromotion asks which piece a pawn reaching the last rank becomes.
// At end of input the promotion is left pending.
func (s *session) ChoosePromotion(side chess.Side, at chess.Square) chess.PieceType {
	for {
		fmt.Fprintf(s.out, "Promote %s pawn on %s to (q, r, b, n): ", side, at)
		line, ok := s.readLine()
		if !ok {
			return chess.NoPieceType
		}
		kind, err := parsePromotion(line)
		if err == nil {
			return kind
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *session) afterMove(st engine.Status) (bool, error) {
	if err := s.show(); err != nil {
		return false, err
	}
	if path := s.cfg.Save.AutoSavePath; path != "" {
		if err := s.saveTo(path); err != nil {
			return false, errors.Wrap(err, "autosave")
		}
		s.cfg.Logf(config.Commentary, "autosaved to %s", path)
	}
	return s.announce(st), nil
}

// announce reports check, checkmate or stalemate and whether the game is over.
func (s *session) announce(st engine.Status) bool {
	switch {
	case st.Checkmate:
		fmt.Fprintf(s.out, "Checkmate! %s wins.\n", st.Side.Opposite())
		s.cfg.Logf(config.GameEvents, "checkmate: %s mated by %s", st.Side, st.Attacker)
		return true
	case st.Stalemate:
		fmt.Fprintf(s.out, "Stalemate. %s has no legal move; the game is drawn.\n", st.Side)
		s.cfg.Logf(config.GameEvents, "stalemate: %s to move", st.Side)
		return true
	case st.Check:
		fmt.Fprintf(s.out, "%s is in check from the %s on %s.\n", st.Side, st.Attacker.Type(), st.Attacker.Square())
		s.cfg.Logf(config.GameEvents, "check: %s by %s", st.Side, st.Attacker)
	}
	return false
}

func (s *session) listMoves() {
	moves := s.game.LegalMoves(s.game.ToMove())
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintf(s.out, "%d legal moves: %s\n", len(moves), strings.Join(names, " "))
}

// show draws the board in the configured mode.
func (s *session) show() error {
	d := s.cfg.Display
	switch d.Mode {
	case config.RenderText:
		return render.Text(s.out, s.game.Board(), render.TextOptions{ASCII: d.ASCII, Flip: d.Flip})
	case config.RenderSVG:
		f, err := os.Create(d.SVGPath)
		if err != nil {
			return err
		}
		if err := render.SVG(f, s.game.Board(), d.SVGSize); err != nil {
			f.Close()
			return errors.Wrap(err, d.SVGPath)
		}
		return f.Close()
	}
	return nil
}

func (s *session) saveTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := storage.Save(f, s.game, s.cfg.Save.FormatFor(path)); err != nil {
		f.Close()
		return errors.Wrap(err, path)
	}
	return f.Close()
}

// loadGame reads a saved game, using the configured format when the file
// extension does not name one.
func loadGame(cfg *config.Config, path string) (*engine.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := storage.Load(f, cfg.Save.FormatFor(path))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return g, nil
}
