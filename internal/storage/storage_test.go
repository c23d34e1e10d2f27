package storage

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func mustSquare(s string) chess.Square { return chess.MustSquare(s) }

func playedGame(t *testing.T) *engine.Game {
	t.Helper()
	g := engine.NewGame()
	for _, m := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		_, err := g.Apply(mustSquare(m[:2]), mustSquare(m[2:]), engine.ApplyOptions{})
		require.NoError(t, err, m)
	}
	return g
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, format := range []Format{JSON, YAML} {
		t.Run(format.String(), func(t *testing.T) {
			g := playedGame(t)

			var buf bytes.Buffer
			require.NoError(t, Save(&buf, g, format))

			loaded, err := Load(&buf, format)
			require.NoError(t, err)

			assert.Equal(t, g.FEN(), loaded.FEN())
			assert.Equal(t, g.Setup(), loaded.Setup())
			assert.True(t, loaded.IsLegal(mustSquare("e5"), mustSquare("d6")), "en passant survives the round trip")
			assert.ElementsMatch(t, g.LegalMoves(chess.White), loaded.LegalMoves(chess.White))
		})
	}
}

func TestSave_JSONShape(t *testing.T) {
	g := playedGame(t)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, g, JSON))

	out := buf.String()
	assert.Contains(t, out, `"toMove": "white"`)
	assert.Contains(t, out, `"target": "d5"`)
	assert.Contains(t, out, `"capturingPawns": [`)
	assert.Contains(t, out, `"type": "pawn"`)
}

func TestSave_YAMLShape(t *testing.T) {
	g := playedGame(t)
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, g, YAML))

	out := buf.String()
	assert.Contains(t, out, "to_move: white")
	assert.Contains(t, out, "capturing_pawns:")
	assert.Contains(t, out, "- e5")
}

func TestFromGame_MovedFlags(t *testing.T) {
	sg := FromGame(playedGame(t))
	moved := map[string]bool{}
	for _, p := range sg.Pieces {
		moved[p.File+string(rune('0'+p.Rank))] = p.Moved
	}
	assert.True(t, moved["e5"])
	assert.False(t, moved["e1"])
	assert.False(t, moved["h8"])
	assert.Len(t, sg.Pieces, 32)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "malformed json",
			input: `{"toMove": `,
			want:  []string{"decode json"},
		},
		{
			name:  "unknown field",
			input: `{"toMove": "white", "pieces": [], "colour": "red"}`,
			want:  []string{"decode json"},
		},
		{
			name: "every bad field reported",
			input: `{"toMove": "green", "pieces": [
				{"file": "z", "rank": 1, "type": "king", "side": "white"},
				{"file": "e", "rank": 8, "type": "dragon", "side": "black"}
			]}`,
			want: []string{`side to move "green"`, "square z1", `piece type "dragon"`},
		},
		{
			name:  "missing kings",
			input: `{"toMove": "white", "pieces": [{"file": "a", "rank": 2, "type": "pawn", "side": "white"}]}`,
			want:  []string{"White has 0 kings", "Black has 0 kings"},
		},
		{
			name: "bad en passant target",
			input: `{"toMove": "white", "pieces": [
				{"file": "e", "rank": 1, "type": "king", "side": "white"},
				{"file": "e", "rank": 8, "type": "king", "side": "black"}
			], "enPassant": {"target": "e5", "capturingPawns": []}}`,
			want: []string{"en passant target e5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), JSON)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidSave), "error %v is not ErrInvalidSave", err)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

func TestSaveFile_LoadFile(t *testing.T) {
	dir := t.TempDir()
	g := playedGame(t)

	for _, name := range []string{"game.json", "game.yaml", "game.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, SaveFile(path, g))

		loaded, err := LoadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, g.FEN(), loaded.FEN(), name)
	}

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, YAML, FormatFromPath("a/b.YML"))
	assert.Equal(t, JSON, FormatFromPath("a/b.json"))
	assert.Equal(t, JSON, FormatFromPath("noext"))

	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = ParseFormat("xml")
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}
