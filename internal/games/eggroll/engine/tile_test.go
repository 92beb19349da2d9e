package engine_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
)

func TestParseTileRoundTrip(t *testing.T) {
	for _, tile := range engine.AllTiles() {
		got, err := engine.ParseTile(tile.Glyph())
		if err != nil {
			t.Fatalf("ParseTile(%q) failed: %v", tile.Glyph(), err)
		}
		if got != tile {
			t.Errorf("ParseTile(%q) = %v, want %v", tile.Glyph(), got, tile)
		}
	}
}

func TestParseTileInvalid(t *testing.T) {
	tests := []string{"", "x", "🥔", "🧱🧱"}
	for _, symbol := range tests {
		_, err := engine.ParseTile(symbol)
		if !errors.Is(err, engine.ErrInvalidTileSymbol) {
			t.Errorf("ParseTile(%q) error = %v, want ErrInvalidTileSymbol", symbol, err)
		}
	}
}

func TestTileASCIIDistinct(t *testing.T) {
	seen := make(map[rune]engine.Tile)
	for _, tile := range engine.AllTiles() {
		r := tile.ASCII()
		if other, ok := seen[r]; ok {
			t.Errorf("tiles %v and %v share ASCII glyph %q", other, tile, r)
		}
		seen[r] = tile
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		symbol string
		want   engine.Move
	}{
		{"↑", engine.Up},
		{"↓", engine.Down},
		{"←", engine.Left},
		{"→", engine.Right},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, err := engine.ParseMove(tt.symbol)
			if err != nil {
				t.Fatalf("ParseMove(%q) failed: %v", tt.symbol, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.symbol, got, tt.want)
			}
			if got.Arrow() != tt.symbol {
				t.Errorf("Arrow() = %q, want %q", got.Arrow(), tt.symbol)
			}
		})
	}

	if _, err := engine.ParseMove("u"); !errors.Is(err, engine.ErrInvalidMoveSymbol) {
		t.Errorf("ParseMove(\"u\") error = %v, want ErrInvalidMoveSymbol", err)
	}
}

func TestParseMoveLetters(t *testing.T) {
	got := engine.ParseMoveLetters("uD l?R x")
	want := []engine.Move{engine.Up, engine.Down, engine.Left, engine.Right}
	if len(got) != len(want) {
		t.Fatalf("got %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s := engine.FormatMoves(got); s != "↑↓←→" {
		t.Errorf("FormatMoves = %q, want %q", s, "↑↓←→")
	}
}

func TestMoveDeltaIsUnit(t *testing.T) {
	for _, m := range engine.AllMoves() {
		dr, dc := m.Delta()
		if abs(dr)+abs(dc) != 1 {
			t.Errorf("%v delta = (%d,%d), want a unit step", m, dr, dc)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
