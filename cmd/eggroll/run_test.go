package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"letters", "udlr", "↑↓←→"},
		{"mixed case with spaces", "D r, U", "↓→↑"},
		{"arrows", "↓→↑←", "↓→↑←"},
		{"letters and arrows", "l↓", "←↓"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := parseMoves(tt.input)
			if err != nil {
				t.Fatalf("parseMoves(%q) failed: %v", tt.input, err)
			}
			if got := engine.FormatMoves(moves); got != tt.want {
				t.Errorf("parseMoves(%q) = %q, expected %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMovesRejectsUnknownSymbols(t *testing.T) {
	for _, input := range []string{"ux", "↓?", "⇧"} {
		if _, err := parseMoves(input); !errors.Is(err, engine.ErrInvalidMoveSymbol) {
			t.Errorf("parseMoves(%q) error = %v, expected ErrInvalidMoveSymbol", input, err)
		}
	}
}
