package engine

import (
	"fmt"
	"strings"
)

// Move is a commanded roll direction.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

var moveArrows = [...]string{
	Up:    "↑",
	Down:  "↓",
	Left:  "←",
	Right: "→",
}

// AllMoves lists every direction in declaration order.
func AllMoves() []Move {
	return []Move{Up, Down, Left, Right}
}

// ParseMove converts an arrow glyph into a Move.
// Returns ErrInvalidMoveSymbol if the symbol matches none of the four arrows.
func ParseMove(symbol string) (Move, error) {
	for _, m := range AllMoves() {
		if m.Arrow() == symbol {
			return m, nil
		}
	}
	return Up, fmt.Errorf("%w: %q", ErrInvalidMoveSymbol, symbol)
}

// MoveFromLetter maps the console letters u, d, l, r (any case) to moves.
func MoveFromLetter(r rune) (Move, bool) {
	switch r {
	case 'u', 'U':
		return Up, true
	case 'd', 'D':
		return Down, true
	case 'l', 'L':
		return Left, true
	case 'r', 'R':
		return Right, true
	}
	return Up, false
}

// ParseMoveLetters extracts moves from a line of console input.
// Characters other than u, d, l, r are skipped.
func ParseMoveLetters(line string) []Move {
	var moves []Move
	for _, r := range line {
		if m, ok := MoveFromLetter(r); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// Arrow returns the display glyph for the move.
func (m Move) Arrow() string {
	if int(m) < len(moveArrows) {
		return moveArrows[m]
	}
	return "?"
}

// Delta returns the unit (row, col) offset of the move.
func (m Move) Delta() (dRow, dCol int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// FormatMoves concatenates the arrows of a move sequence.
func FormatMoves(moves []Move) string {
	var sb strings.Builder
	for _, m := range moves {
		sb.WriteString(m.Arrow())
	}
	return sb.String()
}
