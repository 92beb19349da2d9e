package engine

import (
	"fmt"
	"strings"
)

// Snapshot is one immutable instant of a game: the grid, the moves issued so
// far, the remaining move budget, and the score.
//
// A Snapshot never shares writable storage with another snapshot. Accessors
// that return slices return copies.
type Snapshot struct {
	grid           Grid
	history        []Move
	movesRemaining int
	score          int
	fried          int
	events         []RollEvent
}

// NewSnapshot creates a snapshot. The history slice is copied.
func NewSnapshot(grid Grid, history []Move, movesRemaining, score int) Snapshot {
	return Snapshot{
		grid:           grid,
		history:        cloneMoves(history),
		movesRemaining: movesRemaining,
		score:          score,
	}
}

// Initial creates the starting snapshot for a level: empty history, score 0.
func Initial(grid Grid, moveBudget int) Snapshot {
	return NewSnapshot(grid, nil, moveBudget, 0)
}

// Grid returns the snapshot's grid. Grid values are read-only.
func (s Snapshot) Grid() Grid {
	return s.grid
}

// History returns a copy of the player moves issued before this snapshot.
func (s Snapshot) History() []Move {
	return cloneMoves(s.history)
}

// LastMove returns the most recent player move, if any.
func (s Snapshot) LastMove() (Move, bool) {
	if len(s.history) == 0 {
		return Up, false
	}
	return s.history[len(s.history)-1], true
}

// MovesRemaining returns the remaining move budget.
func (s Snapshot) MovesRemaining() int {
	return s.movesRemaining
}

// Score returns the score at this snapshot.
func (s Snapshot) Score() int {
	return s.score
}

// Events returns what the tick that produced this snapshot did.
// Empty for initial and player-move snapshots.
func (s Snapshot) Events() []RollEvent {
	if len(s.events) == 0 {
		return nil
	}
	out := make([]RollEvent, len(s.events))
	copy(out, s.events)
	return out
}

// FindAll returns every coordinate holding the given tile, in row-major order.
func (s Snapshot) FindAll(kind Tile) []Coord {
	return s.grid.FindAll(kind)
}

// EggsAreSettled reports whether no egg can roll further in the direction of
// the last move. It is true before the first move and when no eggs remain.
func (s Snapshot) EggsAreSettled() bool {
	last, ok := s.LastMove()
	if !ok {
		return true
	}
	for _, egg := range s.grid.FindAll(Egg) {
		if s.grid.At(egg.Step(last)).acceptsEgg() {
			return false
		}
	}
	return true
}

// IsTerminal reports whether the game has ended at this snapshot: no egg is
// left, or the eggs are settled and the move budget is spent.
func (s Snapshot) IsTerminal() bool {
	if !s.grid.Contains(Egg) {
		return true
	}
	return s.EggsAreSettled() && s.movesRemaining <= 0
}

// WithMove returns the snapshot recorded when the player issues m: same grid
// and score, history extended, budget decremented. No physics runs.
func (s Snapshot) WithMove(m Move) Snapshot {
	history := make([]Move, len(s.history), len(s.history)+1)
	copy(history, s.history)
	return Snapshot{
		grid:           s.grid,
		history:        append(history, m),
		movesRemaining: s.movesRemaining - 1,
		score:          s.score,
		fried:          s.fried,
	}
}

// GridText renders the grid as rows of glyphs joined by newlines.
func (s Snapshot) GridText() string {
	return s.grid.String()
}

// HistoryText renders the move history as concatenated arrows.
func (s Snapshot) HistoryText() string {
	return FormatMoves(s.history)
}

// StatusText renders the grid followed by history, remaining moves, score
// and, while eggs are still rolling, the move in progress.
func (s Snapshot) StatusText() string {
	lines := []string{
		s.GridText(),
		fmt.Sprintf("Previous moves: %s", s.HistoryText()),
		fmt.Sprintf("Remaining moves: %d", s.movesRemaining),
		fmt.Sprintf("Points: %d", s.score),
	}
	if !s.EggsAreSettled() {
		last, _ := s.LastMove()
		lines = append(lines, fmt.Sprintf("Rolling: %s", last.Arrow()))
	}
	return strings.Join(lines, "\n")
}

// Fried returns how many eggs have been destroyed on frying pans so far.
func (s Snapshot) Fried() int {
	return s.fried
}

// EggTotals counts eggs on the grid, eggs resolved into nests, and eggs fried.
// Their sum never changes across a tick.
func (s Snapshot) EggTotals() (live, nested, fried int) {
	return s.grid.Count(Egg), s.grid.Count(FullNest), s.fried
}

func cloneMoves(moves []Move) []Move {
	if len(moves) == 0 {
		return nil
	}
	out := make([]Move, len(moves))
	copy(out, moves)
	return out
}
