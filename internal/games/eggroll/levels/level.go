// Package levels loads Egg Roll levels from directories or the built-in pack.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/levels/formats"
)

// Level represents a complete, validated level definition.
type Level struct {
	ID       string
	Name     string
	Moves    int
	Grid     engine.Grid
	FilePath string // Path within the source the level was loaded from
	Builtin  bool
}

// Initial returns the starting snapshot for this level.
func (l Level) Initial() engine.Snapshot {
	return engine.Initial(l.Grid, l.Moves)
}

// Title returns the display name, falling back to the ID.
func (l Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Eggs returns the number of eggs on the starting board.
func (l Level) Eggs() int {
	return l.Grid.Count(engine.Egg)
}

// Nests returns the number of empty nests on the starting board.
func (l Level) Nests() int {
	return l.Grid.Count(engine.EmptyNest)
}

// FromParsed decodes and validates a parsed level file.
func FromParsed(id string, parsed formats.Level) (Level, error) {
	if parsed.ID != "" {
		id = parsed.ID
	}

	grid, err := decodeRows(parsed.Rows)
	if err != nil {
		return Level{}, err
	}
	if err := Validate(grid, parsed.Moves); err != nil {
		return Level{}, err
	}

	return Level{
		ID:    id,
		Name:  parsed.Name,
		Moves: parsed.Moves,
		Grid:  grid,
	}, nil
}
