// Package engine implements the Egg Roll simulation: tiles, moves, immutable
// grid snapshots, the per-tick rolling resolver, and the simulation log.
// It has no dependencies on the platform layer so it stays pure and testable.
package engine

import "fmt"

// Tile is the static terrain kind of a single grid cell.
type Tile uint8

const (
	Wall Tile = iota
	Grass
	Egg
	EmptyNest
	FullNest
	FryingPan
)

// tileGlyphs maps each tile to its level-file and display glyph.
var tileGlyphs = [...]string{
	Wall:      "🧱",
	Grass:     "🟩",
	Egg:       "🥚",
	EmptyNest: "🐥",
	FullNest:  "🐣",
	FryingPan: "🍳",
}

// tileASCII is the single-column fallback used by terminals without emoji.
var tileASCII = [...]rune{
	Wall:      '#',
	Grass:     '.',
	Egg:       'o',
	EmptyNest: 'U',
	FullNest:  '@',
	FryingPan: 'x',
}

// AllTiles lists every tile kind in declaration order.
func AllTiles() []Tile {
	return []Tile{Wall, Grass, Egg, EmptyNest, FullNest, FryingPan}
}

// ParseTile converts a level glyph into a Tile.
// Returns ErrInvalidTileSymbol if the symbol matches none of the six glyphs.
func ParseTile(symbol string) (Tile, error) {
	for _, t := range AllTiles() {
		if t.Glyph() == symbol {
			return t, nil
		}
	}
	return Wall, fmt.Errorf("%w: %q", ErrInvalidTileSymbol, symbol)
}

// Glyph returns the emoji representation of the tile.
func (t Tile) Glyph() string {
	if int(t) < len(tileGlyphs) {
		return tileGlyphs[t]
	}
	return "?"
}

// ASCII returns the single-column representation of the tile.
func (t Tile) ASCII() rune {
	if int(t) < len(tileASCII) {
		return tileASCII[t]
	}
	return '?'
}

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Grass:
		return "Grass"
	case Egg:
		return "Egg"
	case EmptyNest:
		return "EmptyNest"
	case FullNest:
		return "FullNest"
	case FryingPan:
		return "FryingPan"
	default:
		return "Unknown"
	}
}

// acceptsEgg reports whether an egg rolling into this tile is not blocked.
func (t Tile) acceptsEgg() bool {
	return t == Grass || t == EmptyNest || t == FryingPan
}
