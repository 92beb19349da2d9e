package engine

import (
	"fmt"
	"strings"
)

// Coord is a (row, col) position on the grid. Row increases downward.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the coordinate one cell away in the direction of m.
func (c Coord) Step(m Move) Coord {
	dr, dc := m.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Grid is a rectangular, read-only array of tiles.
// Cells are stored in row-major order: index = row*cols + col.
// The zero value is an empty 0x0 grid.
type Grid struct {
	rows  int
	cols  int
	cells []Tile
}

// NewGrid builds a grid from rows of tiles. The input is copied.
// Returns ErrRaggedGrid if rows differ in length.
func NewGrid(rows [][]Tile) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, nil
	}

	cols := len(rows[0])
	cells := make([]Tile, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d tiles, row 1 has %d", ErrRaggedGrid, i+1, len(row), cols)
		}
		cells = append(cells, row...)
	}

	return Grid{rows: len(rows), cols: cols, cells: cells}, nil
}

// ParseGrid builds a grid from text rows where each rune cluster is a tile glyph.
// Whitespace inside a row is ignored.
func ParseGrid(lines []string) (Grid, error) {
	rows := make([][]Tile, 0, len(lines))
	for i, line := range lines {
		row, err := ParseRow(line)
		if err != nil {
			return Grid{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return NewGrid(rows)
}

// ParseRow converts one line of glyphs into tiles.
// Emoji variation selectors (U+FE0F) are tolerated and dropped.
func ParseRow(line string) ([]Tile, error) {
	var row []Tile
	for _, r := range line {
		if r == ' ' || r == '\t' || r == '\r' || r == '\uFE0F' {
			continue
		}
		t, err := ParseTile(string(r))
		if err != nil {
			return nil, err
		}
		row = append(row, t)
	}
	return row, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	return g.cols
}

// InBounds returns true if the coordinate is within the grid.
func (g Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the tile at the given coordinate.
// Out-of-bounds coordinates read as Wall.
func (g Grid) At(c Coord) Tile {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// FindAll returns every coordinate holding the given tile, in row-major order.
func (g Grid) FindAll(kind Tile) []Coord {
	var coords []Coord
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r*g.cols+c] == kind {
				coords = append(coords, Coord{Row: r, Col: c})
			}
		}
	}
	return coords
}

// Count returns the number of cells holding the given tile.
func (g Grid) Count(kind Tile) int {
	n := 0
	for _, t := range g.cells {
		if t == kind {
			n++
		}
	}
	return n
}

// Contains reports whether at least one cell holds the given tile.
func (g Grid) Contains(kind Tile) bool {
	for _, t := range g.cells {
		if t == kind {
			return true
		}
	}
	return false
}

// HasWallBorder reports whether the outermost ring is entirely Wall.
func (g Grid) HasWallBorder() bool {
	for r := range g.rows {
		for c := range g.cols {
			onEdge := r == 0 || c == 0 || r == g.rows-1 || c == g.cols-1
			if onEdge && g.cells[r*g.cols+c] != Wall {
				return false
			}
		}
	}
	return true
}

// String renders the grid as emoji rows joined by newlines.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			sb.WriteString(g.cells[r*g.cols+c].Glyph())
		}
	}
	return sb.String()
}

// ASCII renders the grid using the single-column fallback glyphs.
func (g Grid) ASCII() string {
	var sb strings.Builder
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			sb.WriteRune(g.cells[r*g.cols+c].ASCII())
		}
	}
	return sb.String()
}

// clone returns a private, writable copy of the grid.
func (g Grid) clone() Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// set writes a tile. Only used on clones owned by the resolver.
func (g Grid) set(c Coord, t Tile) {
	g.cells[c.Row*g.cols+c.Col] = t
}
