package eggroll

import (
	"fmt"

	"github.com/vovakirdan/eggroll/internal/config"
	"github.com/vovakirdan/eggroll/internal/core"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
)

const (
	cellWidth    = 2  // Terminal columns per tile; emoji glyphs are double width
	hudHeight    = 3  // Title, score line, egg counters
	footerHeight = 4  // Blank, history, status, controls
	minHUDWidth  = 40 // Widest HUD line
)

// tileColors is used for the ASCII glyph set.
var tileColors = map[engine.Tile]core.Color{
	engine.Wall:      core.ColorBrown,
	engine.Grass:     core.ColorGreen,
	engine.Egg:       core.ColorWhite,
	engine.EmptyNest: core.ColorOrange,
	engine.FullNest:  core.ColorBrightYellow,
	engine.FryingPan: core.ColorGray,
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.noLevel {
		g.drawOverlay(dst, core.Rect{W: g.screenW, H: g.screenH}, "No levels available", "Press Q to quit")
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	cur := g.driver.Simulation().Current()
	grid := cur.Grid()

	board := core.Rect{
		X: (g.screenW - grid.Cols()*cellWidth) / 2,
		Y: hudHeight,
		W: grid.Cols() * cellWidth,
		H: grid.Rows(),
	}

	hudW := core.Max(board.W, minHUDWidth)
	hudX := (g.screenW - hudW) / 2

	g.renderHUD(dst, cur, hudX, hudW)
	g.renderBoard(dst, grid, board.X, board.Y)
	g.renderFooter(dst, cur, hudX, board.Bottom()+1)
	g.renderOverlays(dst, cur, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the level title, score, budget, and egg counters.
func (g *Game) renderHUD(dst *core.Screen, cur engine.Snapshot, x, w int) {
	dst.DrawTextCenteredColor(0, "EGG ROLL: "+g.level.Title(), core.ColorBrightYellow)

	dst.DrawText(x, 1, fmt.Sprintf("Score: %d", cur.Score()))

	movesStr := fmt.Sprintf("Moves left: %d", cur.MovesRemaining())
	dst.DrawText(x+w-core.TextWidth(movesStr), 1, movesStr)

	live, nested, fried := cur.EggTotals()
	eggsStr := fmt.Sprintf("Eggs: %d rolling  %d nested  %d fried", live, nested, fried)
	dst.DrawTextColor(x, 2, eggsStr, core.ColorGray)
}

// renderBoard draws one glyph per tile, two columns wide.
func (g *Game) renderBoard(dst *core.Screen, grid engine.Grid, boardX, boardY int) {
	ascii := g.cfg.Display.Glyphs == config.GlyphsASCII

	for r := range grid.Rows() {
		for c := range grid.Cols() {
			pos := engine.At(r, c)
			tile := grid.At(pos)
			px := boardX + c*cellWidth
			py := boardY + r

			if !ascii {
				dst.DrawText(px, py, tile.Glyph())
				continue
			}

			color := tileColors[tile]
			if f, ok := g.flashes[pos]; ok {
				color = flashColor(f.kind)
			}
			dst.SetCell(px, py, tile.ASCII(), color)
		}
	}
}

// renderFooter draws the move history, roll status, and control hints.
func (g *Game) renderFooter(dst *core.Screen, cur engine.Snapshot, x, y int) {
	if g.cfg.Display.ShowHistory {
		dst.DrawText(x, y, "Previous moves: "+cur.HistoryText())
	}

	var status string
	switch g.driver.Simulation().State() {
	case engine.Rolling:
		last, _ := cur.LastMove()
		status = "Rolling " + last.Arrow()
	case engine.AwaitingInput:
		status = "Your move"
	}
	if n := g.driver.Pending(); n > 0 {
		status += fmt.Sprintf("  (%d queued)", n)
	}
	dst.DrawTextColor(x, y+1, status, core.ColorCyan)

	if g.lastEvent != "" {
		dst.DrawTextColor(x+minHUDWidth/2, y+1, g.lastEvent, core.ColorYellow)
	}

	dst.DrawTextCenteredColor(g.screenH-1, g.Controls(), core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, cur engine.Snapshot, board core.Rect) {
	if g.paused {
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
		return
	}

	if g.driver.Simulation().IsOver() {
		_, nested, fried := cur.EggTotals()
		g.drawOverlay(dst, board,
			fmt.Sprintf("Game Over! Score: %d", cur.Score()),
			fmt.Sprintf("Nested %d, fried %d", nested, fried),
			"Press R to restart")
	}
}

// drawOverlay draws a text box centered over area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, core.TextWidth(line))
	}

	box := core.CenteredRect(area, maxLen+4, len(lines)+2)

	// Wide glyphs behind the box are cleared cell by cell by SetCell
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorYellow)

	inner := box.Inset(1)
	for i, line := range lines {
		x := inner.X + (inner.W-core.TextWidth(line))/2
		dst.DrawText(x, inner.Y+i, line)
	}
}

func flashColor(kind engine.EventKind) core.Color {
	if kind == engine.EventFried {
		return core.ColorRed
	}
	return core.ColorBrightGreen
}

// formatEvent describes a scoring event for the HUD.
func formatEvent(ev engine.RollEvent) string {
	switch ev.Kind {
	case engine.EventNested:
		return fmt.Sprintf("Nested! %+d", ev.Points)
	case engine.EventFried:
		return fmt.Sprintf("Fried! %+d", ev.Points)
	default:
		return ""
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Roll | P: Pause | R: Restart | Q: Quit"
}
