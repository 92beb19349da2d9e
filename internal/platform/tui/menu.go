package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggroll/internal/core"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/levels"
	"github.com/vovakirdan/eggroll/internal/storage"
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	levels       []levels.Level
	best         map[string]int // Level ID -> high score
	skipped      int            // Level files that failed to load
	cursor       int
	scrollOffset int
	width        int
	height       int
	keyMapper    *KeyMapper
	theme        Theme
	quitting     bool
	selected     *levels.Level // Set when user picks a level
	openScores   bool          // True if user pressed Tab for the scoreboard
}

// NewMenuModel creates a level picker. High scores are read from store when
// it is non-nil.
func NewMenuModel(lvls []levels.Level, skipped int, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	best := make(map[string]int, len(lvls))
	if store != nil {
		for _, lvl := range lvls {
			if score, ok, err := store.HighScore(lvl.ID); err == nil && ok {
				best[lvl.ID] = score
			}
		}
	}

	return MenuModel{
		levels:    lvls,
		best:      best,
		skipped:   skipped,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}

	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
			m.updateScroll()
		}

	case MenuActionSelect:
		if len(m.levels) > 0 {
			selected := m.levels[m.cursor]
			m.selected = &selected
		}

	case MenuActionScores:
		m.openScores = true
	}

	return m, nil
}

// visibleItems returns how many level rows fit between header and footer.
func (m MenuModel) visibleItems() int {
	return core.Max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("E G G   R O L L"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Roll every egg into a nest. Mind the pans."), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.Warning.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	end := core.Min(m.scrollOffset+m.visibleItems(), len(m.levels))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(centerText(m.renderItem(i), m.width))
		b.WriteString("\n")
	}

	if end < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	if m.skipped > 0 {
		b.WriteString("\n")
		warn := fmt.Sprintf("%d level file(s) skipped, run `eggroll list` for details", m.skipped)
		b.WriteString(centerText(m.theme.Warning.Render(warn), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(m.theme.Controls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderItem formats one level row.
func (m MenuModel) renderItem(i int) string {
	lvl := m.levels[i]

	cursor := "  "
	style := m.theme.MenuItemNormal
	if _, solved := m.best[lvl.ID]; solved {
		style = m.theme.MenuItemSolved
	}
	if i == m.cursor {
		cursor = "> "
		style = m.theme.MenuItemActive
	}

	line := style.Render(fmt.Sprintf("%s%2d. %-20s", cursor, i+1, lvl.Title()))
	info := m.theme.MenuDescription.Render(fmt.Sprintf(" %d eggs, %d moves", lvl.Eggs(), lvl.Moves))
	if score, ok := m.best[lvl.ID]; ok {
		info += m.theme.MenuBest.Render(fmt.Sprintf("  best %d", score))
	}
	return line + info
}

// Selected returns the chosen level, or nil if none selected.
func (m MenuModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScores
}

// Cursor returns the highlighted level index.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// withCursor restores the highlighted level when returning to the menu.
func (m MenuModel) withCursor(cursor int) MenuModel {
	if cursor >= 0 && cursor < len(m.levels) {
		m.cursor = cursor
		m.updateScroll()
	}
	return m
}

// centerText centers text within given width, measuring styled text by its
// visible width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
