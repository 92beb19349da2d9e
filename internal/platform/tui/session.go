package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggroll/internal/config"
	"github.com/vovakirdan/eggroll/internal/core"
	"github.com/vovakirdan/eggroll/internal/games/eggroll"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/levels"
	"github.com/vovakirdan/eggroll/internal/storage"
)

// screenKind is the screen a session is showing.
type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionOptions configures a session.
type SessionOptions struct {
	Levels  []levels.Level
	Skipped int // Level files that failed to load
	Store   *storage.Store
	Player  string
	Game    config.EggRollConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger // Receives score-saving failures; may be nil
}

// SessionModel manages the full flow: menu -> game or scoreboard -> menu.
// It is the top-level model for both local menu play and SSH sessions.
type SessionModel struct {
	opts       SessionOptions
	config     core.RuntimeConfig
	screen     screenKind
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	staleTick  bool // A game tick is still in flight after leaving the game
	quitting   bool
}

// NewSessionModel creates a new session model starting at the level picker.
func NewSessionModel(opts SessionOptions) SessionModel {
	return SessionModel{
		opts:   opts,
		config: opts.Runtime,
		menu:   NewMenuModel(opts.Levels, opts.Skipped, opts.Store, opts.Runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	// Only one tick chain may run at a time
	if _, ok := msg.(TickMsg); ok && m.staleTick {
		m.staleTick = false
		return m, nil
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.opts.Store, m.opts.Levels, m.menu.Cursor(), m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.screen = screenScores
		return m, sb.Init()
	}

	if lvl := m.menu.Selected(); lvl != nil {
		// Each session owns its game instance; package-level selection is
		// shared between SSH sessions.
		game := eggroll.NewWithLevel(*lvl, m.opts.Game)
		game.Reset(m.config)

		gm := NewGameModel(game, m.opts.Store, m.opts.Player, m.config)
		m.gameModel = &gm
		m.screen = screenGame
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gameModel, ok := next.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		if err := m.gameModel.SaveErr(); err != nil && m.opts.Logger != nil {
			m.opts.Logger.Warn("could not save score", "player", m.opts.Player, "error", err)
		}
		m.gameModel = nil
		m.staleTick = true
		m.returnToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.returnToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// returnToMenu rebuilds the menu so high scores are fresh, keeping the cursor.
func (m *SessionModel) returnToMenu() {
	cursor := m.menu.Cursor()
	m.menu = NewMenuModel(m.opts.Levels, m.opts.Skipped, m.opts.Store, m.config).withCursor(cursor)
	m.screen = screenMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu flow in the local terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
