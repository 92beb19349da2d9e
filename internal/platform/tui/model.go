package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggroll/internal/config"
	"github.com/vovakirdan/eggroll/internal/core"
	"github.com/vovakirdan/eggroll/internal/registry"
	"github.com/vovakirdan/eggroll/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game instance.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	player     string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current run has been recorded
	saveErr    error
	saved      *storage.ScoreEntry
}

// NewGameModel creates a game model. Finished runs are recorded in store
// under the given player name when store is non-nil.
func NewGameModel(game registry.Game, store *storage.Store, player string, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		player:     player,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop. The game is reset by the caller.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys pressed between ticks accumulate
// in the frame in press order.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc leaves the level once it is over or paused
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one game frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// A restarted run may be recorded again
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordResult stores the finished run. Failures are kept for the caller and
// never interrupt play.
func (m *GameModel) recordResult() {
	if m.store == nil {
		return
	}

	res := m.game.Result()
	entry, err := m.store.SaveScore(storage.ScoreEntry{
		LevelID:   res.LevelID,
		Player:    m.player,
		Score:     res.Score,
		MovesLeft: res.MovesLeft,
		Nested:    res.Nested,
		Fried:     res.Fried,
	})
	if err != nil {
		m.saveErr = err
		return
	}
	m.saved = &entry
}

// saveScreenshot saves the current screen to ~/.eggroll/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	base := config.UserDir()
	if base == "" {
		return
	}
	dir := filepath.Join(base, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// SaveErr returns the last score-saving error, if any.
func (m GameModel) SaveErr() error {
	return m.saveErr
}

// Saved returns the last recorded run, if any.
func (m GameModel) Saved() *storage.ScoreEntry {
	return m.saved
}

// RunOutcome reports how a standalone game session ended.
type RunOutcome struct {
	State   core.GameState
	Saved   *storage.ScoreEntry
	SaveErr error
}

// Run plays a single game in the terminal until the player quits or backs out.
func Run(game registry.Game, store *storage.Store, player string, cfg core.RuntimeConfig) (RunOutcome, error) {
	game.Reset(cfg)
	model := standaloneGame{NewGameModel(game, store, player, cfg)}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunOutcome{}, err
	}

	out := RunOutcome{State: game.State()}
	if m, ok := finalModel.(standaloneGame); ok {
		out.Saved = m.Saved()
		out.SaveErr = m.SaveErr()
	}
	return out, nil
}

// standaloneGame quits the program where a session would return to the menu.
type standaloneGame struct {
	GameModel
}

func (s standaloneGame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		s.GameModel = gm
	}
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
