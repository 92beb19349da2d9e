package eggroll

import "github.com/vovakirdan/eggroll/internal/games/eggroll/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateAwaitingInput GameStateType = "awaiting_input"
	StateRolling       GameStateType = "rolling"
	StateGameOver      GameStateType = "game_over"
	StatePaused        GameStateType = "paused"
	StatePausedSmall   GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	LevelID        string
	Score          int
	MovesRemaining int
	History        string // Arrows of the moves issued so far
	Board          string // ASCII rendering of the grid
	Pending        int    // Moves queued but not yet applied
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	sim := g.driver.Simulation()
	cur := sim.Current()

	state := StateAwaitingInput
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case sim.IsOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case sim.State() == engine.Rolling:
		state = StateRolling
	}

	return Snapshot{
		Tick:           g.tick,
		LevelID:        g.level.ID,
		Score:          cur.Score(),
		MovesRemaining: cur.MovesRemaining(),
		History:        cur.HistoryText(),
		Board:          cur.Grid().ASCII(),
		Pending:        g.driver.Pending(),
		State:          state,
	}
}
