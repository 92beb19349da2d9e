// Package eggroll adapts the Egg Roll simulation to the terminal game platform.
// Arrow input is queued as moves and the rolling physics is paced in frames.
package eggroll

import (
	"github.com/vovakirdan/eggroll/internal/config"
	"github.com/vovakirdan/eggroll/internal/core"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
	"github.com/vovakirdan/eggroll/internal/games/eggroll/levels"
	"github.com/vovakirdan/eggroll/internal/registry"
)

// GameID is the registry identifier for Egg Roll.
const GameID = "eggroll"

// flashFrames is how long a nested or fried cell stays highlighted.
const flashFrames = 20

// Game implements registry.Game for one Egg Roll level.
type Game struct {
	level  levels.Level
	cfg    config.EggRollConfig
	driver *Driver
	tick   uint64

	sinceRoll int // Frames since the last physics tick
	flashes   map[engine.Coord]flash
	lastEvent string

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	noLevel  bool
}

type flash struct {
	kind   engine.EventKind
	frames int
}

// Package-level selection made by the menu or CLI before the game starts.
var (
	selectedLevel  *levels.Level
	selectedConfig = config.DefaultEggRollConfig()
)

// SetLevel selects the level the next game instance plays.
func SetLevel(lvl levels.Level) {
	selectedLevel = &lvl
}

// SetConfig sets the gameplay config used by new game instances.
func SetConfig(cfg config.EggRollConfig) {
	selectedConfig = cfg
}

// New creates a game for the selected level. Without a selection the first
// built-in level is used when the game is reset.
func New() *Game {
	g := &Game{cfg: selectedConfig}
	if selectedLevel != nil {
		g.level = *selectedLevel
	}
	return g
}

// NewWithLevel creates a game for an explicit level and config.
func NewWithLevel(lvl levels.Level, cfg config.EggRollConfig) *Game {
	return &Game{level: lvl, cfg: cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Egg Roll"
}

// Reset initializes/restarts the level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.restart()
	g.checkScreenSize()
}

// Resize adapts to a new terminal size without restarting the level.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// restart rebuilds the simulation from the level's starting snapshot.
func (g *Game) restart() {
	if g.level.ID == "" {
		g.loadDefaultLevel()
	}

	rules := engine.Rules{
		NestPoints: g.cfg.Scoring.NestPoints,
		PanPenalty: g.cfg.Scoring.PanPenalty,
	}
	g.driver = NewDriver(engine.New(g.level.Initial(), engine.WithRules(rules)))
	g.tick = 0
	g.sinceRoll = 0
	g.flashes = make(map[engine.Coord]flash)
	g.lastEvent = ""
	g.paused = false
}

// loadDefaultLevel falls back to the first built-in level.
func (g *Game) loadDefaultLevel() {
	all, err := levels.Builtin().LoadAll()
	if err != nil || len(all) == 0 {
		g.noLevel = true
		return
	}
	g.level = all[0]
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	need := core.Rect{
		W: core.Max(g.level.Grid.Cols()*cellWidth, minHUDWidth) + 2,
		H: g.level.Grid.Rows() + hudHeight + footerHeight,
	}
	g.tooSmall = !need.Fits(g.screenW, g.screenH)
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.noLevel {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State(), Changed: true}
	}

	sim := g.driver.Simulation()

	if in.Has(core.ActionPause) && !sim.IsOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ageFlashes()

	for _, a := range in.Directions() {
		if m, ok := actionToMove(a); ok {
			g.driver.Enqueue(m)
		}
	}

	changed := g.advance()
	return core.StepResult{State: g.State(), Changed: changed}
}

// advance runs the driver for this frame. With a positive roll pace at most
// one tick or move happens per frame and ticks wait roll_every frames. With
// pace 0 the queue is drained and every roll settles within the frame.
func (g *Game) advance() bool {
	every := g.cfg.Pace.RollEvery
	changed := false

	for {
		if g.driver.Simulation().State() == engine.Rolling && every > 0 {
			g.sinceRoll++
			if g.sinceRoll < every {
				return changed
			}
		}

		kind, err := g.driver.Step()
		if err != nil || kind == StepIdle || kind == StepOver {
			return changed
		}
		changed = true
		g.sinceRoll = 0

		if kind == StepTick {
			g.recordEvents(g.driver.Simulation().Current().Events())
		}
		if every > 0 {
			return changed
		}
	}
}

// recordEvents highlights cells where eggs were nested or fried.
func (g *Game) recordEvents(events []engine.RollEvent) {
	for _, ev := range events {
		switch ev.Kind {
		case engine.EventNested, engine.EventFried:
			g.flashes[ev.To] = flash{kind: ev.Kind, frames: flashFrames}
			g.lastEvent = formatEvent(ev)
		}
	}
}

func (g *Game) ageFlashes() {
	for c, f := range g.flashes {
		f.frames--
		if f.frames <= 0 {
			delete(g.flashes, c)
			continue
		}
		g.flashes[c] = f
	}
}

// actionToMove maps a direction action to an engine move.
func actionToMove(a core.Action) (engine.Move, bool) {
	switch a {
	case core.ActionUp:
		return engine.Up, true
	case core.ActionDown:
		return engine.Down, true
	case core.ActionLeft:
		return engine.Left, true
	case core.ActionRight:
		return engine.Right, true
	default:
		return engine.Up, false
	}
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *engine.Simulation {
	return g.driver.Simulation()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.driver == nil {
		return core.GameState{Paused: true}
	}
	sim := g.driver.Simulation()
	return core.GameState{
		Score:    sim.Current().Score(),
		GameOver: sim.IsOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Result returns the run outcome for the score table.
func (g *Game) Result() core.RunResult {
	if g.driver == nil {
		return core.RunResult{LevelID: g.level.ID}
	}
	cur := g.driver.Simulation().Current()
	_, nested, fried := cur.EggTotals()
	return core.RunResult{
		LevelID:   g.level.ID,
		Score:     cur.Score(),
		MovesLeft: cur.MovesRemaining(),
		Nested:    nested - g.level.Grid.Count(engine.FullNest),
		Fried:     fried,
	}
}
