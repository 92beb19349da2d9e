package engine_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
)

func TestSimulationEggIntoNest(t *testing.T) {
	g := mustParse(t,
		"🧱🧱🧱",
		"🧱🥚🧱",
		"🧱🐥🧱",
		"🧱🧱🧱",
	)
	sim := engine.New(engine.Initial(g, 1))

	if sim.State() != engine.AwaitingInput {
		t.Fatalf("initial state = %v, want AwaitingInput", sim.State())
	}

	if err := sim.MakeMove(engine.Down); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}
	cur := sim.Current()
	if cur.HistoryText() != "↓" || cur.MovesRemaining() != 0 || cur.Score() != 0 {
		t.Errorf("after move: history=%q remaining=%d score=%d", cur.HistoryText(), cur.MovesRemaining(), cur.Score())
	}
	if cur.GridText() != g.String() {
		t.Error("MakeMove changed the grid")
	}
	if sim.State() != engine.Rolling {
		t.Fatalf("state = %v, want Rolling", sim.State())
	}

	if err := sim.Tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	cur = sim.Current()
	if cur.Grid().At(engine.At(2, 1)) != engine.FullNest {
		t.Errorf("nest = %v, want FullNest", cur.Grid().At(engine.At(2, 1)))
	}
	if cur.Grid().At(engine.At(1, 1)) != engine.Grass {
		t.Errorf("egg cell = %v, want Grass", cur.Grid().At(engine.At(1, 1)))
	}
	if cur.Score() != 10 {
		t.Errorf("score = %d, want 10", cur.Score())
	}
	if !sim.IsSettled() || !sim.IsOver() {
		t.Errorf("settled=%v over=%v, want both true", sim.IsSettled(), sim.IsOver())
	}
	if n := len(sim.History()); n != 3 {
		t.Errorf("log length = %d, want 3", n)
	}
}

func TestSimulationRejectsInvalidTransitions(t *testing.T) {
	g := mustParse(t,
		"🧱🧱🧱🧱🧱",
		"🧱🟩🟩🥚🧱",
		"🧱🧱🧱🧱🧱",
	)
	sim := engine.New(engine.Initial(g, 2))

	if err := sim.Tick(); !errors.Is(err, engine.ErrNotRolling) {
		t.Errorf("Tick while awaiting input = %v, want ErrNotRolling", err)
	}

	if err := sim.MakeMove(engine.Left); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}
	err := sim.MakeMove(engine.Right)
	if !errors.Is(err, engine.ErrRolling) {
		t.Errorf("MakeMove while rolling = %v, want ErrRolling", err)
	}
	if !errors.Is(err, engine.ErrInvalidOperation) {
		t.Error("ErrRolling should wrap ErrInvalidOperation")
	}

	before := len(sim.History())
	if ticks := sim.Settle(); ticks != 2 {
		t.Errorf("Settle ticked %d times, want 2", ticks)
	}
	if grown := len(sim.History()) - before; grown != 2 {
		t.Errorf("log grew by %d, want 2", grown)
	}
	if sim.State() != engine.AwaitingInput {
		t.Errorf("state = %v, want AwaitingInput", sim.State())
	}
}

func TestSimulationGameOverWhenBudgetSpent(t *testing.T) {
	g := mustParse(t,
		"🧱🧱🧱🧱",
		"🧱🥚🟩🧱",
		"🧱🧱🧱🧱",
	)
	sim := engine.New(engine.Initial(g, 1))

	if err := sim.MakeMove(engine.Left); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}
	if sim.State() != engine.Over {
		t.Fatalf("state = %v, want Over", sim.State())
	}

	if err := sim.MakeMove(engine.Right); !errors.Is(err, engine.ErrGameOver) {
		t.Errorf("MakeMove after game over = %v, want ErrGameOver", err)
	}
	if err := sim.Tick(); !errors.Is(err, engine.ErrGameOver) {
		t.Errorf("Tick after game over = %v, want ErrGameOver", err)
	}
}

func TestSimulationAllEggsFried(t *testing.T) {
	g := mustParse(t,
		"🧱🧱🧱🧱🧱",
		"🧱🍳🥚🥚🧱",
		"🧱🧱🧱🧱🧱",
	)
	sim := engine.New(engine.Initial(g, 1))
	if err := sim.Play(engine.Left); err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	cur := sim.Current()
	if cur.Fried() != 2 || cur.Score() != -10 {
		t.Errorf("fried=%d score=%d, want 2 and -10", cur.Fried(), cur.Score())
	}
	if sim.State() != engine.Over {
		t.Errorf("state = %v, want Over", sim.State())
	}
}

func TestSimulationZeroBudgetStartsOver(t *testing.T) {
	g := mustParse(t,
		"🧱🧱🧱",
		"🧱🥚🧱",
		"🧱🧱🧱",
	)
	sim := engine.New(engine.Initial(g, 0))
	if !sim.IsOver() {
		t.Error("a level with no moves should start over")
	}
}

func TestSimulationHistoryIsCopy(t *testing.T) {
	g := mustParse(t,
		"🧱🧱🧱🧱",
		"🧱🟩🥚🧱",
		"🧱🧱🧱🧱",
	)
	sim := engine.New(engine.Initial(g, 3))
	_ = sim.Play(engine.Left)

	history := sim.History()
	history[0] = sim.Current()
	if sim.History()[0].HistoryText() != "" {
		t.Error("mutating History() result changed the log")
	}
}

func TestReplayIgnoresMovesAfterGameOver(t *testing.T) {
	g := mustParse(t,
		"🧱🧱🧱🧱🧱",
		"🧱🐥🟩🥚🧱",
		"🧱🧱🧱🧱🧱",
	)
	moves := []engine.Move{engine.Left, engine.Right, engine.Up}
	sim, applied := engine.Replay(engine.Initial(g, 3), moves)

	if applied != 1 {
		t.Errorf("applied %d moves, want 1", applied)
	}
	if !sim.IsOver() {
		t.Error("expected game over after the only egg is nested")
	}
	if sim.Current().Score() != 12 {
		t.Errorf("score = %d, want 12", sim.Current().Score())
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	g := mustParse(t,
		"🧱🧱🧱🧱🧱🧱",
		"🧱🥚🟩🐥🟩🧱",
		"🧱🟩🥚🍳🥚🧱",
		"🧱🐥🟩🟩🥚🧱",
		"🧱🧱🧱🧱🧱🧱",
	)
	moves := []engine.Move{engine.Right, engine.Down, engine.Left, engine.Up}

	a, _ := engine.Replay(engine.Initial(g, 4), moves)
	b, _ := engine.Replay(engine.Initial(g, 4), moves)

	ha, hb := a.History(), b.History()
	if len(ha) != len(hb) {
		t.Fatalf("log lengths differ: %d vs %d", len(ha), len(hb))
	}
	for i := range ha {
		if ha[i].StatusText() != hb[i].StatusText() {
			t.Fatalf("snapshot %d differs:\n%s\nvs\n%s", i, ha[i].StatusText(), hb[i].StatusText())
		}
	}
}

func TestStatusText(t *testing.T) {
	g := mustParse(t,
		"🧱🧱🧱🧱🧱",
		"🧱🐥🟩🥚🧱",
		"🧱🧱🧱🧱🧱",
	)
	sim := engine.New(engine.Initial(g, 2))
	_ = sim.MakeMove(engine.Left)

	text := sim.Current().StatusText()
	for _, want := range []string{"Previous moves: ←", "Remaining moves: 1", "Points: 0", "Rolling: ←"} {
		if !strings.Contains(text, want) {
			t.Errorf("status missing %q:\n%s", want, text)
		}
	}

	sim.Settle()
	text = sim.Current().StatusText()
	if strings.Contains(text, "Rolling:") {
		t.Errorf("settled status should not show rolling:\n%s", text)
	}
	if !strings.Contains(text, "Points: 11") {
		t.Errorf("status missing final points:\n%s", text)
	}
}

func TestSimulationBlockedMovesSpendBudget(t *testing.T) {
	g := mustParse(t,
		"🧱🧱🧱",
		"🧱🥚🧱",
		"🧱🧱🧱",
	)
	sim := engine.New(engine.Initial(g, 3))

	for i := range 3 {
		if err := sim.MakeMove(engine.Up); err != nil {
			t.Fatalf("move %d: %v", i+1, err)
		}
		cur := sim.Current()
		if len(cur.History()) != i+1 {
			t.Errorf("move %d: history length = %d", i+1, len(cur.History()))
		}
		if cur.GridText() != g.String() || cur.Score() != 0 {
			t.Errorf("move %d: blocked move changed grid or score", i+1)
		}
		if sim.State() == engine.Rolling {
			t.Errorf("move %d: blocked egg should not roll", i+1)
		}
	}

	if sim.State() != engine.Over {
		t.Errorf("state = %v, want Over once the budget is spent", sim.State())
	}
}
