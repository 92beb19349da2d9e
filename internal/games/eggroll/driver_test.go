package eggroll

import (
	"testing"

	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
)

func newTestDriver(t *testing.T, moves int, rows ...string) *Driver {
	t.Helper()
	g, err := engine.ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	return NewDriver(engine.New(engine.Initial(g, moves)))
}

func TestDriverStepOrder(t *testing.T) {
	d := newTestDriver(t, 3,
		"🧱🧱🧱🧱🧱",
		"🧱🟩🟩🥚🧱",
		"🧱🧱🧱🧱🧱",
	)

	if kind, _ := d.Step(); kind != StepIdle {
		t.Fatalf("empty queue step = %v, expected Idle", kind)
	}

	d.Enqueue(engine.Left, engine.Right)

	expected := []StepKind{StepMove, StepTick, StepTick, StepMove, StepTick, StepTick, StepIdle}
	for i, want := range expected {
		kind, err := d.Step()
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if kind != want {
			t.Fatalf("step %d = %v, expected %v", i, kind, want)
		}
	}

	cur := d.Simulation().Current()
	if cur.HistoryText() != "←→" {
		t.Errorf("history = %q, expected moves applied in order", cur.HistoryText())
	}
	if cur.MovesRemaining() != 1 {
		t.Errorf("movesRemaining = %d, expected 1", cur.MovesRemaining())
	}
}

func TestDriverDiscardsQueueWhenOver(t *testing.T) {
	d := newTestDriver(t, 5,
		"🧱🧱🧱🧱",
		"🧱🐥🥚🧱",
		"🧱🧱🧱🧱",
	)

	d.Enqueue(engine.Left, engine.Up, engine.Down)
	kind, err := d.RunUntilIdle(nil)
	if err != nil {
		t.Fatalf("RunUntilIdle failed: %v", err)
	}
	if kind != StepOver {
		t.Errorf("final step = %v, expected Over", kind)
	}
	if d.Pending() != 0 {
		t.Errorf("pending = %d, expected queue discarded", d.Pending())
	}
	if got := d.Simulation().Current().HistoryText(); got != "←" {
		t.Errorf("history = %q, expected only the first move", got)
	}

	d.Enqueue(engine.Right)
	if d.Pending() != 0 {
		t.Error("moves enqueued after game over should be dropped")
	}
}

func TestDriverRunUntilIdleReportsSteps(t *testing.T) {
	d := newTestDriver(t, 2,
		"🧱🧱🧱🧱🧱🧱",
		"🧱🟩🟩🟩🥚🧱",
		"🧱🧱🧱🧱🧱🧱",
	)

	var kinds []StepKind
	d.Enqueue(engine.Left)
	kind, err := d.RunUntilIdle(func(k StepKind) { kinds = append(kinds, k) })
	if err != nil {
		t.Fatalf("RunUntilIdle failed: %v", err)
	}
	if kind != StepIdle {
		t.Errorf("final step = %v, expected Idle", kind)
	}
	if len(kinds) != 4 || kinds[0] != StepMove {
		t.Errorf("steps = %v, expected one move then three ticks", kinds)
	}
}
