package eggroll

import (
	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
)

// StepKind reports which branch a Driver step took.
type StepKind int

const (
	StepIdle StepKind = iota // Awaiting input with nothing queued
	StepTick                 // Advanced rolling physics by one tick
	StepMove                 // Applied one queued move
	StepOver                 // Game is over; nothing happened
)

// String returns a human-readable name for the step kind.
func (k StepKind) String() string {
	switch k {
	case StepIdle:
		return "Idle"
	case StepTick:
		return "Tick"
	case StepMove:
		return "Move"
	case StepOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Driver runs the input loop around a Simulation. Each Step performs exactly
// one of: a physics tick, applying one queued move, or nothing. Queued moves
// are applied strictly in submission order.
type Driver struct {
	sim   *engine.Simulation
	queue []engine.Move
}

// NewDriver wraps a simulation.
func NewDriver(sim *engine.Simulation) *Driver {
	return &Driver{sim: sim}
}

// Simulation returns the driven simulation.
func (d *Driver) Simulation() *engine.Simulation {
	return d.sim
}

// Enqueue buffers moves for later application. Moves enqueued after the game
// is over are discarded.
func (d *Driver) Enqueue(moves ...engine.Move) {
	if d.sim.IsOver() {
		return
	}
	d.queue = append(d.queue, moves...)
}

// Pending returns the number of buffered moves.
func (d *Driver) Pending() int {
	return len(d.queue)
}

// Step advances the loop by one iteration.
func (d *Driver) Step() (StepKind, error) {
	switch {
	case d.sim.IsOver():
		d.queue = nil
		return StepOver, nil

	case !d.sim.IsSettled():
		if err := d.sim.Tick(); err != nil {
			return StepTick, err
		}
		return StepTick, nil

	case len(d.queue) == 0:
		return StepIdle, nil
	}

	m := d.queue[0]
	d.queue = d.queue[1:]
	if err := d.sim.MakeMove(m); err != nil {
		return StepMove, err
	}
	return StepMove, nil
}

// RunUntilIdle steps until the driver idles or the game ends, calling onStep
// after every tick or move. Returns the final step kind.
func (d *Driver) RunUntilIdle(onStep func(StepKind)) (StepKind, error) {
	for {
		kind, err := d.Step()
		if err != nil {
			return kind, err
		}
		if kind == StepIdle || kind == StepOver {
			return kind, nil
		}
		if onStep != nil {
			onStep(kind)
		}
	}
}
