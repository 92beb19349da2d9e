package engine

// State is the phase of a simulation, derived from its current snapshot.
type State int

const (
	AwaitingInput State = iota // Eggs settled, moves and eggs remain
	Rolling                    // Eggs still rolling from the last move
	Over                       // Terminal snapshot reached
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "AwaitingInput"
	case Rolling:
		return "Rolling"
	case Over:
		return "Over"
	default:
		return "Unknown"
	}
}

// Simulation owns the append-only log of snapshots for one game.
// The last snapshot is current. It is not safe for concurrent use; a single
// caller drives it by alternating MakeMove and Tick.
type Simulation struct {
	snapshots []Snapshot
	rules     Rules
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRules overrides the default scoring rules.
func WithRules(r Rules) Option {
	return func(s *Simulation) {
		s.rules = r
	}
}

// New starts a simulation from the given initial snapshot.
func New(initial Snapshot, opts ...Option) *Simulation {
	s := &Simulation{
		snapshots: []Snapshot{initial},
		rules:     DefaultRules(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules returns the scoring rules in effect.
func (s *Simulation) Rules() Rules {
	return s.rules
}

// Current returns the latest snapshot.
func (s *Simulation) Current() Snapshot {
	return s.snapshots[len(s.snapshots)-1]
}

// History returns the full snapshot log, oldest first. The returned slice is
// a copy; the snapshots themselves are immutable.
func (s *Simulation) History() []Snapshot {
	out := make([]Snapshot, len(s.snapshots))
	copy(out, s.snapshots)
	return out
}

// State returns the current phase. Over takes precedence over Rolling.
func (s *Simulation) State() State {
	cur := s.Current()
	switch {
	case cur.IsTerminal():
		return Over
	case !cur.EggsAreSettled():
		return Rolling
	default:
		return AwaitingInput
	}
}

// IsOver reports whether the current snapshot is terminal.
func (s *Simulation) IsOver() bool {
	return s.Current().IsTerminal()
}

// IsSettled reports whether the eggs have stopped rolling.
func (s *Simulation) IsSettled() bool {
	return s.Current().EggsAreSettled()
}

// MakeMove records a player move: the budget drops by one and the move is
// appended to history. Physics does not run; call Tick until settled.
//
// Returns ErrGameOver if the game has ended and ErrRolling if eggs are still
// moving from the previous move.
func (s *Simulation) MakeMove(m Move) error {
	switch s.State() {
	case Over:
		return ErrGameOver
	case Rolling:
		return ErrRolling
	}

	s.snapshots = append(s.snapshots, s.Current().WithMove(m))
	return nil
}

// Tick advances rolling physics by one step and appends the result.
// Returns ErrGameOver when the game has ended and ErrNotRolling when the eggs
// are already settled.
func (s *Simulation) Tick() error {
	switch s.State() {
	case Over:
		return ErrGameOver
	case AwaitingInput:
		return ErrNotRolling
	}

	s.snapshots = append(s.snapshots, s.Current().Advance(s.rules))
	return nil
}

// Settle ticks until the eggs stop rolling or the game ends.
// Returns the number of ticks applied.
func (s *Simulation) Settle() int {
	cur := s.Current().Grid()
	// Every tick moves at least one egg one cell toward a wall, so a roll
	// cannot outlast the grid's area.
	limit := cur.Rows() * cur.Cols()

	ticks := 0
	for ticks < limit && s.State() == Rolling {
		if err := s.Tick(); err != nil {
			break
		}
		ticks++
	}
	return ticks
}

// Play applies a move and settles the resulting roll.
func (s *Simulation) Play(m Move) error {
	if err := s.MakeMove(m); err != nil {
		return err
	}
	s.Settle()
	return nil
}

// Replay runs a sequence of moves from an initial snapshot in memory, settling
// after each move. Moves left over once the game ends are ignored; the number
// of moves actually applied is returned.
func Replay(initial Snapshot, moves []Move, opts ...Option) (*Simulation, int) {
	sim := New(initial, opts...)
	applied := 0
	for _, m := range moves {
		if sim.IsOver() {
			break
		}
		if err := sim.Play(m); err != nil {
			break
		}
		applied++
	}
	return sim, applied
}
