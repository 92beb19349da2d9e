package engine

// Rules holds the scoring constants used by the resolver.
type Rules struct {
	NestPoints int // Base points for an egg landing in an empty nest
	PanPenalty int // Points lost when an egg rolls onto a frying pan
}

// DefaultRules returns the standard scoring: 10 + remaining moves per nested
// egg, minus 5 per fried egg.
func DefaultRules() Rules {
	return Rules{
		NestPoints: 10,
		PanPenalty: 5,
	}
}

// EventKind classifies what happened to one egg during a tick.
type EventKind int

const (
	EventRolled EventKind = iota // Egg advanced onto grass
	EventNested                  // Egg filled an empty nest
	EventFried                   // Egg was destroyed on a frying pan
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRolled:
		return "Rolled"
	case EventNested:
		return "Nested"
	case EventFried:
		return "Fried"
	default:
		return "Unknown"
	}
}

// RollEvent records a single egg transfer during a tick.
type RollEvent struct {
	Kind   EventKind
	From   Coord // Cell the egg left
	To     Coord // Cell the egg rolled into (the pan for fried eggs)
	Points int   // Score delta caused by this egg
}

// Advance runs one physics tick and returns the resulting snapshot.
//
// Every egg that can roll in the direction of the last move advances one cell,
// fills a nest, or is fried. Eggs never chain: each egg moves at most once per
// tick. The history and move budget are carried over unchanged.
//
// On a settled snapshot Advance returns an unchanged copy, so repeated calls
// are no-ops once the eggs have stopped.
func (s Snapshot) Advance(rules Rules) Snapshot {
	if s.EggsAreSettled() {
		return Snapshot{
			grid:           s.grid,
			history:        s.history,
			movesRemaining: s.movesRemaining,
			score:          s.score,
			fried:          s.fried,
		}
	}

	last, _ := s.LastMove()
	grid := s.grid.clone()
	score := s.score
	fried := s.fried
	var events []RollEvent

	for _, dst := range scanOrder(grid.rows, grid.cols, last) {
		dr, dc := last.Delta()
		src := Coord{Row: dst.Row - dr, Col: dst.Col - dc}
		if grid.At(src) != Egg {
			continue
		}

		switch grid.At(dst) {
		case Grass:
			grid.set(dst, Egg)
			grid.set(src, Grass)
			events = append(events, RollEvent{Kind: EventRolled, From: src, To: dst})

		case EmptyNest:
			points := rules.NestPoints + s.movesRemaining
			grid.set(dst, FullNest)
			grid.set(src, Grass)
			score += points
			events = append(events, RollEvent{Kind: EventNested, From: src, To: dst, Points: points})

		case FryingPan:
			grid.set(src, Grass)
			score -= rules.PanPenalty
			fried++
			events = append(events, RollEvent{Kind: EventFried, From: src, To: dst, Points: -rules.PanPenalty})
		}
		// Wall, FullNest and Egg block the roll.
	}

	return Snapshot{
		grid:           grid,
		history:        s.history,
		movesRemaining: s.movesRemaining,
		score:          score,
		fried:          fried,
		events:         events,
	}
}

// scanOrder lists interior destination cells so that each cell is visited
// strictly before the cell that would roll into it along m. This lets an egg
// vacate its cell before the egg behind it is evaluated.
func scanOrder(rows, cols int, m Move) []Coord {
	if rows < 3 || cols < 3 {
		return nil
	}

	order := make([]Coord, 0, (rows-2)*(cols-2))
	switch m {
	case Up:
		for r := 1; r <= rows-2; r++ {
			for c := 1; c <= cols-2; c++ {
				order = append(order, Coord{Row: r, Col: c})
			}
		}
	case Down:
		for r := rows - 2; r >= 1; r-- {
			for c := 1; c <= cols-2; c++ {
				order = append(order, Coord{Row: r, Col: c})
			}
		}
	case Left:
		for c := 1; c <= cols-2; c++ {
			for r := 1; r <= rows-2; r++ {
				order = append(order, Coord{Row: r, Col: c})
			}
		}
	case Right:
		for c := cols - 2; c >= 1; c-- {
			for r := 1; r <= rows-2; r++ {
				order = append(order, Coord{Row: r, Col: c})
			}
		}
	}
	return order
}
