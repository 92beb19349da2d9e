package engine

import (
	"errors"
	"fmt"
)

// Construction-time errors for external symbols.
var (
	ErrInvalidTileSymbol = errors.New("invalid tile symbol")
	ErrInvalidMoveSymbol = errors.New("invalid move symbol")
)

// ErrInvalidOperation is returned when a transition is requested in a state
// that forbids it. The specific cases below wrap it.
var ErrInvalidOperation = errors.New("invalid operation")

var (
	ErrGameOver   = fmt.Errorf("%w: game over", ErrInvalidOperation)
	ErrRolling    = fmt.Errorf("%w: eggs mid-roll, awaiting settle", ErrInvalidOperation)
	ErrNotRolling = fmt.Errorf("%w: eggs are settled, nothing to tick", ErrInvalidOperation)
)

// ErrRaggedGrid is returned when grid rows have different lengths.
var ErrRaggedGrid = errors.New("grid rows have different lengths")
