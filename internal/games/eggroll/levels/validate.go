package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/eggroll/internal/games/eggroll/engine"
)

// Validation error codes.
const (
	CodeEmptyGrid      = "EMPTY_GRID"
	CodeRaggedRow      = "RAGGED_ROW"
	CodeOpenBorder     = "OPEN_BORDER"
	CodeNegativeBudget = "NEGATIVE_BUDGET"
	CodeNoEggs         = "NO_EGGS"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// decodeRows converts glyph rows to tiles, rejecting ragged grids.
func decodeRows(rows []string) (engine.Grid, error) {
	if len(rows) == 0 {
		return engine.Grid{}, ValidationError{
			Code:    CodeEmptyGrid,
			Message: "level has no grid rows",
		}
	}

	grid, err := engine.ParseGrid(rows)
	if errors.Is(err, engine.ErrRaggedGrid) {
		return engine.Grid{}, ValidationError{
			Code:    CodeRaggedRow,
			Message: err.Error(),
		}
	}
	return grid, err
}

// Validate checks the structural rules the engine relies on:
//   - the grid is non-empty and walled in
//   - the move budget is not negative
//   - at least one egg is on the board
func Validate(grid engine.Grid, moves int) error {
	if grid.Rows() == 0 || grid.Cols() == 0 {
		return ValidationError{
			Code:    CodeEmptyGrid,
			Message: "level grid is empty",
		}
	}

	if !grid.HasWallBorder() {
		return ValidationError{
			Code:    CodeOpenBorder,
			Message: fmt.Sprintf("outer ring of the %dx%d grid must be all walls", grid.Rows(), grid.Cols()),
		}
	}

	if moves < 0 {
		return ValidationError{
			Code:    CodeNegativeBudget,
			Message: fmt.Sprintf("move budget %d is negative", moves),
		}
	}

	if !grid.Contains(engine.Egg) {
		return ValidationError{
			Code:    CodeNoEggs,
			Message: "level has no eggs",
		}
	}

	return nil
}
