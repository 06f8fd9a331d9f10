package generator

import "errors"

var (
	// ErrInvalidConfig indicates generation parameters that can never work.
	ErrInvalidConfig = errors.New("generator: invalid configuration")
	// ErrInvalidDimensions indicates a grid width or height below one.
	ErrInvalidDimensions = errors.New("generator: grid dimensions must be positive")
	// ErrNoInitialTerritory indicates the first territory could not be placed,
	// usually because the grid is too small for the minimum size.
	ErrNoInitialTerritory = errors.New("generator: could not place the first territory")
	// ErrBuildExhausted indicates a placement used its whole retry budget.
	ErrBuildExhausted = errors.New("generator: territory build attempts exhausted")
	// ErrPlacementBudget indicates the placement loop hit its iteration guard.
	ErrPlacementBudget = errors.New("generator: placement attempt budget exhausted")
)
