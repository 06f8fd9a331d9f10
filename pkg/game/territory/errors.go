package territory

import "errors"

var (
	// ErrInvalidSizeRange indicates a minimum size larger than the maximum size.
	ErrInvalidSizeRange = errors.New("territory: minimum size must be less than or equal to maximum size")
	// ErrInfeasibleStart indicates a start cell that is not claimable water.
	ErrInfeasibleStart = errors.New("territory: start cell must be water that is not off-limits")
	// ErrRegionStarved indicates less reachable water than the minimum size.
	ErrRegionStarved = errors.New("territory: not enough reachable water for the minimum size")
	// ErrGrowthStalled indicates growth ran out of frontier before reaching the
	// minimum size; the claimed cells have been reverted.
	ErrGrowthStalled = errors.New("territory: growth stalled below the minimum size")
)
