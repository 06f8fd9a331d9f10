package generator

import "fmt"

// Defaults for a generated map
const (
	DefaultWidth            = 40
	DefaultHeight           = 20
	DefaultNumTerritories   = 10
	DefaultMinTerritorySize = 10
	DefaultMaxTerritorySize = 30

	// DefaultBuildAttempts is how often a single placement is retried before
	// it is skipped.
	DefaultBuildAttempts = 100
)

// Config holds the parameters of a generation run
type Config struct {
	Width  int
	Height int

	NumTerritories int
	MinSize        int
	MaxSize        int

	Seed int64

	// First territory is anchored here
	StartX int
	StartY int

	BuildAttempts int

	// MaxPlacementAttempts caps the iterations of the placement loop.
	// Zero picks a bound no successful run can reach.
	MaxPlacementAttempts int
}

// DefaultConfig returns a Config with default settings and seed 0
func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		NumTerritories: DefaultNumTerritories,
		MinSize:        DefaultMinTerritorySize,
		MaxSize:        DefaultMaxTerritorySize,
		BuildAttempts:  DefaultBuildAttempts,
	}
}

// Validate checks the configuration before any grid is built
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.NumTerritories < 1 {
		return fmt.Errorf("%w: territory count %d must be at least 1", ErrInvalidConfig, c.NumTerritories)
	}
	if c.MinSize < 1 {
		return fmt.Errorf("%w: minimum size %d must be at least 1", ErrInvalidConfig, c.MinSize)
	}
	if c.MinSize > c.MaxSize {
		return fmt.Errorf("%w: minimum size %d exceeds maximum size %d", ErrInvalidConfig, c.MinSize, c.MaxSize)
	}
	if c.StartX < 0 || c.StartX >= c.Width || c.StartY < 0 || c.StartY >= c.Height {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalidConfig, c.StartX, c.StartY, c.Width, c.Height)
	}
	if c.BuildAttempts < 1 {
		return fmt.Errorf("%w: build attempts %d must be at least 1", ErrInvalidConfig, c.BuildAttempts)
	}
	if c.MaxPlacementAttempts < 0 {
		return fmt.Errorf("%w: negative placement budget %d", ErrInvalidConfig, c.MaxPlacementAttempts)
	}
	return nil
}

// placementBudget returns the iteration guard for the placement loop.
// Each iteration either places a territory, landlocks one, or turns at least
// one water cell off-limits, so the default bound is never reached.
func (c Config) placementBudget() int {
	if c.MaxPlacementAttempts > 0 {
		return c.MaxPlacementAttempts
	}
	return 4*c.Width*c.Height + c.NumTerritories
}
