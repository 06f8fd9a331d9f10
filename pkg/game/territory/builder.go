package territory

import (
	"fmt"
	"log/slog"
	"math/rand"

	"doltmap/pkg/engine/world"
)

// Builder grows single territories out of water. All randomness comes from
// the rng it was created with.
type Builder struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// NewBuilder creates a territory builder. A nil logger uses slog.Default().
func NewBuilder(rng *rand.Rand, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{rng: rng, logger: logger}
}

// RandomTargetSize returns a size drawn uniformly from [minSize, maxSize].
// No number is drawn when the range holds a single value.
func RandomTargetSize(rng *rand.Rand, minSize, maxSize int) (int, error) {
	if minSize > maxSize {
		return 0, fmt.Errorf("%w: %d > %d", ErrInvalidSizeRange, minSize, maxSize)
	}
	if minSize == maxSize {
		return minSize, nil
	}
	return minSize + rng.Intn(maxSize-minSize+1), nil
}

// Build grows a territory with the given ID starting at start.
//
// The cells reachable from start are counted first; when fewer than minSize
// are reachable nothing is mutated and ErrRegionStarved is returned. Otherwise
// a target size is drawn and clamped to the reachable count, and cells are
// claimed one at a time: a random claimable neighbor of the last claimed cell,
// or failing that a random claimable cell bordering any owned cell. If the
// result ends up outside [minSize, maxSize] every claimed cell is released as
// off-limits water and ErrGrowthStalled is returned.
func (b *Builder) Build(id world.TerritoryID, start *world.Cell, minSize, maxSize int) (*Territory, error) {
	if minSize > maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidSizeRange, minSize, maxSize)
	}
	if !start.IsAvailableWater() {
		return nil, fmt.Errorf("%w: %v", ErrInfeasibleStart, start)
	}

	available := len(CountReachableWater(start, maxSize))
	b.logger.Debug("water available for territory", "territory", id, "start", start.String(), "available", available)
	if available < minSize {
		return nil, fmt.Errorf("%w: %d reachable from %v, need %d", ErrRegionStarved, available, start, minSize)
	}

	targetSize, err := RandomTargetSize(b.rng, minSize, maxSize)
	if err != nil {
		return nil, err
	}
	if available < targetSize {
		targetSize = available
	}

	t := New(id)
	b.grow(t, start, targetSize)

	if size := t.Size(); size < minSize || size > maxSize {
		t.revert()
		return nil, fmt.Errorf("%w: reached %d of %d", ErrGrowthStalled, size, minSize)
	}

	return t, nil
}

func (b *Builder) grow(t *Territory, start *world.Cell, targetSize int) {
	t.claim(start)

	current := start
	for t.Size() < targetSize {
		next := b.nextCell(t, current)
		if next == nil {
			t.offLimits = true
			b.logger.Debug("territory growth stuck", "territory", t.ID, "size", t.Size(), "target", targetSize)
			return
		}
		t.claim(next)
		current = next
	}
}

// nextCell prefers extending from the current cell and only falls back to the
// whole territory frontier when the current cell is boxed in.
func (b *Builder) nextCell(t *Territory, current *world.Cell) *world.Cell {
	if next := pickCell(b.rng, current.AvailableWaterNeighbors()); next != nil {
		return next
	}
	return t.RandomFrontierCell(b.rng)
}
