// Package territory grows territories out of water cells and links
// neighboring territories into a map graph.
package territory

import (
	"math/rand"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"doltmap/pkg/engine/world"
)

// Territory is a connected set of land cells under a single owner.
type Territory struct {
	ID   world.TerritoryID
	Name string

	// cells keeps claim order, members answers lookups
	cells   []*world.Cell
	members mapset.Set[*world.Cell]

	landlocked bool
	offLimits  bool
	neighbors  mapset.Set[world.TerritoryID]
}

// New creates an empty territory with the given ID
func New(id world.TerritoryID) *Territory {
	return &Territory{
		ID:        id,
		members:   mapset.New[*world.Cell](),
		neighbors: mapset.New[world.TerritoryID](),
	}
}

// Cells returns the owned cells in the order they were claimed.
// The returned slice must not be modified.
func (t *Territory) Cells() []*world.Cell {
	return t.cells
}

// Size returns the number of owned cells
func (t *Territory) Size() int {
	return len(t.cells)
}

// Contains returns true if the territory owns the cell
func (t *Territory) Contains(c *world.Cell) bool {
	return t.members.Has(c)
}

// IsLandlocked returns true once no claimable water borders the territory
func (t *Territory) IsLandlocked() bool {
	return t.landlocked
}

// SetLandlocked marks the territory as unable to seed new territories
func (t *Territory) SetLandlocked() {
	t.landlocked = true
}

// IsOffLimits returns true if growth got stuck before reaching its target size
func (t *Territory) IsOffLimits() bool {
	return t.offLimits
}

// Neighbors returns the IDs of bordering territories in ascending order
func (t *Territory) Neighbors() []world.TerritoryID {
	ids := make([]world.TerritoryID, 0, t.neighbors.Size())
	t.neighbors.Each(func(id world.TerritoryID) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}

// HasNeighbor returns true if the given territory borders this one
func (t *Territory) HasNeighbor(id world.TerritoryID) bool {
	return t.neighbors.Has(id)
}

// claim transfers ownership of the cell to this territory
func (t *Territory) claim(c *world.Cell) {
	if t.members.Has(c) {
		return
	}
	c.Claim(t.ID)
	t.cells = append(t.cells, c)
	t.members.Put(c)
}

// revert hands every owned cell back to the water as off-limits
func (t *Territory) revert() {
	for _, c := range t.cells {
		c.Release()
	}
	t.cells = nil
	t.members = mapset.New[*world.Cell]()
}

// FrontierCells returns the claimable water cells bordering the territory,
// without duplicates, in a deterministic order.
func (t *Territory) FrontierCells() []*world.Cell {
	seen := mapset.New[*world.Cell]()
	var frontier []*world.Cell
	for _, owned := range t.cells {
		for _, water := range owned.AvailableWaterNeighbors() {
			if seen.Has(water) {
				continue
			}
			seen.Put(water)
			frontier = append(frontier, water)
		}
	}
	return frontier
}

// RandomFrontierCell returns a uniformly chosen frontier cell, or nil if the
// territory has none.
func (t *Territory) RandomFrontierCell(rng *rand.Rand) *world.Cell {
	return pickCell(rng, t.FrontierCells())
}

func pickCell(rng *rand.Rand, cells []*world.Cell) *world.Cell {
	if len(cells) == 0 {
		return nil
	}
	return cells[rng.Intn(len(cells))]
}
