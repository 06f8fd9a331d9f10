// Package world provides the grid primitives the map generator works on:
// cells, their orthogonal links and the grid that owns them.
package world

import "fmt"

// TileType is the terrain of a cell
type TileType int

const (
	Water TileType = iota
	Land
)

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case Water:
		return "Water"
	case Land:
		return "Land"
	default:
		return "Unknown"
	}
}

// TerritoryID indexes a territory in the generator's territory list
type TerritoryID int

// NoTerritory marks a cell that no territory owns
const NoTerritory TerritoryID = -1

// Cell represents a single cell in the grid.
// A cell is Land exactly when it has an owning territory. An off-limits cell
// is always Water and is never used to grow a territory again.
type Cell struct {
	// Grid position
	X int
	Y int

	Type      TileType
	OffLimits bool
	Territory TerritoryID

	// Navigation - links to adjacent cells, nil at the map edge
	neighbors [NumDirections]*Cell
}

// NewCell creates a new unowned water cell at the given position
func NewCell(x, y int) *Cell {
	c := &Cell{}
	c.init(x, y)
	return c
}

func (c *Cell) init(x, y int) {
	c.X = x
	c.Y = y
	c.Type = Water
	c.Territory = NoTerritory
}

// String returns the coordinate of the cell, e.g. "(3,4)"
func (c *Cell) String() string {
	if c == nil {
		return "(nil)"
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// GetNeighbor returns the neighboring cell in the given direction
func (c *Cell) GetNeighbor(dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	return c.neighbors[dir]
}

// SetNeighbor sets the neighboring cell in the given direction
func (c *Cell) SetNeighbor(dir Direction, neighbor *Cell) {
	if c == nil || !dir.IsValid() {
		return
	}
	c.neighbors[dir] = neighbor
}

// GetNeighbors returns all non-nil adjacent cells in Up, Right, Down, Left order
func (c *Cell) GetNeighbors() []*Cell {
	neighbors := make([]*Cell, 0, NumDirections)
	for _, n := range c.neighbors {
		if n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// IsAvailableWater returns true if the cell is water that may still be claimed
func (c *Cell) IsAvailableWater() bool {
	return c != nil && c.Type == Water && !c.OffLimits
}

// AvailableWaterNeighbors returns the adjacent cells that may still be claimed
func (c *Cell) AvailableWaterNeighbors() []*Cell {
	var water []*Cell
	for _, n := range c.neighbors {
		if n.IsAvailableWater() {
			water = append(water, n)
		}
	}
	return water
}

// IsOwned returns true if a territory owns this cell
func (c *Cell) IsOwned() bool {
	return c.Territory != NoTerritory
}

// Claim turns the cell into land owned by the given territory
func (c *Cell) Claim(id TerritoryID) {
	c.Type = Land
	c.Territory = id
}

// Release turns a claimed cell back into water and marks it off-limits so it
// is never claimed again.
func (c *Cell) Release() {
	c.Type = Water
	c.Territory = NoTerritory
	c.OffLimits = true
}

// MarkOffLimits excludes a water cell from any future growth.
// Land cells are left alone.
func (c *Cell) MarkOffLimits() {
	if c.Type != Water {
		return
	}
	c.OffLimits = true
}
