package territory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"doltmap/pkg/engine/world"
)

// stripTerritories builds a 1-row grid where owners[x] owns cell x (-1 = water)
// and returns one territory per distinct owner, ordered by ID.
func stripTerritories(owners []int) []*Territory {
	g := world.NewGrid(len(owners), 1)
	var out []*Territory
	byID := map[int]*Territory{}
	for x, owner := range owners {
		if owner < 0 {
			continue
		}
		terr, ok := byID[owner]
		if !ok {
			terr = New(world.TerritoryID(owner))
			byID[owner] = terr
			out = append(out, terr)
		}
		terr.claim(g.GetCell(x, 0))
	}
	return out
}

func TestComputeNeighbors_Chain(t *testing.T) {
	// A A B C: A-B and B-C border, A and C do not.
	terrs := stripTerritories([]int{0, 0, 1, 2})
	ComputeNeighbors(terrs)

	a, b, c := terrs[0], terrs[1], terrs[2]
	assert.Equal(t, []world.TerritoryID{1}, a.Neighbors())
	assert.Equal(t, []world.TerritoryID{0, 2}, b.Neighbors())
	assert.Equal(t, []world.TerritoryID{1}, c.Neighbors())
	assert.False(t, a.HasNeighbor(2))
}

func TestComputeNeighbors_WaterIsNotABorder(t *testing.T) {
	terrs := stripTerritories([]int{0, -1, 1})
	ComputeNeighbors(terrs)

	assert.Empty(t, terrs[0].Neighbors())
	assert.Empty(t, terrs[1].Neighbors())
}

func TestComputeNeighbors_SymmetricAndIdempotent(t *testing.T) {
	terrs := stripTerritories([]int{0, 1, 1, 2, -1, 3, 3, 2})
	ComputeNeighbors(terrs)

	first := make(map[world.TerritoryID][]world.TerritoryID)
	for _, terr := range terrs {
		first[terr.ID] = terr.Neighbors()
	}
	assertSymmetric(t, terrs)

	ComputeNeighbors(terrs)
	for _, terr := range terrs {
		assert.Equal(t, first[terr.ID], terr.Neighbors(), "territory %d changed on recompute", terr.ID)
	}
}

func TestComputeNeighbors_EdgeRegisteredFromOneSide(t *testing.T) {
	// B's cell list is emptied so only A's scan can find the border.
	// B must still learn about A.
	terrs := stripTerritories([]int{0, 1})
	a, b := terrs[0], terrs[1]
	b.cells = nil
	ComputeNeighbors(terrs)

	assert.True(t, a.HasNeighbor(1))
	assert.True(t, b.HasNeighbor(0))
}

func TestComputeNeighbors_DropsStaleBorders(t *testing.T) {
	// A B C, then B gives its cell back: A and C no longer border anyone.
	terrs := stripTerritories([]int{0, 1, 2})
	ComputeNeighbors(terrs)
	a, b, c := terrs[0], terrs[1], terrs[2]
	assert.True(t, a.HasNeighbor(1))

	b.revert()
	ComputeNeighbors(terrs)
	assert.Empty(t, a.Neighbors())
	assert.Empty(t, b.Neighbors())
	assert.Empty(t, c.Neighbors())
}

func TestIsConnected(t *testing.T) {
	assert.True(t, IsConnected(nil))

	chain := stripTerritories([]int{0, 1, 2})
	ComputeNeighbors(chain)
	assert.True(t, IsConnected(chain))

	split := stripTerritories([]int{0, 1, -1, 2})
	ComputeNeighbors(split)
	assert.False(t, IsConnected(split))
}

func assertSymmetric(t *testing.T, terrs []*Territory) {
	t.Helper()
	byID := map[world.TerritoryID]*Territory{}
	for _, terr := range terrs {
		byID[terr.ID] = terr
	}
	for _, terr := range terrs {
		for _, id := range terr.Neighbors() {
			assert.True(t, byID[id].HasNeighbor(terr.ID), "%d -> %d has no reverse edge", terr.ID, id)
		}
	}
}
