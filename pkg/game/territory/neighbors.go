package territory

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"doltmap/pkg/engine/world"
)

// ComputeNeighbors rebuilds the neighbor sets of all territories from the
// cells they own. Every border found is registered on both sides, so the
// resulting relation is symmetric even if a territory were left out of the
// scan. Running it again on the same grid gives the same result.
func ComputeNeighbors(territories []*Territory) {
	byID := make(map[world.TerritoryID]*Territory, len(territories))
	for _, t := range territories {
		t.neighbors = mapset.New[world.TerritoryID]()
		byID[t.ID] = t
	}

	for _, t := range territories {
		for _, c := range t.cells {
			for _, adj := range c.GetNeighbors() {
				if !adj.IsOwned() || adj.Territory == t.ID {
					continue
				}
				other, ok := byID[adj.Territory]
				if !ok {
					continue
				}
				t.neighbors.Put(other.ID)
				other.neighbors.Put(t.ID)
			}
		}
	}
}

// IsConnected reports whether every territory can be reached from the first
// one by walking neighbor links. An empty list is connected.
func IsConnected(territories []*Territory) bool {
	if len(territories) == 0 {
		return true
	}

	byID := make(map[world.TerritoryID]*Territory, len(territories))
	for _, t := range territories {
		byID[t.ID] = t
	}

	visited := mapset.New[world.TerritoryID]()
	visited.Put(territories[0].ID)
	q := queue.New[*Territory]()
	q.Enqueue(territories[0])

	for !q.Empty() {
		current := q.Dequeue()
		current.neighbors.Each(func(id world.TerritoryID) {
			if visited.Has(id) {
				return
			}
			next, ok := byID[id]
			if !ok {
				return
			}
			visited.Put(id)
			q.Enqueue(next)
		})
	}

	return visited.Size() == len(byID)
}
