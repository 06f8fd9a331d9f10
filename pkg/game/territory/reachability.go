package territory

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"doltmap/pkg/engine/world"
)

// CountReachableWater runs a breadth-first search from start over water
// cells that are not off-limits and returns the visited cells in discovery
// order, start first.
//
// Every newly discovered cell counts towards limit and the search stops the
// moment the count reaches limit, so the result holds at most limit+1 cells (start
// is not counted). When the reachable region is smaller the whole region is
// returned. The start cell itself is not filtered.
func CountReachableWater(start *world.Cell, limit int) []*world.Cell {
	if start == nil {
		return nil
	}

	visited := []*world.Cell{start}
	seen := mapset.New[*world.Cell]()
	seen.Put(start)

	q := queue.New[*world.Cell]()
	q.Enqueue(start)

	count := 0
	for !q.Empty() {
		current := q.Dequeue()
		for _, water := range current.AvailableWaterNeighbors() {
			if seen.Has(water) {
				continue
			}
			seen.Put(water)
			visited = append(visited, water)
			q.Enqueue(water)

			count++
			if count == limit {
				return visited
			}
		}
	}

	return visited
}
