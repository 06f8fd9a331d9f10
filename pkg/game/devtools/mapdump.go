// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"doltmap/pkg/game/generator"
	"doltmap/pkg/game/renderer"
	"doltmap/pkg/game/territory"
)

// DefaultDumpFilename is used when no dump path is given
const DefaultDumpFilename = "map.txt"

// ErrNoGrid is returned when a map without a grid is dumped
var ErrNoGrid = errors.New("devtools: map has no grid")

// DumpMapToFile writes a full debug dump of m to path and returns the
// absolute path written. An empty path writes DefaultDumpFilename in the
// working directory.
func DumpMapToFile(path string, m *generator.Map) (string, error) {
	if m == nil || m.Grid == nil {
		return "", ErrNoGrid
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, m); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// WriteMapDump writes the dump sections: metadata, legend, map and the
// territory table. The format is plain "key: value" lines so dumps diff well.
func WriteMapDump(out io.Writer, m *generator.Map) error {
	if m == nil || m.Grid == nil {
		return ErrNoGrid
	}
	w := bufio.NewWriter(out)
	cfg := m.Config
	counts := renderer.CountCells(m.Grid)

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (territories, neighbors, cell states) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "map_id: %s\n", m.ID)
	fmt.Fprintf(w, "seed: %d\n", cfg.Seed)
	fmt.Fprintf(w, "grid_width: %d\n", m.Grid.Width())
	fmt.Fprintf(w, "grid_height: %d\n", m.Grid.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, y grows downward)\n")
	fmt.Fprintf(w, "start_cell: %d,%d\n", cfg.StartX, cfg.StartY)
	fmt.Fprintf(w, "territories_requested: %d\n", cfg.NumTerritories)
	fmt.Fprintf(w, "territories_placed: %d\n", len(m.Territories))
	fmt.Fprintf(w, "size_range: %d..%d\n", cfg.MinSize, cfg.MaxSize)
	fmt.Fprintf(w, "saturated: %v\n", m.Saturated)
	fmt.Fprintf(w, "connected: %v\n", territory.IsConnected(m.Territories))
	fmt.Fprintf(w, "land_cells: %s\n", humanize.Comma(int64(counts.Land)))
	fmt.Fprintf(w, "water_cells: %s\n", humanize.Comma(int64(counts.Water)))
	fmt.Fprintf(w, "off_limits_cells: %s\n", humanize.Comma(int64(counts.OffLimits)))
	fmt.Fprintln(w, "")

	// --- Stats ---
	fmt.Fprintln(w, "--- Stats ---")
	fmt.Fprintf(w, "placements: %d\n", m.Stats.Placements)
	fmt.Fprintf(w, "build_attempts: %d\n", m.Stats.BuildAttempts)
	fmt.Fprintf(w, "starved_regions: %d\n", m.Stats.StarvedRegions)
	fmt.Fprintf(w, "exhausted_builds: %d\n", m.Stats.ExhaustedBuilds)
	fmt.Fprintf(w, "landlocked: %d\n", m.Stats.Landlocked)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintf(w, "%s = land  %s = water  %s = off-limits water\n", renderer.IconLand, renderer.IconWater, renderer.IconOffLimits)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	fmt.Fprint(w, renderer.NewText(false).Render(m))
	fmt.Fprintln(w, "")

	// --- Territories ---
	fmt.Fprintln(w, "--- Territories (id, name, size, state, neighbors) ---")
	for _, t := range m.Territories {
		fmt.Fprintf(w, "  id: %d name: %q size: %d landlocked: %v off_limits: %v neighbors: %s\n",
			t.ID, t.Name, t.Size(), t.IsLandlocked(), t.IsOffLimits(), renderer.NeighborList(t))
	}
	fmt.Fprintln(w, "")

	// --- Ownership ---
	fmt.Fprintln(w, "--- Ownership (territory id per cell, '.' for water) ---")
	for y := 0; y < m.Grid.Height(); y++ {
		for x := 0; x < m.Grid.Width(); x++ {
			c := m.Grid.GetCell(x, y)
			if !c.IsOwned() {
				fmt.Fprint(w, "  .")
				continue
			}
			fmt.Fprintf(w, "%3d", c.Territory)
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}
