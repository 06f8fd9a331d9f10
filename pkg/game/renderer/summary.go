package renderer

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/leonelquinteros/gotext"

	"doltmap/pkg/engine/world"
	"doltmap/pkg/game/generator"
	"doltmap/pkg/game/territory"
)

//go:embed locale/en.po
var defaultCatalogue []byte

var catalogue = loadCatalogue(defaultCatalogue)

func loadCatalogue(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// SetCatalogue replaces the message catalogue with the given .po contents
func SetCatalogue(data []byte) {
	catalogue = loadCatalogue(data)
}

// tr looks up a message; formatted messages go through fmt.Sprintf at the call site
func tr(key string) string {
	return catalogue.Get(key)
}

// CellCounts tallies the grid by cell state
type CellCounts struct {
	Land      int
	Water     int
	OffLimits int
}

// CountCells tallies the cells of a grid. Off-limits water is counted
// separately from open water.
func CountCells(g *world.Grid) CellCounts {
	var counts CellCounts
	g.ForEachCell(func(c *world.Cell) {
		switch {
		case c.Type == world.Land:
			counts.Land++
		case c.OffLimits:
			counts.OffLimits++
		default:
			counts.Water++
		}
	})
	return counts
}

// Summary returns a short localized report of a generated map. With
// territories set, one line per territory follows the totals.
func Summary(m *generator.Map, territories bool) string {
	var sb strings.Builder
	counts := CountCells(m.Grid)

	sb.WriteString(StyleText(fmt.Sprintf(tr("SUMMARY_HEADER"), m.ID.String(), m.Config.Seed, m.Grid.Width(), m.Grid.Height()), StyleSubtle))
	sb.WriteByte('\n')
	sb.WriteString(fmt.Sprintf(tr("SUMMARY_TERRITORIES"), len(m.Territories), m.Requested()))
	sb.WriteByte('\n')
	if m.Saturated {
		sb.WriteString(tr("SUMMARY_SATURATED"))
		sb.WriteByte('\n')
	}
	sb.WriteString(fmt.Sprintf(tr("SUMMARY_CELLS"),
		StyleText(humanize.Comma(int64(counts.Land)), StyleLand),
		StyleText(humanize.Comma(int64(counts.Water)), StyleWater),
		StyleText(humanize.Comma(int64(counts.OffLimits)), StyleOffLimits),
	))
	sb.WriteByte('\n')
	sb.WriteString(fmt.Sprintf(tr("SUMMARY_CONNECTED"), yesNo(territory.IsConnected(m.Territories))))
	sb.WriteByte('\n')

	if !territories {
		return sb.String()
	}
	for _, t := range m.Territories {
		sb.WriteString(fmt.Sprintf(tr("SUMMARY_TERRITORY_LINE"), int(t.ID), t.Name, t.Size(), NeighborList(t)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// NeighborList formats the neighbor IDs of a territory as "1, 4, 7"
func NeighborList(t *territory.Territory) string {
	ids := t.Neighbors()
	if len(ids) == 0 {
		return tr("SUMMARY_NO_NEIGHBORS")
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ", ")
}

func yesNo(b bool) string {
	if b {
		return tr("YES")
	}
	return tr("NO")
}

// String implements fmt.Stringer for debugging
func (c CellCounts) String() string {
	return fmt.Sprintf("land=%d water=%d off-limits=%d", c.Land, c.Water, c.OffLimits)
}
