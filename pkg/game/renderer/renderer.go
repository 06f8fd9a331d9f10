// Package renderer turns a generated map into text for terminals, test
// fixtures and debug dumps.
package renderer

import (
	"strings"

	"doltmap/pkg/engine/world"
	"doltmap/pkg/game/generator"
)

// Icon constants for map cells
const (
	IconLand      = "#"
	IconWater     = "."
	IconOffLimits = ","
)

// CellSymbol returns the single-character symbol for a cell
func CellSymbol(c *world.Cell) string {
	switch {
	case c == nil:
		return " "
	case c.Type == world.Land:
		return IconLand
	case c.OffLimits:
		return IconOffLimits
	default:
		return IconWater
	}
}

// CellFunc renders one cell
type CellFunc func(c *world.Cell) string

// WriteBox draws the grid as a bordered box: every cell is framed by '|'
// and each row is followed by a "+-+" separator line. sep styles the frame.
func WriteBox(sb *strings.Builder, g *world.Grid, cell CellFunc, sep func(string) string) {
	border := sep("+" + strings.Repeat("-+", g.Width()))
	bar := sep("|")

	sb.WriteString(border)
	sb.WriteByte('\n')
	for y := 0; y < g.Height(); y++ {
		sb.WriteString(bar)
		for x := 0; x < g.Width(); x++ {
			sb.WriteString(cell(g.GetCell(x, y)))
			sb.WriteString(bar)
		}
		sb.WriteByte('\n')
		sb.WriteString(border)
		sb.WriteByte('\n')
	}
}

// WriteCompact draws the grid with one character per cell and no frame
func WriteCompact(sb *strings.Builder, g *world.Grid, cell CellFunc) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			sb.WriteString(cell(g.GetCell(x, y)))
		}
		sb.WriteByte('\n')
	}
}

// BoxWidth returns the number of columns the boxed view of a grid needs
func BoxWidth(g *world.Grid) int {
	return 2*g.Width() + 1
}

// TextRenderer is the plain, uncoloured renderer. Its boxed output is the
// reference format used by tests and dumps.
type TextRenderer struct {
	Compact bool
}

// NewText creates a plain text renderer
func NewText(compact bool) *TextRenderer {
	return &TextRenderer{Compact: compact}
}

// Init does nothing; plain text needs no setup
func (t *TextRenderer) Init() {}

// Name returns the name of this renderer
func (t *TextRenderer) Name() string {
	if t.Compact {
		return "Text (compact)"
	}
	return "Text"
}

// Render returns the map as plain text
func (t *TextRenderer) Render(m *generator.Map) string {
	var sb strings.Builder
	if t.Compact {
		WriteCompact(&sb, m.Grid, CellSymbol)
	} else {
		WriteBox(&sb, m.Grid, CellSymbol, plain)
	}
	return sb.String()
}

// StyleText returns text unchanged
func (t *TextRenderer) StyleText(text string, _ TextStyle) string {
	return text
}

func plain(s string) string {
	return s
}
