package tui

import (
	"strings"

	"github.com/gookit/color"

	"doltmap/pkg/engine/world"
	"doltmap/pkg/game/generator"
	"doltmap/pkg/game/renderer"
)

// territoryPalette cycles through these colours by territory ID so that
// adjacent territories are usually told apart.
var territoryPalette = []color.Style{
	{color.FgRed, color.OpBold},
	{color.FgGreen, color.OpBold},
	{color.FgYellow, color.OpBold},
	{color.FgBlue, color.OpBold},
	{color.FgMagenta, color.OpBold},
	{color.FgCyan, color.OpBold},
	{color.FgLightRed},
	{color.FgLightGreen},
	{color.FgLightYellow},
	{color.FgLightBlue},
	{color.FgLightMagenta},
	{color.FgLightCyan},
}

// TUIRenderer draws the map in the terminal with one colour per territory
type TUIRenderer struct {
	compact bool

	colorGrid      color.Style
	colorWater     color.Style
	colorOffLimits color.Style
	colorLand      color.Style
	colorSubtle    color.Style
}

// New creates a new TUI renderer
func New(compact bool) *TUIRenderer {
	return &TUIRenderer{compact: compact}
}

// ForceColor makes the renderer emit colour codes even when stdout is not a terminal
func ForceColor() {
	color.ForceColor()
}

// Init sets up the colour styles
func (t *TUIRenderer) Init() {
	t.colorGrid = color.Style{color.FgGray}
	t.colorWater = color.Style{color.FgBlue}
	t.colorOffLimits = color.Style{color.FgDarkGray}
	t.colorLand = color.Style{color.FgWhite, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Name returns the name of this renderer
func (t *TUIRenderer) Name() string {
	if t.compact {
		return "TUI (compact)"
	}
	return "TUI"
}

// Render returns the map with ANSI colour codes. With the codes stripped the
// output matches the plain text renderer.
func (t *TUIRenderer) Render(m *generator.Map) string {
	var sb strings.Builder
	if t.compact {
		renderer.WriteCompact(&sb, m.Grid, t.cell)
	} else {
		renderer.WriteBox(&sb, m.Grid, t.cell, t.grid)
	}
	return sb.String()
}

func (t *TUIRenderer) grid(s string) string {
	return t.colorGrid.Sprint(s)
}

func (t *TUIRenderer) cell(c *world.Cell) string {
	symbol := renderer.CellSymbol(c)
	switch {
	case c == nil:
		return symbol
	case c.Type == world.Land:
		return TerritoryStyle(c.Territory).Sprint(symbol)
	case c.OffLimits:
		return t.colorOffLimits.Sprint(symbol)
	default:
		return t.colorWater.Sprint(symbol)
	}
}

// TerritoryStyle returns the palette entry for a territory
func TerritoryStyle(id world.TerritoryID) color.Style {
	if id < 0 {
		return color.Style{color.FgDefault}
	}
	return territoryPalette[int(id)%len(territoryPalette)]
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleGrid:
		return t.colorGrid.Sprint(text)
	case renderer.StyleLand:
		return t.colorLand.Sprint(text)
	case renderer.StyleWater:
		return t.colorWater.Sprint(text)
	case renderer.StyleOffLimits:
		return t.colorOffLimits.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}
