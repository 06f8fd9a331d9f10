package renderer

import (
	"doltmap/pkg/game/generator"
)

// TextStyle identifies what a piece of map output represents
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleGrid
	StyleLand
	StyleWater
	StyleOffLimits
	StyleSubtle
)

// Renderer defines the interface for map rendering backends.
// Implementations include the plain text box and the colour terminal view.
type Renderer interface {
	// Init initializes the renderer (colors etc.)
	Init()

	// Name identifies the renderer in logs
	Name() string

	// Render stringifies the finished map for display
	Render(m *generator.Map) string

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// Current holds the active renderer instance
var Current Renderer = &TextRenderer{}

// SetRenderer sets and initializes the active renderer
func SetRenderer(r Renderer) {
	r.Init()
	Current = r
}

// Render renders the map with the current renderer
func Render(m *generator.Map) string {
	if Current == nil {
		return ""
	}
	return Current.Render(m)
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}
