package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SteveIsnthere/drawer-by-steve/internal/drawer"
)

// Theme holds all colors for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Crust   lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Mauve    lipgloss.Color
	Lavender lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Blue     lipgloss.Color

	// Semantic
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	Handle          lipgloss.Color
	Backdrop        lipgloss.Color
}

// VisibilityColor returns the status bar color for a drawer state.
func (t Theme) VisibilityColor(v drawer.Visibility) lipgloss.Color {
	switch v {
	case drawer.Opening:
		return t.Yellow
	case drawer.Open:
		return t.Green
	case drawer.Closing:
		return t.Peach
	default:
		return t.Muted
	}
}

// ModeColor returns the status bar color for a layout mode.
func (t Theme) ModeColor(m drawer.LayoutMode) lipgloss.Color {
	if m == drawer.Panel {
		return t.Blue
	}
	return t.Teal
}
