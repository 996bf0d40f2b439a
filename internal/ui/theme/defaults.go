package theme

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Mantle:  lipgloss.Color("#181825"),
	Crust:   lipgloss.Color("#11111b"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Mauve:    lipgloss.Color("#cba6f7"),
	Lavender: lipgloss.Color("#b4befe"),
	Red:      lipgloss.Color("#f38ba8"),
	Peach:    lipgloss.Color("#fab387"),
	Yellow:   lipgloss.Color("#f9e2af"),
	Green:    lipgloss.Color("#a6e3a1"),
	Teal:     lipgloss.Color("#94e2d5"),
	Blue:     lipgloss.Color("#89b4fa"),

	BorderFocused:   lipgloss.Color("#cba6f7"),
	BorderUnfocused: lipgloss.Color("#585b70"),
	Handle:          lipgloss.Color("#6c7086"),
	Backdrop:        lipgloss.Color("#45475a"),
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// ThemesDir is where user themes live: ~/.config/drawer/themes.
func ThemesDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "drawer", "themes"), nil
}

// Resolve looks up a theme by name: catalog -> custom themes -> fallback to Mocha.
func Resolve(name string) Theme {
	if t, ok := Get(name); ok {
		return t
	}

	if dir, err := ThemesDir(); err == nil {
		customs := LoadCustomThemes(dir)
		if t, ok := customs[normalizeKey(name)]; ok {
			return t
		}
	}

	return CatppuccinMocha
}
