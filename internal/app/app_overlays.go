package app

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/components"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/msgs"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/theme"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (a *App) copyBody() tea.Cmd {
	if err := writeClipboard(string(a.doc.Data)); err != nil {
		return a.toast.Show("Clipboard error: "+err.Error(), true, 3*time.Second)
	}
	return a.toast.Show("Copied "+a.doc.SizeLabel(), false, 2*time.Second)
}

func (a *App) switchTheme(msg msgs.SwitchThemeMsg) tea.Cmd {
	t := theme.Resolve(msg.Name)
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s

	a.drawer.SetStyles(s)
	a.statusBar.SetTheme(t)
	a.help.SetTheme(t)
	a.toast.SetTheme(t)

	return a.toast.Show("Theme: "+t.Name, false, 2*time.Second)
}

// nextTheme is the catalog theme after the current one.
func (a *App) nextTheme() string {
	names := theme.Names()
	if len(names) == 0 {
		return a.theme.Name
	}
	for i, n := range names {
		if n == a.theme.Name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#1e1e2e")),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	x := max(width-lipgloss.Width(overlay)-2, 0)
	return components.Overlay(bg, overlay, x, 0, width)
}
