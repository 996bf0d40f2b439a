package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Text styles
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Bold       lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Key        lipgloss.Style
	Hint       lipgloss.Style
	StatusText lipgloss.Style

	// Drawer chrome
	Sheet       lipgloss.Style
	Panel       lipgloss.Style
	HandleBar   lipgloss.Style
	DrawerTitle lipgloss.Style
	CloseButton lipgloss.Style
	Divider     lipgloss.Style
	Backdrop    lipgloss.Style

	StatusBar lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.Subtext),
		Normal:   lipgloss.NewStyle().Foreground(t.Text),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Bold:     lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(t.Red),
		Success:  lipgloss.NewStyle().Foreground(t.Green),
		Warning:  lipgloss.NewStyle().Foreground(t.Yellow),
		Key:      lipgloss.NewStyle().Foreground(t.Mauve),
		Hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		StatusText: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),

		Sheet: lipgloss.NewStyle().
			Background(t.Base).
			Foreground(t.Text),
		Panel: lipgloss.NewStyle().
			Background(t.Base).
			Foreground(t.Text).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.BorderUnfocused),
		HandleBar: lipgloss.NewStyle().
			Foreground(t.Handle),
		DrawerTitle: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),
		CloseButton: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Bold(true),
		Divider: lipgloss.NewStyle().
			Foreground(t.Surface),
		Backdrop: lipgloss.NewStyle().
			Foreground(t.Backdrop).
			Faint(true),

		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
	}
}
