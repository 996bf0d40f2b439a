package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/SteveIsnthere/drawer-by-steve/internal/drawer"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/msgs"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	visibility drawer.Visibility
	layout     drawer.LayoutMode
	locked     bool
	size       int64
	kind       string
	mode       msgs.AppMode
	message    string
	width      int
	theme      theme.Theme
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme) StatusBar {
	return StatusBar{
		theme: t,
		mode:  msgs.ModeNormal,
	}
}

// SetDrawer records the drawer state shown on the left.
func (m *StatusBar) SetDrawer(v drawer.Visibility, layout drawer.LayoutMode, locked bool) {
	m.visibility = v
	m.layout = layout
	m.locked = locked
}

// SetContent records the size and kind of the drawer's document.
func (m *StatusBar) SetContent(size int64, kind string) {
	m.size = size
	m.kind = kind
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// ShowMessage sets a status message that clears itself after d.
func (m *StatusBar) ShowMessage(text string, d time.Duration) tea.Cmd {
	m.message = text
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// SetTheme recolors the bar.
func (m *StatusBar) SetTheme(t theme.Theme) {
	m.theme = t
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg.(type) {
	case clearStatusMsg:
		m.message = ""
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	bg := m.theme.Surface
	segment := func(fg lipgloss.Color, bold bool, s string) string {
		return lipgloss.NewStyle().Foreground(fg).Background(bg).Bold(bold).Render(s)
	}

	var leftParts []string
	if m.message != "" {
		leftParts = append(leftParts, segment(m.theme.Text, false, m.message))
	} else {
		leftParts = append(leftParts, segment(m.theme.VisibilityColor(m.visibility), true, m.visibility.String()))
		if m.visibility != drawer.Closed {
			leftParts = append(leftParts, segment(m.theme.ModeColor(m.layout), false, m.layout.String()))
		}
		lock := "scroll"
		if m.locked {
			lock = "locked"
		}
		leftParts = append(leftParts, segment(m.theme.Subtext, false, lock))
		if m.size > 0 {
			leftParts = append(leftParts, segment(m.theme.Subtext, false, humanize.IBytes(uint64(m.size))))
		}
		if m.kind != "" {
			leftParts = append(leftParts, segment(m.theme.Muted, false, m.kind))
		}
	}
	left := strings.Join(leftParts, segment(m.theme.Muted, false, " │ "))

	modeStr := segment(m.theme.Mauve, true, "["+m.mode.String()+"]")
	hint := segment(m.theme.Muted, false, "?:help  o:open")

	barStyle := lipgloss.NewStyle().
		Background(bg).
		Foreground(m.theme.Text).
		Width(m.width).
		MaxHeight(1)

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent+2 >= m.width {
		line := " " + left + " " + modeStr + " " + hint
		return barStyle.Render(line)
	}

	remaining := m.width - totalContent - 2
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}
