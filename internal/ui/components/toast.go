package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/theme"
)

const defaultToastDuration = 3 * time.Second

// toastDismissMsg dismisses the toast shown as seq. A newer toast ignores
// the dismiss tick of an older one.
type toastDismissMsg struct {
	seq int
}

// Toast is an auto-dismiss notification.
type Toast struct {
	Visible  bool
	text     string
	isError  bool
	seq      int
	duration time.Duration
	theme    theme.Theme
}

// NewToast creates a new toast component.
func NewToast(t theme.Theme) Toast {
	return Toast{
		theme:    t,
		duration: defaultToastDuration,
	}
}

// Show displays a toast message and returns a Cmd for auto-dismiss.
func (m *Toast) Show(text string, isError bool, duration time.Duration) tea.Cmd {
	m.Visible = true
	m.text = text
	m.isError = isError
	m.seq++
	if duration > 0 {
		m.duration = duration
	} else {
		m.duration = defaultToastDuration
	}
	seq := m.seq
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

// SetTheme recolors the toast.
func (m *Toast) SetTheme(t theme.Theme) {
	m.theme = t
}

// Text is the message currently shown.
func (m Toast) Text() string {
	return m.text
}

// Init implements tea.Model.
func (m Toast) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	switch msg := msg.(type) {
	case toastDismissMsg:
		if msg.seq == m.seq {
			m.Visible = false
			m.text = ""
		}
	}
	return m, nil
}

// View renders the toast notification.
func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}

	fg := m.theme.Green
	if m.isError {
		fg = m.theme.Red
	}

	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(m.theme.Surface).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg)

	return style.Render(m.text)
}
