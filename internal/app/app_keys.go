package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/msgs"
)

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Quit) {
		a.drawer.Teardown()
		return tea.Quit
	}
	if a.help.Visible {
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return cmd
	}

	if cmd := a.handleGlobalKey(msg); cmd != nil {
		return cmd
	}

	// While the drawer holds the scroll lock it owns the keyboard and the
	// page underneath does not move.
	if a.lock.Engaged() {
		return a.drawer.Update(msg)
	}

	if key.Matches(msg, a.keys.Open) {
		return a.setOpen(true)
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return cmd
}

func (a *App) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Help):
		return func() tea.Msg { return msgs.ShowHelpMsg{} }
	case key.Matches(msg, a.keys.Theme):
		name := a.nextTheme()
		return func() tea.Msg { return msgs.SwitchThemeMsg{Name: name} }
	case key.Matches(msg, a.keys.Copy):
		return func() tea.Msg { return msgs.CopyBodyMsg{} }
	case key.Matches(msg, a.keys.Close):
		if a.open || a.lock.Engaged() {
			return func() tea.Msg { return msgs.CloseDrawerMsg{} }
		}
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.help.Visible {
		return nil
	}
	if a.drawer.Visible() {
		cmd := a.drawer.Update(msg)
		if a.lock.Engaged() {
			return cmd
		}
		// A closing drawer no longer blocks the page.
		var pageCmd tea.Cmd
		a.page, pageCmd = a.page.Update(msg)
		return tea.Batch(cmd, pageCmd)
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return cmd
}
