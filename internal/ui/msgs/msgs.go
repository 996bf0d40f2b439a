package msgs

import (
	"time"

	"github.com/SteveIsnthere/drawer-by-steve/internal/drawer"
)

// AppMode represents where keyboard input is routed.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeDrawer
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeDrawer:
		return "DRAWER"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// OpenDrawerMsg sets the caller's open flag to true.
type OpenDrawerMsg struct{}

// CloseDrawerMsg sets the caller's open flag to false. The drawer closes
// without reporting back through DrawerClosedMsg.
type CloseDrawerMsg struct{}

// DrawerClosedMsg is emitted when the user or a drag gesture dismisses the
// drawer. SessionID names the open session that was dismissed.
type DrawerClosedMsg struct {
	Reason    drawer.CloseReason
	SessionID string
}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}

// CopyBodyMsg copies the drawer body to the clipboard.
type CopyBodyMsg struct{}

// SwitchThemeMsg requests switching to a named theme.
type SwitchThemeMsg struct {
	Name string
}
