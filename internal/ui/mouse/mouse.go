// Package mouse classifies terminal mouse events into presses, drags and
// releases on named screen regions.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Locator names the region under a mouse event, or returns "" when the
// event lands on nothing the caller tracks.
type Locator func(tea.MouseMsg) string

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionPress
	ActionDrag
	ActionRelease
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

func (a ActionType) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionDrag:
		return "drag"
	case ActionRelease:
		return "release"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// Action is a classified mouse event.
type Action struct {
	Type   ActionType
	X, Y   int
	Region string
	// StartRegion is the region the current press began on. It stays set
	// through drag and release so a drag that leaves its region still
	// belongs to it.
	StartRegion string
}

// Handler turns raw tea.MouseMsg values into Actions and remembers which
// region a press started on.
type Handler struct {
	locate Locator

	pressed     bool
	startRegion string
	startX      int
	startY      int
}

// NewHandler returns a handler that resolves regions with locate. A nil
// locate puts every event outside any region.
func NewHandler(locate Locator) *Handler {
	if locate == nil {
		locate = func(tea.MouseMsg) string { return "" }
	}
	return &Handler{locate: locate}
}

// Pressed reports whether the left button is held.
func (h *Handler) Pressed() bool {
	return h.pressed
}

// DragDelta returns the distance from the press origin.
func (h *Handler) DragDelta(x, y int) (int, int) {
	return x - h.startX, y - h.startY
}

// Reset forgets any press in progress.
func (h *Handler) Reset() {
	h.pressed = false
	h.startRegion = ""
}

// HandleMouse classifies msg.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	a := Action{X: msg.X, Y: msg.Y, Region: h.locate(msg)}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		a.Type = ActionScrollUp
	case msg.Button == tea.MouseButtonWheelDown:
		a.Type = ActionScrollDown
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		h.pressed = true
		h.startX, h.startY = msg.X, msg.Y
		h.startRegion = a.Region
		a.Type = ActionPress
	case msg.Action == tea.MouseActionMotion:
		if h.pressed {
			a.Type = ActionDrag
		} else {
			a.Type = ActionHover
		}
	case msg.Action == tea.MouseActionRelease:
		if !h.pressed {
			return a
		}
		a.Type = ActionRelease
		a.StartRegion = h.startRegion
		h.Reset()
		return a
	}
	a.StartRegion = h.startRegion
	return a
}
