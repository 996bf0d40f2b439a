package drawer

// Visibility is the lifecycle state of the drawer.
type Visibility int

const (
	Closed Visibility = iota
	Opening
	Open
	Closing
)

func (v Visibility) String() string {
	switch v {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// Transient reports whether v ends on its own once an animation settles.
func (v Visibility) Transient() bool {
	return v == Opening || v == Closing
}

// Engaged reports whether the scroll lock must be held in state v.
func (v Visibility) Engaged() bool {
	return v == Opening || v == Open
}

// LayoutMode selects the sub-layout rendered for an open session.
type LayoutMode int

const (
	Sheet LayoutMode = iota
	Panel
)

func (m LayoutMode) String() string {
	switch m {
	case Sheet:
		return "sheet"
	case Panel:
		return "panel"
	default:
		return "unknown"
	}
}

// DragSample is the live position of an active drag in logical units.
// Velocity is positive when moving down.
type DragSample struct {
	Offset   float64
	Velocity float64
}

// CloseReason says who asked the drawer to close.
type CloseReason int

const (
	ReasonBackdrop CloseReason = iota
	ReasonCloseButton
	ReasonKey
	ReasonGesture
)

func (r CloseReason) String() string {
	switch r {
	case ReasonBackdrop:
		return "backdrop"
	case ReasonCloseButton:
		return "close button"
	case ReasonKey:
		return "key"
	case ReasonGesture:
		return "gesture"
	default:
		return "unknown"
	}
}

// Release is the outcome of a pointer release.
type Release int

const (
	// ReleaseNone means no drag was in progress.
	ReleaseNone Release = iota
	// ReleaseIgnored means the drag ended before gesture control was handed over.
	ReleaseIgnored
	// ReleaseSnapBack means the sheet springs back to rest.
	ReleaseSnapBack
	// ReleaseDismiss means the drag closed the drawer.
	ReleaseDismiss
)

func (r Release) String() string {
	switch r {
	case ReleaseNone:
		return "none"
	case ReleaseIgnored:
		return "ignored"
	case ReleaseSnapBack:
		return "snap-back"
	case ReleaseDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}
