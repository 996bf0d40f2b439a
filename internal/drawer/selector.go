package drawer

import (
	"fmt"
	"math"
)

// DefaultBreakpoint is the width in logical pixels above which Panel is used.
const DefaultBreakpoint = 700.0

// Viewport reports the current host width in logical pixels.
type Viewport interface {
	Width() (float64, error)
}

// ViewportFunc adapts a function to Viewport.
type ViewportFunc func() (float64, error)

func (f ViewportFunc) Width() (float64, error) {
	return f()
}

// StaticViewport is a Viewport with a fixed width.
type StaticViewport float64

func (v StaticViewport) Width() (float64, error) {
	return float64(v), nil
}

// Selector picks the layout mode for a session.
type Selector struct {
	Breakpoint float64
}

// Select reads the viewport once and returns Panel when the width exceeds the
// breakpoint, Sheet otherwise. It never falls back to a default mode: a
// missing or invalid width is a *ConfigError wrapping ErrViewportUnavailable.
func (s Selector) Select(vp Viewport) (LayoutMode, error) {
	if vp == nil {
		return Sheet, &ConfigError{Op: "select layout", Err: ErrViewportUnavailable}
	}
	w, err := vp.Width()
	if err != nil {
		return Sheet, &ConfigError{Op: "select layout", Err: fmt.Errorf("%w: %v", ErrViewportUnavailable, err)}
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return Sheet, &ConfigError{Op: "select layout", Err: fmt.Errorf("%w: width %v", ErrViewportUnavailable, w)}
	}

	bp := s.Breakpoint
	if bp <= 0 {
		bp = DefaultBreakpoint
	}
	if w > bp {
		return Panel, nil
	}
	return Sheet, nil
}
