package layout

import "github.com/SteveIsnthere/drawer-by-steve/internal/drawer"

// Viewport reports the terminal width in logical pixels for the drawer's
// layout selector. A zero width means the size is not known yet.
func Viewport(cols *int, m Metrics) drawer.Viewport {
	return drawer.ViewportFunc(func() (float64, error) {
		if cols == nil || *cols <= 0 {
			return 0, drawer.ErrViewportUnavailable
		}
		return CellsToPixels(*cols, m), nil
	})
}
