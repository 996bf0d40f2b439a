package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws fg over bg with its top-left corner at column x, row y.
// Rows of fg outside bg are dropped and every row is clipped to width.
func Overlay(bg, fg string, x, y, width int) string {
	lines := strings.Split(bg, "\n")
	for i, row := range strings.Split(fg, "\n") {
		sy := y + i
		if sy < 0 || sy >= len(lines) {
			continue
		}
		lines[sy] = overlayAt(lines[sy], row, x, width)
	}
	return strings.Join(lines, "\n")
}

// overlayAt replaces the cells of line from column x onwards with fg,
// clipped to width.
func overlayAt(line, fg string, x, width int) string {
	if x >= width {
		return line
	}
	x = max(x, 0)
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	return left + ansi.Truncate(fg, width-x, "")
}
