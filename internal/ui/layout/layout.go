package layout

import (
	"math"

	"github.com/SteveIsnthere/drawer-by-steve/internal/drawer"
)

// Metrics converts terminal cells to the logical pixels the drawer core
// measures in.
type Metrics struct {
	CellWidthPx  float64
	CellHeightPx float64
	PanelWidthPx float64
}

// DefaultMetrics assume an 8x16 cell and a 600px side panel.
var DefaultMetrics = Metrics{CellWidthPx: 8, CellHeightPx: 16, PanelWidthPx: 600}

// DrawerLayout holds the resting geometry of an open drawer, in cells.
type DrawerLayout struct {
	Mode drawer.LayoutMode

	ScreenWidth  int
	ScreenHeight int

	// X, Y, Width and Height frame the drawer at rest.
	X      int
	Y      int
	Width  int
	Height int

	// HandleRows is the draggable strip at the top of a sheet: the grab bar,
	// the title row and the divider. Panels have no handle.
	HandleRows int
	// HeaderRows is the title row plus divider.
	HeaderRows int

	BodyWidth  int
	BodyHeight int
}

const (
	sheetHandleRows = 3
	headerRows      = 2
	sheetMaxRatio   = 0.85
	sheetMinRatio   = 0.5
	sheetPadding    = 2 // one column each side
	panelChrome     = 3 // border plus padding
)

// Calculate computes the drawer geometry for a screen of width x height
// cells. bodyLines is the rendered height of the content; the sheet grows to
// fit it between its minimum and maximum heights.
func Calculate(width, height int, mode drawer.LayoutMode, noMinHeight bool, bodyLines int, m Metrics) DrawerLayout {
	m = m.withDefaults()
	width = max(width, 1)
	height = max(height, 1)

	l := DrawerLayout{
		Mode:         mode,
		ScreenWidth:  width,
		ScreenHeight: height,
		HeaderRows:   headerRows,
	}

	switch mode {
	case drawer.Panel:
		l.Width = clamp(int(math.Round(m.PanelWidthPx/m.CellWidthPx)), 1, width)
		l.Height = height
		l.X = width - l.Width
		l.BodyWidth = max(l.Width-panelChrome, 1)
		l.BodyHeight = max(height-headerRows, 1)
	default:
		l.HandleRows = sheetHandleRows
		maxBody := max(int(float64(height)*sheetMaxRatio)-sheetHandleRows, 1)
		minBody := 1
		if !noMinHeight {
			minBody = clamp(int(math.Ceil(float64(height)*sheetMinRatio))-sheetHandleRows, 1, maxBody)
		}
		l.BodyHeight = clamp(bodyLines, minBody, maxBody)
		l.Width = width
		l.Height = min(l.HandleRows+l.BodyHeight, height)
		l.Y = height - l.Height
		l.BodyWidth = max(width-sheetPadding, 1)
	}

	return l
}

// CellsToPixels converts a column count to logical pixels.
func CellsToPixels(cols int, m Metrics) float64 {
	return float64(cols) * m.withDefaults().CellWidthPx
}

// RowsToPixels converts a row count to logical pixels.
func RowsToPixels(rows int, m Metrics) float64 {
	return float64(rows) * m.withDefaults().CellHeightPx
}

// PixelsToRows converts logical pixels to the nearest whole row.
func PixelsToRows(px float64, m Metrics) int {
	return int(math.Round(px / m.withDefaults().CellHeightPx))
}

func (m Metrics) withDefaults() Metrics {
	if m.CellWidthPx <= 0 {
		m.CellWidthPx = DefaultMetrics.CellWidthPx
	}
	if m.CellHeightPx <= 0 {
		m.CellHeightPx = DefaultMetrics.CellHeightPx
	}
	if m.PanelWidthPx <= 0 {
		m.PanelWidthPx = DefaultMetrics.PanelWidthPx
	}
	return m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
