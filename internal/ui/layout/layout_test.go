package layout

import (
	"errors"
	"testing"

	"github.com/SteveIsnthere/drawer-by-steve/internal/drawer"
)

func TestCalculate_SheetShortContentUsesMinHeight(t *testing.T) {
	l := Calculate(80, 40, drawer.Sheet, false, 3, DefaultMetrics)

	if l.HandleRows != 3 {
		t.Errorf("HandleRows = %d, want 3", l.HandleRows)
	}
	// 50% of 40 rows, minus the handle strip.
	if l.BodyHeight != 17 {
		t.Errorf("BodyHeight = %d, want 17", l.BodyHeight)
	}
	if l.Height != 20 || l.Y != 20 {
		t.Errorf("frame = y%d h%d, want y20 h20", l.Y, l.Height)
	}
	if l.Width != 80 || l.X != 0 {
		t.Errorf("sheet should span the screen, got x%d w%d", l.X, l.Width)
	}
	if l.BodyWidth != 78 {
		t.Errorf("BodyWidth = %d, want 78", l.BodyWidth)
	}
}

func TestCalculate_SheetNoMinHeight(t *testing.T) {
	l := Calculate(80, 40, drawer.Sheet, true, 3, DefaultMetrics)

	if l.BodyHeight != 3 {
		t.Errorf("BodyHeight = %d, want 3", l.BodyHeight)
	}
	if l.Height != 6 || l.Y != 34 {
		t.Errorf("frame = y%d h%d, want y34 h6", l.Y, l.Height)
	}
}

func TestCalculate_SheetCapsAtMaxHeight(t *testing.T) {
	l := Calculate(80, 40, drawer.Sheet, false, 500, DefaultMetrics)

	// 85% of 40 rows is 34, minus the handle strip.
	if l.BodyHeight != 31 {
		t.Errorf("BodyHeight = %d, want 31", l.BodyHeight)
	}
	if l.Height != 34 {
		t.Errorf("Height = %d, want 34", l.Height)
	}
}

func TestCalculate_SheetTinyScreen(t *testing.T) {
	l := Calculate(10, 3, drawer.Sheet, false, 10, DefaultMetrics)

	if l.BodyHeight < 1 {
		t.Errorf("BodyHeight = %d, want at least 1", l.BodyHeight)
	}
	if l.Height > 3 || l.Y < 0 {
		t.Errorf("sheet overflows screen: y%d h%d", l.Y, l.Height)
	}
}

func TestCalculate_Panel(t *testing.T) {
	l := Calculate(120, 30, drawer.Panel, false, 5, DefaultMetrics)

	// 600px at 8px per cell.
	if l.Width != 75 {
		t.Errorf("Width = %d, want 75", l.Width)
	}
	if l.X != 45 {
		t.Errorf("X = %d, want right-anchored at 45", l.X)
	}
	if l.Height != 30 || l.Y != 0 {
		t.Errorf("panel should span full height, got y%d h%d", l.Y, l.Height)
	}
	if l.HandleRows != 0 {
		t.Errorf("panel HandleRows = %d, want 0", l.HandleRows)
	}
	if l.BodyHeight != 28 {
		t.Errorf("BodyHeight = %d, want 28", l.BodyHeight)
	}
}

func TestCalculate_PanelClampedToScreen(t *testing.T) {
	l := Calculate(60, 20, drawer.Panel, false, 0, DefaultMetrics)

	if l.Width != 60 || l.X != 0 {
		t.Errorf("panel should clamp to screen width, got x%d w%d", l.X, l.Width)
	}
}

func TestPixelConversions(t *testing.T) {
	if got := CellsToPixels(100, DefaultMetrics); got != 800 {
		t.Errorf("CellsToPixels(100) = %v, want 800", got)
	}
	if got := RowsToPixels(16, DefaultMetrics); got != 256 {
		t.Errorf("RowsToPixels(16) = %v, want 256", got)
	}
	if got := PixelsToRows(250, DefaultMetrics); got != 16 {
		t.Errorf("PixelsToRows(250) = %d, want 16", got)
	}
	if got := CellsToPixels(10, Metrics{}); got != 80 {
		t.Errorf("zero metrics should fall back to defaults, got %v", got)
	}
}

func TestViewport(t *testing.T) {
	cols := 0
	vp := Viewport(&cols, DefaultMetrics)

	if _, err := vp.Width(); !errors.Is(err, drawer.ErrViewportUnavailable) {
		t.Fatalf("unknown size err = %v, want ErrViewportUnavailable", err)
	}

	cols = 88
	w, err := vp.Width()
	if err != nil {
		t.Fatalf("Width() error: %v", err)
	}
	if w != 704 {
		t.Errorf("Width() = %v, want 704", w)
	}
	if mode, _ := (drawer.Selector{}).Select(vp); mode != drawer.Panel {
		t.Errorf("88 columns should select panel, got %v", mode)
	}
}
