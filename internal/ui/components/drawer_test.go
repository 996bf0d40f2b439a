package components

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SteveIsnthere/drawer-by-steve/internal/drawer"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/layout"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/msgs"
)

type drawerHarness struct {
	t      *testing.T
	d      *Drawer
	lock   *drawer.CountingLock
	clock  time.Time
	closes []drawer.CloseReason
}

func newDrawerHarness(t *testing.T, cols, rows int, body string, opts ...func(*DrawerOptions)) *drawerHarness {
	t.Helper()
	h := &drawerHarness{t: t, clock: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	h.lock = drawer.NewCountingLock(nil)
	o := DrawerOptions{
		Title:   "Details",
		Body:    body,
		OnClose: func(r drawer.CloseReason) { h.closes = append(h.closes, r) },
		Styles:  testStyles(),
		Metrics: layout.DefaultMetrics,
		Elastic: drawer.DefaultElastic,
		Lock:    h.lock,
	}
	for _, opt := range opts {
		opt(&o)
	}
	d, err := NewDrawer(o)
	if err != nil {
		t.Fatalf("NewDrawer() error: %v", err)
	}
	d.now = func() time.Time { return h.clock }
	if cols > 0 {
		d.Update(tea.WindowSizeMsg{Width: cols, Height: rows})
	}
	h.d = d
	return h
}

func (h *drawerHarness) advance(dt time.Duration) {
	h.clock = h.clock.Add(dt)
}

func (h *drawerHarness) open() {
	h.t.Helper()
	if _, err := h.d.SetOpen(true); err != nil {
		h.t.Fatalf("SetOpen(true) error: %v", err)
	}
	h.checkLock()
}

// fireTimers delivers every pending timer, soonest first.
func (h *drawerHarness) fireTimers() {
	for _, id := range h.d.sched.pendingIDs() {
		h.d.Update(schedulerFireMsg{owner: h.d.id, id: id})
	}
	h.checkLock()
}

// frames runs animation frames until every spring has settled.
func (h *drawerHarness) frames() {
	h.t.Helper()
	for i := 0; i < 600 && (h.d.progress.Animating() || h.d.snapping); i++ {
		h.advance(time.Second / drawer.FrameRate)
		h.d.Update(frameMsg{owner: h.d.id})
		h.checkLock()
	}
	if h.d.progress.Animating() || h.d.snapping {
		h.t.Fatal("springs did not settle")
	}
}

// openSettled opens the drawer, hands over gesture control, plays the
// entry animation to the end and draws the resting frame.
func (h *drawerHarness) openSettled() {
	h.t.Helper()
	h.open()
	h.fireTimers()
	h.frames()
	if h.d.State() != drawer.Open {
		h.t.Fatalf("state = %s after entry, want open", h.d.State())
	}
	h.render("")
}

// render draws a frame the way the app does and waits until its zones are
// recorded. Zones are stored in the background, so this polls.
func (h *drawerHarness) render(background string) string {
	h.t.Helper()
	view := h.d.zones.Scan(h.d.View(background))
	ids := []string{regionClose, regionBody}
	if h.d.Mode() == drawer.Sheet {
		ids = append(ids, regionHandle)
	}
	deadline := time.Now().Add(2 * time.Second)
	for _, id := range ids {
		for h.d.zones.Get(h.d.zoneID+id) == nil {
			if time.Now().After(deadline) {
				h.t.Fatalf("zone %q was never recorded", id)
			}
			time.Sleep(time.Millisecond)
		}
	}
	return view
}

// collect runs cmd and every command it batches. Frame ticks wait one frame.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func statusTexts(ms []tea.Msg) []string {
	var out []string
	for _, m := range ms {
		if s, ok := m.(msgs.StatusMsg); ok {
			out = append(out, s.Text)
		}
	}
	return out
}

func (h *drawerHarness) checkLock() {
	h.t.Helper()
	if h.lock.Engaged() != h.d.State().Engaged() {
		h.t.Fatalf("lock engaged=%v in state %s", h.lock.Engaged(), h.d.State())
	}
}

func (h *drawerHarness) mouse(action tea.MouseAction, x, y int) {
	h.d.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
	h.checkLock()
}

func (h *drawerHarness) click(x, y int) {
	h.mouse(tea.MouseActionPress, x, y)
	h.mouse(tea.MouseActionRelease, x, y)
}

func TestDrawerSelectsModeFromWidth(t *testing.T) {
	tests := []struct {
		cols int
		want drawer.LayoutMode
	}{
		{80, drawer.Sheet},
		{87, drawer.Sheet},
		{88, drawer.Panel},
		{160, drawer.Panel},
	}
	for _, tt := range tests {
		h := newDrawerHarness(t, tt.cols, 30, "body")
		h.open()
		if h.d.Mode() != tt.want {
			t.Errorf("%d cols: mode = %s, want %s", tt.cols, h.d.Mode(), tt.want)
		}
	}
}

func TestDrawerOpenWithoutSizeFails(t *testing.T) {
	h := newDrawerHarness(t, 0, 0, "body")

	_, err := h.d.SetOpen(true)
	if !errors.Is(err, drawer.ErrViewportUnavailable) {
		t.Fatalf("err = %v, want ErrViewportUnavailable", err)
	}
	var cfgErr *drawer.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %T, want *drawer.ConfigError", err)
	}
	if h.d.State() != drawer.Closed || h.lock.Engaged() {
		t.Fatalf("failed open left state=%s lock=%v", h.d.State(), h.lock.Engaged())
	}
}

func TestDrawerEntryAnimationCompletesOpening(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.open()

	if h.d.State() != drawer.Opening {
		t.Fatalf("state = %s, want opening", h.d.State())
	}
	if h.d.Progress() != 0 {
		t.Fatalf("progress = %v before any frame, want 0", h.d.Progress())
	}

	h.frames()
	if h.d.State() != drawer.Open {
		t.Fatalf("state = %s after entry, want open", h.d.State())
	}
	if h.d.Progress() != progressFull {
		t.Fatalf("progress = %v, want %v", h.d.Progress(), progressFull)
	}
}

func TestDrawerPanelEntryCompletes(t *testing.T) {
	h := newDrawerHarness(t, 120, 30, "body")
	h.open()
	h.frames()

	if h.d.Mode() != drawer.Panel || h.d.State() != drawer.Open {
		t.Fatalf("mode=%s state=%s, want open panel", h.d.Mode(), h.d.State())
	}
}

func TestDrawerEscClosesWithReason(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.openSettled()

	h.d.Update(specialKeyMsg(tea.KeyEscape))
	if h.d.State() != drawer.Closing {
		t.Fatalf("state = %s, want closing", h.d.State())
	}
	if len(h.closes) != 1 || h.closes[0] != drawer.ReasonKey {
		t.Fatalf("closes = %v, want [key]", h.closes)
	}

	h.frames()
	if h.d.State() != drawer.Closed {
		t.Fatalf("state = %s after exit, want closed", h.d.State())
	}
	if h.d.Progress() != 0 {
		t.Fatalf("progress = %v after exit, want 0", h.d.Progress())
	}
}

func TestDrawerCallerCloseFallsBackToClosed(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.openSettled()

	if _, err := h.d.SetOpen(false); err != nil {
		t.Fatalf("SetOpen(false) error: %v", err)
	}
	if h.d.State() != drawer.Closing {
		t.Fatalf("state = %s, want closing", h.d.State())
	}
	if len(h.closes) != 0 {
		t.Fatalf("caller close invoked OnClose: %v", h.closes)
	}

	// No frames: only the fallback timer can finish the close.
	h.fireTimers()
	if h.d.State() != drawer.Closed {
		t.Fatalf("state = %s after fallback, want closed", h.d.State())
	}
	if n := len(h.d.sched.pendingIDs()); n != 0 {
		t.Fatalf("%d timers still pending", n)
	}
}

func TestDrawerHandleDragDismisses(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.openSettled()

	l := h.d.Geometry()
	top := l.Y + 1 // title row, inside the handle strip
	h.mouse(tea.MouseActionPress, 10, top)
	if !h.d.Controller().Dragging() {
		t.Fatal("press on the handle should start a drag")
	}

	h.advance(20 * time.Millisecond)
	h.mouse(tea.MouseActionMotion, 10, top+8)
	if h.d.Controller().Offset() != 128 {
		t.Fatalf("offset = %v, want 128", h.d.Controller().Offset())
	}
	h.advance(20 * time.Millisecond)
	h.mouse(tea.MouseActionMotion, 10, top+16)
	h.advance(20 * time.Millisecond)
	h.mouse(tea.MouseActionRelease, 10, top+16)

	if h.d.State() != drawer.Closing {
		t.Fatalf("state = %s, want closing", h.d.State())
	}
	if len(h.closes) != 1 || h.closes[0] != drawer.ReasonGesture {
		t.Fatalf("closes = %v, want [gesture]", h.closes)
	}
}

func TestDrawerPressOutsideHandleDoesNotDrag(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.openSettled()

	l := h.d.Geometry()
	row := l.Y + l.HandleRows + 2
	h.mouse(tea.MouseActionPress, 10, row)
	h.mouse(tea.MouseActionMotion, 10, row+8)
	h.mouse(tea.MouseActionRelease, 10, row+8)

	if h.d.Controller().Dragging() || h.d.Controller().Offset() != 0 {
		t.Fatal("press in the body moved the sheet")
	}
	if h.d.State() != drawer.Open || len(h.closes) != 0 {
		t.Fatalf("state=%s closes=%v, want open with no closes", h.d.State(), h.closes)
	}
}

func TestDrawerShortDragSnapsBack(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.openSettled()

	top := h.d.Geometry().Y + 1
	h.mouse(tea.MouseActionPress, 10, top)
	h.advance(200 * time.Millisecond)
	h.mouse(tea.MouseActionMotion, 10, top+3)
	h.advance(200 * time.Millisecond)
	h.mouse(tea.MouseActionRelease, 10, top+3)

	if !h.d.snapping {
		t.Fatal("short drag should start the snap-back spring")
	}
	h.frames()
	if h.d.Controller().Offset() != 0 {
		t.Fatalf("offset = %v after snap-back, want 0", h.d.Controller().Offset())
	}
	if h.d.State() != drawer.Open || len(h.closes) != 0 {
		t.Fatalf("state=%s closes=%v, want open", h.d.State(), h.closes)
	}
}

func TestDrawerClickTargets(t *testing.T) {
	tests := []struct {
		name string
		cols int
		rows int
		at   func(l layout.DrawerLayout) (int, int)
		want drawer.CloseReason
	}{
		{
			name: "sheet backdrop",
			cols: 80, rows: 40,
			at:   func(l layout.DrawerLayout) (int, int) { return 5, 2 },
			want: drawer.ReasonBackdrop,
		},
		{
			name: "sheet close button",
			cols: 80, rows: 40,
			at:   func(l layout.DrawerLayout) (int, int) { return l.Width - 3, l.Y + 1 },
			want: drawer.ReasonCloseButton,
		},
		{
			name: "panel backdrop",
			cols: 120, rows: 30,
			at:   func(l layout.DrawerLayout) (int, int) { return 3, 10 },
			want: drawer.ReasonBackdrop,
		},
		{
			name: "panel close button",
			cols: 120, rows: 30,
			at:   func(l layout.DrawerLayout) (int, int) { return l.X + l.Width - 3, 0 },
			want: drawer.ReasonCloseButton,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newDrawerHarness(t, tt.cols, tt.rows, "body")
			h.openSettled()

			h.click(tt.at(h.d.Geometry()))
			if len(h.closes) != 1 || h.closes[0] != tt.want {
				t.Fatalf("closes = %v, want [%s]", h.closes, tt.want)
			}
			if h.d.State() != drawer.Closing {
				t.Fatalf("state = %s, want closing", h.d.State())
			}
		})
	}
}

func TestDrawerPanelIgnoresDrag(t *testing.T) {
	h := newDrawerHarness(t, 120, 30, "body")
	h.openSettled()

	x := h.d.Geometry().X + 5
	h.mouse(tea.MouseActionPress, x, 0)
	h.mouse(tea.MouseActionMotion, x, 20)
	h.mouse(tea.MouseActionRelease, x, 20)

	if h.d.Controller().Dragging() || h.d.Controller().Offset() != 0 {
		t.Fatal("panel responded to a drag")
	}
	if h.d.State() != drawer.Open {
		t.Fatalf("state = %s, want open", h.d.State())
	}
}

func TestDrawerModeFixedAcrossResize(t *testing.T) {
	h := newDrawerHarness(t, 100, 30, "body")
	h.open()
	h.d.Update(tea.WindowSizeMsg{Width: 60, Height: 30})

	if h.d.Mode() != drawer.Panel {
		t.Fatalf("mode = %s after resize, want panel", h.d.Mode())
	}
}

func TestDrawerTeardownMidOpening(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.open()

	h.d.Teardown()
	if h.d.State() != drawer.Closed || h.lock.Engaged() {
		t.Fatalf("state=%s lock=%v after teardown", h.d.State(), h.lock.Engaged())
	}
	if n := len(h.d.sched.pendingIDs()); n != 0 {
		t.Fatalf("%d timers pending after teardown", n)
	}
	if len(h.closes) != 0 {
		t.Fatalf("teardown invoked OnClose: %v", h.closes)
	}
}

func TestDrawerIgnoresForeignTimers(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.open()

	if cmd := h.d.Update(schedulerFireMsg{owner: h.d.id + 1000, id: 1}); cmd != nil {
		t.Fatal("foreign timer produced a command")
	}
	if h.d.Controller().GestureControl() {
		t.Fatal("foreign timer handed over gesture control")
	}
}

func TestDrawerBackdropFade(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	if h.d.BackdropOpacity() != 0 {
		t.Fatal("closed drawer has a backdrop")
	}
	h.open()

	if got := h.d.BackdropOpacity(); got != 0 {
		t.Fatalf("opacity at open = %v, want 0", got)
	}
	h.advance(100 * time.Millisecond)
	if got := h.d.BackdropOpacity(); got != 0.5 {
		t.Fatalf("opacity at 100ms = %v, want 0.5", got)
	}
	h.advance(time.Second)
	if got := h.d.BackdropOpacity(); got != 1 {
		t.Fatalf("opacity after fade = %v, want 1", got)
	}

	h.d.Update(keyMsg("q"))
	h.advance(50 * time.Millisecond)
	if got := h.d.BackdropOpacity(); got != 0.75 {
		t.Fatalf("opacity 50ms into close = %v, want 0.75", got)
	}
}

func TestDrawerWheelScrollsBody(t *testing.T) {
	body := strings.TrimSuffix(strings.Repeat("line\n", 100), "\n")
	h := newDrawerHarness(t, 80, 40, body)
	h.openSettled()

	l := h.d.Geometry()
	row := l.Y + l.HandleRows + 1
	h.d.Update(tea.MouseMsg{X: 10, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if h.d.body.YOffset != scrollStep {
		t.Fatalf("YOffset = %d, want %d", h.d.body.YOffset, scrollStep)
	}

	// Wheel over the backdrop does not scroll the drawer.
	h.d.Update(tea.MouseMsg{X: 10, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if h.d.body.YOffset != scrollStep {
		t.Fatalf("YOffset = %d after backdrop wheel, want %d", h.d.body.YOffset, scrollStep)
	}
}

func TestDrawerKeysIgnoredWhenClosed(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	if cmd := h.d.Update(specialKeyMsg(tea.KeyEscape)); cmd != nil {
		t.Fatal("closed drawer consumed a key")
	}
	if len(h.closes) != 0 {
		t.Fatal("closed drawer reported a close")
	}
}

func TestDrawerFlushEmitsClosedMsg(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.d.closes = []msgs.DrawerClosedMsg{{Reason: drawer.ReasonBackdrop, SessionID: "s1"}}

	cmd := h.d.flush()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		if len(batch) != 1 {
			t.Fatalf("batch of %d, want 1", len(batch))
		}
		msg = batch[0]()
	}
	closed, ok := msg.(msgs.DrawerClosedMsg)
	if !ok || closed.Reason != drawer.ReasonBackdrop || closed.SessionID != "s1" {
		t.Fatalf("msg = %#v, want DrawerClosedMsg{backdrop s1}", msg)
	}
}

func TestDrawerView(t *testing.T) {
	background := "document line one\ndocument line two"

	t.Run("closed returns background", func(t *testing.T) {
		h := newDrawerHarness(t, 80, 40, "body")
		if got := h.d.View(background); got != background {
			t.Fatalf("View() = %q, want background unchanged", got)
		}
	})

	t.Run("open sheet", func(t *testing.T) {
		h := newDrawerHarness(t, 80, 40, "sheet body text")
		h.openSettled()

		view := h.render(background)
		lines := strings.Split(view, "\n")
		if len(lines) != 40 {
			t.Fatalf("view has %d lines, want 40", len(lines))
		}
		for _, want := range []string{"Details", "✕", "sheet body text", "document line one"} {
			if !strings.Contains(view, want) {
				t.Errorf("view missing %q", want)
			}
		}
		if !strings.Contains(lines[h.d.Geometry().Y+1], "Details") {
			t.Errorf("title not on the sheet's title row")
		}
	})

	t.Run("open panel", func(t *testing.T) {
		h := newDrawerHarness(t, 120, 30, "panel body text")
		h.openSettled()

		lines := strings.Split(h.render(background), "\n")
		if !strings.Contains(lines[0], "Details") || !strings.Contains(lines[0], "document line one") {
			t.Errorf("first row should hold the background and the panel title: %q", lines[0])
		}
	})
}

func TestOverlayAt(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		fg    string
		x     int
		width int
		want  string
	}{
		{"replace tail", "abcdefgh", "XY", 4, 8, "abcdXY"},
		{"pad short line", "ab", "XY", 4, 8, "ab  XY"},
		{"clip to width", "abcdefgh", "XYZW", 6, 8, "abcdefXY"},
		{"offscreen", "abcd", "XY", 8, 8, "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlayAt(tt.line, tt.fg, tt.x, tt.width); got != tt.want {
				t.Fatalf("overlayAt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverlay(t *testing.T) {
	bg := "aaaa\nbbbb\ncccc"
	got := Overlay(bg, "XY\nZW\nQQ", 1, 1, 4)
	want := "aaaa\nbXY\ncZW"
	if got != want {
		t.Fatalf("Overlay() = %q, want %q", got, want)
	}
}

func TestDrawerRegionsFollowRenderedFrame(t *testing.T) {
	tests := []struct {
		name string
		cols int
		rows int
		at   func(l layout.DrawerLayout) (int, int)
		want string
	}{
		{"sheet grab bar", 80, 39, func(l layout.DrawerLayout) (int, int) { return 10, l.Y }, regionHandle},
		{"sheet title row", 80, 39, func(l layout.DrawerLayout) (int, int) { return 10, l.Y + 1 }, regionHandle},
		{"sheet divider", 80, 39, func(l layout.DrawerLayout) (int, int) { return 10, l.Y + 2 }, regionHandle},
		{"sheet close", 80, 39, func(l layout.DrawerLayout) (int, int) { return l.Width - 3, l.Y + 1 }, regionClose},
		{"sheet body", 80, 39, func(l layout.DrawerLayout) (int, int) { return 10, l.Y + l.HandleRows + 2 }, regionBody},
		{"sheet backdrop", 80, 39, func(l layout.DrawerLayout) (int, int) { return 10, 2 }, regionBackdrop},
		{"below the drawer area", 80, 39, func(l layout.DrawerLayout) (int, int) { return 10, 39 }, ""},
		{"panel title row", 120, 30, func(l layout.DrawerLayout) (int, int) { return l.X + 5, 0 }, regionBody},
		{"panel close", 120, 30, func(l layout.DrawerLayout) (int, int) { return l.X + l.Width - 3, 0 }, regionClose},
		{"panel backdrop", 120, 30, func(l layout.DrawerLayout) (int, int) { return 3, 10 }, regionBackdrop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newDrawerHarness(t, tt.cols, tt.rows, "body")
			h.openSettled()

			x, y := tt.at(h.d.Geometry())
			if got := h.d.regionAt(tea.MouseMsg{X: x, Y: y}); got != tt.want {
				t.Fatalf("regionAt(%d, %d) = %q, want %q", x, y, got, tt.want)
			}
		})
	}
}

func TestDrawerElasticPassesThrough(t *testing.T) {
	tests := []struct {
		elastic float64
		want    float64
	}{
		{0, 0},
		{0.5, -16},
		{1, -32},
	}
	for _, tt := range tests {
		h := newDrawerHarness(t, 80, 40, "body", func(o *DrawerOptions) { o.Elastic = tt.elastic })
		h.openSettled()

		top := h.d.Geometry().Y + 1
		h.mouse(tea.MouseActionPress, 10, top)
		h.advance(20 * time.Millisecond)
		h.mouse(tea.MouseActionMotion, 10, top-2)
		if got := h.d.Controller().Offset(); got != tt.want {
			t.Errorf("elastic %v: offset = %v, want %v", tt.elastic, got, tt.want)
		}
	}
}

func TestDrawerReportsGestureHandover(t *testing.T) {
	tests := []struct {
		cols int
		want bool
	}{
		{80, true},
		{120, false},
	}
	for _, tt := range tests {
		h := newDrawerHarness(t, tt.cols, 30, "body")
		h.open()

		var texts []string
		for _, id := range h.d.sched.pendingIDs() {
			texts = append(texts, statusTexts(collect(h.d.Update(schedulerFireMsg{owner: h.d.id, id: id})))...)
		}
		got := len(texts) == 1 && texts[0] == "Drag the handle down to dismiss"
		if got != tt.want {
			t.Errorf("%d cols: status notes = %q", tt.cols, texts)
		}
	}
}

func TestDrawerReportsSnapBack(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.openSettled()

	top := h.d.Geometry().Y + 1
	h.mouse(tea.MouseActionPress, 10, top)
	h.advance(200 * time.Millisecond)
	h.mouse(tea.MouseActionMotion, 10, top+3)
	h.advance(200 * time.Millisecond)

	ms := collect(h.d.Update(tea.MouseMsg{X: 10, Y: top + 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}))
	texts := statusTexts(ms)
	if len(texts) != 1 || texts[0] != "Not far enough to dismiss" {
		t.Fatalf("status notes = %q, want the snap-back note", texts)
	}
}

func TestDrawerClosedMsgCarriesSession(t *testing.T) {
	h := newDrawerHarness(t, 80, 40, "body")
	h.openSettled()
	session := h.d.Controller().SessionID()

	var closed []msgs.DrawerClosedMsg
	for _, m := range collect(h.d.Update(keyMsg("q"))) {
		if c, ok := m.(msgs.DrawerClosedMsg); ok {
			closed = append(closed, c)
		}
	}
	if len(closed) != 1 || closed[0].SessionID != session || closed[0].Reason != drawer.ReasonKey {
		t.Fatalf("closed = %+v, want one key close for session %s", closed, session)
	}
}
