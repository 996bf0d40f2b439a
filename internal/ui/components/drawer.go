package components

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/SteveIsnthere/drawer-by-steve/internal/drawer"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/layout"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/mouse"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/msgs"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/theme"
)

const (
	regionBackdrop = "backdrop"
	regionBody     = "body"
	regionHandle   = "handle"
	regionClose    = "close"

	closeButton  = " ✕ "
	closeWidth   = 3
	scrollStep   = 3
	backdropFade = 200 * time.Millisecond
	progressFull = 100.0
	noteDuration = 2 * time.Second
)

// frameMsg advances the drawer's springs by one frame.
type frameMsg struct {
	owner uint64
}

// DrawerOptions configure a Drawer.
type DrawerOptions struct {
	Title       string
	Body        string
	NoMinHeight bool
	// OnClose runs when the user or a drag gesture dismisses the drawer. The
	// drawer also emits msgs.DrawerClosedMsg for the same event.
	OnClose func(drawer.CloseReason)

	Styles  theme.Styles
	Metrics layout.Metrics

	Breakpoint float64
	Timings    drawer.Timings
	Thresholds drawer.Thresholds
	// Elastic is the upward overshoot factor in [0,1]. Zero pins the sheet
	// at rest when dragged up.
	Elastic float64

	Lock   drawer.ScrollLock
	Logger *slog.Logger
	// Zones records where the drawer's handle, close button and body were
	// drawn. The owner of the root view must Scan its output with it. A nil
	// Zones gets a manager of its own.
	Zones *zone.Manager
}

// Drawer renders a drawer.Controller as a bottom sheet or a right-hand panel
// over the rest of the screen. It owns the entry and exit animations and
// reports their completion back to the controller.
type Drawer struct {
	id      uint64
	ctrl    *drawer.Controller
	sched   *teaScheduler
	mouse   *mouse.Handler
	zones   *zone.Manager
	zoneID  string
	body    viewport.Model
	styles  theme.Styles
	metrics layout.Metrics
	now     func() time.Time

	title       string
	content     string
	noMinHeight bool

	width  int
	height int

	progress  drawer.Motion
	animGen   uint64
	seenGen   uint64
	seenState drawer.Visibility
	seenCtl   bool
	fadeStart time.Time
	fadeIn    bool
	snapping  bool
	ticking   bool

	closes []msgs.DrawerClosedMsg
	notes  []msgs.StatusMsg
}

// NewDrawer creates a closed drawer.
func NewDrawer(opts DrawerOptions) (*Drawer, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Zones == nil {
		opts.Zones = zone.New()
	}

	d := &Drawer{
		sched:       newTeaScheduler(),
		zones:       opts.Zones,
		zoneID:      opts.Zones.NewPrefix(),
		body:        viewport.New(1, 1),
		styles:      opts.Styles,
		metrics:     opts.Metrics,
		now:         time.Now,
		noMinHeight: opts.NoMinHeight,
		progress:    newProgress(drawer.SheetEntry),
	}
	d.id = d.sched.owner
	d.mouse = mouse.NewHandler(d.regionAt)

	onClose := opts.OnClose
	ctrl, err := drawer.NewController(drawer.Options{
		Selector:  drawer.Selector{Breakpoint: opts.Breakpoint},
		Viewport:  layout.Viewport(&d.width, opts.Metrics),
		Lock:      opts.Lock,
		Scheduler: d.sched,
		OnClose: func(r drawer.CloseReason) {
			d.closes = append(d.closes, msgs.DrawerClosedMsg{Reason: r, SessionID: d.ctrl.SessionID()})
			if onClose != nil {
				onClose(r)
			}
		},
		Logger:     opts.Logger,
		Timings:    opts.Timings,
		Thresholds: opts.Thresholds,
		Elastic:    opts.Elastic,
		FrameRate:  drawer.FrameRate,
	})
	if err != nil {
		return nil, err
	}
	d.ctrl = ctrl
	d.SetContent(opts.Title, opts.Body)
	return d, nil
}

func newProgress(cfg drawer.SpringConfig) drawer.Motion {
	m := drawer.NewMotion(cfg, drawer.FrameRate)
	m.Rest = 1
	return m
}

func entrySpring(mode drawer.LayoutMode) drawer.SpringConfig {
	if mode == drawer.Panel {
		return drawer.PanelEntry
	}
	return drawer.SheetEntry
}

// SetSize sets the terminal dimensions.
func (d *Drawer) SetSize(w, h int) {
	d.width = w
	d.height = h
	d.resizeBody()
}

// SetContent replaces the title and the rendered body.
func (d *Drawer) SetContent(title, body string) {
	d.title = title
	d.content = body
	d.body.SetContent(body)
	d.resizeBody()
}

// SetStyles restyles the drawer.
func (d *Drawer) SetStyles(s theme.Styles) {
	d.styles = s
}

// SetOpen applies the caller's open flag. A width that cannot be measured
// yet is returned as an error and the drawer stays closed.
func (d *Drawer) SetOpen(open bool) (tea.Cmd, error) {
	wasEngaged := d.ctrl.State().Engaged()
	err := d.ctrl.SetOpen(open)
	if open && !wasEngaged && err == nil {
		d.resizeBody()
		d.body.GotoTop()
	}
	return d.flush(), err
}

// RequestClose dismisses the drawer as if the user asked for it.
func (d *Drawer) RequestClose(reason drawer.CloseReason) tea.Cmd {
	d.ctrl.RequestClose(reason)
	return d.flush()
}

// Teardown cancels all timers and releases the scroll lock.
func (d *Drawer) Teardown() {
	d.ctrl.Teardown()
	d.sync()
	d.sched.drain()
	d.closes = nil
	d.notes = nil
}

func (d *Drawer) State() drawer.Visibility {
	return d.ctrl.State()
}

func (d *Drawer) Mode() drawer.LayoutMode {
	return d.ctrl.Mode()
}

// Visible reports whether anything of the drawer is on screen.
func (d *Drawer) Visible() bool {
	return d.ctrl.State() != drawer.Closed
}

// Controller exposes the underlying state machine.
func (d *Drawer) Controller() *drawer.Controller {
	return d.ctrl
}

func (d *Drawer) Title() string {
	return d.title
}

// Body returns the content the drawer was given.
func (d *Drawer) Body() string {
	return d.content
}

// Progress is how far the entry animation has come, 0 to 100.
func (d *Drawer) Progress() float64 {
	return d.progress.Value()
}

// BackdropOpacity is the backdrop's fade level between 0 and 1.
func (d *Drawer) BackdropOpacity() float64 {
	if d.ctrl.State() == drawer.Closed {
		return 0
	}
	p := float64(d.now().Sub(d.fadeStart)) / float64(backdropFade)
	p = math.Max(0, math.Min(1, p))
	if d.fadeIn {
		return p
	}
	return 1 - p
}

// Geometry is the drawer's resting layout for the current screen.
func (d *Drawer) Geometry() layout.DrawerLayout {
	return layout.Calculate(d.width, d.height, d.ctrl.Mode(), d.noMinHeight, lipgloss.Height(d.content), d.metrics)
}

// Init implements tea.Model.
func (d *Drawer) Init() tea.Cmd {
	return nil
}

// Update handles drawer timers, animation frames and input aimed at the
// drawer. It returns nil for input the drawer does not consume.
func (d *Drawer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case schedulerFireMsg:
		if d.sched.fire(msg) {
			return d.flush()
		}
		return nil
	case frameMsg:
		if msg.owner != d.id {
			return nil
		}
		return d.onFrame()
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)
		return nil
	case tea.MouseMsg:
		return d.handleMouse(msg)
	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return nil
}

func (d *Drawer) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !d.ctrl.State().Engaged() {
		return nil
	}
	switch msg.String() {
	case "esc", "q":
		d.ctrl.RequestClose(drawer.ReasonKey)
		return d.flush()
	}
	var cmd tea.Cmd
	d.body, cmd = d.body.Update(msg)
	return cmd
}

func (d *Drawer) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !d.ctrl.State().Engaged() {
		d.mouse.Reset()
		return nil
	}
	a := d.mouse.HandleMouse(msg)
	now := d.now()
	y := layout.RowsToPixels(msg.Y, d.metrics)

	switch a.Type {
	case mouse.ActionPress:
		// Presses outside the handle are left to the content underneath.
		d.ctrl.PointerDown(y, a.Region == regionHandle, now)
	case mouse.ActionDrag:
		d.ctrl.PointerMove(y, now)
	case mouse.ActionRelease:
		if d.ctrl.Dragging() {
			if d.ctrl.PointerUp(y, now) == drawer.ReleaseSnapBack {
				d.snapping = true
				d.note("Not far enough to dismiss")
			}
			break
		}
		if a.Region == "" || a.Region != a.StartRegion {
			break
		}
		switch a.Region {
		case regionBackdrop:
			d.ctrl.RequestClose(drawer.ReasonBackdrop)
		case regionClose:
			d.ctrl.RequestClose(drawer.ReasonCloseButton)
		}
	case mouse.ActionScrollUp:
		if a.Region == regionBody {
			d.body.SetYOffset(d.body.YOffset - scrollStep)
		}
	case mouse.ActionScrollDown:
		if a.Region == regionBody {
			d.body.SetYOffset(d.body.YOffset + scrollStep)
		}
	}
	return d.flush()
}

func (d *Drawer) onFrame() tea.Cmd {
	d.ticking = false
	if d.progress.Animating() && !d.progress.Step() {
		d.ctrl.AnimationComplete(d.animGen)
	}
	if d.snapping {
		d.snapping = d.ctrl.Step()
	}
	return d.flush()
}

func (d *Drawer) note(text string) {
	d.notes = append(d.notes, msgs.StatusMsg{Text: text, Duration: noteDuration})
}

// flush picks up whatever the controller did since the last call and turns
// it into commands: new timers, close and status notices, animation frames.
func (d *Drawer) flush() tea.Cmd {
	d.sync()
	cmds := d.sched.drain()
	for _, m := range d.closes {
		cmds = append(cmds, func() tea.Msg { return m })
	}
	for _, m := range d.notes {
		cmds = append(cmds, func() tea.Msg { return m })
	}
	d.closes, d.notes = nil, nil
	if cmd := d.startFrames(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// sync starts the entry or exit animation when the controller has begun a
// new transition.
func (d *Drawer) sync() {
	if ctl := d.ctrl.GestureControl(); ctl != d.seenCtl {
		d.seenCtl = ctl
		if ctl && d.ctrl.Mode() == drawer.Sheet {
			d.note("Drag the handle down to dismiss")
		}
	}

	gen, st := d.ctrl.Generation(), d.ctrl.State()
	if gen == d.seenGen && st == d.seenState {
		return
	}
	fresh := gen != d.seenGen

	switch st {
	case drawer.Opening:
		if fresh {
			from := d.progress.Value()
			d.progress = newProgress(entrySpring(d.ctrl.Mode()))
			d.progress.Set(from)
			d.progress.AnimateTo(progressFull, 0)
			d.animGen = gen
			d.fadeIn, d.fadeStart = true, d.now()
			d.snapping = false
		}
	case drawer.Closing:
		if fresh {
			d.progress.AnimateTo(0, 0)
			d.animGen = gen
			d.fadeIn, d.fadeStart = false, d.now()
			d.snapping = false
			d.mouse.Reset()
		}
	case drawer.Closed:
		d.progress.Set(0)
		d.snapping = false
		d.mouse.Reset()
	}
	d.seenGen, d.seenState = gen, st
}

func (d *Drawer) startFrames() tea.Cmd {
	if d.ticking || !d.needsFrames() {
		return nil
	}
	d.ticking = true
	owner := d.id
	return tea.Tick(time.Second/drawer.FrameRate, func(time.Time) tea.Msg {
		return frameMsg{owner: owner}
	})
}

func (d *Drawer) needsFrames() bool {
	if d.progress.Animating() || d.snapping {
		return true
	}
	return d.ctrl.State() != drawer.Closed && d.now().Sub(d.fadeStart) < backdropFade
}

func (d *Drawer) resizeBody() {
	l := d.Geometry()
	d.body.Width = l.BodyWidth
	d.body.Height = l.BodyHeight
}

// frame returns the drawer's current top-left corner, including the slide
// of the entry animation and any drag offset.
func (d *Drawer) frame() (x, y int, l layout.DrawerLayout) {
	l = d.Geometry()
	hidden := 1 - d.progress.Value()/progressFull
	if l.Mode == drawer.Panel {
		x = max(l.X+int(math.Round(hidden*float64(l.Width))), 0)
		return x, 0, l
	}
	y = l.Y + int(math.Round(hidden*float64(l.Height))) + layout.PixelsToRows(d.ctrl.Offset(), d.metrics)
	return 0, max(y, 0), l
}

// regionAt names the part of the drawer under msg from the zones of the
// last rendered frame. Anything else on screen is backdrop.
func (d *Drawer) regionAt(msg tea.MouseMsg) string {
	ids := []string{regionClose, regionBody}
	if d.ctrl.Mode() == drawer.Sheet {
		ids = []string{regionClose, regionHandle, regionBody}
	}
	for _, id := range ids {
		if z := d.zones.Get(d.zoneID + id); z != nil && z.InBounds(msg) {
			return id
		}
	}
	if msg.X >= 0 && msg.X < d.width && msg.Y >= 0 && msg.Y < d.height {
		return regionBackdrop
	}
	return ""
}

// View draws the drawer over background, which is the full screen the
// drawer sits on.
func (d *Drawer) View(background string) string {
	if d.ctrl.State() == drawer.Closed || d.width <= 0 || d.height <= 0 {
		return background
	}

	bg := strings.Split(background, "\n")
	lines := make([]string, d.height)
	dim := d.BackdropOpacity() >= 0.5
	for i := range lines {
		var line string
		if i < len(bg) {
			line = bg[i]
		}
		if dim {
			line = d.styles.Backdrop.Render(ansi.Strip(line))
		}
		lines[i] = line
	}

	x, y, l := d.frame()
	visible := d.height - y
	if visible <= 0 {
		return strings.Join(lines, "\n")
	}
	// Rows below the screen are cut here so the body zone still closes.
	block := strings.Split(d.renderBlock(l), "\n")
	if len(block) > visible {
		block = block[:visible]
	}
	fg := d.zones.Mark(d.zoneID+regionBody, strings.Join(block, "\n"))
	return Overlay(strings.Join(lines, "\n"), fg, x, y, d.width)
}

func (d *Drawer) renderBlock(l layout.DrawerLayout) string {
	inner := l.Width
	style := d.styles.Sheet
	if l.Mode == drawer.Panel {
		inner = max(l.Width-1, 1)
		style = d.styles.Panel
	}

	head := d.titleRow(inner) + "\n" + d.styles.Divider.Render(strings.Repeat("─", inner))
	if l.Mode == drawer.Sheet {
		// The grab bar, title and divider together form the handle strip.
		bar := d.styles.HandleBar.Render(strings.Repeat("━", min(8, inner)))
		head = lipgloss.PlaceHorizontal(inner, lipgloss.Center, bar) + "\n" + head
		head = d.zones.Mark(d.zoneID+regionHandle, head)
	}
	rows := []string{
		head,
		lipgloss.NewStyle().Padding(0, 1).Render(d.body.View()),
	}

	return style.
		Width(inner).
		Height(l.Height).
		MaxHeight(l.Height).
		Render(strings.Join(rows, "\n"))
}

func (d *Drawer) titleRow(width int) string {
	btn := d.zones.Mark(d.zoneID+regionClose, d.styles.CloseButton.Render(closeButton))
	avail := max(width-closeWidth-2, 0)
	title := d.styles.DrawerTitle.Render(ansi.Truncate(d.title, avail, "…"))
	gap := max(width-2-lipgloss.Width(title)-closeWidth, 0)
	return " " + title + strings.Repeat(" ", gap) + btn + " "
}
