package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/SteveIsnthere/drawer-by-steve/internal/config"
	"github.com/SteveIsnthere/drawer-by-steve/internal/content"
	"github.com/SteveIsnthere/drawer-by-steve/internal/drawer"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/components"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/layout"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/msgs"
	"github.com/SteveIsnthere/drawer-by-steve/internal/ui/theme"
)

const pageFillerLines = 120

// Options are the per-run settings taken from the command line.
type Options struct {
	// Title overrides the document name in the drawer header.
	Title       string
	NoMinHeight bool
	// Open starts with the drawer open as soon as the terminal size is known.
	Open   bool
	Logger *slog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	drawer    *components.Drawer
	page      viewport.Model
	statusBar components.StatusBar
	help      components.Help
	toast     components.Toast

	lock  *drawer.CountingLock
	zones *zone.Manager
	doc   content.Document
	cfg   config.Config
	log   *slog.Logger

	title string
	// open is the caller's flag for the drawer.
	open bool
	// pendingOpen defers an open until the first WindowSizeMsg.
	pendingOpen bool

	mode msgs.AppMode
	keys KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model showing doc in the drawer.
func New(doc content.Document, cfg config.Config, opts Options) (App, error) {
	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	lock := drawer.NewCountingLock(func(engaged bool) {
		log.Debug("scroll lock changed", "engaged", engaged)
	})

	zones := zone.New()

	title := opts.Title
	if title == "" {
		title = doc.Title()
	}

	d, err := components.NewDrawer(components.DrawerOptions{
		Title:       title,
		NoMinHeight: opts.NoMinHeight,
		Styles:      s,
		Metrics: layout.Metrics{
			CellWidthPx:  cfg.CellWidthPx,
			CellHeightPx: cfg.CellHeightPx,
			PanelWidthPx: cfg.PanelWidthPx,
		},
		Breakpoint: cfg.BreakpointPx,
		Timings:    cfg.Timings(),
		Thresholds: cfg.Thresholds(),
		Elastic:    cfg.Elastic,
		Lock:       lock,
		Logger:     log,
		Zones:      zones,
	})
	if err != nil {
		return App{}, fmt.Errorf("creating drawer: %w", err)
	}

	a := App{
		drawer:    d,
		page:      viewport.New(0, 0),
		statusBar: components.NewStatusBar(t),
		help:      components.NewHelp(t),
		toast:     components.NewToast(t),

		lock:  lock,
		zones: zones,
		doc:   doc,
		cfg:   cfg,
		log:   log,
		title: title,

		mode: msgs.ModeNormal,
		keys: DefaultKeyMap(),

		theme:  t,
		styles: s,
	}
	a.statusBar.SetContent(doc.Size(), doc.Kind.String())
	if opts.Open {
		a.open = true
		a.pendingOpen = true
	}
	a.syncStatus()
	return a, nil
}

func (a App) Init() tea.Cmd {
	return tea.SetWindowTitle("drawer: " + a.title)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.syncStatus()
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		a.ready = true
		if a.pendingOpen {
			return a.setOpen(true)
		}
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case msgs.OpenDrawerMsg:
		return a.setOpen(true)

	case msgs.CloseDrawerMsg:
		return a.setOpen(false)

	case msgs.DrawerClosedMsg:
		// A notice that arrives after the drawer was reopened belongs to the
		// old session and must not close the new one.
		if msg.SessionID != a.drawer.Controller().SessionID() {
			a.log.Debug("stale close notice", "session", msg.SessionID)
			return nil
		}
		// The drawer is already Closing; clearing our flag keeps it in sync
		// and the controller treats the repeat as a no-op.
		cmds = append(cmds, a.setOpen(false))
		cmds = append(cmds, a.toast.Show("Dismissed ("+msg.Reason.String()+")", false, 2*time.Second))
		return tea.Batch(cmds...)

	case msgs.ShowHelpMsg:
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		a.mode = msgs.ModeNormal
		if a.help.Visible {
			a.mode = msgs.ModeHelp
		}
		return nil

	case msgs.SetModeMsg:
		a.mode = msg.Mode
		return nil

	case msgs.CopyBodyMsg:
		return a.copyBody()

	case msgs.SwitchThemeMsg:
		return a.switchTheme(msg)

	case msgs.StatusMsg:
		return a.statusBar.ShowMessage(msg.Text, msg.Duration)

	case msgs.ToastMsg:
		return a.toast.Show(msg.Text, msg.IsError, msg.Duration)
	}

	// Drawer timers and animation frames, toast and status bar expiry.
	cmds = append(cmds, a.drawer.Update(msg))
	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	cmds = append(cmds, cmd)
	a.statusBar, cmd = a.statusBar.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// setOpen applies the caller's open flag to the drawer.
func (a *App) setOpen(open bool) tea.Cmd {
	a.open = open
	if !open {
		a.pendingOpen = false
	} else if a.width <= 0 {
		a.pendingOpen = true
		return nil
	}
	a.pendingOpen = false

	cmd, err := a.drawer.SetOpen(open)
	if err != nil {
		a.log.Warn("drawer open failed", "err", err)
		a.open = false
		toast := msgs.ToastMsg{Text: "Cannot open drawer: " + err.Error(), Duration: 3 * time.Second, IsError: true}
		return tea.Batch(cmd, func() tea.Msg { return toast })
	}
	if open {
		a.renderBody()
	}
	return cmd
}

// Teardown releases everything the drawer holds. Call it once the program
// has exited.
func (a App) Teardown() {
	a.drawer.Teardown()
}

// Open reports the caller's open flag.
func (a App) Open() bool {
	return a.open
}

func (a *App) resize() {
	bodyHeight := max(a.height-1, 1)
	a.page.Width = a.width
	a.page.Height = bodyHeight
	a.page.SetContent(backgroundPage(a.doc, a.width))
	a.drawer.SetSize(a.width, bodyHeight)
	a.statusBar.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
	a.renderBody()
}

// renderBody re-renders the document for the drawer's current body width.
func (a *App) renderBody() {
	w := a.drawer.Geometry().BodyWidth
	a.drawer.SetContent(a.title, content.Render(a.doc, w))
}

func (a *App) syncStatus() {
	st := a.drawer.State()
	a.statusBar.SetDrawer(st, a.drawer.Mode(), a.lock.Engaged())
	if a.mode == msgs.ModeHelp {
		a.statusBar.SetMode(a.mode)
		return
	}
	if st.Engaged() {
		a.mode = msgs.ModeDrawer
	} else {
		a.mode = msgs.ModeNormal
	}
	a.statusBar.SetMode(a.mode)
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	main := a.drawer.View(a.page.View())
	main = lipgloss.JoinVertical(lipgloss.Left, main, a.statusBar.View())
	// Zones are read before the help and toast overlays, which would cut
	// through the markers.
	main = a.zones.Scan(main)

	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}
	return main
}

// backgroundPage is the scrollable screen the drawer sits on.
func backgroundPage(doc content.Document, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n\n", doc.Title(), doc.Kind, doc.SizeLabel())
	b.WriteString("Press o to open the drawer. Scroll this page with j/k or the wheel;\n")
	b.WriteString("it stays put while the drawer is open.\n\n")
	for i := 1; i <= pageFillerLines; i++ {
		fmt.Fprintf(&b, "%4d  %s\n", i, strings.Repeat("·", max(min(width-8, 60), 0)))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
