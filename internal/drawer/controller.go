package drawer

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Scheduler runs fn once after d on the host's event loop. The returned
// cancel func must be safe to call more than once and after fn has run.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Timings are the two controller timers. They are independent of the
// animation system's own entry and exit durations.
type Timings struct {
	// OpenControlDelay hands the sheet position from the entry animation
	// to live drag input.
	OpenControlDelay time.Duration
	// CloseFallback forces Closed if the exit animation never reports back.
	CloseFallback time.Duration
}

// DefaultTimings are 500ms for both timers.
var DefaultTimings = Timings{
	OpenControlDelay: 500 * time.Millisecond,
	CloseFallback:    500 * time.Millisecond,
}

// Options configure a Controller. Only Scheduler is required.
type Options struct {
	Selector   Selector
	Viewport   Viewport
	Lock       ScrollLock
	Scheduler  Scheduler
	OnClose    func(CloseReason)
	Logger     *slog.Logger
	Timings    Timings
	Thresholds Thresholds
	// Elastic is the overshoot factor; values outside [0,1] use DefaultElastic.
	Elastic   float64
	Spring    SpringConfig
	FrameRate int
}

// Controller is the drawer's lifecycle state machine. It owns the
// visibility state, the layout mode and the gesture control flag, and is the
// only writer of its own hold on the scroll lock while it is alive.
type Controller struct {
	selector   Selector
	viewport   Viewport
	lock       ScrollLock
	ownsLock   bool
	sched      Scheduler
	onClose    func(CloseReason)
	log        *slog.Logger
	timings    Timings
	thresholds Thresholds

	state          Visibility
	mode           LayoutMode
	gen            uint64
	gestureControl bool
	lockHeld       bool
	sessionID      string

	tracker Tracker
	motion  Motion

	cancelControl  func()
	cancelFallback func()
}

// NewController returns a Controller in the Closed state.
func NewController(opts Options) (*Controller, error) {
	if opts.Scheduler == nil {
		return nil, &ConfigError{Op: "new controller", Err: ErrNoScheduler}
	}
	ownsLock := opts.Lock == nil
	if ownsLock {
		opts.Lock = NewCountingLock(nil)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Timings.OpenControlDelay <= 0 {
		opts.Timings.OpenControlDelay = DefaultTimings.OpenControlDelay
	}
	if opts.Timings.CloseFallback <= 0 {
		opts.Timings.CloseFallback = DefaultTimings.CloseFallback
	}
	if opts.Thresholds.Offset <= 0 {
		opts.Thresholds.Offset = DefaultThresholds.Offset
	}
	if opts.Thresholds.Velocity <= 0 {
		opts.Thresholds.Velocity = DefaultThresholds.Velocity
	}
	if opts.Elastic < 0 || opts.Elastic > 1 {
		opts.Elastic = DefaultElastic
	}
	if opts.Spring == (SpringConfig{}) {
		opts.Spring = SnapBack
	}

	return &Controller{
		selector:   opts.Selector,
		viewport:   opts.Viewport,
		lock:       opts.Lock,
		ownsLock:   ownsLock,
		sched:      opts.Scheduler,
		onClose:    opts.OnClose,
		log:        opts.Logger,
		timings:    opts.Timings,
		thresholds: opts.Thresholds,
		tracker:    Tracker{Elastic: opts.Elastic},
		motion:     NewMotion(opts.Spring, opts.FrameRate),
	}, nil
}

// SetOpen applies the caller's open flag. Repeating the current value is a
// no-op. Opening reads the viewport and fails with a *ConfigError if the width
// is unavailable; the drawer then stays where it was. Closing through
// SetOpen never calls OnClose.
func (c *Controller) SetOpen(open bool) error {
	if open {
		if c.state == Opening || c.state == Open {
			return nil
		}
		mode, err := c.selector.Select(c.viewport)
		if err != nil {
			c.log.Error("drawer open failed", "error", err)
			return err
		}
		c.beginOpen(mode)
		return nil
	}

	if c.state == Opening || c.state == Open {
		c.beginClose("caller")
	}
	return nil
}

// RequestClose is a close asked for by the user or by a drag gesture. It
// invokes OnClose exactly once and returns true, or returns false when the
// drawer is already Closing or Closed.
func (c *Controller) RequestClose(reason CloseReason) bool {
	if c.state != Opening && c.state != Open {
		return false
	}
	c.beginClose(reason.String())
	if c.onClose != nil {
		c.onClose(reason)
	}
	return true
}

// AnimationComplete is the animation system's signal that the entry or exit
// animation of generation gen has settled.
func (c *Controller) AnimationComplete(gen uint64) {
	if gen != c.gen {
		c.log.Debug("stale animation signal", "session", c.sessionID, "gen", gen, "current", c.gen)
		return
	}
	switch c.state {
	case Opening:
		c.setState(Open)
	case Closing:
		c.finishClose()
	}
}

// Teardown cancels every pending timer and restores the scroll lock,
// whatever the current state. It is safe to call repeatedly.
func (c *Controller) Teardown() {
	c.cancelTimers()
	c.gen++
	c.tracker.Cancel()
	c.motion.Set(0)
	c.gestureControl = false
	if c.state != Closed {
		c.setState(Closed)
	}
	c.resetLock()
}

// PointerDown reports a press at vertical position y. It returns true when
// the press starts a drag; only presses on the handle of an open sheet do.
func (c *Controller) PointerDown(y float64, inHandle bool, at time.Time) bool {
	if !c.gestureEnabled() {
		return false
	}
	return c.tracker.Press(y, inHandle, at)
}

// PointerMove updates an active drag. The sheet follows the pointer only
// once gesture control has been handed over.
func (c *Controller) PointerMove(y float64, at time.Time) bool {
	if !c.gestureEnabled() {
		c.tracker.Cancel()
		return false
	}
	s, ok := c.tracker.Move(y, at)
	if !ok {
		return false
	}
	if c.gestureControl {
		c.motion.Set(s.Offset)
	}
	return true
}

// PointerUp ends an active drag and either dismisses the sheet or springs it
// back to rest.
func (c *Controller) PointerUp(y float64, at time.Time) Release {
	if !c.gestureEnabled() {
		c.tracker.Cancel()
		return ReleaseNone
	}
	s, ok := c.tracker.Release(y, at)
	if !ok {
		return ReleaseNone
	}
	if !c.gestureControl {
		c.motion.Set(0)
		return ReleaseIgnored
	}

	c.log.Debug("drag released", "session", c.sessionID, "offset", s.Offset, "velocity", s.Velocity)
	if ShouldDismiss(s, c.thresholds) {
		c.motion.Set(s.Offset)
		c.RequestClose(ReasonGesture)
		return ReleaseDismiss
	}
	c.motion.Set(s.Offset)
	c.motion.AnimateTo(0, s.Velocity)
	return ReleaseSnapBack
}

// Step advances the snap-back spring by one frame and reports whether it is
// still moving.
func (c *Controller) Step() bool {
	return c.motion.Step()
}

func (c *Controller) State() Visibility {
	return c.state
}

// Mode is the layout chosen when the current session opened.
func (c *Controller) Mode() LayoutMode {
	return c.mode
}

// Generation identifies the current open or close transition.
func (c *Controller) Generation() uint64 {
	return c.gen
}

func (c *Controller) GestureControl() bool {
	return c.gestureControl
}

// Dragging reports whether a handle drag is in progress.
func (c *Controller) Dragging() bool {
	return c.tracker.Active()
}

// Offset is the sheet's vertical displacement from rest. It stays zero until
// gesture control is handed over.
func (c *Controller) Offset() float64 {
	if !c.gestureControl {
		return 0
	}
	return c.motion.Value()
}

func (c *Controller) SessionID() string {
	return c.sessionID
}

func (c *Controller) gestureEnabled() bool {
	return c.mode == Sheet && (c.state == Opening || c.state == Open)
}

func (c *Controller) beginOpen(mode LayoutMode) {
	c.cancelTimers()
	c.gen++
	gen := c.gen

	c.mode = mode
	c.sessionID = uuid.NewString()
	c.tracker.Cancel()
	c.motion.Set(0)
	c.gestureControl = false

	c.setState(Opening)
	c.acquireLock()

	c.cancelControl = c.sched.After(c.timings.OpenControlDelay, func() {
		if gen != c.gen || !c.state.Engaged() {
			return
		}
		c.cancelControl = nil
		c.gestureControl = true
		c.log.Debug("gesture control handed over", "session", c.sessionID, "gen", gen)
	})
}

func (c *Controller) beginClose(cause string) {
	c.cancelTimers()
	c.gen++
	gen := c.gen

	c.tracker.Cancel()
	c.setState(Closing, "cause", cause)
	c.releaseLock()

	c.cancelFallback = c.sched.After(c.timings.CloseFallback, func() {
		if gen != c.gen || c.state != Closing {
			return
		}
		c.cancelFallback = nil
		c.log.Warn("exit animation did not complete, forcing closed", "session", c.sessionID, "gen", gen)
		c.finishClose()
	})
}

func (c *Controller) finishClose() {
	c.cancelTimers()
	c.gestureControl = false
	c.motion.Set(0)
	c.setState(Closed)
	c.resetLock()
}

func (c *Controller) setState(to Visibility, attrs ...any) {
	from := c.state
	c.state = to
	args := append([]any{"session", c.sessionID, "from", from.String(), "to", to.String(), "mode", c.mode.String(), "gen", c.gen}, attrs...)
	c.log.Debug("drawer transition", args...)
}

func (c *Controller) cancelTimers() {
	if c.cancelControl != nil {
		c.cancelControl()
		c.cancelControl = nil
	}
	if c.cancelFallback != nil {
		c.cancelFallback()
		c.cancelFallback = nil
	}
}

func (c *Controller) acquireLock() {
	if c.lockHeld {
		return
	}
	c.lock.Acquire()
	c.lockHeld = true
}

func (c *Controller) releaseLock() {
	if !c.lockHeld {
		return
	}
	c.lock.Release()
	c.lockHeld = false
}

// resetLock restores a lock the controller created itself. A caller's lock
// may have other holders, so only this controller's hold is dropped.
func (c *Controller) resetLock() {
	if !c.ownsLock {
		c.releaseLock()
		return
	}
	c.lock.Reset()
	c.lockHeld = false
}
