package drawer

import "time"

// DefaultElastic is the share of an overshoot past the resting position
// that reaches the sheet: dragging 2 units up moves it 1.
const DefaultElastic = 0.5

// velocityWindow is how far back pointer history is kept for velocity.
const velocityWindow = 100 * time.Millisecond

// Thresholds decide whether a release dismisses the sheet. Either one being
// exceeded is enough.
type Thresholds struct {
	Offset   float64
	Velocity float64
}

// DefaultThresholds dismiss past 200 units of travel or 200 units/s.
var DefaultThresholds = Thresholds{Offset: 200, Velocity: 200}

// ElasticOffset maps a raw pointer delta to a sheet offset. Downward travel
// is unconstrained; travel above the resting position is scaled by elastic.
func ElasticOffset(raw, elastic float64) float64 {
	if raw >= 0 {
		return raw
	}
	return raw * elastic
}

// ShouldDismiss reports whether a release with sample s closes the sheet.
func ShouldDismiss(s DragSample, th Thresholds) bool {
	return s.Offset > th.Offset || s.Velocity > th.Velocity
}

type pointerSample struct {
	y  float64
	at time.Time
}

// Tracker follows one vertical drag at a time.
type Tracker struct {
	Elastic float64

	active  bool
	originY float64
	history []pointerSample
	sample  DragSample
}

// Press starts tracking when the press lands on the drag handle. Presses
// anywhere else are not captured and Press returns false, leaving the event
// to the content under the pointer.
func (t *Tracker) Press(y float64, inHandle bool, at time.Time) bool {
	if !inHandle {
		t.Cancel()
		return false
	}
	t.active = true
	t.originY = y
	t.history = append(t.history[:0], pointerSample{y: y, at: at})
	t.sample = DragSample{}
	return true
}

// Move records pointer movement. It returns false when no drag is active.
func (t *Tracker) Move(y float64, at time.Time) (DragSample, bool) {
	if !t.active {
		return DragSample{}, false
	}
	t.record(y, at)
	t.sample = DragSample{
		Offset:   ElasticOffset(y-t.originY, t.elastic()),
		Velocity: t.velocity(),
	}
	return t.sample, true
}

// Release ends the drag and returns its final sample.
func (t *Tracker) Release(y float64, at time.Time) (DragSample, bool) {
	s, ok := t.Move(y, at)
	if !ok {
		return DragSample{}, false
	}
	t.Cancel()
	return s, true
}

// Cancel drops any drag in progress.
func (t *Tracker) Cancel() {
	t.active = false
	t.history = t.history[:0]
	t.sample = DragSample{}
}

// Active reports whether a drag is being tracked.
func (t *Tracker) Active() bool {
	return t.active
}

func (t *Tracker) elastic() float64 {
	if t.Elastic < 0 || t.Elastic > 1 {
		return DefaultElastic
	}
	return t.Elastic
}

func (t *Tracker) record(y float64, at time.Time) {
	t.history = append(t.history, pointerSample{y: y, at: at})
	latest := at
	drop := 0
	for drop < len(t.history)-2 && latest.Sub(t.history[drop].at) > velocityWindow {
		drop++
	}
	if drop > 0 {
		t.history = append(t.history[:0], t.history[drop:]...)
	}
}

func (t *Tracker) velocity() float64 {
	if len(t.history) < 2 {
		return 0
	}
	first := t.history[0]
	last := t.history[len(t.history)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - first.y) / dt
}
