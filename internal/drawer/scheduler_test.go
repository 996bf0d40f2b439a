package drawer

import (
	"sort"
	"time"
)

// fakeScheduler is a manual clock for controller tests.
type fakeScheduler struct {
	now          time.Duration
	timers       []*fakeTimer
	ignoreCancel bool
}

type fakeTimer struct {
	at        time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (s *fakeScheduler) After(d time.Duration, fn func()) func() {
	t := &fakeTimer{at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return func() {
		if !s.ignoreCancel {
			t.cancelled = true
		}
	}
}

// Advance moves the clock forward, firing due timers in order.
func (s *fakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		due := s.due(target)
		if due == nil {
			break
		}
		s.now = due.at
		due.fired = true
		due.fn()
	}
	s.now = target
}

func (s *fakeScheduler) due(target time.Duration) *fakeTimer {
	var pending []*fakeTimer
	for _, t := range s.timers {
		if !t.fired && !t.cancelled && t.at <= target {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].at < pending[j].at })
	return pending[0]
}

// Pending counts timers that have neither fired nor been cancelled.
func (s *fakeScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.cancelled {
			n++
		}
	}
	return n
}

// Scheduled counts every timer ever scheduled.
func (s *fakeScheduler) Scheduled() int {
	return len(s.timers)
}
