package components

import (
	"sort"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var ownerSeq atomic.Uint64

// schedulerFireMsg is delivered when a drawer timer's tea.Tick elapses.
type schedulerFireMsg struct {
	owner uint64
	id    uint64
}

type pendingTimer struct {
	after time.Duration
	fn    func()
}

// teaScheduler runs drawer timers on the Bubble Tea event loop. After only
// records the callback and queues a tea.Tick; the callback runs when the
// matching schedulerFireMsg comes back through Update, so every timer fires
// on the same goroutine as the rest of the model.
type teaScheduler struct {
	owner   uint64
	nextID  uint64
	pending map[uint64]pendingTimer
	queued  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{
		owner:   ownerSeq.Add(1),
		pending: make(map[uint64]pendingTimer),
	}
}

// After implements drawer.Scheduler.
func (s *teaScheduler) After(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	owner := s.owner
	s.pending[id] = pendingTimer{after: d, fn: fn}
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return schedulerFireMsg{owner: owner, id: id}
	}))
	return func() { delete(s.pending, id) }
}

// fire runs the callback for msg if it is still pending. Cancelled timers
// still deliver their message; it is dropped here.
func (s *teaScheduler) fire(msg schedulerFireMsg) bool {
	if msg.owner != s.owner {
		return false
	}
	t, ok := s.pending[msg.id]
	if !ok {
		return false
	}
	delete(s.pending, msg.id)
	t.fn()
	return true
}

// drain returns the ticks queued since the last call.
func (s *teaScheduler) drain() []tea.Cmd {
	cmds := s.queued
	s.queued = nil
	return cmds
}

// pendingIDs lists live timers, soonest first.
func (s *teaScheduler) pendingIDs() []uint64 {
	ids := make([]uint64, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := s.pending[ids[i]], s.pending[ids[j]]
		if a.after != b.after {
			return a.after < b.after
		}
		return ids[i] < ids[j]
	})
	return ids
}
