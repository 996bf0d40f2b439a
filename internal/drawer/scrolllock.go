package drawer

// ScrollLock suppresses background scrolling while the drawer is visible.
// Reset restores the default unconditionally and must be idempotent.
type ScrollLock interface {
	Acquire()
	Release()
	Reset()
}

// CountingLock is a reference-counted ScrollLock. It is not safe for
// concurrent use; the drawer runs on a single event loop.
type CountingLock struct {
	holders  int
	onChange func(engaged bool)
}

// NewCountingLock returns a lock that calls onChange whenever it flips
// between engaged and released. onChange may be nil.
func NewCountingLock(onChange func(engaged bool)) *CountingLock {
	return &CountingLock{onChange: onChange}
}

func (l *CountingLock) Acquire() {
	l.holders++
	if l.holders == 1 {
		l.notify(true)
	}
}

func (l *CountingLock) Release() {
	if l.holders == 0 {
		return
	}
	l.holders--
	if l.holders == 0 {
		l.notify(false)
	}
}

func (l *CountingLock) Reset() {
	was := l.holders > 0
	l.holders = 0
	if was {
		l.notify(false)
	}
}

// Engaged reports whether background scrolling is currently suppressed.
func (l *CountingLock) Engaged() bool {
	return l.holders > 0
}

// Holders returns the number of outstanding acquisitions.
func (l *CountingLock) Holders() int {
	return l.holders
}

func (l *CountingLock) notify(engaged bool) {
	if l.onChange != nil {
		l.onChange(engaged)
	}
}
