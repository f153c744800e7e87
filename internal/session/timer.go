package session

import (
	"sync"
	"time"
)

// Timer is the shared session countdown. It is started once, ticks at 1 Hz,
// fires its expiry callback exactly once when it reaches zero, and can be
// stopped so no goroutine outlives the session.
type Timer struct {
	mu        sync.Mutex
	remaining int
	interval  time.Duration
	onExpire  func()
	running   bool
	expired   bool
	stop      chan struct{}
}

// NewTimer creates a countdown of the given number of whole seconds.
// onExpire runs on the timer goroutine.
func NewTimer(seconds int, onExpire func()) *Timer {
	return newTimer(seconds, time.Second, onExpire)
}

// newTimer lets tests shrink the tick interval.
func newTimer(seconds int, interval time.Duration, onExpire func()) *Timer {
	return &Timer{
		remaining: seconds,
		interval:  interval,
		onExpire:  onExpire,
		stop:      make(chan struct{}),
	}
}

// Start begins ticking. Starting an already started or stopped timer is a
// no-op.
func (t *Timer) Start() {
	t.mu.Lock()
	if t.running || t.expired {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.mu.Unlock()

	go t.run()
}

func (t *Timer) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			if t.tick() {
				return
			}
		}
	}
}

// tick decrements the countdown and reports whether the timer finished.
func (t *Timer) tick() bool {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return true
	}
	t.remaining--
	if t.remaining > 0 {
		t.mu.Unlock()
		return false
	}
	t.remaining = 0
	t.running = false
	t.expired = true
	t.mu.Unlock()

	if t.onExpire != nil {
		t.onExpire()
	}
	return true
}

// Stop cancels the countdown. Safe to call multiple times; an expired timer
// stays expired.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.running = false
	close(t.stop)
}

// Remaining returns the seconds left.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Running reports whether the countdown is ticking.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
