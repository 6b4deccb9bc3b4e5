package mocks

import (
	"time"

	"github.com/mribera/penjat3d/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	CurrentTime time.Time

	timers []*MockTimer
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// AfterFunc records a pending timer. It fires when the clock is advanced
// past its deadline, or when FireAll is called.
func (c *MockClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	t := &MockTimer{deadline: c.CurrentTime.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward and fires any timers that come due
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
	for _, t := range c.timers {
		if !t.done && !t.stopped && !t.deadline.After(c.CurrentTime) {
			t.done = true
			t.f()
		}
	}
}

// FireAll immediately fires every pending timer regardless of deadline
func (c *MockClock) FireAll() {
	for _, t := range c.timers {
		if !t.done && !t.stopped {
			t.done = true
			t.f()
		}
	}
}

// PendingTimers returns the number of scheduled, unfired, unstopped timers
func (c *MockClock) PendingTimers() int {
	n := 0
	for _, t := range c.timers {
		if !t.done && !t.stopped {
			n++
		}
	}
	return n
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}

// MockTimer is a pending mock timer
type MockTimer struct {
	deadline time.Time
	f        func()
	done     bool
	stopped  bool
}

var _ clock.Timer = (*MockTimer)(nil)

// Stop cancels the timer, reporting whether it had not yet fired
func (t *MockTimer) Stop() bool {
	if t.done || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
