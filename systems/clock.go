package systems

import (
	"sync"
	"time"
)

// Clock reports seconds elapsed since Start. Readings never decrease, even if the
// time source steps backwards, and the clock is never reset.
type Clock struct {
	mu      sync.Mutex
	now     func() time.Time
	start   time.Time
	started bool
	last    float64
}

// NewClock creates a clock reading the monotonic wall clock.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock reading the given time source.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start marks time zero. Calling Start again has no effect.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
}

func (c *Clock) startLocked() {
	if c.started {
		return
	}
	c.start = c.now()
	c.started = true
}

// Elapsed returns seconds since Start. The first call starts the clock if needed.
func (c *Clock) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()

	e := c.now().Sub(c.start).Seconds()
	if e < c.last {
		e = c.last
	}
	c.last = e
	return e
}

// Last returns the most recent Elapsed reading without sampling the source.
func (c *Clock) Last() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
