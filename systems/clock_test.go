package systems

import (
	"testing"
	"time"
)

// manualSource is a time source the test moves by hand.
type manualSource struct {
	t time.Time
}

func newManualSource() *manualSource {
	return &manualSource{t: time.Unix(1000, 0)}
}

func (m *manualSource) now() time.Time { return m.t }

func (m *manualSource) set(seconds float64) {
	m.t = time.Unix(1000, 0).Add(time.Duration(seconds * float64(time.Second)))
}

func TestClock_Elapsed(t *testing.T) {
	src := newManualSource()
	c := NewClockWithSource(src.now)
	c.Start()

	if got := c.Elapsed(); got != 0 {
		t.Errorf("expected 0 at start, got %f", got)
	}
	src.set(1.5)
	if got := c.Elapsed(); got != 1.5 {
		t.Errorf("expected 1.5, got %f", got)
	}
	if got := c.Last(); got != 1.5 {
		t.Errorf("expected Last 1.5, got %f", got)
	}
}

func TestClock_NonDecreasing(t *testing.T) {
	src := newManualSource()
	c := NewClockWithSource(src.now)
	c.Start()

	src.set(2)
	first := c.Elapsed()
	src.set(1) // source steps backwards
	second := c.Elapsed()
	src.set(3)
	third := c.Elapsed()

	if second < first {
		t.Errorf("elapsed decreased: %f -> %f", first, second)
	}
	if second != 2 {
		t.Errorf("expected clamped reading 2, got %f", second)
	}
	if third != 3 {
		t.Errorf("expected 3 after source recovers, got %f", third)
	}
}

func TestClock_StartIsIdempotent(t *testing.T) {
	src := newManualSource()
	c := NewClockWithSource(src.now)
	c.Start()

	src.set(5)
	c.Start()

	if got := c.Elapsed(); got != 5 {
		t.Errorf("second Start should not reset the clock, got %f", got)
	}
}

func TestClock_AutoStart(t *testing.T) {
	src := newManualSource()
	src.set(10)
	c := NewClockWithSource(src.now)

	if got := c.Elapsed(); got != 0 {
		t.Errorf("expected first reading 0, got %f", got)
	}
	src.set(11)
	if got := c.Elapsed(); got != 1 {
		t.Errorf("expected 1 second after auto start, got %f", got)
	}
}

func TestClock_Monotonic(t *testing.T) {
	c := NewClock()
	prev := c.Elapsed()
	for i := 0; i < 1000; i++ {
		e := c.Elapsed()
		if e < prev {
			t.Fatalf("elapsed went backwards: %f -> %f", prev, e)
		}
		prev = e
	}
}
