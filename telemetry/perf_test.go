package telemetry

import (
	"testing"
	"time"
)

// fakeNow returns a time source advanced manually by the test.
func fakeNow(pc *PerfCollector) *time.Time {
	t := time.Unix(1000, 0)
	pc.now = func() time.Time { return t }
	return &t
}

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseClock)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseDraw)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration <= 0 {
		t.Error("expected positive average frame duration")
	}
	if _, ok := stats.PhaseAvg[PhaseClock]; !ok {
		t.Error("expected clock phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseDraw]; !ok {
		t.Error("expected draw phase to be tracked")
	}
	if pc.Frames() != 5 {
		t.Errorf("expected 5 frames, got %d", pc.Frames())
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)
	now := fakeNow(pc)

	// Ten frames: the first five take 1ms, the last five take 3ms
	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseDraw)
		step := time.Millisecond
		if i >= 5 {
			step = 3 * time.Millisecond
		}
		*now = now.Add(step)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.Samples != 5 {
		t.Errorf("expected 5 samples in window, got %d", stats.Samples)
	}
	if stats.AvgFrameDuration != 3*time.Millisecond {
		t.Errorf("expected only the last window to count (3ms), got %v", stats.AvgFrameDuration)
	}
	if stats.StdFrameDuration != 0 {
		t.Errorf("expected zero spread, got %v", stats.StdFrameDuration)
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)
	now := fakeNow(pc)

	for i := 0; i < 4; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseUniform)
		*now = now.Add(time.Millisecond)
		pc.StartPhase(PhaseDraw)
		*now = now.Add(3 * time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if got := stats.PhasePct[PhaseUniform]; got < 24.9 || got > 25.1 {
		t.Errorf("expected uniform at 25%%, got %v", got)
	}
	if got := stats.PhasePct[PhaseDraw]; got < 74.9 || got > 75.1 {
		t.Errorf("expected draw at 75%%, got %v", got)
	}
}

func TestPerfCollector_P95(t *testing.T) {
	pc := NewPerfCollector(20)
	now := fakeNow(pc)

	for i := 1; i <= 20; i++ {
		pc.StartFrame()
		*now = now.Add(time.Duration(i) * time.Millisecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.P95FrameDuration != 19*time.Millisecond {
		t.Errorf("expected p95 of 1..20ms to be 19ms, got %v", stats.P95FrameDuration)
	}
	if stats.MinFrameDuration != time.Millisecond || stats.MaxFrameDuration != 20*time.Millisecond {
		t.Errorf("unexpected min/max %v/%v", stats.MinFrameDuration, stats.MaxFrameDuration)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)

	stats := pc.Stats()

	if stats.AvgFrameDuration != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_FrameInterval(t *testing.T) {
	pc := NewPerfCollector(10)
	now := fakeNow(pc)

	pc.StartFrame()
	pc.EndFrame()
	*now = now.Add(16 * time.Millisecond)
	pc.StartFrame()
	pc.EndFrame()

	stats := pc.Stats()
	if stats.Interval != 16*time.Millisecond {
		t.Errorf("expected 16ms interval, got %v", stats.Interval)
	}
	if stats.FPS < 62 || stats.FPS > 63 {
		t.Errorf("expected ~62.5 FPS, got %v", stats.FPS)
	}
}
