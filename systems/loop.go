package systems

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pthm-cable/blossom/telemetry"
)

// TimeSink receives the elapsed time once per frame. The petal program's time
// uniform is the only implementation that reaches the GPU.
type TimeSink interface {
	SetTime(t float32)
}

// Controller advances camera motion by one frame.
type Controller interface {
	Update(dt float32)
}

// Drawer draws the full scene through the current camera.
type Drawer interface {
	Draw()
}

// Host paces the loop. NextFrame returns once the next display refresh is due and
// reports false when the hosting window has closed.
type Host interface {
	NextFrame() bool
}

// Resizer applies a new output size. Viewport implements it.
type Resizer interface {
	Resize(width, height int)
}

// FrameObserver receives per-frame phase timing. PerfCollector implements it.
type FrameObserver interface {
	StartFrame()
	StartPhase(phase string)
	EndFrame()
}

// LoopConfig bundles the loop collaborators.
type LoopConfig struct {
	Clock      *Clock
	Time       TimeSink
	Controller Controller
	Drawer     Drawer
	Host       Host
	Resizer    Resizer       // optional
	Observer   FrameObserver // optional
}

type pendingSize struct {
	width, height int
	set           bool
}

// Loop runs the frame-driven animation: read the clock, write the time uniform,
// step the orbit controller, draw. One iteration per display refresh until stopped.
type Loop struct {
	cfg LoopConfig

	resizeMu sync.Mutex
	pending  pendingSize

	stopped atomic.Bool
	frames  atomic.Int64
	prev    float64
}

// NewLoop creates a loop over the given collaborators.
func NewLoop(cfg LoopConfig) *Loop {
	if cfg.Clock == nil {
		cfg.Clock = NewClock()
	}
	return &Loop{cfg: cfg}
}

// Resize records a new output size. It may be called from any goroutine; the latest
// size is applied in full at the start of the next frame, before anything is drawn.
func (l *Loop) Resize(width, height int) {
	l.resizeMu.Lock()
	l.pending = pendingSize{width: width, height: height, set: true}
	l.resizeMu.Unlock()
}

// Frame runs a single iteration and returns the elapsed time it rendered.
func (l *Loop) Frame() float64 {
	obs := l.cfg.Observer
	if obs != nil {
		obs.StartFrame()
		defer obs.EndFrame()
	}

	l.applyResize(obs)

	if obs != nil {
		obs.StartPhase(telemetry.PhaseClock)
	}
	elapsed := l.cfg.Clock.Elapsed()
	dt := elapsed - l.prev
	l.prev = elapsed

	if obs != nil {
		obs.StartPhase(telemetry.PhaseUniform)
	}
	l.cfg.Time.SetTime(float32(elapsed))

	if obs != nil {
		obs.StartPhase(telemetry.PhaseOrbit)
	}
	if l.cfg.Controller != nil {
		l.cfg.Controller.Update(float32(dt))
	}

	if obs != nil {
		obs.StartPhase(telemetry.PhaseDraw)
	}
	l.cfg.Drawer.Draw()

	l.frames.Add(1)
	return elapsed
}

func (l *Loop) applyResize(obs FrameObserver) {
	l.resizeMu.Lock()
	p := l.pending
	l.pending = pendingSize{}
	l.resizeMu.Unlock()

	if !p.set || l.cfg.Resizer == nil {
		return
	}
	if obs != nil {
		obs.StartPhase(telemetry.PhaseResize)
	}
	l.cfg.Resizer.Resize(p.width, p.height)
}

// Run re-arms the loop every display refresh until ctx is cancelled, Stop is called
// or the host closes. It returns ctx.Err() on cancellation and nil otherwise.
func (l *Loop) Run(ctx context.Context) error {
	l.cfg.Clock.Start()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.stopped.Load() {
			return nil
		}
		if !l.cfg.Host.NextFrame() {
			return nil
		}
		l.Frame()
	}
}

// Stop asks Run to return before the next frame. Safe from any goroutine.
func (l *Loop) Stop() {
	l.stopped.Store(true)
}

// Frames returns the number of frames rendered.
func (l *Loop) Frames() int64 {
	return l.frames.Load()
}
