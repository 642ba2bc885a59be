package game

import (
	"log/slog"

	"github.com/pthm-cable/blossom/telemetry"
)

// Resize implements systems.Resizer. It runs at the start of a frame with the
// latest queued window size.
func (g *Game) Resize(width, height int) {
	prevW, prevH := g.viewport.Width, g.viewport.Height
	g.viewport.Resize(width, height)
	if g.viewport.Width == prevW && g.viewport.Height == prevH {
		return
	}

	slog.Info("viewport resized",
		"width", width,
		"height", height,
		"aspect", g.viewport.Aspect(),
	)
	err := g.output.WriteResize(telemetry.ResizeEvent{
		Frame:   g.loop.Frames(),
		Elapsed: g.clock.Last(),
		Width:   width,
		Height:  height,
		Aspect:  g.viewport.Aspect(),
	})
	if err != nil {
		slog.Error("failed to write resize", "error", err)
	}
}

// afterFrame flushes perf stats once per log interval.
func (g *Game) afterFrame() {
	if g.loop.Frames() == 0 {
		return
	}
	elapsed := g.clock.Last()
	if elapsed-g.lastLog < float64(g.cfg.Derived.LogInterval) {
		return
	}
	g.lastLog = elapsed

	stats := g.perf.Stats()
	if g.opts.LogStats {
		stats.LogStats()
	}
	if err := g.output.WritePerf(stats, g.loop.Frames(), elapsed); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
