package game

// Options holds per-run settings that come from the command line rather than
// the config file.
type Options struct {
	Seed      int64  // field RNG seed
	LogStats  bool   // log perf stats via slog
	OutputDir string // CSV and config snapshot directory (empty = disabled)
	MaxFrames int64  // stop after N frames (0 = unlimited)
	Offscreen bool   // draw into a texture surface instead of the window
}

// controlsLegend is shown at the bottom of the screen.
const controlsLegend = "Drag: rotate  Right-drag: pan  Wheel: zoom  [H] HUD  [Tab] Orbit panel  [F11] Fullscreen"
