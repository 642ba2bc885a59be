package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/blossom/camera"
	"github.com/pthm-cable/blossom/config"
	"github.com/pthm-cable/blossom/renderer"
	"github.com/pthm-cable/blossom/systems"
	"github.com/pthm-cable/blossom/telemetry"
	"github.com/pthm-cable/blossom/ui"
)

// Game owns the scene and every per-frame collaborator.
type Game struct {
	cfg  *config.Config
	opts Options
	rng  *rand.Rand

	field *systems.Field
	scene *systems.Scene

	camera   *camera.Camera
	orbit    *camera.Orbit
	viewport *camera.Viewport
	surface  *renderer.Surface
	renderer *renderer.SceneRenderer

	clock *systems.Clock
	loop  *systems.Loop

	hud   *ui.HUD
	panel *ui.OrbitPanel

	perf    *telemetry.PerfCollector
	output  *telemetry.OutputManager
	lastLog float64
}

// NewGame builds the scene and its renderers. The raylib window must already
// be open.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	g := &Game{
		cfg:  cfg,
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		hud:  ui.NewHUD(),
		perf: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
	}

	g.field = systems.NewField(g.rng, systems.FieldParamsFromConfig(cfg))
	g.scene = systems.BuildScene(cfg)

	cc := cfg.Camera
	g.camera = camera.New(cfg.Derived.FovRadians, cfg.Derived.Aspect, float32(cc.Near), float32(cc.Far), vec3(cc.Position))
	g.orbit = newOrbit(g.camera, cfg.Orbit)
	g.panel = ui.NewOrbitPanel(220)

	if opts.Offscreen {
		g.surface = renderer.NewTextureSurface()
	} else {
		g.surface = renderer.NewWindowSurface()
	}
	g.viewport = camera.NewViewport(g.camera, g.surface, cfg.Window.Width, cfg.Window.Height)

	g.renderer = renderer.NewSceneRenderer(cfg, g.scene, g.camera, g.field)
	if err := g.renderer.Init(); err != nil {
		g.surface.Unload()
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		g.Unload()
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	g.clock = systems.NewClock()
	g.loop = systems.NewLoop(systems.LoopConfig{
		Clock:      g.clock,
		Time:       g.renderer.Petals,
		Controller: g.orbit,
		Drawer:     g,
		Host:       g,
		Resizer:    g,
		Observer:   g.perf,
	})

	stats := g.field.Stats()
	slog.Info("scene built",
		"seed", opts.Seed,
		"petals", stats.Count,
		"mean_radius", stats.MeanRadius,
		"run_id", g.output.RunID(),
	)
	return g, nil
}

// newOrbit creates the orbit controller from config.
func newOrbit(cam *camera.Camera, oc config.OrbitConfig) *camera.Orbit {
	o := camera.NewOrbit(cam, vec3(oc.Target))
	o.EnableRotate = oc.EnableRotate
	o.EnablePan = oc.EnablePan
	o.EnableZoom = oc.EnableZoom
	o.AutoRotate = oc.AutoRotate
	o.AutoRotateSpeed = float32(oc.AutoRotateSpeed)
	o.EnableDamping = oc.EnableDamping
	o.DampingFactor = float32(oc.DampingFactor)
	o.RotateSpeed = float32(oc.RotateSpeed)
	o.ZoomSpeed = float32(oc.ZoomSpeed)
	o.PanSpeed = float32(oc.PanSpeed)
	o.MinDistance = float32(oc.MinDistance)
	o.MaxDistance = float32(oc.MaxDistance)
	return o
}

func vec3(v [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Run drives the animation loop until ctx is cancelled, Stop is called or the
// window closes.
func (g *Game) Run(ctx context.Context) error {
	slog.Info("animation started", "width", g.viewport.Width, "height", g.viewport.Height)
	err := g.loop.Run(ctx)
	slog.Info("animation stopped", "frames", g.loop.Frames(), "elapsed", g.clock.Last())
	return err
}

// Stop ends Run before the next frame.
func (g *Game) Stop() {
	g.loop.Stop()
}

// Loop returns the animation loop.
func (g *Game) Loop() *systems.Loop {
	return g.loop
}

// Surface returns the draw target.
func (g *Game) Surface() *renderer.Surface {
	return g.surface
}

// Viewport returns the viewport.
func (g *Game) Viewport() *camera.Viewport {
	return g.viewport
}

// Unload frees GPU resources and closes output files.
func (g *Game) Unload() {
	if g.renderer != nil {
		g.renderer.Unload()
	}
	if g.surface != nil {
		g.surface.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
