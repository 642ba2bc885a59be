package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blossom/ui"
)

// Draw implements systems.Drawer: the scene through the camera, then overlays.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.surface.Begin()
	g.renderer.Draw()
	g.surface.End()
	g.surface.Present(g.viewport.Width, g.viewport.Height)

	g.drawOverlays()

	rl.EndDrawing()
}

// drawOverlays renders the HUD and the orbit panel.
func (g *Game) drawOverlays() {
	g.hud.Draw(ui.HUDData{
		Title:      g.cfg.Window.Title,
		Elapsed:    g.clock.Last(),
		FPS:        rl.GetFPS(),
		Particles:  g.renderer.Petals.Count(),
		Width:      g.viewport.Width,
		Height:     g.viewport.Height,
		Aspect:     g.viewport.Aspect(),
		AutoRotate: g.orbit.AutoRotate,
		Azimuth:    g.orbit.Azimuth(),
	})
	g.hud.DrawControls(int32(g.viewport.Height), controlsLegend)

	settings := ui.OrbitSettings{
		AutoRotate:      g.orbit.AutoRotate,
		AutoRotateSpeed: g.orbit.AutoRotateSpeed,
		EnableZoom:      g.orbit.EnableZoom,
		EnablePan:       g.orbit.EnablePan,
		EnableDamping:   g.orbit.EnableDamping,
	}
	if g.panel.Draw(int32(g.viewport.Width), &settings) {
		g.orbit.AutoRotate = settings.AutoRotate
		g.orbit.AutoRotateSpeed = settings.AutoRotateSpeed
		g.orbit.EnableZoom = settings.EnableZoom
		g.orbit.EnablePan = settings.EnablePan
		g.orbit.EnableDamping = settings.EnableDamping
	}
}

// RenderAt draws one frame into the surface at a fixed animation time, without
// advancing the clock or the orbit. Used by capture tools.
func (g *Game) RenderAt(t float32) {
	g.renderer.Petals.SetTime(t)

	g.surface.Begin()
	g.renderer.Draw()
	g.surface.End()
}
