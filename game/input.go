package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/blossom/camera"
)

// NextFrame implements systems.Host. It polls window state and input for the
// coming frame and reports false once the window should close.
func (g *Game) NextFrame() bool {
	g.afterFrame()

	if g.opts.MaxFrames > 0 && g.loop.Frames() >= g.opts.MaxFrames {
		return false
	}
	if g.opts.Offscreen {
		return true
	}
	if rl.WindowShouldClose() {
		return false
	}
	g.handleInput()
	return true
}

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.hud.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}

	g.handleCameraInput()
}

// handleResize queues the new window size on the loop; it is applied at the
// start of the next frame.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.loop.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
}

// handleCameraInput feeds pointer input to the orbit controller.
func (g *Game) handleCameraInput() {
	mouse := rl.GetMousePosition()
	if g.panel.Contains(int32(g.viewport.Width), mouse) {
		g.orbit.HandleInput(camera.Input{}, g.viewport.Height)
		return
	}

	left := rl.IsMouseButtonDown(rl.MouseButtonLeft)
	right := rl.IsMouseButtonDown(rl.MouseButtonRight)
	delta := rl.GetMouseDelta()
	d := mgl32.Vec2{delta.X, delta.Y}

	in := camera.Input{
		Dragging: left || right,
		Wheel:    rl.GetMouseWheelMove(),
	}
	if left {
		in.RotateDelta = d
	} else if right {
		in.PanDelta = d
	}
	g.orbit.HandleInput(in, g.viewport.Height)
}
