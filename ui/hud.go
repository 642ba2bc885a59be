package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Elapsed    float64
	FPS        int32
	Particles  int
	Width      int
	Height     int
	Aspect     float32
	AutoRotate bool
	Azimuth    float32 // radians
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	visible  bool
}

// NewHUD creates a new HUD renderer. The HUD starts visible.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		visible:  true,
	}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// IsVisible returns whether the HUD is shown.
func (h *HUD) IsVisible() bool {
	return h.visible
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	if !h.visible {
		return
	}
	r := h.renderer
	x, y := r.Theme.Padding, r.Theme.Padding

	r.DrawPanel(x-4, y-4, 230, 7*r.Theme.LineHeight+16)
	y = r.DrawSectionHeader(x, y, data.Title)
	y = r.DrawLabelValue(x, y, "Time", fmt.Sprintf("%.1fs", data.Elapsed))
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))
	y = r.DrawLabelValue(x, y, "Petals", fmt.Sprintf("%d", data.Particles))
	y = r.DrawLabelValue(x, y, "Viewport", fmt.Sprintf("%dx%d (%.3f)", data.Width, data.Height, data.Aspect))
	y = r.DrawStatus(x, y, "Rotate", data.AutoRotate)
	r.DrawLabelValue(x, y, "Azimuth", fmt.Sprintf("%.0f deg", float64(data.Azimuth)*180/math.Pi))
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	if !h.visible {
		return
	}
	rl.DrawText(controls, h.renderer.Theme.Padding, screenHeight-22, 14, rl.Gray)
}
