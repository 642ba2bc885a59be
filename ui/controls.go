package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitSettings are the orbit controller flags the panel edits.
type OrbitSettings struct {
	AutoRotate      bool
	AutoRotateSpeed float32
	EnableZoom      bool
	EnablePan       bool
	EnableDamping   bool
}

// Slider range for the auto-rotation speed.
const (
	MinAutoRotateSpeed = 0
	MaxAutoRotateSpeed = 4
)

// OrbitPanel renders the right-side orbit tuning panel.
type OrbitPanel struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewOrbitPanel creates a hidden orbit panel.
func NewOrbitPanel(width int32) *OrbitPanel {
	return &OrbitPanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Toggle switches panel visibility.
func (p *OrbitPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *OrbitPanel) IsVisible() bool {
	return p.visible
}

// Bounds returns the panel rectangle for a screen of the given width.
func (p *OrbitPanel) Bounds(screenWidth int32) rl.Rectangle {
	r := p.renderer
	return rl.Rectangle{
		X:      float32(screenWidth - p.width - r.Theme.Padding),
		Y:      float32(r.Theme.Padding),
		Width:  float32(p.width),
		Height: float32(8*r.Theme.LineHeight + 5*30),
	}
}

// Contains reports whether a screen point is over the visible panel.
func (p *OrbitPanel) Contains(screenWidth int32, point rl.Vector2) bool {
	return p.visible && rl.CheckCollisionPointRec(point, p.Bounds(screenWidth))
}

// Draw renders the panel and applies edits to s. Returns true if anything changed.
func (p *OrbitPanel) Draw(screenWidth int32, s *OrbitSettings) bool {
	if !p.visible {
		return false
	}
	r := p.renderer
	b := p.Bounds(screenWidth)
	r.DrawPanel(int32(b.X), int32(b.Y), int32(b.Width), int32(b.Height))

	x := b.X + float32(r.Theme.Padding)
	y := int32(b.Y) + r.Theme.Padding
	w := b.Width - 2*float32(r.Theme.Padding)
	changed := false

	y = r.DrawSectionHeader(int32(x), y, "Orbit [Tab]")

	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: w, Height: 24},
		toggleText(s.AutoRotate, "Stop rotation", "Start rotation")) {
		s.AutoRotate = !s.AutoRotate
		changed = true
	}
	y += 30

	rl.DrawText("Rotation speed", int32(x), y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight
	speed := gui.SliderBar(
		rl.Rectangle{X: x, Y: float32(y), Width: w - 40, Height: 18},
		"", "",
		s.AutoRotateSpeed, MinAutoRotateSpeed, MaxAutoRotateSpeed,
	)
	rl.DrawText(fmt.Sprintf("%.2f", s.AutoRotateSpeed), int32(x+w-34), y+2, r.Theme.FontSize, r.Theme.ValueColor)
	if speed != s.AutoRotateSpeed {
		s.AutoRotateSpeed = speed
		changed = true
	}
	y += 30

	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: w, Height: 24},
		toggleText(s.EnableZoom, "Lock zoom", "Allow zoom")) {
		s.EnableZoom = !s.EnableZoom
		changed = true
	}
	y += 30

	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: w, Height: 24},
		toggleText(s.EnablePan, "Lock pan", "Allow pan")) {
		s.EnablePan = !s.EnablePan
		changed = true
	}
	y += 30

	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: w, Height: 24},
		toggleText(s.EnableDamping, "Disable damping", "Enable damping")) {
		s.EnableDamping = !s.EnableDamping
		changed = true
	}
	y += 34

	y = r.DrawStatus(int32(x), y, "Zoom", s.EnableZoom)
	y = r.DrawStatus(int32(x), y, "Pan", s.EnablePan)
	r.DrawStatus(int32(x), y, "Damping", s.EnableDamping)

	return changed
}
