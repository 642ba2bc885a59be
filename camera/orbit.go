package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// minPolarEps keeps the orbit off the poles so LookAt never degenerates.
const minPolarEps = 1e-6

// Input is one frame of pointer input for the orbit controller.
type Input struct {
	Dragging    bool       // a rotate or pan drag is in progress
	RotateDelta mgl32.Vec2 // pixels moved with the rotate button held
	PanDelta    mgl32.Vec2 // pixels moved with the pan button held
	Wheel       float32    // wheel notches, positive = away from user
}

// Orbit moves a camera on a sphere around a target point.
type Orbit struct {
	Target mgl32.Vec3

	EnableRotate    bool
	EnablePan       bool
	EnableZoom      bool
	AutoRotate      bool
	AutoRotateSpeed float32 // 1.0 = one full turn per 60 seconds
	EnableDamping   bool
	DampingFactor   float32
	RotateSpeed     float32
	ZoomSpeed       float32
	PanSpeed        float32

	MinDistance float32
	MaxDistance float32 // 0 = unbounded
	MinPolar    float32
	MaxPolar    float32

	camera *Camera

	// Pending motion accumulated from input and auto-rotation
	deltaTheta float32
	deltaPhi   float32
	scale      float32
	panOffset  mgl32.Vec3
	dragging   bool
}

// NewOrbit attaches an orbit controller to a camera. Defaults allow rotation only.
func NewOrbit(cam *Camera, target mgl32.Vec3) *Orbit {
	o := &Orbit{
		Target:          target,
		EnableRotate:    true,
		EnablePan:       true,
		EnableZoom:      true,
		AutoRotateSpeed: 2.0,
		DampingFactor:   0.05,
		RotateSpeed:     1.0,
		ZoomSpeed:       1.0,
		PanSpeed:        1.0,
		MinPolar:        0,
		MaxPolar:        math.Pi,
		camera:          cam,
		scale:           1,
	}
	cam.LookAt(target)
	return o
}

// Camera returns the controlled camera.
func (o *Orbit) Camera() *Camera {
	return o.camera
}

// HandleInput accumulates one frame of pointer input. viewportHeight converts pixel
// deltas into angles and distances.
func (o *Orbit) HandleInput(in Input, viewportHeight int) {
	o.dragging = in.Dragging
	if viewportHeight <= 0 {
		return
	}
	h := float32(viewportHeight)

	if o.EnableRotate && (in.RotateDelta.X() != 0 || in.RotateDelta.Y() != 0) {
		o.rotateLeft(2 * math.Pi * in.RotateDelta.X() / h * o.RotateSpeed)
		o.rotateUp(2 * math.Pi * in.RotateDelta.Y() / h * o.RotateSpeed)
	}

	if o.EnableZoom && in.Wheel != 0 {
		step := float32(math.Pow(0.95, float64(o.ZoomSpeed)))
		if in.Wheel > 0 {
			o.scale *= pow32(step, in.Wheel)
		} else {
			o.scale /= pow32(step, -in.Wheel)
		}
	}

	if o.EnablePan && (in.PanDelta.X() != 0 || in.PanDelta.Y() != 0) {
		o.pan(in.PanDelta.X(), in.PanDelta.Y(), h)
	}
}

// Update applies pending motion plus auto-rotation for a frame of dt seconds and
// moves the camera.
func (o *Orbit) Update(dt float32) {
	cam := o.camera
	offset := cam.Position.Sub(o.Target)

	radius := offset.Len()
	var theta, phi float32
	if radius > 0 {
		theta = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
		phi = float32(math.Acos(float64(mgl32.Clamp(offset.Y()/radius, -1, 1))))
	}

	if o.AutoRotate && !o.dragging {
		o.rotateLeft(o.autoRotationAngle(dt))
	}

	if o.EnableDamping {
		theta += o.deltaTheta * o.DampingFactor
		phi += o.deltaPhi * o.DampingFactor
		o.Target = o.Target.Add(o.panOffset.Mul(o.DampingFactor))
	} else {
		theta += o.deltaTheta
		phi += o.deltaPhi
		o.Target = o.Target.Add(o.panOffset)
	}

	phi = mgl32.Clamp(phi, o.MinPolar, o.MaxPolar)
	phi = mgl32.Clamp(phi, minPolarEps, math.Pi-minPolarEps)

	radius = o.clampDistance(radius * o.scale)

	sinPhi := float32(math.Sin(float64(phi)))
	offset = mgl32.Vec3{
		radius * sinPhi * float32(math.Sin(float64(theta))),
		radius * float32(math.Cos(float64(phi))),
		radius * sinPhi * float32(math.Cos(float64(theta))),
	}
	cam.Position = o.Target.Add(offset)
	cam.LookAt(o.Target)

	if o.EnableDamping {
		o.deltaTheta *= 1 - o.DampingFactor
		o.deltaPhi *= 1 - o.DampingFactor
		o.panOffset = o.panOffset.Mul(1 - o.DampingFactor)
	} else {
		o.deltaTheta = 0
		o.deltaPhi = 0
		o.panOffset = mgl32.Vec3{}
	}
	o.scale = 1
}

// Azimuth returns the camera's current angle around the target's vertical axis.
func (o *Orbit) Azimuth() float32 {
	off := o.camera.Position.Sub(o.Target)
	return float32(math.Atan2(float64(off.X()), float64(off.Z())))
}

func (o *Orbit) autoRotationAngle(dt float32) float32 {
	return 2 * math.Pi / 60 * o.AutoRotateSpeed * dt
}

func (o *Orbit) rotateLeft(angle float32) {
	o.deltaTheta -= angle
}

func (o *Orbit) rotateUp(angle float32) {
	o.deltaPhi -= angle
}

// pan shifts the target in the camera's screen plane so that a drag of dx,dy pixels
// moves the scene by the same amount at the target's depth.
func (o *Orbit) pan(dx, dy, viewportHeight float32) {
	cam := o.camera
	dist := cam.Distance() * float32(math.Tan(float64(cam.Fovy/2)))
	view := cam.View()
	right := mgl32.Vec3{view.At(0, 0), view.At(0, 1), view.At(0, 2)}
	up := mgl32.Vec3{view.At(1, 0), view.At(1, 1), view.At(1, 2)}

	left := right.Mul(-2 * dx * dist / viewportHeight * o.PanSpeed)
	upward := up.Mul(2 * dy * dist / viewportHeight * o.PanSpeed)
	o.panOffset = o.panOffset.Add(left).Add(upward)
}

func (o *Orbit) clampDistance(d float32) float32 {
	if d < o.MinDistance {
		d = o.MinDistance
	}
	if o.MaxDistance > 0 && d > o.MaxDistance {
		d = o.MaxDistance
	}
	return d
}

func pow32(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
