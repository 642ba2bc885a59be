// Package camera provides the perspective camera, its orbit controller and
// viewport synchronisation.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera looking at a target point.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	// Vertical field of view in radians
	Fovy   float32
	Aspect float32
	Near   float32
	Far    float32

	projection mgl32.Mat4
}

// New creates a camera and computes its projection.
func New(fovy, aspect, near, far float32, position mgl32.Vec3) *Camera {
	c := &Camera{
		Position: position,
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     fovy,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.UpdateProjection()
	return c
}

// SetAspect sets the aspect ratio and recomputes the projection.
func (c *Camera) SetAspect(aspect float32) {
	c.Aspect = aspect
	c.UpdateProjection()
}

// UpdateProjection recomputes the projection from Fovy, Aspect, Near and Far.
func (c *Camera) UpdateProjection() {
	c.projection = mgl32.Perspective(c.Fovy, c.Aspect, c.Near, c.Far)
}

// Projection returns the cached projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// LookAt points the camera at a target.
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.Target = target
}

// Distance returns the distance from the camera to its target.
func (c *Camera) Distance() float32 {
	return c.Position.Sub(c.Target).Len()
}

// Project maps a world point to normalized device coordinates.
func (c *Camera) Project(p mgl32.Vec3) mgl32.Vec3 {
	clip := c.projection.Mul4(c.View()).Mul4x1(p.Vec4(1))
	return clip.Vec3().Mul(1 / clip.W())
}
