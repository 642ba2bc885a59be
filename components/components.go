// Package components defines ECS components for scene nodes.
package components

import "github.com/go-gl/mathgl/mgl32"

// NodeKind identifies how a scene node is drawn.
type NodeKind uint8

const (
	NodeGround NodeKind = iota // unlit disc
	NodeTrunk                  // hemisphere-lit frustum
	NodePetals                 // animated point sprites
)

// String returns a readable kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeGround:
		return "ground"
	case NodeTrunk:
		return "trunk"
	case NodePetals:
		return "petals"
	}
	return "unknown"
}

// Transform places a node in world space.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    mgl32.Vec3
}

// NewTransform returns an identity transform at the given position.
func NewTransform(x, y, z float32) Transform {
	return Transform{
		Position: mgl32.Vec3{x, y, z},
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix returns the model matrix T * Rz * Ry * Rx * S.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	m = m.Mul4(mgl32.HomogRotate3DY(t.Rotation.Y()))
	m = m.Mul4(mgl32.HomogRotate3DX(t.Rotation.X()))
	return m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Renderable marks a node as drawable.
type Renderable struct {
	Kind    NodeKind
	Color   [3]float32 // base color, linear RGB
	Visible bool
}
