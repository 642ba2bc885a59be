// Package geometry builds CPU-side meshes for the scene. Buffers use the flat
// layouts raylib uploads directly: xyz per vertex, uv per vertex, 16-bit indices.
package geometry

import "math"

// MaxSpriteBatch is the largest particle count whose four vertices per sprite
// still fit 16-bit indices.
const MaxSpriteBatch = 1 << 14

// Mesh holds vertex and index buffers for one draw call.
type Mesh struct {
	Vertices   []float32 // xyz
	Normals    []float32 // xyz, may be nil
	TexCoords  []float32 // uv
	TexCoords2 []float32 // uv, may be nil
	Indices    []uint16
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) addVertex(x, y, z, nx, ny, nz, u, v float32) uint16 {
	idx := uint16(m.VertexCount())
	m.Vertices = append(m.Vertices, x, y, z)
	m.Normals = append(m.Normals, nx, ny, nz)
	m.TexCoords = append(m.TexCoords, u, v)
	return idx
}

func (m *Mesh) addTriangle(a, b, c uint16) {
	m.Indices = append(m.Indices, a, b, c)
}

// Disc builds a flat disc in the XZ plane facing +Y: one center vertex and
// segments+1 rim vertices (the seam vertex is duplicated for texturing).
func Disc(radius float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}
	center := m.addVertex(0, 0, 0, 0, 1, 0, 0.5, 0.5)

	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		cos, sin := float32(math.Cos(a)), float32(math.Sin(a))
		m.addVertex(radius*cos, 0, -radius*sin, 0, 1, 0, (cos+1)/2, (sin+1)/2)
	}
	for i := 1; i <= segments; i++ {
		m.addTriangle(center, uint16(i), uint16(i+1))
	}
	return m
}

// Frustum builds a capped truncated cone centred on the origin with its axis on Y.
// rTop is the radius at y=+height/2 and rBottom at y=-height/2.
func Frustum(rTop, rBottom, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}
	half := height / 2
	slope := (rBottom - rTop) / height

	// Side: a top ring and a bottom ring with outward, slope-adjusted normals
	top := make([]uint16, segments+1)
	bottom := make([]uint16, segments+1)
	for i := 0; i <= segments; i++ {
		u := float32(i) / float32(segments)
		a := float64(u) * 2 * math.Pi
		sin, cos := float32(math.Sin(a)), float32(math.Cos(a))

		nl := float32(math.Sqrt(float64(sin*sin + slope*slope + cos*cos)))
		nx, ny, nz := sin/nl, slope/nl, cos/nl

		top[i] = m.addVertex(rTop*sin, half, rTop*cos, nx, ny, nz, u, 1)
		bottom[i] = m.addVertex(rBottom*sin, -half, rBottom*cos, nx, ny, nz, u, 0)
	}
	for i := 0; i < segments; i++ {
		m.addTriangle(top[i], bottom[i], top[i+1])
		m.addTriangle(bottom[i], bottom[i+1], top[i+1])
	}

	m.addCap(rTop, half, 1, segments)
	m.addCap(rBottom, -half, -1, segments)
	return m
}

// addCap adds a flat cap at height y facing sign*Y.
func (m *Mesh) addCap(radius, y, sign float32, segments int) {
	if radius <= 0 {
		return
	}
	center := m.addVertex(0, y, 0, 0, sign, 0, 0.5, 0.5)
	first := uint16(m.VertexCount())
	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		sin, cos := float32(math.Sin(a)), float32(math.Cos(a))
		m.addVertex(radius*sin, y, radius*cos, 0, sign, 0, (sin+1)/2, (cos+1)/2)
	}
	for i := 0; i < segments; i++ {
		a, b := first+uint16(i), first+uint16(i+1)
		if sign > 0 {
			m.addTriangle(center, a, b)
		} else {
			m.addTriangle(center, b, a)
		}
	}
}
