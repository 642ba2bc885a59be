package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blossom/geometry"
)

// gpuMesh is an uploaded mesh together with the CPU buffers backing it.
type gpuMesh struct {
	src  *geometry.Mesh
	mesh rl.Mesh
}

// uploadMesh sends a CPU mesh to the GPU. The buffers stay owned by Go and are
// pinned by raylib only for the duration of the upload.
func uploadMesh(src *geometry.Mesh) *gpuMesh {
	m := rl.Mesh{
		VertexCount:   int32(src.VertexCount()),
		TriangleCount: int32(src.TriangleCount()),
		Vertices:      first(src.Vertices),
		Normals:       first(src.Normals),
		Texcoords:     first(src.TexCoords),
		Texcoords2:    first(src.TexCoords2),
	}
	if len(src.Indices) > 0 {
		m.Indices = &src.Indices[0]
	}
	rl.UploadMesh(&m, false)
	return &gpuMesh{src: src, mesh: m}
}

func (g *gpuMesh) draw(material rl.Material, transform rl.Matrix) {
	rl.DrawMesh(g.mesh, material, transform)
}

func (g *gpuMesh) unload() {
	rl.UnloadMesh(&g.mesh)
}

func first(s []float32) *float32 {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}
