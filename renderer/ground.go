package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blossom/geometry"
)

// GroundRenderer draws the unlit ground disc.
type GroundRenderer struct {
	radius   float32
	segments int

	shader   rl.Shader
	material rl.Material
	uniforms *uniforms
	mesh     *gpuMesh

	initialized bool
}

// NewGroundRenderer creates a ground renderer.
func NewGroundRenderer(radius float32, segments int) *GroundRenderer {
	return &GroundRenderer{radius: radius, segments: segments}
}

// Init loads the shader and uploads the disc (must be called after the window is created).
func (g *GroundRenderer) Init() error {
	if g.initialized {
		return nil
	}
	shader, err := loadShader("ground", basicVS, basicFS)
	if err != nil {
		return err
	}
	g.shader = shader
	g.uniforms = newUniforms(shader, uniformBaseColor)
	g.material = rl.LoadMaterialDefault()
	g.material.Shader = shader
	g.mesh = uploadMesh(geometry.Disc(g.radius, g.segments))

	g.initialized = true
	return nil
}

// Draw renders the disc with the given model matrix and color.
func (g *GroundRenderer) Draw(model rl.Matrix, color [3]float32) {
	if !g.initialized {
		return
	}
	g.uniforms.setVec3(uniformBaseColor, color)
	g.mesh.draw(g.material, model)
}

// Unload frees resources.
func (g *GroundRenderer) Unload() {
	if g.initialized {
		g.mesh.unload()
		rl.UnloadMaterial(g.material)
		g.initialized = false
	}
}
