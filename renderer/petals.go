package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blossom/geometry"
	"github.com/pthm-cable/blossom/systems"
)

// PetalRenderer draws the particle field with the petal program. Animation
// constants are uploaded once at Init; SetTime is the only per-frame write.
type PetalRenderer struct {
	params  systems.PetalParams
	batches []*geometry.Mesh

	shader   rl.Shader
	material rl.Material
	uniforms *uniforms
	meshes   []*gpuMesh

	time        float32
	initialized bool
}

// NewPetalRenderer expands the field into sprite batches. GPU resources are
// created by Init.
func NewPetalRenderer(field *systems.Field, params systems.PetalParams) *PetalRenderer {
	return &PetalRenderer{
		params:  params,
		batches: geometry.SpriteBatches(field, geometry.MaxSpriteBatch),
	}
}

// Init compiles the program, uploads the constant uniforms and the sprite batches
// (must be called after the window is created).
func (p *PetalRenderer) Init() error {
	if p.initialized {
		return nil
	}
	shader, err := loadShader("petal", petalVS, petalFS)
	if err != nil {
		return err
	}
	p.shader = shader
	p.uniforms = newUniforms(shader,
		uniformTime, uniformCycleRate, uniformRiseHeight,
		uniformBloomStart, uniformBloomEnd, uniformBloomSpread,
		uniformSize, uniformColorStart, uniformColorEnd,
	)

	u := p.uniforms
	u.setFloat(uniformCycleRate, float32(p.params.CycleRate))
	u.setFloat(uniformRiseHeight, float32(p.params.RiseHeight))
	u.setFloat(uniformBloomStart, float32(p.params.BloomStart))
	u.setFloat(uniformBloomEnd, float32(p.params.BloomEnd))
	u.setFloat(uniformBloomSpread, float32(p.params.BloomSpread))
	u.setFloat(uniformSize, float32(p.params.Size))
	u.setVec3(uniformColorStart, floats32(p.params.ColorStart))
	u.setVec3(uniformColorEnd, floats32(p.params.ColorEnd))
	u.setFloat(uniformTime, p.time)

	p.material = rl.LoadMaterialDefault()
	p.material.Shader = shader

	p.meshes = make([]*gpuMesh, len(p.batches))
	for i, b := range p.batches {
		p.meshes[i] = uploadMesh(b)
	}

	p.initialized = true
	return nil
}

// SetTime writes the elapsed time uniform.
func (p *PetalRenderer) SetTime(t float32) {
	p.time = t
	if p.initialized {
		p.uniforms.setFloat(uniformTime, t)
	}
}

// Time returns the last time written.
func (p *PetalRenderer) Time() float32 {
	return p.time
}

// Count returns the number of sprites drawn.
func (p *PetalRenderer) Count() int {
	n := 0
	for _, b := range p.batches {
		n += b.VertexCount() / 4
	}
	return n
}

// Draw renders every batch. Quads are drawn double-sided.
func (p *PetalRenderer) Draw(model rl.Matrix) {
	if !p.initialized {
		return
	}
	rl.DisableBackfaceCulling()
	for _, m := range p.meshes {
		m.draw(p.material, model)
	}
	rl.EnableBackfaceCulling()
}

// Unload frees resources.
func (p *PetalRenderer) Unload() {
	if p.initialized {
		for _, m := range p.meshes {
			m.unload()
		}
		p.meshes = nil
		rl.UnloadMaterial(p.material)
		p.initialized = false
	}
}
