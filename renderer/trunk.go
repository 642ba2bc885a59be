package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blossom/geometry"
)

// HemisphereLight is a two-color ambient light: sky color from above, ground
// color from below.
type HemisphereLight struct {
	Sky       [3]float32
	Ground    [3]float32
	Intensity float32
}

// TrunkRenderer draws the tapered trunk lit by a hemisphere light.
type TrunkRenderer struct {
	rTop, rBottom, height float32
	segments              int
	light                 HemisphereLight

	shader   rl.Shader
	material rl.Material
	uniforms *uniforms
	mesh     *gpuMesh

	initialized bool
}

// NewTrunkRenderer creates a trunk renderer.
func NewTrunkRenderer(rTop, rBottom, height float32, segments int, light HemisphereLight) *TrunkRenderer {
	return &TrunkRenderer{
		rTop:     rTop,
		rBottom:  rBottom,
		height:   height,
		segments: segments,
		light:    light,
	}
}

// Init loads the shader, uploads light uniforms and the frustum mesh.
func (t *TrunkRenderer) Init() error {
	if t.initialized {
		return nil
	}
	shader, err := loadShader("trunk", hemisphereVS, hemisphereFS)
	if err != nil {
		return err
	}
	t.shader = shader
	t.uniforms = newUniforms(shader, uniformBaseColor, uniformSkyColor, uniformGroundColor, uniformIntensity)
	t.uniforms.setVec3(uniformSkyColor, t.light.Sky)
	t.uniforms.setVec3(uniformGroundColor, t.light.Ground)
	t.uniforms.setFloat(uniformIntensity, t.light.Intensity)

	t.material = rl.LoadMaterialDefault()
	t.material.Shader = shader
	t.mesh = uploadMesh(geometry.Frustum(t.rTop, t.rBottom, t.height, t.segments))

	t.initialized = true
	return nil
}

// Draw renders the trunk.
func (t *TrunkRenderer) Draw(model rl.Matrix, color [3]float32) {
	if !t.initialized {
		return
	}
	t.uniforms.setVec3(uniformBaseColor, color)
	t.mesh.draw(t.material, model)
}

// Unload frees resources.
func (t *TrunkRenderer) Unload() {
	if t.initialized {
		t.mesh.unload()
		rl.UnloadMaterial(t.material)
		t.initialized = false
	}
}
