package renderer

import (
	_ "embed"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed shaders/petal.vs
var petalVS string

//go:embed shaders/petal.fs
var petalFS string

//go:embed shaders/hemisphere.vs
var hemisphereVS string

//go:embed shaders/hemisphere.fs
var hemisphereFS string

//go:embed shaders/basic.vs
var basicVS string

//go:embed shaders/basic.fs
var basicFS string

// Uniform names shared between the programs and the renderers.
const (
	uniformTime        = "time"
	uniformCycleRate   = "cycleRate"
	uniformRiseHeight  = "riseHeight"
	uniformBloomStart  = "bloomStart"
	uniformBloomEnd    = "bloomEnd"
	uniformBloomSpread = "bloomSpread"
	uniformSize        = "size"
	uniformColorStart  = "colorStart"
	uniformColorEnd    = "colorEnd"
	uniformBaseColor   = "baseColor"
	uniformSkyColor    = "skyColor"
	uniformGroundColor = "groundColor"
	uniformIntensity   = "intensity"
)

// loadShader compiles a program from embedded sources.
func loadShader(name, vs, fs string) (rl.Shader, error) {
	shader := rl.LoadShaderFromMemory(vs, fs)
	if !rl.IsShaderValid(shader) {
		return shader, fmt.Errorf("compiling %s shader failed", name)
	}
	return shader, nil
}

// uniforms caches uniform locations of one shader.
type uniforms struct {
	shader rl.Shader
	locs   map[string]int32
}

func newUniforms(shader rl.Shader, names ...string) *uniforms {
	u := &uniforms{shader: shader, locs: make(map[string]int32, len(names))}
	for _, name := range names {
		u.locs[name] = rl.GetShaderLocation(shader, name)
	}
	return u
}

func (u *uniforms) setFloat(name string, v float32) {
	rl.SetShaderValue(u.shader, u.locs[name], []float32{v}, rl.ShaderUniformFloat)
}

func (u *uniforms) setVec3(name string, v [3]float32) {
	rl.SetShaderValue(u.shader, u.locs[name], v[:], rl.ShaderUniformVec3)
}
