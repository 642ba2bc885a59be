package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/blossom/camera"
	"github.com/pthm-cable/blossom/components"
	"github.com/pthm-cable/blossom/config"
	"github.com/pthm-cable/blossom/systems"
)

// SceneRenderer draws every visible scene node through the camera.
type SceneRenderer struct {
	scene  *systems.Scene
	camera *camera.Camera

	Ground *GroundRenderer
	Trunk  *TrunkRenderer
	Petals *PetalRenderer
}

// NewSceneRenderer creates the node renderers from config. GPU resources are
// created by Init.
func NewSceneRenderer(cfg *config.Config, scene *systems.Scene, cam *camera.Camera, field *systems.Field) *SceneRenderer {
	sc := cfg.Scene
	light := HemisphereLight{
		Sky:       cfg.Light.Sky.Floats(),
		Ground:    cfg.Light.Ground.Floats(),
		Intensity: float32(cfg.Light.Intensity),
	}
	return &SceneRenderer{
		scene:  scene,
		camera: cam,
		Ground: NewGroundRenderer(float32(sc.GroundRadius), sc.GroundSegments),
		Trunk: NewTrunkRenderer(float32(sc.TrunkTop), float32(sc.TrunkBottom),
			float32(sc.TrunkHeight), sc.TrunkSegments, light),
		Petals: NewPetalRenderer(field, systems.PetalParamsFromConfig(cfg)),
	}
}

// Init initializes all node renderers (must be called after the window is created).
func (r *SceneRenderer) Init() error {
	if err := r.Ground.Init(); err != nil {
		return err
	}
	if err := r.Trunk.Init(); err != nil {
		return err
	}
	return r.Petals.Init()
}

// Draw clears to the scene background and draws all visible nodes.
func (r *SceneRenderer) Draw() {
	rl.ClearBackground(toColor(r.scene.Background))

	cam := r.camera
	rl.BeginMode3D(rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         toVector3(cam.Up),
		Fovy:       mgl32.RadToDeg(cam.Fovy),
		Projection: rl.CameraPerspective,
	})
	// BeginMode3D uses raylib's own clip planes; replace both matrices with the camera's
	rl.SetMatrixProjection(toMatrix(cam.Projection()))
	rl.SetMatrixModelview(toMatrix(cam.View()))

	r.scene.Each(func(_ ecs.Entity, t *components.Transform, n *components.Renderable) {
		if !n.Visible {
			return
		}
		model := toMatrix(t.Matrix())
		switch n.Kind {
		case components.NodeGround:
			r.Ground.Draw(model, n.Color)
		case components.NodeTrunk:
			r.Trunk.Draw(model, n.Color)
		case components.NodePetals:
			r.Petals.Draw(model)
		}
	})

	rl.EndMode3D()
}

// Unload frees all GPU resources.
func (r *SceneRenderer) Unload() {
	r.Ground.Unload()
	r.Trunk.Unload()
	r.Petals.Unload()
}
