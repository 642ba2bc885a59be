package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/blossom/components"
	"github.com/pthm-cable/blossom/config"
)

// Scene is the scene graph: an ECS world whose entities are drawable nodes.
type Scene struct {
	world  *ecs.World
	nodes  *ecs.Map2[components.Transform, components.Renderable]
	filter *ecs.Filter2[components.Transform, components.Renderable]

	Background [3]float32
}

// NewScene creates an empty scene with a white background.
func NewScene() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:      world,
		nodes:      ecs.NewMap2[components.Transform, components.Renderable](world),
		filter:     ecs.NewFilter2[components.Transform, components.Renderable](world),
		Background: [3]float32{1, 1, 1},
	}
}

// Add inserts a node and returns its entity.
func (s *Scene) Add(t components.Transform, r components.Renderable) ecs.Entity {
	return s.nodes.NewEntity(&t, &r)
}

// Remove deletes a node. Removing a dead entity is a no-op.
func (s *Scene) Remove(e ecs.Entity) {
	if !s.world.Alive(e) {
		return
	}
	s.world.RemoveEntity(e)
}

// Node returns the components of an entity.
func (s *Scene) Node(e ecs.Entity) (*components.Transform, *components.Renderable, bool) {
	if !s.world.Alive(e) {
		return nil, nil, false
	}
	t, r := s.nodes.Get(e)
	return t, r, true
}

// Each calls fn for every node in insertion order.
func (s *Scene) Each(fn func(e ecs.Entity, t *components.Transform, r *components.Renderable)) {
	query := s.filter.Query()
	for query.Next() {
		t, r := query.Get()
		fn(query.Entity(), t, r)
	}
}

// Len returns the number of nodes.
func (s *Scene) Len() int {
	n := 0
	s.Each(func(ecs.Entity, *components.Transform, *components.Renderable) { n++ })
	return n
}

// Find returns the first node of the given kind.
func (s *Scene) Find(kind components.NodeKind) (ecs.Entity, bool) {
	var found ecs.Entity
	ok := false
	s.Each(func(e ecs.Entity, _ *components.Transform, r *components.Renderable) {
		if !ok && r.Kind == kind {
			found = e
			ok = true
		}
	})
	return found, ok
}

// BuildScene assembles the ground, trunk and petal nodes from config.
func BuildScene(cfg *config.Config) *Scene {
	s := NewScene()
	s.Background = cfg.Scene.Background.Floats()

	// Disc geometry is generated lying flat in the XZ plane.
	ground := components.NewTransform(0, 0, 0)
	s.Add(ground, components.Renderable{
		Kind:    components.NodeGround,
		Color:   cfg.Scene.GroundColor.Floats(),
		Visible: true,
	})

	trunk := components.NewTransform(0, float32(cfg.Scene.TrunkHeight/2), 0)
	s.Add(trunk, components.Renderable{
		Kind:    components.NodeTrunk,
		Color:   cfg.Scene.TrunkColor.Floats(),
		Visible: true,
	})

	petals := components.NewTransform(0, 0, 0)
	s.Add(petals, components.Renderable{
		Kind:    components.NodePetals,
		Color:   [3]float32{1, 1, 1},
		Visible: true,
	})

	return s
}

// FieldParamsFromConfig maps the petals section to generator parameters.
func FieldParamsFromConfig(cfg *config.Config) FieldParams {
	p := FieldParams{
		Count:     cfg.Petals.Count,
		Radius:    float32(cfg.Petals.Radius),
		MaxHeight: float32(cfg.Petals.MaxHeight),
		MaxOffset: float32(cfg.Petals.MaxOffset),
	}
	if cfg.Petals.AreaUniform {
		p.Distribution = DistributionAreaUniform
	}
	return p
}

// PetalParamsFromConfig maps the petals section to animation constants.
func PetalParamsFromConfig(cfg *config.Config) PetalParams {
	return PetalParams{
		CycleRate:   cfg.Petals.CycleRate,
		RiseHeight:  cfg.Petals.RiseHeight,
		BloomStart:  cfg.Petals.BloomStart,
		BloomEnd:    cfg.Petals.BloomEnd,
		BloomSpread: cfg.Petals.BloomSpread,
		Size:        cfg.Petals.Size,
		ColorStart:  cfg.Petals.ColorStart,
		ColorEnd:    cfg.Petals.ColorEnd,
	}
}
