package world

import (
	"fmt"

	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
	"github.com/guiMendel/boteco-brawl-sub000/internal/config"
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
	"github.com/guiMendel/boteco-brawl-sub000/internal/physics"
)

// World ties a scene to the physics world simulating it.
type World struct {
	Scene      *engine.Scene
	Physics    *physics.World
	Simulation *Simulation
	config     config.Physics
}

func New(cfg config.Physics) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics config: %w", err)
	}
	return &World{
		Scene:      engine.NewScene("Main"),
		Physics:    physics.NewWorld(cfg.WorldConfig()),
		Simulation: NewSimulation(cfg.Timestep, cfg.MaxSubsteps),
		config:     cfg,
	}, nil
}

func (w *World) Config() config.Physics {
	return w.config
}

// ApplyConfig swaps in new physics settings. An injected random source
// survives the swap. Call it between frames, never from a callback.
func (w *World) ApplyConfig(cfg config.Physics) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("physics config: %w", err)
	}
	worldConfig := cfg.WorldConfig()
	worldConfig.Rand = w.Physics.Config().Rand
	w.Physics.Configure(worldConfig)
	w.Simulation.Timestep = cfg.Timestep
	w.Simulation.MaxSubsteps = cfg.MaxSubsteps
	w.config = cfg
	return nil
}

// Spawn adds g and its descendants to the scene, starts them and registers
// their colliders. During a physics step the work waits for the step to end.
func (w *World) Spawn(g *engine.GameObject) {
	w.Physics.Defer(func() {
		w.addHierarchy(g)
		w.startHierarchy(g)
		w.Physics.RegisterObject(g)
	})
}

func (w *World) addHierarchy(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	for _, child := range g.Children {
		w.addHierarchy(child)
	}
}

func (w *World) startHierarchy(g *engine.GameObject) {
	g.Start()
	for _, child := range g.Children {
		w.startHierarchy(child)
	}
}

// Destroy removes g from the scene. Its colliders are dropped from the
// physics registry right away when g owns a body, and otherwise pruned on the
// next step.
func (w *World) Destroy(g *engine.GameObject) {
	w.Physics.Defer(func() {
		if engine.GetComponent[*components.Rigidbody](g) != nil {
			w.Physics.UnregisterColliders(g.UID)
		}
		w.Scene.Destroy(g)
	})
}

// Update advances the simulation by a frame's worth of fixed ticks and
// returns how many ran.
func (w *World) Update(frameTime float32) int {
	return w.Simulation.Advance(frameTime, w.tick)
}

func (w *World) tick(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Physics.Step(deltaTime)
}
