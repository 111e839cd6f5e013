package physics

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultCastStep       = 0.05
	DefaultFrictionCutoff = 0.01
)

// DefaultGravity points down the screen.
var DefaultGravity = rl.Vector2{X: 0, Y: 25}

// Config carries everything a World needs that used to be global state.
type Config struct {
	Gravity rl.Vector2
	// Layers decides which layers may collide. Nil means everything collides.
	Layers *LayerMatrix
	// Rand orders kinematic and dynamic owners each tick. When nil the world
	// reseeds its own source from the clock every tick.
	Rand *rand.Rand
	// CastStep is the marching distance of raycasts and collider casts. It
	// must stay below the smallest collider dimension in the scene.
	CastStep float32
	// FrictionCutoff is the speed under which friction stops a body outright.
	FrictionCutoff float32
}

func DefaultConfig() Config {
	return Config{
		Gravity:        DefaultGravity,
		Layers:         NewLayerMatrix(),
		CastStep:       DefaultCastStep,
		FrictionCutoff: DefaultFrictionCutoff,
	}
}

// World owns the collider registry and runs the fixed-timestep simulation.
type World struct {
	config   Config
	registry *Registry
	rng      *rand.Rand
	reseed   bool

	tick      uint64
	deltaTime float32
	stepping  bool
	deferred  []func()

	resolved     map[PairKey]bool
	contacts     map[PairKey]CollisionData
	lastContacts map[PairKey]CollisionData
	overlaps     map[PairKey]TriggerCollisionData
	lastOverlaps map[PairKey]TriggerCollisionData

	// Resolved fires for every contact after it has been resolved.
	Resolved engine.EventWithArg[CollisionData]
}

func NewWorld(cfg Config) *World {
	w := &World{
		registry:     NewRegistry(),
		resolved:     make(map[PairKey]bool),
		contacts:     make(map[PairKey]CollisionData),
		lastContacts: make(map[PairKey]CollisionData),
		overlaps:     make(map[PairKey]TriggerCollisionData),
		lastOverlaps: make(map[PairKey]TriggerCollisionData),
	}
	w.Configure(cfg)
	return w
}

// Configure replaces the world's settings. It must not be called mid-step.
func (w *World) Configure(cfg Config) {
	w.mustNotBeStepping("Configure")
	if cfg.Layers == nil {
		cfg.Layers = NewLayerMatrix()
	}
	if cfg.CastStep <= 0 {
		cfg.CastStep = DefaultCastStep
	}
	if cfg.FrictionCutoff < 0 {
		cfg.FrictionCutoff = 0
	}
	w.config = cfg
	w.rng = cfg.Rand
	w.reseed = cfg.Rand == nil
	if w.reseed {
		w.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
}

func (w *World) Config() Config {
	return w.config
}

func (w *World) Layers() *LayerMatrix {
	return w.config.Layers
}

// Tick is the number of completed or in-progress steps.
func (w *World) Tick() uint64 {
	return w.tick
}

// RegisterCollider adds a collider under the given owner ID.
func (w *World) RegisterCollider(collider *components.Collider, ownerID uint64) {
	w.mustNotBeStepping("RegisterCollider")
	w.registry.Register(collider, ownerID)
}

// UnregisterColliders removes every collider registered under ownerID.
func (w *World) UnregisterColliders(ownerID uint64) {
	w.mustNotBeStepping("UnregisterColliders")
	w.registry.Unregister(ownerID)
}

// RegisterObject registers every collider in obj's hierarchy, each under the
// UID of the object owning its body.
func (w *World) RegisterObject(obj *engine.GameObject) {
	for _, c := range engine.GetComponentsInChildren[*components.Collider](obj) {
		w.RegisterCollider(c, c.BodyOwner().UID)
	}
}

// Colliders returns every live registered collider, triggers included.
func (w *World) Colliders() []*components.Collider {
	var all []*components.Collider
	for _, group := range w.registry.snapshot() {
		all = append(all, group.Colliders...)
	}
	return append(all, w.registry.liveTriggers()...)
}

// Contacts returns the solid contacts resolved during the last step.
func (w *World) Contacts() []CollisionData {
	contacts := make([]CollisionData, 0, len(w.contacts))
	for _, data := range w.contacts {
		contacts = append(contacts, data)
	}
	return contacts
}

// Defer runs fn once the current step finishes, or right away between steps.
// Collision callbacks use it to create or destroy colliders safely.
func (w *World) Defer(fn func()) {
	if !w.stepping {
		fn()
		return
	}
	w.deferred = append(w.deferred, fn)
}

// Step advances the simulation by one fixed tick.
func (w *World) Step(deltaTime float32) {
	w.mustNotBeStepping("Step")
	w.stepping = true
	w.tick++
	w.deltaTime = deltaTime

	if w.reseed {
		w.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), w.tick))
	}

	w.lastContacts, w.contacts = w.contacts, make(map[PairKey]CollisionData)
	w.lastOverlaps, w.overlaps = w.overlaps, make(map[PairKey]TriggerCollisionData)
	clear(w.resolved)

	p := w.registry.validate(w.rng)
	w.integrate(p, deltaTime)
	w.detect(p)
	w.detectTriggers(p)
	w.dispatchExits()

	for _, group := range p.dynamic {
		group.Body.RecordPosition()
	}
	for _, group := range p.kinematic {
		group.Body.RecordPosition()
	}

	w.stepping = false
	w.runDeferred()
}

func (w *World) integrate(p partition, deltaTime float32) {
	for _, group := range p.dynamic {
		body := group.Body
		body.Velocity = rl.Vector2Add(body.Velocity, rl.Vector2Scale(w.config.Gravity, body.GravityScale*deltaTime))
		group.Owner.Translate(rl.Vector2Scale(body.Velocity, deltaTime))
	}
	for _, group := range p.kinematic {
		group.Owner.Translate(rl.Vector2Scale(group.Body.Velocity, deltaTime))
	}
}

// detect runs the solid narrow phase. Every dynamic owner is visited once,
// in the order validate shuffled them into.
func (w *World) detect(p partition) {
	nonDynamic := make([]ColliderGroup, 0, len(p.static)+len(p.kinematic))
	nonDynamic = append(nonDynamic, p.static...)
	nonDynamic = append(nonDynamic, p.kinematic...)

	for i, group := range p.dynamic {
		group.mustNotBeEmpty()

		if group.Body.UsesContinuousCollisions() && w.sweep(group, p.dynamic, nonDynamic) {
			continue
		}

		for _, other := range p.dynamic[i+1:] {
			if data, ok := w.checkGroups(group, other, true); ok {
				w.Resolve(data)
			}
		}
		for _, other := range nonDynamic {
			if data, ok := w.checkGroups(group, other, true); ok {
				w.Resolve(data)
			}
		}
	}
}

func (w *World) checkGroups(a, b ColliderGroup, commit bool) (CollisionData, bool) {
	b.mustNotBeEmpty()
	return w.checkPlaced(placeAll(a.Colliders), placeAll(b.Colliders), commit)
}

func (w *World) dispatchExits() {
	for key, data := range w.lastContacts {
		if _, ok := w.contacts[key]; ok {
			continue
		}
		if _, ok := w.contacts[key.Inverse()]; ok {
			continue
		}
		notifyCollisionExit(data)
		notifyCollisionExit(data.Inverse())
	}
	for key, data := range w.lastOverlaps {
		if _, ok := w.overlaps[key]; ok {
			continue
		}
		if _, ok := w.overlaps[key.Inverse()]; ok {
			continue
		}
		notifyTriggerExit(data)
		notifyTriggerExit(data.Inverse())
	}
}

func (w *World) runDeferred() {
	for len(w.deferred) > 0 {
		pending := w.deferred
		w.deferred = nil
		for _, fn := range pending {
			fn()
		}
	}
}

func (w *World) mustNotBeStepping(op string) {
	if w.stepping {
		panic(fmt.Sprintf("physics: %s called during a step; use World.Defer", op))
	}
}

// LogStats prints registry occupancy, for tools.
func (w *World) LogStats() {
	solid, triggers := w.registry.Len()
	log.Printf("Physics: tick %d, %d solid colliders, %d triggers, %d contacts", w.tick, solid, triggers, len(w.contacts))
}
