package physics

import (
	"math/rand/v2"

	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestWorld(seed uint64) *World {
	cfg := DefaultConfig()
	cfg.Gravity = rl.Vector2{}
	cfg.Rand = rand.New(rand.NewPCG(seed, seed+1))
	return NewWorld(cfg)
}

// newBox creates an object with a box collider and, unless kinematics is
// nil, a rigidbody, and registers it with w.
func newBox(w *World, name string, pos, size rl.Vector2, kinematics *components.Kinematics) (*engine.GameObject, *components.Rigidbody, *components.Collider) {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos

	var rb *components.Rigidbody
	if kinematics != nil {
		rb = components.NewRigidbody(*kinematics)
		rb.Friction = 0
		obj.AddComponent(rb)
	}
	c := components.NewBoxCollider(size, false)
	obj.AddComponent(c)
	if w != nil {
		w.RegisterCollider(c, obj.UID)
	}
	return obj, rb, c
}

func newTrigger(w *World, name string, pos, size rl.Vector2) (*engine.GameObject, *components.Collider) {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	c := components.NewBoxCollider(size, true)
	obj.AddComponent(c)
	if w != nil {
		w.RegisterCollider(c, obj.UID)
	}
	return obj, c
}

func kind(k components.Kinematics) *components.Kinematics {
	return &k
}

var (
	dynamic   = kind(components.KinematicsDynamic)
	kinematic = kind(components.KinematicsKinematic)
	static    = kind(components.KinematicsStatic)
)

// recorder counts every callback it receives.
type recorder struct {
	engine.BaseComponent
	enter, stay, exit                      int
	triggerEnter, triggerStay, triggerExit int
	collisions                             []CollisionData
	triggers                               []TriggerCollisionData
	onCollision                            func(CollisionData)
}

func (r *recorder) OnCollisionEnter(data CollisionData) { r.enter++ }

func (r *recorder) OnCollision(data CollisionData) {
	r.stay++
	r.collisions = append(r.collisions, data)
	if r.onCollision != nil {
		r.onCollision(data)
	}
}

func (r *recorder) OnCollisionExit(data CollisionData) { r.exit++ }

func (r *recorder) OnTriggerCollisionEnter(data TriggerCollisionData) { r.triggerEnter++ }

func (r *recorder) OnTriggerCollision(data TriggerCollisionData) {
	r.triggerStay++
	r.triggers = append(r.triggers, data)
}

func (r *recorder) OnTriggerCollisionExit(data TriggerCollisionData) { r.triggerExit++ }

func attachRecorder(obj *engine.GameObject) *recorder {
	r := &recorder{}
	obj.AddComponent(r)
	return r
}
