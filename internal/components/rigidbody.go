package components

import (
	"fmt"

	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rigidbody", func() engine.Serializable {
		return NewRigidbody(KinematicsDynamic)
	})
}

// Kinematics is the simulation class of a body.
type Kinematics uint8

const (
	// KinematicsStatic bodies never move.
	KinematicsStatic Kinematics = iota
	// KinematicsKinematic bodies move by their own velocity but are never pushed.
	KinematicsKinematic
	// KinematicsDynamic bodies are fully simulated.
	KinematicsDynamic
)

func (k Kinematics) String() string {
	switch k {
	case KinematicsStatic:
		return "static"
	case KinematicsKinematic:
		return "kinematic"
	case KinematicsDynamic:
		return "dynamic"
	}
	return fmt.Sprintf("kinematics(%d)", uint8(k))
}

func ParseKinematics(name string) (Kinematics, bool) {
	switch name {
	case "static":
		return KinematicsStatic, true
	case "kinematic":
		return KinematicsKinematic, true
	case "dynamic":
		return KinematicsDynamic, true
	}
	return KinematicsStatic, false
}

type Rigidbody struct {
	engine.BaseComponent
	Kinematics   Kinematics
	Velocity     rl.Vector2
	Friction     float32 // 0 = ice, 1 = stops immediately
	Elasticity   float32 // 0 = no bounce, 1 = perfect bounce
	GravityScale float32

	// ContinuousCollisions sweeps the body between ticks so it cannot tunnel
	// through thin colliders. Honoured for dynamic bodies only.
	ContinuousCollisions bool

	mass            float32
	autoMass        bool
	lastPosition    rl.Vector2
	hasLastPosition bool
}

func NewRigidbody(kinematics Kinematics) *Rigidbody {
	return &Rigidbody{
		Kinematics:   kinematics,
		Friction:     0.1,
		GravityScale: 1,
		mass:         1,
		autoMass:     true,
	}
}

func (r *Rigidbody) Start() {
	r.RecordPosition()
	r.DeriveMass()
}

func (r *Rigidbody) IsDynamic() bool {
	return r.Kinematics == KinematicsDynamic
}

func (r *Rigidbody) Mass() float32 {
	return r.mass
}

// InverseMass is zero for anything the simulation cannot push.
func (r *Rigidbody) InverseMass() float32 {
	if r == nil || r.Kinematics != KinematicsDynamic || r.mass <= 0 {
		return 0
	}
	return 1 / r.mass
}

// SetMass overrides the derived mass until UseAutoMass is called.
func (r *Rigidbody) SetMass(mass float32) {
	if mass <= 0 {
		panic(fmt.Sprintf("rigidbody: mass must be positive, got %v", mass))
	}
	r.mass = mass
	r.autoMass = false
}

func (r *Rigidbody) UseAutoMass() {
	r.autoMass = true
	r.DeriveMass()
}

func (r *Rigidbody) AutoMass() bool {
	return r.autoMass
}

// DeriveMass recomputes an auto mass from the solid colliders that resolve to
// this body, as the sum of density times area. A body without any gets a mass of 1.
func (r *Rigidbody) DeriveMass() {
	if !r.autoMass {
		return
	}
	obj := r.GetGameObject()
	if obj == nil {
		return
	}
	var mass float32
	for _, c := range engine.GetComponentsInChildren[*Collider](obj) {
		if c.IsTrigger() || c.Rigidbody() != r {
			continue
		}
		mass += c.Density.Value() * c.WorldShape().Area()
	}
	if mass <= 0 {
		mass = 1
	}
	r.mass = mass
}

// AddImpulse changes the velocity by impulse scaled by the inverse mass.
func (r *Rigidbody) AddImpulse(impulse rl.Vector2) {
	r.Velocity = rl.Vector2Add(r.Velocity, rl.Vector2Scale(impulse, r.InverseMass()))
}

// UsesContinuousCollisions reports whether the body should be swept this tick.
func (r *Rigidbody) UsesContinuousCollisions() bool {
	return r.ContinuousCollisions && r.Kinematics == KinematicsDynamic
}

// LastPosition is the body's world position when RecordPosition last ran.
func (r *Rigidbody) LastPosition() rl.Vector2 {
	if !r.hasLastPosition {
		if obj := r.GetGameObject(); obj != nil {
			return obj.WorldPosition()
		}
	}
	return r.lastPosition
}

func (r *Rigidbody) HasLastPosition() bool {
	return r.hasLastPosition
}

func (r *Rigidbody) RecordPosition() {
	obj := r.GetGameObject()
	if obj == nil {
		return
	}
	r.lastPosition = obj.WorldPosition()
	r.hasLastPosition = true
}

// TypeName implements engine.Serializable
func (r *Rigidbody) TypeName() string {
	return "Rigidbody"
}

// Serialize implements engine.Serializable
func (r *Rigidbody) Serialize() map[string]any {
	data := map[string]any{
		"type":                 "Rigidbody",
		"kinematics":           r.Kinematics.String(),
		"friction":             r.Friction,
		"elasticity":           r.Elasticity,
		"gravityScale":         r.GravityScale,
		"continuousCollisions": r.ContinuousCollisions,
		"velocityX":            r.Velocity.X,
		"velocityY":            r.Velocity.Y,
	}
	if !r.autoMass {
		data["mass"] = r.mass
	}
	return data
}

// Deserialize implements engine.Serializable
func (r *Rigidbody) Deserialize(data map[string]any) {
	if name, ok := engine.StringProp(data, "kinematics"); ok {
		if k, ok := ParseKinematics(name); ok {
			r.Kinematics = k
		}
	}
	if f, ok := engine.Float32Prop(data, "friction"); ok {
		r.Friction = f
	}
	if e, ok := engine.Float32Prop(data, "elasticity"); ok {
		r.Elasticity = e
	}
	if g, ok := engine.Float32Prop(data, "gravityScale"); ok {
		r.GravityScale = g
	}
	if c, ok := engine.BoolProp(data, "continuousCollisions"); ok {
		r.ContinuousCollisions = c
	}
	if vx, ok := engine.Float32Prop(data, "velocityX"); ok {
		r.Velocity.X = vx
	}
	if vy, ok := engine.Float32Prop(data, "velocityY"); ok {
		r.Velocity.Y = vy
	}
	if m, ok := engine.Float32Prop(data, "mass"); ok && m > 0 {
		r.SetMass(m)
	}
}
