package components

import (
	"fmt"
	"sync/atomic"

	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
	"github.com/guiMendel/boteco-brawl-sub000/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Collider", func() engine.Serializable {
		return &Collider{Enabled: true, id: nextColliderID.Add(1)}
	})
}

// Density scales a collider's area into the mass of its body.
type Density uint8

const (
	DensityDefault Density = iota
	DensityLight
	DensityHeavy
)

func (d Density) Value() float32 {
	switch d {
	case DensityLight:
		return 0.5
	case DensityHeavy:
		return 4
	}
	return 1
}

func (d Density) String() string {
	switch d {
	case DensityLight:
		return "light"
	case DensityHeavy:
		return "heavy"
	}
	return "default"
}

func ParseDensity(name string) (Density, bool) {
	switch name {
	case "default", "":
		return DensityDefault, true
	case "light":
		return DensityLight, true
	case "heavy":
		return DensityHeavy, true
	}
	return DensityDefault, false
}

var nextColliderID atomic.Uint64

// Collider attaches a shape to its game object. Shape.Center is an offset in
// the owner's local space. A collider resolves its body as the nearest
// Rigidbody on its owner or any ancestor; without one it is treated as static.
type Collider struct {
	engine.BaseComponent
	Shape   geom.Shape
	Density Density
	Enabled bool

	id      uint64
	trigger bool
}

func NewCollider(shape geom.Shape, trigger bool) *Collider {
	return &Collider{
		Shape:   shape,
		Enabled: true,
		id:      nextColliderID.Add(1),
		trigger: trigger,
	}
}

func NewBoxCollider(size rl.Vector2, trigger bool) *Collider {
	return NewCollider(geom.NewRectangle(rl.Vector2{}, size.X, size.Y, 0), trigger)
}

func NewCircleCollider(radius float32, trigger bool) *Collider {
	return NewCollider(geom.NewCircle(rl.Vector2{}, radius), trigger)
}

// ID is unique per collider for the lifetime of the process.
func (c *Collider) ID() uint64 {
	return c.id
}

func (c *Collider) IsTrigger() bool {
	return c.trigger
}

// IsEnabled reports whether the collider should take part in detection.
func (c *Collider) IsEnabled() bool {
	return c.Enabled && c.Alive() && c.GetGameObject().ActiveInHierarchy()
}

func (c *Collider) Owner() *engine.GameObject {
	return c.GetGameObject()
}

// WorldShape returns the collider's shape placed in world space using the
// owner's world position, rotation and scale.
func (c *Collider) WorldShape() geom.Shape {
	obj := c.GetGameObject()
	if obj == nil {
		return c.Shape
	}
	scale := obj.WorldScale()
	rotation := obj.WorldRotation()
	offset := rl.Vector2Rotate(rl.Vector2{X: c.Shape.Center.X * scale.X, Y: c.Shape.Center.Y * scale.Y}, rotation)

	shape := c.Shape.Scaled(scale)
	shape.Center = rl.Vector2Add(obj.WorldPosition(), offset)
	shape.Rotation = c.Shape.Rotation + rotation
	return shape
}

// Rigidbody returns the body this collider belongs to, or nil if it has none.
func (c *Collider) Rigidbody() *Rigidbody {
	obj := c.GetGameObject()
	if obj == nil {
		return nil
	}
	rb, ok := engine.GetComponentInParent[*Rigidbody](obj)
	if !ok || !rb.Alive() {
		return nil
	}
	return rb
}

// BodyOwner is the object that owns this collider's body, or the collider's
// own owner when it has no body.
func (c *Collider) BodyOwner() *engine.GameObject {
	if rb := c.Rigidbody(); rb != nil {
		return rb.GetGameObject()
	}
	return c.GetGameObject()
}

func (c *Collider) String() string {
	name := "<detached>"
	if obj := c.GetGameObject(); obj != nil {
		name = obj.Name
	}
	return fmt.Sprintf("Collider#%d(%s %s)", c.id, name, c.Shape.Kind)
}

// TypeName implements engine.Serializable
func (c *Collider) TypeName() string {
	return "Collider"
}

// Serialize implements engine.Serializable
func (c *Collider) Serialize() map[string]any {
	data := map[string]any{
		"type":     "Collider",
		"shape":    c.Shape.Kind.String(),
		"offsetX":  c.Shape.Center.X,
		"offsetY":  c.Shape.Center.Y,
		"rotation": c.Shape.Rotation,
		"trigger":  c.trigger,
		"density":  c.Density.String(),
		"enabled":  c.Enabled,
	}
	if c.Shape.Kind == geom.KindCircle {
		data["radius"] = c.Shape.Radius
	} else {
		data["width"] = c.Shape.Width
		data["height"] = c.Shape.Height
	}
	return data
}

// Deserialize implements engine.Serializable. The trigger flag is only read
// here, while the collider is still being built.
func (c *Collider) Deserialize(data map[string]any) {
	var offset rl.Vector2
	offset.X, _ = engine.Float32Prop(data, "offsetX")
	offset.Y, _ = engine.Float32Prop(data, "offsetY")
	rotation, _ := engine.Float32Prop(data, "rotation")

	kind, _ := engine.StringProp(data, "shape")
	if kind == "circle" {
		radius, _ := engine.Float32Prop(data, "radius")
		c.Shape = geom.NewCircle(offset, radius)
	} else {
		width, _ := engine.Float32Prop(data, "width")
		height, _ := engine.Float32Prop(data, "height")
		c.Shape = geom.NewRectangle(offset, width, height, rotation)
	}

	if t, ok := engine.BoolProp(data, "trigger"); ok {
		c.trigger = t
	}
	if e, ok := engine.BoolProp(data, "enabled"); ok {
		c.Enabled = e
	}
	if name, ok := engine.StringProp(data, "density"); ok {
		c.Density, _ = ParseDensity(name)
	}
}
