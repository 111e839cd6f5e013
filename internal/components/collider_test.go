package components

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
	"github.com/guiMendel/boteco-brawl-sub000/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColliderIDsAreUnique(t *testing.T) {
	a := NewBoxCollider(rl.Vector2{X: 1, Y: 1}, false)
	b := NewBoxCollider(rl.Vector2{X: 1, Y: 1}, false)

	if a.ID() == b.ID() {
		t.Errorf("Expected unique collider IDs, got %d twice", a.ID())
	}
}

func TestColliderTriggerFlag(t *testing.T) {
	solid := NewCircleCollider(1, false)
	trigger := NewCircleCollider(1, true)

	assert.False(t, solid.IsTrigger())
	assert.True(t, trigger.IsTrigger())
}

func TestColliderIsEnabled(t *testing.T) {
	parent := engine.NewGameObject("Parent")
	child := engine.NewGameObject("Child")
	parent.AddChild(child)

	c := NewBoxCollider(rl.Vector2{X: 1, Y: 1}, false)
	child.AddComponent(c)
	assert.True(t, c.IsEnabled())

	c.Enabled = false
	assert.False(t, c.IsEnabled(), "disabled flag")

	c.Enabled = true
	parent.Active = false
	assert.False(t, c.IsEnabled(), "inactive ancestor")

	parent.Active = true
	child.Destroy()
	assert.False(t, c.IsEnabled(), "destroyed owner")
}

func TestColliderDetachedIsNotEnabled(t *testing.T) {
	c := NewBoxCollider(rl.Vector2{X: 1, Y: 1}, false)
	assert.False(t, c.IsEnabled())
	assert.Nil(t, c.Rigidbody())
}

func TestColliderWorldShape(t *testing.T) {
	obj := engine.NewGameObject("Box")
	obj.Transform.Position = rl.Vector2{X: 10, Y: 5}
	obj.Transform.Scale = rl.Vector2{X: 2, Y: 3}
	obj.Transform.Rotation = math32.Pi / 2

	c := NewCollider(geom.NewRectangle(rl.Vector2{X: 1, Y: 0}, 2, 1, 0), false)
	obj.AddComponent(c)

	shape := c.WorldShape()
	// Offset (1,0) scaled by (2,3) is (2,0); rotated 90 degrees it becomes (0,2).
	assert.InDelta(t, 10, shape.Center.X, 1e-4)
	assert.InDelta(t, 7, shape.Center.Y, 1e-4)
	assert.InDelta(t, 4, shape.Width, 1e-4)
	assert.InDelta(t, 3, shape.Height, 1e-4)
	assert.InDelta(t, math32.Pi/2, shape.Rotation, 1e-4)
}

func TestColliderResolvesBodyFromAncestor(t *testing.T) {
	root := engine.NewGameObject("Root")
	rb := NewRigidbody(KinematicsDynamic)
	root.AddComponent(rb)

	hand := engine.NewGameObject("Hand")
	root.AddChild(hand)
	c := NewCircleCollider(0.5, false)
	hand.AddComponent(c)

	require.NotNil(t, c.Rigidbody())
	assert.Same(t, rb, c.Rigidbody())
	assert.Same(t, root, c.BodyOwner())
}

func TestColliderWithoutBodyOwnsItself(t *testing.T) {
	wall := engine.NewGameObject("Wall")
	c := NewBoxCollider(rl.Vector2{X: 1, Y: 10}, false)
	wall.AddComponent(c)

	assert.Nil(t, c.Rigidbody())
	assert.Same(t, wall, c.BodyOwner())
}

func TestColliderIgnoresDestroyedBody(t *testing.T) {
	root := engine.NewGameObject("Root")
	root.AddComponent(NewRigidbody(KinematicsDynamic))
	c := NewCircleCollider(1, false)
	root.AddComponent(c)

	root.Destroy()
	assert.Nil(t, c.Rigidbody())
}

func TestColliderDeserialize(t *testing.T) {
	created, ok := engine.CreateComponent("Collider", map[string]any{
		"shape":   "circle",
		"radius":  1.5,
		"offsetX": 2,
		"trigger": true,
		"density": "heavy",
	})
	require.True(t, ok)

	c := created.(*Collider)
	assert.Equal(t, geom.KindCircle, c.Shape.Kind)
	assert.InDelta(t, 1.5, c.Shape.Radius, 1e-6)
	assert.InDelta(t, 2, c.Shape.Center.X, 1e-6)
	assert.True(t, c.IsTrigger())
	assert.True(t, c.Enabled)
	assert.Equal(t, DensityHeavy, c.Density)
	assert.NotZero(t, c.ID())

	data := c.Serialize()
	assert.Equal(t, "circle", data["shape"])
	assert.Equal(t, true, data["trigger"])
}

func TestDensityValues(t *testing.T) {
	assert.Equal(t, float32(1), DensityDefault.Value())
	assert.Less(t, DensityLight.Value(), DensityDefault.Value())
	assert.Greater(t, DensityHeavy.Value(), DensityDefault.Value())

	d, ok := ParseDensity("light")
	assert.True(t, ok)
	assert.Equal(t, DensityLight, d)

	_, ok = ParseDensity("lead")
	assert.False(t, ok)
}
