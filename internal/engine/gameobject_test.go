package engine

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"enemy", "ai", "dangerous"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}

	if !obj.HasTag("ai") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	// Test empty tags
	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	if parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	// First call should set started = true
	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	// Second call should be a no-op (no panic, no re-initialization)
	obj.Start() // Should not panic or cause issues
}

func TestGameObjectWorldPositionFollowsParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector2{X: 10, Y: 5}
	parent.Transform.Rotation = math32.Pi / 2
	parent.Transform.Scale = rl.Vector2{X: 2, Y: 2}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector2{X: 1, Y: 0}
	parent.AddChild(child)

	pos := child.WorldPosition()
	assert.InDelta(t, 10, pos.X, 1e-4)
	assert.InDelta(t, 7, pos.Y, 1e-4)
	assert.InDelta(t, math32.Pi/2, child.WorldRotation(), 1e-6)
	assert.Equal(t, rl.Vector2{X: 2, Y: 2}, child.WorldScale())
}

func TestGameObjectSetWorldPositionInvertsParentTransform(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector2{X: -3, Y: 4}
	parent.Transform.Rotation = 0.7
	parent.Transform.Scale = rl.Vector2{X: 0.5, Y: 3}

	child := NewGameObject("Child")
	parent.AddChild(child)

	child.SetWorldPosition(rl.Vector2{X: 12, Y: -8})
	pos := child.WorldPosition()
	assert.InDelta(t, 12, pos.X, 1e-3)
	assert.InDelta(t, -8, pos.Y, 1e-3)

	child.Translate(rl.Vector2{X: 1, Y: 1})
	pos = child.WorldPosition()
	assert.InDelta(t, 13, pos.X, 1e-3)
	assert.InDelta(t, -7, pos.Y, 1e-3)
}

func TestGameObjectLineage(t *testing.T) {
	root := NewGameObject("Root")
	mid := NewGameObject("Mid")
	leaf := NewGameObject("Leaf")
	stranger := NewGameObject("Stranger")
	root.AddChild(mid)
	mid.AddChild(leaf)

	assert.True(t, root.IsAncestorOf(leaf))
	assert.False(t, leaf.IsAncestorOf(root))
	assert.True(t, leaf.SharesLineage(root))
	assert.True(t, root.SharesLineage(leaf))
	assert.True(t, mid.SharesLineage(mid))
	assert.False(t, stranger.SharesLineage(leaf))
}

func TestGameObjectDestroyMarksDescendants(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	assert.True(t, child.ActiveInHierarchy())
	parent.Destroy()

	assert.True(t, parent.IsDestroyed())
	assert.True(t, child.IsDestroyed())
	assert.False(t, child.ActiveInHierarchy())
}

func TestGameObjectInactiveParentDisablesChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	parent.Active = false
	if child.ActiveInHierarchy() {
		t.Error("Child of inactive parent should not be active in hierarchy")
	}
}

type markerComponent struct {
	BaseComponent
}

func TestGetComponentInParent(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	marker := &markerComponent{}
	parent.AddComponent(marker)

	found, ok := GetComponentInParent[*markerComponent](child)
	assert.True(t, ok)
	assert.Same(t, marker, found)

	_, ok = GetComponentInParent[*markerComponent](NewGameObject("Orphan"))
	assert.False(t, ok)

	assert.Len(t, GetComponentsInChildren[*markerComponent](parent), 1)
}

func TestLayerNames(t *testing.T) {
	for l := Layer(0); l < LayerCount; l++ {
		parsed, ok := ParseLayer(l.String())
		assert.True(t, ok)
		assert.Equal(t, l, parsed)
	}
	_, ok := ParseLayer("nope")
	assert.False(t, ok)
}
