package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Layer is the physics layer of a GameObject. The layer matrix in the physics
// package decides which pairs of layers may collide.
type Layer uint8

const (
	LayerDefault Layer = iota
	LayerCharacter
	LayerGround
	LayerPlatform
	LayerProjectile
	LayerHitbox
	LayerParticle
	LayerCount
)

var layerNames = [LayerCount]string{
	"default", "character", "ground", "platform", "projectile", "hitbox", "particle",
}

func (l Layer) String() string {
	if l < LayerCount {
		return layerNames[l]
	}
	return "unknown"
}

// ParseLayer maps a layer name back to its value.
func ParseLayer(name string) (Layer, bool) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return 0, false
}

type Transform struct {
	Position rl.Vector2
	Rotation float32 // radians
	Scale    rl.Vector2
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Layer      Layer
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector2{X: 1, Y: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T on g.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// GetComponents returns every component of type T on g.
func GetComponents[T Component](g *GameObject) []T {
	var result []T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

// GetComponentInParent searches g and then its ancestors for a component of type T.
func GetComponentInParent[T Component](g *GameObject) (T, bool) {
	for obj := g; obj != nil; obj = obj.Parent {
		for _, c := range obj.components {
			if typed, ok := c.(T); ok {
				return typed, true
			}
		}
	}
	var zero T
	return zero, false
}

// GetComponentsInChildren returns every component of type T on g and its descendants.
func GetComponentsInChildren[T Component](g *GameObject) []T {
	result := GetComponents[T](g)
	for _, child := range g.Children {
		result = append(result, GetComponentsInChildren[T](child)...)
	}
	return result
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.ActiveInHierarchy() {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// ActiveInHierarchy reports whether g and all of its ancestors are active.
func (g *GameObject) ActiveInHierarchy() bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if !obj.Active || obj.destroyed {
			return false
		}
	}
	return true
}

// Destroy marks g and its descendants as destroyed and detaches g from its parent.
// Components keep their pointer to g; holders of non-owning references check
// IsDestroyed to notice the object is gone.
func (g *GameObject) Destroy() {
	if g.destroyed {
		return
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	g.markDestroyed()
}

func (g *GameObject) markDestroyed() {
	g.destroyed = true
	for _, child := range g.Children {
		child.markDestroyed()
	}
}

func (g *GameObject) IsDestroyed() bool {
	return g == nil || g.destroyed
}

// IsAncestorOf reports whether g is a strict ancestor of other.
func (g *GameObject) IsAncestorOf(other *GameObject) bool {
	if other == nil {
		return false
	}
	for obj := other.Parent; obj != nil; obj = obj.Parent {
		if obj == g {
			return true
		}
	}
	return false
}

// SharesLineage reports whether g and other are the same object or one descends from the other.
func (g *GameObject) SharesLineage(other *GameObject) bool {
	return g == other || g.IsAncestorOf(other) || other.IsAncestorOf(g)
}

func (g *GameObject) WorldPosition() rl.Vector2 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentScale := g.Parent.WorldScale()
	scaled := rl.Vector2{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
	}
	rotated := rl.Vector2Rotate(scaled, g.Parent.WorldRotation())
	return rl.Vector2Add(g.Parent.WorldPosition(), rotated)
}

// SetWorldPosition moves g so that its world position becomes pos.
func (g *GameObject) SetWorldPosition(pos rl.Vector2) {
	if g.Parent == nil {
		g.Transform.Position = pos
		return
	}
	local := rl.Vector2Subtract(pos, g.Parent.WorldPosition())
	local = rl.Vector2Rotate(local, -g.Parent.WorldRotation())
	parentScale := g.Parent.WorldScale()
	if parentScale.X != 0 {
		local.X /= parentScale.X
	}
	if parentScale.Y != 0 {
		local.Y /= parentScale.Y
	}
	g.Transform.Position = local
}

// Translate moves g by a world-space displacement.
func (g *GameObject) Translate(delta rl.Vector2) {
	g.SetWorldPosition(rl.Vector2Add(g.WorldPosition(), delta))
}

func (g *GameObject) WorldRotation() float32 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return g.Parent.WorldRotation() + g.Transform.Rotation
}

func (g *GameObject) WorldScale() rl.Vector2 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector2{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
	}
}
