package components

import (
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
)

func init() {
	engine.RegisterComponent("PlatformEffector", func() engine.Serializable {
		return NewPlatformEffector()
	})
}

// PlatformEffector makes its object's colliders one-way: bodies moving up
// pass through from below, and objects that asked to drop fall through.
// Once an object starts passing it keeps passing for as long as it stays in
// contact, so it is never snapped onto the platform halfway through.
type PlatformEffector struct {
	engine.BaseComponent

	tick        uint64
	passing     map[uint64]bool
	passingLast map[uint64]bool
	drops       map[uint64]bool
}

func NewPlatformEffector() *PlatformEffector {
	return &PlatformEffector{
		passing:     make(map[uint64]bool),
		passingLast: make(map[uint64]bool),
		drops:       make(map[uint64]bool),
	}
}

// RequestDrop lets obj fall through the platform on its next contact.
func (p *PlatformEffector) RequestDrop(obj *engine.GameObject) {
	p.drops[obj.UID] = true
}

// AllowsPassage decides whether other may overlap the platform on the given
// tick and records the decision for the next one.
func (p *PlatformEffector) AllowsPassage(other *Collider, tick uint64) bool {
	p.advance(tick)
	uid := other.BodyOwner().UID
	if !p.permits(other, uid) {
		return false
	}
	p.passing[uid] = true
	delete(p.drops, uid)
	return true
}

// Permits is AllowsPassage without bookkeeping, for speculative queries.
func (p *PlatformEffector) Permits(other *Collider) bool {
	return p.permits(other, other.BodyOwner().UID)
}

func (p *PlatformEffector) permits(other *Collider, uid uint64) bool {
	if p.drops[uid] || p.passing[uid] || p.passingLast[uid] {
		return true
	}
	// Screen space: negative Y is up.
	rb := other.Rigidbody()
	return rb != nil && rb.Velocity.Y < 0
}

func (p *PlatformEffector) advance(tick uint64) {
	if tick == p.tick {
		return
	}
	// Skipped ticks mean no contact, so nothing carries over.
	if tick == p.tick+1 {
		p.passingLast = p.passing
	} else {
		p.passingLast = make(map[uint64]bool)
	}
	p.passing = make(map[uint64]bool)
	p.tick = tick
}

// TypeName implements engine.Serializable
func (p *PlatformEffector) TypeName() string {
	return "PlatformEffector"
}

// Serialize implements engine.Serializable
func (p *PlatformEffector) Serialize() map[string]any {
	return map[string]any{"type": "PlatformEffector"}
}

// Deserialize implements engine.Serializable
func (p *PlatformEffector) Deserialize(data map[string]any) {}
