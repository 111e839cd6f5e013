package physics

import (
	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
	"github.com/guiMendel/boteco-brawl-sub000/internal/engine"
	"github.com/guiMendel/boteco-brawl-sub000/internal/geom"
)

// placed is a collider with the world shape it occupies for one test.
type placed struct {
	collider *components.Collider
	shape    geom.Shape
	bounds   AABB
}

func place(c *components.Collider, shape geom.Shape) placed {
	return placed{collider: c, shape: shape, bounds: BoundsOf(shape)}
}

// placeAll places the enabled solid colliders of a group where they are now.
func placeAll(colliders []*components.Collider) []placed {
	result := make([]placed, 0, len(colliders))
	for _, c := range colliders {
		if c.IsTrigger() || !c.IsEnabled() {
			continue
		}
		result = append(result, place(c, c.WorldShape()))
	}
	return result
}

func layerOf(c *components.Collider) engine.Layer {
	return c.GetGameObject().Layer
}

// CheckForCollision tests two collider sets and returns the first colliding
// pair, seen from the collider in a. Disabled colliders, triggers, pairs whose
// layers may not collide and pairs a platform effector lets through are
// skipped. Both sets must be non-empty.
func (w *World) CheckForCollision(a, b []*components.Collider) (CollisionData, bool) {
	if len(a) == 0 || len(b) == 0 {
		panic("physics: CheckForCollision needs two non-empty collider sets")
	}
	return w.checkPlaced(placeAll(a), placeAll(b), true)
}

// checkPlaced is CheckForCollision on already placed shapes. commit decides
// whether platform effectors record the passage for this tick.
func (w *World) checkPlaced(a, b []placed, commit bool) (CollisionData, bool) {
	for _, pa := range a {
		for _, pb := range b {
			if !w.config.Layers.CanCollide(layerOf(pa.collider), layerOf(pb.collider)) {
				continue
			}
			if !pa.bounds.Intersects(pb.bounds) {
				continue
			}
			distance, normal := geom.FindMinDistance(pa.shape, pb.shape)
			if distance >= 0 {
				continue
			}
			if w.effectorsAllowPassage(pa.collider, pb.collider, commit) {
				continue
			}
			return CollisionData{
				Normal:      normal,
				Penetration: -distance,
				Source:      pa.collider,
				Other:       pb.collider,
			}, true
		}
	}
	return CollisionData{}, false
}

// overlapsPlaced reports the first overlap between a trigger-side shape and a
// set, ignoring platform effectors.
func (w *World) overlapsPlaced(a placed, b []placed) (*components.Collider, bool) {
	for _, pb := range b {
		if pb.collider == a.collider {
			continue
		}
		if !w.config.Layers.CanCollide(layerOf(a.collider), layerOf(pb.collider)) {
			continue
		}
		if !a.bounds.Intersects(pb.bounds) {
			continue
		}
		if geom.Overlaps(a.shape, pb.shape) {
			return pb.collider, true
		}
	}
	return nil, false
}

func effectorOf(c *components.Collider) *components.PlatformEffector {
	effector, ok := engine.GetComponentInParent[*components.PlatformEffector](c.GetGameObject())
	if !ok || !effector.Alive() {
		return nil
	}
	return effector
}

// effectorsAllowPassage asks both sides; each effector is always consulted
// because asking advances its per-tick bookkeeping.
func (w *World) effectorsAllowPassage(a, b *components.Collider, commit bool) bool {
	allowA := w.askEffector(effectorOf(a), b, commit)
	allowB := w.askEffector(effectorOf(b), a, commit)
	return allowA || allowB
}

func (w *World) askEffector(effector *components.PlatformEffector, other *components.Collider, commit bool) bool {
	if effector == nil {
		return false
	}
	if commit {
		return effector.AllowsPassage(other, w.tick)
	}
	return effector.Permits(other)
}
