package physics

import (
	"github.com/chewxy/math32"
	"github.com/guiMendel/boteco-brawl-sub000/internal/components"
	"github.com/guiMendel/boteco-brawl-sub000/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Collider *components.Collider
	Point    rl.Vector2
	Distance float32
}

// CastHit is the result of a collider cast. Point is where the casters' body
// owner would stand at the moment of impact. Triggers holds every trigger the
// casters overlapped on the way, whether or not a solid was hit.
type CastHit struct {
	Collision CollisionData
	Point     rl.Vector2
	Distance  float32
	Triggers  []*components.Collider
}

func direction(angle float32) rl.Vector2 {
	return rl.Vector2{X: math32.Cos(angle), Y: math32.Sin(angle)}
}

// marchSteps calls visit at every step along a cast until it returns true.
func (w *World) marchSteps(maxDistance float32, visit func(traveled float32) bool) bool {
	maxDistance = math32.Max(0, maxDistance)
	for i := 0; ; i++ {
		traveled := math32.Min(float32(i)*w.config.CastStep, maxDistance)
		if visit(traveled) {
			return true
		}
		if traveled >= maxDistance {
			return false
		}
	}
}

// Raycast marches a point from origin along angle (radians) and returns the
// first solid collider it enters. Triggers are never hit.
func (w *World) Raycast(origin rl.Vector2, angle, maxDistance float32, filter CollisionFilter) (RaycastHit, bool) {
	var targets []placed
	for _, group := range w.registry.snapshot() {
		for _, p := range placeAll(group.Colliders) {
			if !filter.Excludes(p.collider) {
				targets = append(targets, p)
			}
		}
	}

	dir := direction(angle)
	var hit RaycastHit
	found := w.marchSteps(maxDistance, func(traveled float32) bool {
		point := rl.Vector2Add(origin, rl.Vector2Scale(dir, traveled))
		for _, target := range targets {
			reach := target.shape.MaxDimension()
			if rl.Vector2DistanceSqr(point, target.shape.Center) > reach*reach {
				continue
			}
			if target.shape.Contains(point) {
				hit = RaycastHit{Collider: target.collider, Point: point, Distance: traveled}
				return true
			}
		}
		return false
	})
	return hit, found
}

// RaycastAny reports whether Raycast would hit anything.
func (w *World) RaycastAny(origin rl.Vector2, angle, maxDistance float32, filter CollisionFilter) bool {
	_, ok := w.Raycast(origin, angle, maxDistance, filter)
	return ok
}

// ColliderCast moves colliders, keeping their offsets from their body owner,
// from origin along angle and reports the first solid collision. A scale
// other than 0 or 1 grows the casters uniformly about their owner. The
// casters' own objects are always ignored.
func (w *World) ColliderCast(colliders []*components.Collider, origin rl.Vector2, angle, maxDistance float32, filter CollisionFilter, scale float32) (CastHit, bool) {
	if len(colliders) == 0 {
		panic("physics: ColliderCast needs at least one collider")
	}
	filter = filter.clone()
	for _, c := range colliders {
		filter.Ignore(c.BodyOwner())
	}

	var candidates []ColliderGroup
	for _, group := range w.registry.snapshot() {
		group.Colliders = excludeFiltered(group.Colliders, filter)
		if len(group.Colliders) > 0 {
			candidates = append(candidates, group)
		}
	}
	triggers := excludeFiltered(w.registry.liveTriggers(), filter)

	return w.cast(colliders, candidates, triggers, origin, angle, maxDistance, scale, false)
}

// ColliderCastAny reports whether ColliderCast would hit a solid.
func (w *World) ColliderCastAny(colliders []*components.Collider, origin rl.Vector2, angle, maxDistance float32, filter CollisionFilter, scale float32) bool {
	_, ok := w.ColliderCast(colliders, origin, angle, maxDistance, filter, scale)
	return ok
}

func excludeFiltered(colliders []*components.Collider, filter CollisionFilter) []*components.Collider {
	kept := make([]*components.Collider, 0, len(colliders))
	for _, c := range colliders {
		if !filter.Excludes(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

// caster is a collider's shape relative to its body owner.
type caster struct {
	collider *components.Collider
	local    geom.Shape
}

func casters(colliders []*components.Collider, scale float32) []caster {
	if scale == 0 {
		scale = 1
	}
	result := make([]caster, 0, len(colliders))
	for _, c := range colliders {
		if !c.IsEnabled() {
			continue
		}
		shape := c.WorldShape()
		offset := rl.Vector2Subtract(shape.Center, c.BodyOwner().WorldPosition())
		shape = shape.Scaled(rl.Vector2{X: scale, Y: scale})
		shape.Center = rl.Vector2Scale(offset, scale)
		result = append(result, caster{collider: c, local: shape})
	}
	return result
}

func (w *World) cast(colliders []*components.Collider, candidates []ColliderGroup, triggers []*components.Collider, origin rl.Vector2, angle, maxDistance, scale float32, commit bool) (CastHit, bool) {
	movers := casters(colliders, scale)
	var solids []placed
	for _, group := range candidates {
		solids = append(solids, placeAll(group.Colliders)...)
	}
	var triggerShapes []placed
	for _, t := range triggers {
		if t.IsEnabled() {
			triggerShapes = append(triggerShapes, place(t, t.WorldShape()))
		}
	}

	dir := direction(angle)
	var result CastHit
	grazed := make(map[*components.Collider]bool)
	found := w.marchSteps(maxDistance, func(traveled float32) bool {
		position := rl.Vector2Add(origin, rl.Vector2Scale(dir, traveled))
		moved := make([]placed, 0, len(movers))
		for _, m := range movers {
			moved = append(moved, place(m.collider, m.local.Translated(position)))
		}

		for _, m := range moved {
			for _, t := range triggerShapes {
				if grazed[t.collider] || sharesLineage(m.collider, t.collider) {
					continue
				}
				if _, ok := w.overlapsPlaced(m, []placed{t}); ok {
					grazed[t.collider] = true
					result.Triggers = append(result.Triggers, t.collider)
				}
			}
		}

		solidMovers := moved[:0:0]
		for _, m := range moved {
			if !m.collider.IsTrigger() {
				solidMovers = append(solidMovers, m)
			}
		}
		if data, ok := w.checkPlaced(solidMovers, solids, commit); ok {
			result.Collision = data
			result.Point = position
			result.Distance = traveled
			return true
		}
		return false
	})
	return result, found
}

func sharesLineage(a, b *components.Collider) bool {
	return a.GetGameObject().SharesLineage(b.GetGameObject())
}
