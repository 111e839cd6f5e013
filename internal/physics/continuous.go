package physics

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/guiMendel/boteco-brawl-sub000/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SweptShape is the rectangle covered by a body of the given extent moving
// from one point to another.
func SweptShape(from, to rl.Vector2, extent float32) geom.Shape {
	travel := rl.Vector2Subtract(to, from)
	length := rl.Vector2Length(travel)
	center := rl.Vector2Scale(rl.Vector2Add(from, to), 0.5)
	return geom.NewRectangle(center, length+extent, extent, 0).Rotated(math32.Atan2(travel.Y, travel.X))
}

// groupExtent bounds the group's colliders around its owner's position.
func groupExtent(group ColliderGroup) float32 {
	position := group.Owner.WorldPosition()
	var extent float32
	for _, c := range group.Colliders {
		shape := c.WorldShape()
		reach := rl.Vector2Distance(shape.Center, position) + shape.MaxDimension()
		extent = math32.Max(extent, 2*reach)
	}
	return extent
}

func groupBounds(group ColliderGroup) (AABB, bool) {
	var box AABB
	found := false
	for _, p := range placeAll(group.Colliders) {
		if !found {
			box, found = p.bounds, true
			continue
		}
		box = box.Union(p.bounds)
	}
	return box, found
}

// sweep casts a continuous body along the path it travelled this tick and
// resolves the first thing it crossed, snapping it back to the impact point.
// It returns false when the body did not move, so the caller falls back to
// discrete testing.
func (w *World) sweep(group ColliderGroup, dynamic, nonDynamic []ColliderGroup) bool {
	from := group.Body.LastPosition()
	to := group.Owner.WorldPosition()
	travel := rl.Vector2Subtract(to, from)
	distance := rl.Vector2Length(travel)
	if distance == 0 {
		return false
	}

	swept := BoundsOf(SweptShape(from, to, groupExtent(group)))
	var candidates []ColliderGroup
	for _, pool := range [][]ColliderGroup{dynamic, nonDynamic} {
		for _, other := range pool {
			if other.OwnerID == group.OwnerID {
				continue
			}
			if box, ok := groupBounds(other); ok && box.Intersects(swept) {
				candidates = append(candidates, other)
			}
		}
	}
	// Anything the body already touched where it started would stop the
	// cast at distance zero, so those are tested where the body is now.
	start := make([]placed, 0, len(group.Colliders))
	for _, m := range casters(group.Colliders, 1) {
		start = append(start, place(m.collider, m.local.Translated(from)))
	}
	var ahead, touching []ColliderGroup
	for _, other := range candidates {
		if _, ok := w.checkPlaced(start, placeAll(other.Colliders), false); ok {
			touching = append(touching, other)
		} else {
			ahead = append(ahead, other)
		}
	}

	resolved := -1
	if len(ahead) > 0 {
		if hit, ok := w.cast(group.Colliders, ahead, nil, from, math32.Atan2(travel.Y, travel.X), distance, 1, true); ok {
			resolved = slices.IndexFunc(ahead, func(g ColliderGroup) bool {
				return slices.Contains(g.Colliders, hit.Collision.Other)
			})
			// A shallow overlap on the near side of what was hit is an ordinary
			// contact. A body that went too deep, or came out on the far side,
			// is snapped back.
			data, overlapping := w.checkGroups(group, ahead[resolved], true)
			nearSide := rl.Vector2DotProduct(data.Normal, travel) <= 0
			if overlapping && nearSide && data.Penetration < data.Source.WorldShape().MinDimension()/2 {
				w.Resolve(data)
			} else {
				group.Owner.SetWorldPosition(hit.Point)
				w.Resolve(hit.Collision)
			}
		}
	}

	for i, other := range ahead {
		if i == resolved {
			continue
		}
		if data, ok := w.checkGroups(group, other, true); ok {
			w.Resolve(data)
		}
	}
	for _, other := range touching {
		if data, ok := w.checkGroups(group, other, true); ok {
			w.Resolve(data)
		}
	}
	return true
}
