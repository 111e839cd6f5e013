package geom

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type kindPair struct {
	first, second Kind
}

type distanceFunc func(a, b Shape) (float32, rl.Vector2)

// Only one ordering of each mixed pair is registered; FindMinDistance
// handles the mirrored ordering.
var distanceTable = map[kindPair]distanceFunc{
	{KindRectangle, KindRectangle}: rectangleRectangle,
	{KindCircle, KindCircle}:       circleCircle,
	{KindRectangle, KindCircle}:    rectangleCircle,
}

// FindMinDistance returns the signed separating distance between a and b and
// the axis it was measured on. A negative distance means the shapes overlap and
// its magnitude is how far a must move along normal to stop overlapping. The
// normal always points from b toward a, and may be the zero vector when the
// geometry is degenerate (coincident circle centers).
func FindMinDistance(a, b Shape) (float32, rl.Vector2) {
	if fn, ok := distanceTable[kindPair{a.Kind, b.Kind}]; ok {
		return fn(a, b)
	}
	if fn, ok := distanceTable[kindPair{b.Kind, a.Kind}]; ok {
		distance, normal := fn(b, a)
		return distance, rl.Vector2Negate(normal)
	}
	panic(fmt.Sprintf("geom: no distance handler for %s vs %s", a.Kind, b.Kind))
}

// Overlaps reports whether the two shapes interpenetrate.
func Overlaps(a, b Shape) bool {
	distance, _ := FindMinDistance(a, b)
	return distance < 0
}

func rectangleRectangle(a, b Shape) (float32, rl.Vector2) {
	fromA, axisA := maxSeparation(a, b)
	fromB, axisB := maxSeparation(b, a)

	// axisA points out of a toward b, axisB out of b toward a.
	if fromA >= fromB {
		return fromA, rl.Vector2Negate(axisA)
	}
	return fromB, axisB
}

// maxSeparation projects other's vertices onto each of ref's edge normals and
// returns the largest of the per-axis minimum distances, with that axis.
func maxSeparation(ref, other Shape) (float32, rl.Vector2) {
	otherVertices := other.Vertices()
	best := -float32(math32.MaxFloat32)
	var bestAxis rl.Vector2

	for _, edge := range ref.Edges() {
		minProjection := float32(math32.MaxFloat32)
		for _, v := range otherVertices {
			projection := rl.Vector2DotProduct(rl.Vector2Subtract(v, edge.A), edge.Normal)
			minProjection = math32.Min(minProjection, projection)
		}
		if minProjection > best {
			best = minProjection
			bestAxis = edge.Normal
		}
	}
	return best, bestAxis
}

func circleCircle(a, b Shape) (float32, rl.Vector2) {
	between := rl.Vector2Subtract(a.Center, b.Center)
	distance := rl.Vector2Length(between) - (a.Radius + b.Radius)
	return distance, rl.Vector2Normalize(between)
}

func rectangleCircle(rect, circle Shape) (float32, rl.Vector2) {
	bestDistanceSqr := float32(math32.MaxFloat32)
	var bestPoint rl.Vector2
	var bestEdge Edge

	for _, edge := range rect.Edges() {
		point := closestPointOnSegment(edge.A, edge.B, circle.Center)
		distanceSqr := rl.Vector2DistanceSqr(point, circle.Center)
		if distanceSqr < bestDistanceSqr {
			bestDistanceSqr = distanceSqr
			bestPoint = point
			bestEdge = edge
		}
	}

	edgeDistance := math32.Sqrt(bestDistanceSqr)
	if rect.Contains(circle.Center) {
		// The rectangle has to travel back through its own edge.
		return -(edgeDistance + circle.Radius), rl.Vector2Negate(bestEdge.Normal)
	}
	return edgeDistance - circle.Radius, rl.Vector2Normalize(rl.Vector2Subtract(bestPoint, circle.Center))
}

func closestPointOnSegment(a, b, p rl.Vector2) rl.Vector2 {
	ab := rl.Vector2Subtract(b, a)
	lengthSqr := rl.Vector2LengthSqr(ab)
	if lengthSqr == 0 {
		return a
	}
	t := rl.Vector2DotProduct(rl.Vector2Subtract(p, a), ab) / lengthSqr
	t = math32.Max(0, math32.Min(1, t))
	return rl.Vector2Add(a, rl.Vector2Scale(ab, t))
}
