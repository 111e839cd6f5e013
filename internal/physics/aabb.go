package physics

import (
	"github.com/chewxy/math32"
	"github.com/guiMendel/boteco-brawl-sub000/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AABB is an axis-aligned bounding box used to reject pairs before SAT.
type AABB struct {
	Min rl.Vector2
	Max rl.Vector2
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector2) AABB {
	half := rl.Vector2{X: size.X / 2, Y: size.Y / 2}
	return AABB{
		Min: rl.Vector2Subtract(center, half),
		Max: rl.Vector2Add(center, half),
	}
}

// BoundsOf returns the tightest AABB enclosing shape.
func BoundsOf(shape geom.Shape) AABB {
	if shape.Kind == geom.KindCircle {
		return NewAABBFromCenter(shape.Center, rl.Vector2{X: 2 * shape.Radius, Y: 2 * shape.Radius})
	}
	v := shape.Vertices()
	box := AABB{Min: v[0], Max: v[0]}
	for _, p := range v[1:] {
		box.Min.X = math32.Min(box.Min.X, p.X)
		box.Min.Y = math32.Min(box.Min.Y, p.Y)
		box.Max.X = math32.Max(box.Max.X, p.X)
		box.Max.Y = math32.Max(box.Max.Y, p.Y)
	}
	return box
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

// Union returns the smallest AABB containing both boxes.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: rl.Vector2{X: math32.Min(a.Min.X, b.Min.X), Y: math32.Min(a.Min.Y, b.Min.Y)},
		Max: rl.Vector2{X: math32.Max(a.Max.X, b.Max.X), Y: math32.Max(a.Max.Y, b.Max.Y)},
	}
}
