package geom

import (
	"fmt"
	"math/rand/v2"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind discriminates the concrete variant held by a Shape.
type Kind uint8

const (
	KindRectangle Kind = iota + 1
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Shape is a 2D region. Rectangles use Width/Height, circles use Radius.
type Shape struct {
	Kind     Kind
	Center   rl.Vector2
	Rotation float32 // radians

	Width  float32
	Height float32
	Radius float32
}

// Edge is a rectangle side running from A to B, with Normal pointing outward.
type Edge struct {
	A, B   rl.Vector2
	Normal rl.Vector2
}

func NewRectangle(center rl.Vector2, width, height, rotation float32) Shape {
	return Shape{Kind: KindRectangle, Center: center, Width: width, Height: height, Rotation: rotation}
}

func NewCircle(center rl.Vector2, radius float32) Shape {
	return Shape{Kind: KindCircle, Center: center, Radius: radius}
}

// Axes returns the rectangle's local X and Y axes after rotation.
func (s Shape) Axes() (rl.Vector2, rl.Vector2) {
	cos, sin := math32.Cos(s.Rotation), math32.Sin(s.Rotation)
	return rl.Vector2{X: cos, Y: sin}, rl.Vector2{X: -sin, Y: cos}
}

// Vertices returns the rectangle corners in counter-clockwise local order
// (bottom-left, bottom-right, top-right, top-left before rotation).
func (s Shape) Vertices() [4]rl.Vector2 {
	s.mustBe(KindRectangle, "Vertices")
	ax, ay := s.Axes()
	hx := rl.Vector2Scale(ax, s.Width/2)
	hy := rl.Vector2Scale(ay, s.Height/2)
	return [4]rl.Vector2{
		rl.Vector2Subtract(rl.Vector2Subtract(s.Center, hx), hy),
		rl.Vector2Subtract(rl.Vector2Add(s.Center, hx), hy),
		rl.Vector2Add(rl.Vector2Add(s.Center, hx), hy),
		rl.Vector2Add(rl.Vector2Subtract(s.Center, hx), hy),
	}
}

// Edges returns the rectangle sides; edge i joins vertex i and vertex i+1.
func (s Shape) Edges() [4]Edge {
	v := s.Vertices()
	ax, ay := s.Axes()
	normals := [4]rl.Vector2{rl.Vector2Negate(ay), ax, ay, rl.Vector2Negate(ax)}
	var edges [4]Edge
	for i := range edges {
		edges[i] = Edge{A: v[i], B: v[(i+1)%4], Normal: normals[i]}
	}
	return edges
}

// Contains reports whether point lies inside the shape, boundary included.
func (s Shape) Contains(point rl.Vector2) bool {
	const epsilon = 1e-5
	switch s.Kind {
	case KindRectangle:
		ax, ay := s.Axes()
		rel := rl.Vector2Subtract(point, s.Center)
		return math32.Abs(rl.Vector2DotProduct(rel, ax)) <= s.Width/2+epsilon &&
			math32.Abs(rl.Vector2DotProduct(rel, ay)) <= s.Height/2+epsilon
	case KindCircle:
		return rl.Vector2Distance(point, s.Center) <= s.Radius+epsilon
	}
	panic(fmt.Sprintf("geom: Contains on unknown %s", s.Kind))
}

func (s Shape) Area() float32 {
	switch s.Kind {
	case KindRectangle:
		return s.Width * s.Height
	case KindCircle:
		return math32.Pi * s.Radius * s.Radius
	}
	panic(fmt.Sprintf("geom: Area on unknown %s", s.Kind))
}

// MaxDimension is the largest extent of the shape. It always bounds the
// distance from the center to any contained point.
func (s Shape) MaxDimension() float32 {
	switch s.Kind {
	case KindRectangle:
		return math32.Max(s.Width, s.Height)
	case KindCircle:
		return 2 * s.Radius
	}
	panic(fmt.Sprintf("geom: MaxDimension on unknown %s", s.Kind))
}

func (s Shape) MinDimension() float32 {
	switch s.Kind {
	case KindRectangle:
		return math32.Min(s.Width, s.Height)
	case KindCircle:
		return 2 * s.Radius
	}
	panic(fmt.Sprintf("geom: MinDimension on unknown %s", s.Kind))
}

// Scaled returns the shape with its dimensions multiplied by factor.
// Circles scale by the larger factor component so they stay circles.
func (s Shape) Scaled(factor rl.Vector2) Shape {
	switch s.Kind {
	case KindRectangle:
		s.Width *= math32.Abs(factor.X)
		s.Height *= math32.Abs(factor.Y)
	case KindCircle:
		s.Radius *= math32.Max(math32.Abs(factor.X), math32.Abs(factor.Y))
	}
	return s
}

func (s Shape) Translated(delta rl.Vector2) Shape {
	s.Center = rl.Vector2Add(s.Center, delta)
	return s
}

func (s Shape) Rotated(angle float32) Shape {
	s.Rotation += angle
	return s
}

// SamplePoint returns a uniformly distributed point inside the shape.
func (s Shape) SamplePoint(rng *rand.Rand) rl.Vector2 {
	switch s.Kind {
	case KindRectangle:
		ax, ay := s.Axes()
		x := (rng.Float32() - 0.5) * s.Width
		y := (rng.Float32() - 0.5) * s.Height
		return rl.Vector2Add(s.Center, rl.Vector2Add(rl.Vector2Scale(ax, x), rl.Vector2Scale(ay, y)))
	case KindCircle:
		r := s.Radius * math32.Sqrt(rng.Float32())
		theta := rng.Float32() * 2 * math32.Pi
		return rl.Vector2Add(s.Center, rl.Vector2{X: r * math32.Cos(theta), Y: r * math32.Sin(theta)})
	}
	panic(fmt.Sprintf("geom: SamplePoint on unknown %s", s.Kind))
}

func (s Shape) mustBe(kind Kind, op string) {
	if s.Kind != kind {
		panic(fmt.Sprintf("geom: %s requires a %s, got %s", op, kind, s.Kind))
	}
}
