package geom

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleContainsBoundary(t *testing.T) {
	c := NewCircle(rl.Vector2{X: 3, Y: -2}, 1.5)

	for _, dir := range []rl.Vector2{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
		edge := rl.Vector2Add(c.Center, rl.Vector2Scale(dir, c.Radius))
		assert.True(t, c.Contains(edge), "boundary point %v should be contained", edge)
	}
	assert.False(t, c.Contains(rl.Vector2{X: 3, Y: -2 + 1.6}))
}

func TestRectangleContainsRespectsRotation(t *testing.T) {
	r := NewRectangle(rl.Vector2{}, 4, 2, math32.Pi/2)

	assert.True(t, r.Contains(rl.Vector2{X: 0, Y: 2}))
	assert.True(t, r.Contains(rl.Vector2{X: 1, Y: 0}))
	assert.False(t, r.Contains(rl.Vector2{X: 2, Y: 0}))
}

func TestRectangleVerticesAndEdges(t *testing.T) {
	r := NewRectangle(rl.Vector2{X: 1, Y: 1}, 2, 4, 0)
	v := r.Vertices()

	assert.Equal(t, rl.Vector2{X: 0, Y: -1}, v[0])
	assert.Equal(t, rl.Vector2{X: 2, Y: -1}, v[1])
	assert.Equal(t, rl.Vector2{X: 2, Y: 3}, v[2])
	assert.Equal(t, rl.Vector2{X: 0, Y: 3}, v[3])

	for _, e := range r.Edges() {
		mid := rl.Vector2Scale(rl.Vector2Add(e.A, e.B), 0.5)
		outward := rl.Vector2Subtract(mid, r.Center)
		assert.Greater(t, rl.Vector2DotProduct(outward, e.Normal), float32(0), "edge normal should point outward")
	}
}

func TestCircleVerticesPanics(t *testing.T) {
	assert.Panics(t, func() { NewCircle(rl.Vector2{}, 1).Vertices() })
}

func TestUnknownKindPanics(t *testing.T) {
	assert.Panics(t, func() { Shape{}.Area() })
	assert.Panics(t, func() { Shape{}.Contains(rl.Vector2{}) })
}

func TestDimensions(t *testing.T) {
	r := NewRectangle(rl.Vector2{}, 3, 5, 0)
	assert.Equal(t, float32(15), r.Area())
	assert.Equal(t, float32(5), r.MaxDimension())
	assert.Equal(t, float32(3), r.MinDimension())

	c := NewCircle(rl.Vector2{}, 2)
	assert.InDelta(t, 4*math32.Pi, c.Area(), 1e-5)
	assert.Equal(t, float32(4), c.MaxDimension())
	assert.Equal(t, float32(4), c.MinDimension())
}

func TestScaled(t *testing.T) {
	r := NewRectangle(rl.Vector2{}, 2, 3, 0).Scaled(rl.Vector2{X: 2, Y: -1})
	assert.Equal(t, float32(4), r.Width)
	assert.Equal(t, float32(3), r.Height)

	c := NewCircle(rl.Vector2{}, 1).Scaled(rl.Vector2{X: 0.5, Y: 3})
	assert.Equal(t, float32(3), c.Radius)
}

func TestSamplePointInsideShape(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	shapes := []Shape{
		NewRectangle(rl.Vector2{X: 5, Y: 5}, 3, 1, 0.4),
		NewCircle(rl.Vector2{X: -2, Y: 1}, 0.75),
	}
	for _, s := range shapes {
		for range 200 {
			p := s.SamplePoint(rng)
			require.True(t, s.Contains(p), "%s sample %v escaped", s.Kind, p)
		}
	}
}
