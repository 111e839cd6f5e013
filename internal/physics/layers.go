package physics

import "github.com/guiMendel/boteco-brawl-sub000/internal/engine"

// LayerMatrix is a symmetric table of which layers may collide with each
// other. Configure it before the first Step; it is only read while stepping.
type LayerMatrix struct {
	table [engine.LayerCount][engine.LayerCount]bool
}

// NewLayerMatrix returns a matrix where every layer collides with every other.
func NewLayerMatrix() *LayerMatrix {
	m := &LayerMatrix{}
	for i := range m.table {
		for j := range m.table[i] {
			m.table[i][j] = true
		}
	}
	return m
}

func (m *LayerMatrix) Enable(a, b engine.Layer) {
	m.set(a, b, true)
}

func (m *LayerMatrix) Disable(a, b engine.Layer) {
	m.set(a, b, false)
}

// EnableAll lets layer collide with every layer, itself included.
func (m *LayerMatrix) EnableAll(layer engine.Layer) {
	for other := engine.Layer(0); other < engine.LayerCount; other++ {
		m.set(layer, other, true)
	}
}

// DisableAll stops layer from colliding with anything, itself included.
func (m *LayerMatrix) DisableAll(layer engine.Layer) {
	for other := engine.Layer(0); other < engine.LayerCount; other++ {
		m.set(layer, other, false)
	}
}

func (m *LayerMatrix) CanCollide(a, b engine.Layer) bool {
	if a >= engine.LayerCount || b >= engine.LayerCount {
		return false
	}
	return m.table[a][b]
}

func (m *LayerMatrix) set(a, b engine.Layer, value bool) {
	if a >= engine.LayerCount || b >= engine.LayerCount {
		panic("physics: layer out of range")
	}
	m.table[a][b] = value
	m.table[b][a] = value
}
