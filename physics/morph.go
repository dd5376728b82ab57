package physics

import (
	"math"

	"github.com/lixenwraith/ai-entity/graph"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

// Morph animates the anchors around a swelling, rotating circle.
// It re-anchors the rest state instead of perturbing velocity
type Morph struct {
	progress float64
	active   bool
}

// Start (re)starts the morph from progress 0
func (m *Morph) Start() {
	m.progress = 0
	m.active = true
}

func (m *Morph) Active() bool {
	return m.active
}

func (m *Morph) Progress() float64 {
	return m.progress
}

// Step advances progress by step and re-anchors g while progress < 1.
// The last applied anchors persist after the morph ends
func (m *Morph) Step(g *graph.Graph, center vmath.Vec2, radius, step float64) {
	if !m.active {
		return
	}
	m.progress += step
	if m.progress >= 1 {
		m.active = false
		return
	}
	r := radius * (1 + math.Sin(m.progress*math.Pi)*parameter.MorphSwell)
	g.Reanchor(center, r, m.progress*math.Pi)
}

// Cancel stops the morph without touching anchors
func (m *Morph) Cancel() {
	m.active = false
}
