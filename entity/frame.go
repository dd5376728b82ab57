package entity

import (
	"github.com/lixenwraith/ai-entity/graph"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/physics"
	"github.com/lixenwraith/ai-entity/reveal"
	"github.com/lixenwraith/ai-entity/vmath"
)

// Frame is the read-only view a Drawer renders from.
// Slices alias entity state and are valid only until the next Tick or Resize
type Frame struct {
	Tick          uint64
	Width, Height float64
	Center        vmath.Vec2
	CoreRadius    float64
	Active        bool

	Visibility     float64
	State          reveal.State
	LabelThreshold float64

	Nodes       []graph.Node
	Connections []graph.Connection
	Particles   []physics.Particle
	Hover       HoverTarget

	hit parameter.HitTuning
}

// Frame fills and returns the entity's reusable frame
func (e *Entity) Frame() *Frame {
	f := &e.frame
	*f = Frame{
		Tick:           e.tick,
		Width:          e.width,
		Height:         e.height,
		Center:         e.center,
		CoreRadius:     coreRadius(e.tuning.Hit, e.tick),
		Active:         e.active,
		Visibility:     e.gate.Visibility(),
		State:          e.gate.State(),
		LabelThreshold: e.tuning.Reveal.LabelThreshold,
		Nodes:          e.graph.Nodes,
		Connections:    e.graph.Connections,
		Particles:      e.particles,
		Hover:          e.hovered,
		hit:            e.tuning.Hit,
	}
	return f
}

// NodeRadius is the visual radius of n in this frame, scaled by visibility
func (f *Frame) NodeRadius(n graph.Node) float64 {
	return NodeRadius(f.hit, n, f.Tick) * f.Visibility
}

// LabelsVisible reports whether node labels are drawn
func (f *Frame) LabelsVisible() bool {
	return f.Visibility > f.LabelThreshold
}

// NodesVisible reports whether nodes are drawn at all
func (f *Frame) NodesVisible() bool {
	return f.Visibility > 0
}
