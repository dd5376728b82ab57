package physics

import (
	"math"

	"github.com/lixenwraith/ai-entity/graph"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

// Step advances every node by one frame. Force order is fixed:
// pointer repulsion, spring to anchor, damping, integration, then breathing.
// Breathing is added to position after damping so it is never damped.
// tick is the global frame counter driving breathing; pointer is ignored when absent
func Step(nodes []graph.Node, pointer Pointer, tick float64, p parameter.PhysicsTuning) {
	for i := range nodes {
		n := &nodes[i]

		if pointer.Present {
			ApplyImpulse(n, Repulsion(n.Base, pointer.Current, p))
		}

		ApplyImpulse(n, Spring(n.Base, n.Pos, p.SpringFactor))

		n.Vel = n.Vel.Scale(p.Damping)
		Integrate(n)

		n.Pos = n.Pos.Add(Breath(n.Index, n.PulsePhase, tick, p))
	}
}

// Repulsion returns the velocity delta pushing an anchor away from the pointer.
// Linear falloff to zero at the influence radius, measured from the anchor
func Repulsion(anchor, pointer vmath.Vec2, p parameter.PhysicsTuning) vmath.Vec2 {
	dist := vmath.Distance(anchor, pointer)
	if dist >= p.InfluenceRadius {
		return vmath.Vec2{}
	}
	influence := (1 - dist/p.InfluenceRadius) * p.MaxInfluence
	away := vmath.Angle(anchor, pointer) + math.Pi
	return vmath.FromAngle(away, influence*p.InfluenceScale)
}

// Spring returns the restoring velocity delta toward the anchor
func Spring(anchor, pos vmath.Vec2, factor float64) vmath.Vec2 {
	return anchor.Sub(pos).Scale(factor)
}

// Breath returns the per-frame idle offset of node index at the given tick.
// Magnitude is bounded by BreathAmplitude*BreathScale
func Breath(index int, phase, tick float64, p parameter.PhysicsTuning) vmath.Vec2 {
	b := math.Sin(tick*p.BreathRate+phase) * p.BreathAmplitude * p.BreathScale
	fi := float64(index)
	return vmath.V2(math.Cos(fi)*b, math.Sin(fi)*b)
}

// ApplyImpulse adds a velocity delta
func ApplyImpulse(n *graph.Node, dv vmath.Vec2) {
	n.Vel = n.Vel.Add(dv)
}

// Integrate moves a node by its velocity over one frame
func Integrate(n *graph.Node) {
	n.Pos = n.Pos.Add(n.Vel)
}

// Pulse kicks every node with an independent uniform velocity delta per axis in [-span/2, span/2)
func Pulse(nodes []graph.Node, span float64, rng vmath.Source) {
	for i := range nodes {
		ApplyImpulse(&nodes[i], vmath.V2(vmath.Centered(rng, span), vmath.Centered(rng, span)))
	}
}
