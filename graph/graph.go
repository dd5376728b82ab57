// Package graph holds the node/connection model of the entity: a fixed set of
// labeled nodes anchored evenly on a circle and a randomly sampled set of
// pairwise connections. Only positions and velocities change after Build
package graph

import (
	"fmt"
	"math"

	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

// Node is one vertex of the entity
type Node struct {
	Index int
	Label string
	Color string

	Base vmath.Vec2 // Anchor, moved only by layout and morph
	Pos  vmath.Vec2 // Simulated position
	Vel  vmath.Vec2

	// PulsePhase in [0, 2π) desynchronizes per-node oscillation
	PulsePhase float64
}

// Connection joins two distinct nodes, From < To
type Connection struct {
	From, To int
	Strength float64 // [0.5, 1.0)
}

// Layout describes the circle the nodes are anchored on
type Layout struct {
	Count       int
	Center      vmath.Vec2
	Radius      float64
	Labels      []string
	Colors      []string
	Probability float64 // Per-pair connection probability
}

// Graph owns nodes and connections; node count never changes after Build
type Graph struct {
	Nodes       []Node
	Connections []Connection
}

// Build places layout.Count nodes evenly on the circle starting at angle 0,
// each at rest on its anchor with a random phase, then samples one Bernoulli
// trial per unordered pair. Missing labels/colors fall back to defaults
func Build(layout Layout, rng vmath.Source) *Graph {
	count := layout.Count
	if count < 0 {
		count = 0
	}

	g := &Graph{
		Nodes:       make([]Node, count),
		Connections: make([]Connection, 0, count*(count-1)/2+1),
	}

	for i := 0; i < count; i++ {
		angle := float64(i) / float64(count) * 2 * math.Pi
		anchor := layout.Center.Add(vmath.FromAngle(angle, layout.Radius))
		g.Nodes[i] = Node{
			Index:      i,
			Label:      pick(layout.Labels, i, fmt.Sprintf(parameter.FallbackNodeLabelFmt, i+1)),
			Color:      pick(layout.Colors, i, parameter.FallbackNodeColor),
			Base:       anchor,
			Pos:        anchor,
			PulsePhase: rng.Float64() * 2 * math.Pi,
		}
	}

	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			// Draw order matters for reproducible tests: trial first, then strength
			if rng.Float64() >= layout.Probability {
				continue
			}
			g.Connections = append(g.Connections, Connection{
				From:     i,
				To:       j,
				Strength: vmath.Range(rng, parameter.ConnectionStrengthMin, parameter.ConnectionStrengthMax),
			})
		}
	}

	return g
}

// Valid reports whether i addresses an existing node
func (g *Graph) Valid(i int) bool {
	return g != nil && i >= 0 && i < len(g.Nodes)
}

// Endpoints returns current positions of both ends of connection c
func (g *Graph) Endpoints(c Connection) (from, to vmath.Vec2, ok bool) {
	if !g.Valid(c.From) || !g.Valid(c.To) {
		return vmath.Vec2{}, vmath.Vec2{}, false
	}
	return g.Nodes[c.From].Pos, g.Nodes[c.To].Pos, true
}

// Reanchor moves every anchor onto a circle at center with given radius,
// angle offset rot (radians) added to each node's even spacing
func (g *Graph) Reanchor(center vmath.Vec2, radius, rot float64) {
	n := float64(len(g.Nodes))
	for i := range g.Nodes {
		angle := float64(i)/n*2*math.Pi + rot
		g.Nodes[i].Base = center.Add(vmath.FromAngle(angle, radius))
	}
}

func pick(values []string, i int, fallback string) string {
	if i < len(values) && values[i] != "" {
		return values[i]
	}
	return fallback
}
