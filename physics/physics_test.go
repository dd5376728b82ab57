package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ai-entity/graph"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	return graph.Build(graph.Layout{
		Count:       4,
		Center:      vmath.V2(100, 100),
		Radius:      50,
		Probability: 1,
	}, vmath.NewFastRand(11))
}

func TestRepulsion(t *testing.T) {
	p := parameter.Default().Physics
	anchor := vmath.V2(0, 0)

	tests := []struct {
		name    string
		pointer vmath.Vec2
		want    vmath.Vec2
	}{
		{"half radius pushes away on x", vmath.V2(75, 0), vmath.V2(-0.25, 0)},
		{"pointer below pushes up", vmath.V2(0, 75), vmath.V2(0, -0.25)},
		{"at radius edge no force", vmath.V2(150, 0), vmath.V2(0, 0)},
		{"outside radius no force", vmath.V2(0, 400), vmath.V2(0, 0)},
		{"coincident pushes toward -x", vmath.V2(0, 0), vmath.V2(-0.5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Repulsion(anchor, tt.pointer, p)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestRepulsion_LinearFalloff(t *testing.T) {
	p := parameter.Default().Physics
	near := Repulsion(vmath.V2(0, 0), vmath.V2(30, 0), p).Len()
	far := Repulsion(vmath.V2(0, 0), vmath.V2(120, 0), p).Len()

	assert.InDelta(t, 0.4, near, 1e-9)
	assert.InDelta(t, 0.1, far, 1e-9)
}

func TestStep_BreathingIsNotDamped(t *testing.T) {
	p := parameter.Default().Physics
	p.SpringFactor = 0
	p.Damping = 0.5

	nodes := []graph.Node{{
		Index:      0,
		Base:       vmath.V2(10, 10),
		Pos:        vmath.V2(10, 10),
		Vel:        vmath.V2(2, 0),
		PulsePhase: math.Pi / 2, // sin = 1 at tick 0
	}}

	Step(nodes, Pointer{}, 0, p)

	// velocity damped once, breathing 5*0.1 added straight to position along (cos 0, sin 0)
	assert.InDelta(t, 1.0, nodes[0].Vel.X, 1e-12)
	assert.InDelta(t, 10+1.0+0.5, nodes[0].Pos.X, 1e-12)
	assert.InDelta(t, 10.0, nodes[0].Pos.Y, 1e-12)
}

func TestStep_ForceOrder(t *testing.T) {
	p := parameter.Default().Physics
	p.BreathAmplitude = 0

	n := graph.Node{Base: vmath.V2(0, 0), Pos: vmath.V2(10, 0), Vel: vmath.V2(1, 0)}
	nodes := []graph.Node{n}
	Step(nodes, Pointer{}, 0, p)

	// v = (1 + (0-10)*0.05) * 0.9 = 0.45; x = 10 + 0.45
	assert.InDelta(t, 0.45, nodes[0].Vel.X, 1e-12)
	assert.InDelta(t, 10.45, nodes[0].Pos.X, 1e-12)
}

func TestStep_ConvergesToAnchor(t *testing.T) {
	p := parameter.Default().Physics
	g := testGraph(t)
	for i := range g.Nodes {
		g.Nodes[i].Pos = g.Nodes[i].Pos.Add(vmath.V2(40, -25))
		g.Nodes[i].Vel = vmath.V2(-6, 3)
	}

	for tick := 1; tick <= 200; tick++ {
		Step(g.Nodes, Pointer{}, float64(tick), p)
	}

	// Steady breathing offset is bounded near 0.5/0.45 ≈ 1.11
	for _, n := range g.Nodes {
		assert.Less(t, vmath.Distance(n.Pos, n.Base), 2.0, "node %d", n.Index)
	}
}

func TestStep_ConvergesExactlyWithoutBreathing(t *testing.T) {
	p := parameter.Default().Physics
	p.BreathAmplitude = 0
	g := testGraph(t)
	g.Nodes[2].Pos = g.Nodes[2].Pos.Add(vmath.V2(50, 50))

	for tick := 1; tick <= 400; tick++ {
		Step(g.Nodes, Pointer{}, float64(tick), p)
	}
	for _, n := range g.Nodes {
		assert.Less(t, vmath.Distance(n.Pos, n.Base), 1e-3, "node %d", n.Index)
	}
}

func TestStep_PointerDisplacesNearNodes(t *testing.T) {
	p := parameter.Default().Physics
	p.BreathAmplitude = 0
	g := testGraph(t)

	// Pointer just right of node 0 anchor (150,100)
	ptr := Pointer{Present: true, Current: vmath.V2(190, 100), Target: vmath.V2(190, 100)}
	for tick := 1; tick <= 200; tick++ {
		Step(g.Nodes, ptr, float64(tick), p)
	}

	n0 := g.Nodes[0]
	assert.Less(t, n0.Pos.X, n0.Base.X-1, "node 0 pushed left of its anchor")
	assert.InDelta(t, n0.Base.Y, n0.Pos.Y, 1e-6)
}

func TestPulse(t *testing.T) {
	g := testGraph(t)
	Pulse(g.Nodes, parameter.PulseImpulse, vmath.NewFastRand(5))

	moved := 0
	for _, n := range g.Nodes {
		assert.GreaterOrEqual(t, n.Vel.X, -5.0)
		assert.Less(t, n.Vel.X, 5.0)
		assert.GreaterOrEqual(t, n.Vel.Y, -5.0)
		assert.Less(t, n.Vel.Y, 5.0)
		if n.Vel != (vmath.Vec2{}) {
			moved++
		}
	}
	assert.Equal(t, len(g.Nodes), moved)

	seq := vmath.NewSequence(1.0, 0.0)
	nodes := []graph.Node{{}}
	Pulse(nodes, 10, seq)
	assert.Equal(t, vmath.V2(5, -5), nodes[0].Vel)
}

func TestParticles_BurstAndDecay(t *testing.T) {
	rng := vmath.NewFastRand(8)
	ps := Burst(nil, vmath.V2(50, 50), parameter.ParticleBurst, rng)
	require.Len(t, ps, 20)

	for _, p := range ps {
		assert.Equal(t, 1.0, p.Life)
		assert.GreaterOrEqual(t, p.Size, 1.0)
		assert.Less(t, p.Size, 4.0)
		assert.LessOrEqual(t, math.Abs(p.Vel.X), 1.0)
		assert.LessOrEqual(t, math.Abs(p.Vel.Y), 1.0)
	}

	for i := 0; i < 99; i++ {
		ps = UpdateParticles(ps)
	}
	assert.Len(t, ps, 20, "life 1 decays at 0.01 per frame")

	for i := 0; i < 3; i++ {
		ps = UpdateParticles(ps)
	}
	assert.Empty(t, ps)
}

func TestParticles_Drag(t *testing.T) {
	ps := []Particle{{Pos: vmath.V2(0, 0), Vel: vmath.V2(1, 0), Life: 1, Size: 1}}
	ps = UpdateParticles(ps)

	require.Len(t, ps, 1)
	assert.InDelta(t, 1.0, ps[0].Pos.X, 1e-12)
	assert.InDelta(t, 0.99, ps[0].Vel.X, 1e-12)
	assert.InDelta(t, 0.99, ps[0].Life, 1e-12)
}

func TestPointer_Ease(t *testing.T) {
	var ptr Pointer
	ptr.Ease(0.05)
	assert.False(t, ptr.Present)

	ptr.SetTarget(vmath.V2(100, 0))
	assert.True(t, ptr.Present)
	assert.Equal(t, vmath.V2(100, 0), ptr.Current, "first target snaps")

	ptr.SetTarget(vmath.V2(200, 0))
	ptr.Ease(0.05)
	assert.InDelta(t, 105.0, ptr.Current.X, 1e-12)

	for i := 0; i < 500; i++ {
		ptr.Ease(0.05)
	}
	assert.InDelta(t, 200.0, ptr.Current.X, 1e-6)
}

func TestMorph(t *testing.T) {
	g := testGraph(t)
	center := vmath.V2(100, 100)
	var m Morph

	m.Step(g, center, 50, parameter.MorphStep)
	assert.False(t, m.Active(), "idle morph does nothing")
	assert.InDelta(t, 150.0, g.Nodes[0].Base.X, 1e-9)

	m.Start()
	frames := 0
	maxRadius := 0.0
	for m.Active() {
		m.Step(g, center, 50, parameter.MorphStep)
		frames++
		maxRadius = math.Max(maxRadius, vmath.Distance(center, g.Nodes[0].Base))
		require.Less(t, frames, 100)
	}

	assert.InDelta(t, 50, frames, 1)
	assert.InDelta(t, 65.0, maxRadius, 0.5, "radius swells by 30% mid-morph")
	// Anchors stay where the last morph frame left them
	assert.InDelta(t, 50.0, vmath.Distance(center, g.Nodes[0].Base), 1.0)
	assert.Less(t, g.Nodes[0].Base.X, 100.0, "rotated roughly half a turn")
}
