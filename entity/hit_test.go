package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

// Wide layout keeps nodes well outside the core hover zone.
// Constant draws give every pair a 0.55 connection
func newHoverEntity(t *testing.T, tip Tooltip) *Entity {
	t.Helper()
	return newTestEntity(t, 800, 800,
		WithLayoutRadius(300),
		WithTooltip(tip),
		WithRand(vmath.NewSequence(0.1)),
	)
}

func TestHover_CoreAlwaysTargetable(t *testing.T) {
	tip := &recordingTooltip{}
	e := newHoverEntity(t, tip)

	got := e.CheckHover(400, 400)
	assert.Equal(t, HoverTarget{Kind: HoverCore}, got)
	require.Len(t, tip.shows, 1)
	assert.Equal(t, parameter.CoreTooltip, tip.shows[0])
}

func TestHover_NodesGatedByReveal(t *testing.T) {
	tip := &recordingTooltip{}
	e := newHoverEntity(t, tip)

	n0 := e.Nodes()[0]
	assert.Equal(t, HoverNone, e.CheckHover(n0.Pos.X, n0.Pos.Y).Kind)
	assert.Empty(t, tip.shows)

	revealFully(t, e)
	n0 = e.Nodes()[0]
	assert.Equal(t, HoverTarget{Kind: HoverNode, Index: 0}, e.CheckHover(n0.Pos.X, n0.Pos.Y))
	require.Len(t, tip.shows, 1)
	assert.Contains(t, tip.shows[0], "Bio")
}

func TestHover_EdgeTriggered(t *testing.T) {
	tip := &recordingTooltip{}
	e := newHoverEntity(t, tip)
	revealFully(t, e)

	var events []HoverTarget
	e.OnHover(func(h HoverTarget) { events = append(events, h) })

	n0 := e.Nodes()[0]
	e.CheckHover(n0.Pos.X, n0.Pos.Y)
	e.CheckHover(n0.Pos.X+1, n0.Pos.Y)
	e.CheckHover(n0.Pos.X, n0.Pos.Y+1)
	assert.Len(t, tip.shows, 1, "same target does not re-fire")
	assert.True(t, tip.visible)

	e.CheckHover(790, 10)
	assert.False(t, tip.visible)
	assert.Equal(t, 1, tip.hides)

	e.CheckHover(795, 5)
	assert.Equal(t, 1, tip.hides, "hover end fires once")

	assert.Equal(t, []HoverTarget{{Kind: HoverNode, Index: 0}, {}}, events)
	assert.Equal(t, HoverTarget{}, e.Hovered())
}

func TestHover_SwitchTargets(t *testing.T) {
	tip := &recordingTooltip{}
	e := newHoverEntity(t, tip)
	revealFully(t, e)

	n0, n1 := e.Nodes()[0], e.Nodes()[1]
	e.CheckHover(n0.Pos.X, n0.Pos.Y)
	e.CheckHover(n1.Pos.X, n1.Pos.Y)
	e.CheckHover(400, 400)

	require.Len(t, tip.shows, 3)
	assert.Equal(t, parameter.CoreTooltip, tip.shows[2])
	assert.Equal(t, 0, tip.hides)
}

func TestHover_Connection(t *testing.T) {
	tip := &recordingTooltip{}
	e := newHoverEntity(t, tip)
	revealFully(t, e)

	require.Len(t, e.Connections(), 6)
	c := e.Connections()[0]
	require.Equal(t, 0, c.From)
	require.Equal(t, 1, c.To)

	mid := vmath.LerpVec(e.Nodes()[0].Pos, e.Nodes()[1].Pos, 0.5)
	got := e.CheckHover(mid.X, mid.Y)
	assert.Equal(t, HoverTarget{Kind: HoverConnection, Index: 0}, got)
	require.Len(t, tip.shows, 1)
	assert.Equal(t, "Neural pathway: 0.55 strength connection", tip.shows[0])
	assert.Equal(t, "connection-0", got.String())
}

func TestHover_DegenerateConnectionNeverMatches(t *testing.T) {
	tn := parameter.Default()
	tn.Hit.NodeHoverScale = 0.01

	// Four phases, then only pair (0,1) passes its trial
	seq := vmath.NewSequence(0.1, 0.1, 0.1, 0.1, 0.1, 0.0, 0.9, 0.9, 0.9, 0.9, 0.9)
	e := newTestEntity(t, 800, 800, WithLayoutRadius(300), WithTuning(tn), WithRand(seq))
	require.Len(t, e.Connections(), 1)
	revealFully(t, e)

	nodes := e.Nodes()
	nodes[0].Pos = vmath.V2(100, 100)
	nodes[1].Pos = vmath.V2(100, 100)

	assert.NotPanics(t, func() {
		assert.Equal(t, HoverNone, e.CheckHover(105, 100).Kind)
	})

	// Same geometry with a real segment does match
	nodes[1].Pos = vmath.V2(200, 100)
	assert.Equal(t, HoverTarget{Kind: HoverConnection, Index: 0}, e.CheckHover(150, 105))
}

func TestHover_ClearedByResize(t *testing.T) {
	tip := &recordingTooltip{}
	e := newHoverEntity(t, tip)

	e.CheckHover(400, 400)
	require.True(t, tip.visible)

	e.Resize()
	assert.False(t, tip.visible)
	assert.Equal(t, HoverTarget{}, e.Hovered())
}

func TestHideTooltip(t *testing.T) {
	tip := &recordingTooltip{}
	e := newHoverEntity(t, tip)

	e.HideTooltip()
	assert.Equal(t, 0, tip.hides, "nothing hovered")

	e.CheckHover(400, 400)
	e.HideTooltip()
	assert.Equal(t, 1, tip.hides)
	assert.False(t, tip.visible)
}

func TestHoverTarget_String(t *testing.T) {
	assert.Equal(t, "core", HoverTarget{Kind: HoverCore}.String())
	assert.Equal(t, "node-2", HoverTarget{Kind: HoverNode, Index: 2}.String())
	assert.Equal(t, "", HoverTarget{}.String())
}

func TestCoreRadiusBreathes(t *testing.T) {
	e := newTestEntity(t, 200, 200, WithRand(vmath.NewFastRand(1)))
	lo, hi := 1e9, 0.0
	for i := 0; i < 7000; i++ {
		e.Tick()
		r := e.CoreRadius()
		lo, hi = min(lo, r), max(hi, r)
	}
	assert.InDelta(t, parameter.CoreRadius-parameter.CoreBreath, lo, 0.01)
	assert.InDelta(t, parameter.CoreRadius+parameter.CoreBreath, hi, 0.01)
}
