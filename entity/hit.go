package entity

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/ai-entity/graph"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

// HoverKind classifies what the pointer is over
type HoverKind uint8

const (
	HoverNone HoverKind = iota
	HoverCore
	HoverNode
	HoverConnection
)

// HoverTarget identifies a hovered element; Index is meaningful for nodes and connections
type HoverTarget struct {
	Kind  HoverKind
	Index int
}

func (h HoverTarget) String() string {
	switch h.Kind {
	case HoverCore:
		return "core"
	case HoverNode:
		return fmt.Sprintf("node-%d", h.Index)
	case HoverConnection:
		return fmt.Sprintf("connection-%d", h.Index)
	default:
		return ""
	}
}

// CoreRadius returns the breathing core radius at the current tick
func (e *Entity) CoreRadius() float64 {
	return coreRadius(e.tuning.Hit, e.tick)
}

func coreRadius(h parameter.HitTuning, tick uint64) float64 {
	return h.CoreRadius + math.Sin(float64(tick)*parameter.BreathRate)*parameter.CoreBreath
}

// NodeRadius returns the breathing visual radius of n at tick
func NodeRadius(h parameter.HitTuning, n graph.Node, tick uint64) float64 {
	return h.NodeRadius + math.Sin(float64(tick)*parameter.NodePulseRate+n.PulsePhase)*parameter.NodePulse
}

// HitTest resolves p to a hover target without side effects. Priority is
// core, then nodes in index order, then connections in build order.
// Nodes and connections are only targetable once labels are visible
func (e *Entity) HitTest(p vmath.Vec2) HoverTarget {
	if e == nil || e.closed {
		return HoverTarget{}
	}
	h := e.tuning.Hit

	if vmath.InCircle(p, e.center, coreRadius(h, e.tick)*h.CoreHoverScale) {
		return HoverTarget{Kind: HoverCore}
	}

	if e.gate.Visibility() <= e.tuning.Reveal.LabelThreshold {
		return HoverTarget{}
	}

	for i, n := range e.graph.Nodes {
		if vmath.InCircle(p, n.Pos, NodeRadius(h, n, e.tick)*h.NodeHoverScale) {
			return HoverTarget{Kind: HoverNode, Index: i}
		}
	}

	for i, c := range e.graph.Connections {
		from, to, ok := e.graph.Endpoints(c)
		if ok && vmath.NearSegment(p, from, to, h.ConnectionThreshold) {
			return HoverTarget{Kind: HoverConnection, Index: i}
		}
	}

	return HoverTarget{}
}

// CheckHover runs the hover contract for a pointer at (x, y): the tooltip is
// shown on entering a new target and hidden when nothing is hovered anymore.
// Repeated calls over the same target do not re-fire
func (e *Entity) CheckHover(x, y float64) HoverTarget {
	if e == nil || e.closed {
		return HoverTarget{}
	}
	target := e.HitTest(vmath.V2(x, y))
	e.setHover(target, x, y)
	return target
}

// HideTooltip ends any hover, used when the pointer leaves the canvas
func (e *Entity) HideTooltip() {
	if e == nil || e.closed {
		return
	}
	e.setHover(HoverTarget{}, 0, 0)
}

func (e *Entity) setHover(target HoverTarget, x, y float64) {
	if target == e.hovered {
		return
	}
	e.hovered = target

	if target.Kind == HoverNone {
		if e.tooltip != nil {
			e.tooltip.Hide()
		}
	} else if e.tooltip != nil {
		e.tooltip.Show(e.tooltipText(target), x, y)
	}

	if e.onHover != nil {
		e.onHover(target)
	}
}

func (e *Entity) tooltipText(t HoverTarget) string {
	switch t.Kind {
	case HoverCore:
		return parameter.CoreTooltip
	case HoverNode:
		if !e.graph.Valid(t.Index) {
			return ""
		}
		n := e.graph.Nodes[t.Index]
		if t.Index < len(parameter.NodeDescriptions) {
			return n.Label + ": " + parameter.NodeDescriptions[t.Index]
		}
		return n.Label
	case HoverConnection:
		if t.Index < 0 || t.Index >= len(e.graph.Connections) {
			return ""
		}
		return fmt.Sprintf(parameter.ConnectionTooltipFmt, e.graph.Connections[t.Index].Strength)
	}
	return ""
}

// Hovered returns the current hover target
func (e *Entity) Hovered() HoverTarget {
	return e.hovered
}

// Click dispatches a click at (x, y). Only active once fully revealed; the
// first node in index order whose click radius contains the point is pulsed
// and reported. Returns whether a node was hit
func (e *Entity) Click(x, y float64) bool {
	if e == nil || e.closed || !e.gate.Interactive() {
		return false
	}
	p := vmath.V2(x, y)
	for i, n := range e.graph.Nodes {
		if vmath.InCircle(p, n.Pos, e.tuning.Hit.ClickRadius) {
			e.dispatchNode(i)
			return true
		}
	}
	return false
}

// SelectNode behaves like a click on node index; invalid indices and clicks
// before the reveal completes are ignored
func (e *Entity) SelectNode(index int) bool {
	if e == nil || e.closed || !e.gate.Interactive() || !e.graph.Valid(index) {
		return false
	}
	e.dispatchNode(index)
	return true
}

func (e *Entity) dispatchNode(i int) {
	e.TriggerPulse()
	e.log.Debug("node clicked", zap.Int("index", i), zap.String("label", e.graph.Nodes[i].Label))
	if e.onNodeClick != nil {
		e.onNodeClick(i)
	}
}
