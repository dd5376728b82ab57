// Package entity owns one animated AI entity: its node graph, physics,
// particles, reveal gate, pointer state and hit testing. All methods must be
// called from a single goroutine (the frame loop); input handlers only write
// targets and flags, Tick is the only place the simulation advances
package entity

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/ai-entity/graph"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/physics"
	"github.com/lixenwraith/ai-entity/reveal"
	"github.com/lixenwraith/ai-entity/vmath"
)

// ErrNoCanvas is returned when the entity has nothing to anchor to
var ErrNoCanvas = errors.New("entity: no canvas")

// Canvas is the surface the entity is laid out on
type Canvas interface {
	// Size returns the viewport extent in world units
	Size() (width, height float64)
}

// Tooltip is the auxiliary text element driven by hover
type Tooltip interface {
	Show(text string, x, y float64)
	Hide()
}

// Releaser is optionally implemented by tooltips and drawers holding resources
type Releaser interface {
	Release()
}

// Drawer renders a frame; it must not mutate or retain it
type Drawer interface {
	Draw(f *Frame)
}

// Entity is the simulation and interaction core
type Entity struct {
	id     string
	log    *zap.Logger
	canvas Canvas
	rng    vmath.Source

	tuning  parameter.Tuning
	pending *parameter.Tuning

	// Layout override, 0 means derive from canvas
	fixedRadius float64

	width, height float64
	center        vmath.Vec2
	radius        float64

	graph     *graph.Graph
	particles []physics.Particle
	pointer   physics.Pointer
	morph     physics.Morph
	gate      *reveal.Gate
	active    bool
	tick      uint64

	hovered HoverTarget
	tooltip Tooltip
	drawer  Drawer

	onNodeClick func(index int)
	onHover     func(target HoverTarget)
	onPulse     func()
	onRevealed  func()

	frame  Frame
	closed bool
}

// Option configures an Entity at construction
type Option func(*Entity)

// WithRand injects the random source for layout, impulses and particles
func WithRand(src vmath.Source) Option {
	return func(e *Entity) {
		if src != nil {
			e.rng = src
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(e *Entity) {
		if l != nil {
			e.log = l
		}
	}
}

func WithTuning(t parameter.Tuning) Option {
	return func(e *Entity) {
		e.tuning = t.Sanitize()
	}
}

func WithTooltip(t Tooltip) Option {
	return func(e *Entity) {
		e.tooltip = t
	}
}

func WithDrawer(d Drawer) Option {
	return func(e *Entity) {
		e.drawer = d
	}
}

// WithLayoutRadius pins the node circle radius instead of deriving it from the canvas
func WithLayoutRadius(r float64) Option {
	return func(e *Entity) {
		if r > 0 {
			e.fixedRadius = r
		}
	}
}

// New lays out the entity on canvas. A nil or empty canvas yields ErrNoCanvas
// and no entity; callers carry on without one
func New(canvas Canvas, opts ...Option) (*Entity, error) {
	if canvas == nil {
		return nil, ErrNoCanvas
	}
	w, h := canvas.Size()
	if !(w > 0 && h > 0) {
		return nil, errors.Wrapf(ErrNoCanvas, "empty viewport %gx%g", w, h)
	}

	e := &Entity{
		id:     uuid.NewString(),
		log:    zap.NewNop(),
		canvas: canvas,
		tuning: parameter.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	e.log = e.log.With(zap.String("instance", e.id))
	e.gate = reveal.New(e.tuning.Reveal.Step)

	e.layout(w, h)
	e.log.Debug("entity created",
		zap.Float64("width", w),
		zap.Float64("height", h),
		zap.Int("nodes", len(e.graph.Nodes)),
		zap.Int("connections", len(e.graph.Connections)),
	)
	return e, nil
}

// Resize re-reads the canvas and rebuilds nodes and connections from scratch.
// Simulated positions and velocities are not carried over
func (e *Entity) Resize() {
	if e == nil || e.closed {
		return
	}
	w, h := e.canvas.Size()
	if !(w > 0 && h > 0) {
		e.log.Debug("resize ignored, empty viewport", zap.Float64("width", w), zap.Float64("height", h))
		return
	}
	e.layout(w, h)
	e.log.Debug("entity resized", zap.Float64("width", w), zap.Float64("height", h))
}

func (e *Entity) layout(w, h float64) {
	e.width, e.height = w, h
	e.center = vmath.V2(w/2, h/2)
	e.radius = e.fixedRadius
	if e.radius == 0 {
		e.radius = math.Min(e.center.X, e.center.Y) * e.tuning.Layout.RadiusFactor
	}

	e.graph = graph.Build(graph.Layout{
		Count:       e.tuning.Layout.NodeCount,
		Center:      e.center,
		Radius:      e.radius,
		Labels:      e.tuning.Layout.Labels,
		Colors:      e.tuning.Layout.Colors,
		Probability: e.tuning.Layout.ConnectionProbability,
	}, e.rng)
	e.morph.Cancel()

	// Previous hover may address a connection that no longer exists
	e.setHover(HoverTarget{}, 0, 0)
}

// UpdatePointerTarget records raw pointer input in canvas-local world units
func (e *Entity) UpdatePointerTarget(x, y float64) {
	if e == nil || e.closed {
		return
	}
	e.pointer.SetTarget(vmath.V2(x, y))
}

// Activate marks the pointer as engaged and spawns a particle burst
func (e *Entity) Activate() {
	if e == nil || e.closed {
		return
	}
	e.active = true
	e.burst()
}

func (e *Entity) Deactivate() {
	if e == nil || e.closed {
		return
	}
	e.active = false
}

// TriggerPulse kicks every node and spawns a particle burst at the center
func (e *Entity) TriggerPulse() {
	if e == nil || e.closed {
		return
	}
	e.burst()
	physics.Pulse(e.graph.Nodes, e.tuning.Physics.PulseImpulse, e.rng)
	if e.onPulse != nil {
		e.onPulse()
	}
}

// Reveal starts the one-way reveal; repeated calls are ignored
func (e *Entity) Reveal() {
	if e == nil || e.closed {
		return
	}
	if e.gate.Reveal() {
		e.log.Debug("reveal started")
	}
}

// Morph starts the anchor morph animation, restarting one in flight
func (e *Entity) Morph() {
	if e == nil || e.closed {
		return
	}
	e.morph.Start()
}

// SetTuning schedules new constants for the next Tick
func (e *Entity) SetTuning(t parameter.Tuning) {
	if e == nil || e.closed {
		return
	}
	s := t.Sanitize()
	e.pending = &s
}

// OnNodeClick registers the callback invoked with the index of a clicked node
func (e *Entity) OnNodeClick(fn func(index int)) {
	if e == nil {
		return
	}
	e.onNodeClick = fn
}

// OnHover registers a callback for hover target changes; HoverNone marks hover end
func (e *Entity) OnHover(fn func(target HoverTarget)) {
	if e == nil {
		return
	}
	e.onHover = fn
}

// OnPulse registers a callback fired on every pulse
func (e *Entity) OnPulse(fn func()) {
	if e == nil {
		return
	}
	e.onPulse = fn
}

// OnRevealed registers a callback fired once when the reveal completes
func (e *Entity) OnRevealed(fn func()) {
	if e == nil {
		return
	}
	e.onRevealed = fn
}

// Tick advances the simulation by one display frame and draws it
func (e *Entity) Tick() {
	if e == nil || e.closed {
		return
	}
	e.applyPending()

	e.tick++
	if e.gate.Step() {
		e.log.Debug("reveal completed", zap.Uint64("tick", e.tick))
		if e.onRevealed != nil {
			e.onRevealed()
		}
	}

	p := e.tuning.Physics
	e.pointer.Ease(p.PointerEasing)
	physics.Step(e.graph.Nodes, e.pointer, float64(e.tick), p)
	e.particles = physics.UpdateParticles(e.particles)
	e.morph.Step(e.graph, e.center, e.radius, p.MorphStep)

	if e.drawer != nil {
		e.drawer.Draw(e.Frame())
	}
}

func (e *Entity) applyPending() {
	if e.pending == nil {
		return
	}
	next := *e.pending
	e.pending = nil

	relayout := layoutChanged(e.tuning.Layout, next.Layout)
	e.tuning = next
	e.gate.SetStep(next.Reveal.Step)
	if relayout {
		e.layout(e.width, e.height)
	}
	e.log.Debug("tuning applied", zap.Bool("relayout", relayout))
}

func layoutChanged(a, b parameter.LayoutTuning) bool {
	if a.NodeCount != b.NodeCount || a.RadiusFactor != b.RadiusFactor ||
		a.ConnectionProbability != b.ConnectionProbability ||
		len(a.Labels) != len(b.Labels) || len(a.Colors) != len(b.Colors) {
		return true
	}
	for i := range a.Labels {
		if a.Labels[i] != b.Labels[i] {
			return true
		}
	}
	for i := range a.Colors {
		if a.Colors[i] != b.Colors[i] {
			return true
		}
	}
	return false
}

func (e *Entity) burst() {
	e.particles = physics.Burst(e.particles, e.center, e.tuning.Physics.ParticleBurst, e.rng)
}

// Close stops the entity from reacting, hides and releases the tooltip and drawer,
// and drops callbacks. Safe to call more than once
func (e *Entity) Close() {
	if e == nil || e.closed {
		return
	}
	e.closed = true

	if e.tooltip != nil {
		e.tooltip.Hide()
		if r, ok := e.tooltip.(Releaser); ok {
			r.Release()
		}
		e.tooltip = nil
	}
	if r, ok := e.drawer.(Releaser); ok {
		r.Release()
	}
	e.drawer = nil

	e.onNodeClick = nil
	e.onHover = nil
	e.onPulse = nil
	e.onRevealed = nil
	e.particles = nil
	e.log.Debug("entity closed")
}

// --- Accessors ---

func (e *Entity) ID() string { return e.id }

// Nodes returns the live node slice, valid until the next Resize
func (e *Entity) Nodes() []graph.Node { return e.graph.Nodes }

func (e *Entity) Connections() []graph.Connection { return e.graph.Connections }

func (e *Entity) Particles() []physics.Particle { return e.particles }

func (e *Entity) Center() vmath.Vec2 { return e.center }

func (e *Entity) Radius() float64 { return e.radius }

func (e *Entity) Visibility() float64 { return e.gate.Visibility() }

func (e *Entity) RevealState() reveal.State { return e.gate.State() }

func (e *Entity) Active() bool { return e.active }

func (e *Entity) Morphing() bool { return e.morph.Active() }

func (e *Entity) Pointer() physics.Pointer { return e.pointer }

func (e *Entity) Ticks() uint64 { return e.tick }

func (e *Entity) Tuning() parameter.Tuning { return e.tuning }

func (e *Entity) Closed() bool { return e.closed }
