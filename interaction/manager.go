// Package interaction maps terminal events onto the entity: pointer motion,
// viewport enter and leave, clicks, keys and throttled resizes
package interaction

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/ai-entity/engine"
	"github.com/lixenwraith/ai-entity/entity"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/render"
	"github.com/lixenwraith/ai-entity/vmath"
)

// Timing of the tagline action
const (
	RevealDelay    = 400 * time.Millisecond
	TaglineSwap    = 1200 * time.Millisecond
	ResizeInterval = 250 * time.Millisecond

	// MorphChance is the probability a missed click also morphs
	MorphChance = 0.5
)

// Scheduler defers work onto the loop goroutine
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Viewport reports whether a cell lies on the entity canvas
type Viewport interface {
	Contains(x, y int) bool
}

// Chrome is the text around the canvas
type Chrome interface {
	SetTagline(s string)
	SetStatus(s string)
}

// Demo is the showcase driven by the tagline and Tab
type Demo interface {
	StartDemo()
	NextCapability()
}

// Manager handles tcell events on the loop goroutine
type Manager struct {
	ent    *entity.Entity
	sched  Scheduler
	view   Viewport
	chrome Chrome
	demo   Demo
	rng    vmath.Source
	clock  engine.TimeSource
	log    *zap.Logger

	limiter      *rate.Limiter
	resizeQueued bool

	inside   bool
	buttons  tcell.ButtonMask
	revealed bool
	detached bool
}

type Option func(*Manager)

func WithChrome(c Chrome) Option {
	return func(m *Manager) { m.chrome = c }
}

func WithDemo(d Demo) Option {
	return func(m *Manager) { m.demo = d }
}

func WithRand(src vmath.Source) Option {
	return func(m *Manager) {
		if src != nil {
			m.rng = src
		}
	}
}

func WithClock(c engine.TimeSource) Option {
	return func(m *Manager) {
		if c != nil {
			m.clock = c
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// NewManager wires ent to terminal input. A nil ent is tolerated: every
// handler except quit becomes a no-op
func NewManager(ent *entity.Entity, sched Scheduler, view Viewport, opts ...Option) *Manager {
	m := &Manager{
		ent:     ent,
		sched:   sched,
		view:    view,
		rng:     vmath.NewFastRand(uint64(time.Now().UnixNano())),
		clock:   engine.NewTimeProvider(),
		log:     zap.NewNop(),
		limiter: rate.NewLimiter(rate.Every(ResizeInterval), 1),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.chrome != nil {
		m.chrome.SetTagline(parameter.TaglineHidden)
		m.chrome.SetStatus(parameter.StatusHintHidden)
	}
	return m
}

// HandleEvent processes one event and returns false if the program should exit
func (m *Manager) HandleEvent(ev tcell.Event) bool {
	if key, ok := ev.(*tcell.EventKey); ok && isQuit(key) {
		return false
	}
	if m.detached || m.ent == nil {
		return true
	}

	switch ev := ev.(type) {
	case *tcell.EventMouse:
		m.handleMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			m.leave()
		}
	case *tcell.EventResize:
		m.handleResize()
	case *tcell.EventKey:
		m.handleKey(ev)
	}
	return true
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (m *Manager) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := render.CellToWorld(x, y)
	prev := m.buttons
	m.buttons = ev.Buttons()

	// Pointer follows the mouse anywhere on screen
	m.ent.UpdatePointerTarget(p.X, p.Y)

	inside := m.view != nil && m.view.Contains(x, y)
	switch {
	case inside && !m.inside:
		m.inside = true
		m.ent.Activate()
	case !inside && m.inside:
		m.leave()
	}

	pressed := m.buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0
	if pressed && y == parameter.TaglineRow {
		m.TaglineAction()
		return
	}
	if !inside {
		return
	}
	// Drag moves the pointer only
	if m.buttons&tcell.Button1 != 0 && !pressed {
		return
	}
	m.ent.CheckHover(p.X, p.Y)
	if pressed {
		m.click(p)
	}
}

// click hits a node or, on a miss, pulses and sometimes morphs
func (m *Manager) click(p vmath.Vec2) {
	if m.ent.Click(p.X, p.Y) {
		return
	}
	m.ent.TriggerPulse()
	if m.rng.Float64() < MorphChance {
		m.ent.Morph()
	}
}

func (m *Manager) leave() {
	if !m.inside {
		return
	}
	m.inside = false
	m.ent.Deactivate()
	m.ent.HideTooltip()
}

// handleResize rebuilds at most once per ResizeInterval. A throttled resize
// schedules one trailing rebuild that reads the canvas size when it fires
func (m *Manager) handleResize() {
	if m.resizeQueued {
		return
	}
	now := m.clock.Now()
	r := m.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	if delay <= 0 || m.sched == nil {
		m.ent.Resize()
		return
	}
	m.resizeQueued = true
	m.sched.After(delay, func() {
		m.resizeQueued = false
		if !m.detached {
			m.ent.Resize()
		}
	})
}

func (m *Manager) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		m.TaglineAction()
	case tcell.KeyTab:
		if m.revealed && m.demo != nil {
			m.demo.NextCapability()
		}
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == ' ':
			m.TaglineAction()
		case r >= '1' && r <= '9':
			m.ent.SelectNode(int(r - '1'))
		case r == 'p':
			m.ent.TriggerPulse()
		case r == 'm':
			m.ent.Morph()
		}
	}
}

// TaglineAction reveals the entity on first use and starts the demo after
func (m *Manager) TaglineAction() {
	if m.detached || m.ent == nil {
		return
	}
	if m.revealed {
		if m.demo != nil {
			m.demo.StartDemo()
		}
		return
	}
	m.revealed = true
	m.log.Debug("tagline action", zap.String("entity", m.ent.ID()))
	if m.chrome != nil {
		m.chrome.SetTagline("")
	}
	if m.sched == nil {
		m.ent.Reveal()
		m.swapTagline()
		return
	}
	m.sched.After(RevealDelay, func() {
		if !m.detached {
			m.ent.Reveal()
		}
	})
	m.sched.After(TaglineSwap, m.swapTagline)
}

func (m *Manager) swapTagline() {
	if m.detached || m.chrome == nil {
		return
	}
	m.chrome.SetTagline(parameter.TaglineRevealed)
	m.chrome.SetStatus(parameter.StatusHintRevealed)
}

// Revealed reports whether the tagline action has been taken
func (m *Manager) Revealed() bool { return m.revealed }

// Inside reports whether the pointer is over the canvas
func (m *Manager) Inside() bool { return m.inside }

// Detach stops all further handling; pending deferred work becomes a no-op
func (m *Manager) Detach() {
	if m.detached {
		return
	}
	m.detached = true
	if m.ent != nil && m.inside {
		m.ent.Deactivate()
		m.ent.HideTooltip()
	}
	m.inside = false
}
