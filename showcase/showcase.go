// Package showcase is the consumer of node clicks: a scripted fake terminal
// that types capability demos into a panel, one character at a time
package showcase

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ai-entity/engine"
	"github.com/lixenwraith/ai-entity/parameter"
	"github.com/lixenwraith/ai-entity/vmath"
)

// Demo timing, measured from StartDemo
const (
	BootDelay      = 500 * time.Millisecond
	FirstDemoDelay = 2500 * time.Millisecond
)

// Panel is where typed output is shown
type Panel interface {
	SetTitle(title string)
	SetLines(lines []string)
	SetCursor(on bool)
	Show()
	Hide()
}

type timer struct {
	at  time.Time
	seq uint64
	fn  func(at time.Time)
}

// Showcase drives the panel. All methods run on the loop goroutine
type Showcase struct {
	panel Panel
	clock engine.TimeSource
	log   *zap.Logger

	typer typewriter
	queue []string

	timers []timer
	seq    uint64
	// Bumped on every clear so stale callbacks from an abandoned script drop out
	generation uint64

	capability int
	visible    bool
}

type Option func(*Showcase)

func WithRand(src vmath.Source) Option {
	return func(s *Showcase) {
		if src != nil {
			s.typer.rng = src
		}
	}
}

func WithClock(c engine.TimeSource) Option {
	return func(s *Showcase) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Showcase) {
		if l != nil {
			s.log = l
		}
	}
}

func New(panel Panel, opts ...Option) *Showcase {
	s := &Showcase{
		panel: panel,
		clock: engine.NewTimeProvider(),
		log:   zap.NewNop(),
	}
	s.typer.rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	for _, opt := range opts {
		opt(s)
	}
	if s.panel != nil {
		s.panel.SetTitle(parameter.ShowcasePanelTitle)
	}
	return s
}

// HandleNode reacts to a node selection. Unknown indices are ignored
func (s *Showcase) HandleNode(index int) bool {
	if index < 0 || index >= parameter.NodeCount {
		return false
	}
	s.log.Debug("showcase node", zap.Int("index", index))
	if index == DemoNode {
		s.StartDemo()
		return true
	}
	page, ok := nodePages[index]
	if !ok {
		return false
	}
	s.show()
	s.clear()
	s.typeLines(page, s.clock.Now())
	return true
}

// StartDemo opens the panel, types the boot message and then the first capability
func (s *Showcase) StartDemo() {
	s.show()
	s.clear()
	s.capability = 0
	gen := s.generation
	now := s.clock.Now()
	s.schedule(now.Add(BootDelay), func(at time.Time) {
		if gen == s.generation {
			s.typer.start(BootMessage+"\n", at, nil)
		}
	})
	s.schedule(now.Add(FirstDemoDelay), func(at time.Time) {
		if gen == s.generation {
			s.demonstrate(Capabilities[0], at)
		}
	})
}

// Demonstrate clears the panel and types the named capability; unknown names run rag
func (s *Showcase) Demonstrate(name string) {
	s.show()
	s.capability = 0
	for i, c := range Capabilities {
		if c == name {
			s.capability = i
		}
	}
	s.demonstrate(name, s.clock.Now())
}

// NextCapability cycles through Capabilities
func (s *Showcase) NextCapability() {
	next := (s.capability + 1) % len(Capabilities)
	s.Demonstrate(Capabilities[next])
}

func (s *Showcase) demonstrate(name string, at time.Time) {
	s.clear()
	s.log.Debug("showcase capability", zap.String("name", name))
	s.typeLines(Script(name), at)
}

// TypeMessage types one message; ignored while another is typing
func (s *Showcase) TypeMessage(msg string) bool {
	s.show()
	return s.typer.start(msg+"\n", s.clock.Now(), nil)
}

// typeLines types lines in order with LineGap between them
func (s *Showcase) typeLines(lines []string, at time.Time) {
	s.queue = append(s.queue[:0], lines...)
	gen := s.generation
	var next func(at time.Time)
	next = func(at time.Time) {
		if gen != s.generation || len(s.queue) == 0 {
			return
		}
		msg := s.queue[0]
		if s.typer.start(msg+"\n", at, func(done time.Time) {
			s.queue = s.queue[1:]
			s.schedule(done.Add(LineGap), next)
		}) {
			return
		}
		// Someone else is typing; retry after the gap
		s.schedule(at.Add(LineGap), next)
	}
	next(at)
}

// Update advances typing and timers to now and refreshes the panel
func (s *Showcase) Update(now time.Time) {
	changed := false
	for {
		fired := s.fireDue(now)
		typed := s.typer.advance(now)
		changed = changed || typed
		if !fired && !typed {
			break
		}
	}
	if changed && s.panel != nil {
		s.panel.SetLines(s.typer.lines())
	}
	if s.panel != nil {
		s.panel.SetCursor(s.typer.typing)
	}
}

func (s *Showcase) fireDue(now time.Time) bool {
	if len(s.timers) == 0 {
		return false
	}
	sort.Slice(s.timers, func(i, j int) bool {
		if s.timers[i].at.Equal(s.timers[j].at) {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].at.Before(s.timers[j].at)
	})
	if s.timers[0].at.After(now) {
		return false
	}
	t := s.timers[0]
	s.timers = s.timers[1:]
	t.fn(t.at)
	return true
}

func (s *Showcase) schedule(at time.Time, fn func(at time.Time)) {
	s.seq++
	s.timers = append(s.timers, timer{at: at, seq: s.seq, fn: fn})
}

func (s *Showcase) clear() {
	s.generation++
	s.typer.reset()
	s.queue = s.queue[:0]
	s.timers = s.timers[:0]
	if s.panel != nil {
		s.panel.SetLines(nil)
	}
}

func (s *Showcase) show() {
	if !s.visible && s.panel != nil {
		s.panel.Show()
	}
	s.visible = true
}

// Hide closes the panel and abandons any typing
func (s *Showcase) Hide() {
	s.clear()
	s.visible = false
	if s.panel != nil {
		s.panel.Hide()
	}
}

// Typing reports whether a message is being typed
func (s *Showcase) Typing() bool { return s.typer.typing }

// Capability returns the name of the current or last capability
func (s *Showcase) Capability() string { return Capabilities[s.capability] }

// Visible reports whether the panel is shown
func (s *Showcase) Visible() bool { return s.visible }

// Text returns everything typed since the last clear
func (s *Showcase) Text() string { return s.typer.text.String() }
