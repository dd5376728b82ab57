// Package engine runs the single-writer frame loop: terminal events and frame
// ticks are serialized onto one goroutine, which also fires deferred callbacks
package engine

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ai-entity/parameter"
)

// EventHandler handles one terminal event; returning false ends the loop
type EventHandler func(ev tcell.Event) bool

// FrameHandler advances and draws one frame
type FrameHandler func(now time.Time)

type deferred struct {
	at  time.Time
	seq uint64
	fn  func()
}

// Loop serializes events, frame ticks and deferred callbacks
type Loop struct {
	interval time.Duration
	clock    TimeSource
	log      *zap.Logger
	crash    func(any)

	events  <-chan tcell.Event
	onEvent EventHandler
	onFrame FrameHandler

	mu      sync.Mutex
	pending []deferred
	seq     uint64

	frames atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool
}

type LoopOption func(*Loop)

// WithInterval sets the frame interval; non-positive values are ignored
func WithInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

func WithClock(c TimeSource) LoopOption {
	return func(l *Loop) {
		if c != nil {
			l.clock = c
		}
	}
}

func WithLogger(log *zap.Logger) LoopOption {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// WithCrashHandler receives panics recovered from a loop started with Start
func WithCrashHandler(fn func(any)) LoopOption {
	return func(l *Loop) {
		l.crash = fn
	}
}

// NewLoop creates a loop reading events from events, which may be nil
func NewLoop(events <-chan tcell.Event, opts ...LoopOption) *Loop {
	l := &Loop{
		interval: parameter.FrameUpdateInterval,
		clock:    NewTimeProvider(),
		log:      zap.NewNop(),
		events:   events,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IntervalForFPS converts a frame rate to a tick interval, clamped to [1, MaxFPS]
func IntervalForFPS(fps int) time.Duration {
	fps = min(max(fps, 1), parameter.MaxFPS)
	return time.Second / time.Duration(fps)
}

// OnEvent sets the event handler, must be called before Run
func (l *Loop) OnEvent(fn EventHandler) { l.onEvent = fn }

// OnFrame sets the frame handler, must be called before Run
func (l *Loop) OnFrame(fn FrameHandler) { l.onFrame = fn }

// After schedules fn to run on the loop goroutine at the first frame at least d from now.
// Safe to call from any goroutine
func (l *Loop) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.seq++
	l.pending = append(l.pending, deferred{at: l.clock.Now().Add(d), seq: l.seq, fn: fn})
	l.mu.Unlock()
}

// Pending returns the number of deferred callbacks not yet fired
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// Frames returns the number of frames stepped
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Step fires due deferred callbacks in deadline order, then the frame handler
func (l *Loop) Step(now time.Time) {
	for _, d := range l.due(now) {
		d.fn()
	}
	l.frames.Add(1)
	if l.onFrame != nil {
		l.onFrame(now)
	}
}

func (l *Loop) due(now time.Time) []deferred {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.pending) == 0 {
		return nil
	}
	sort.Slice(l.pending, func(i, j int) bool {
		a, b := l.pending[i], l.pending[j]
		if a.at.Equal(b.at) {
			return a.seq < b.seq
		}
		return a.at.Before(b.at)
	})
	n := 0
	for n < len(l.pending) && !l.pending[n].at.After(now) {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]deferred, n)
	copy(out, l.pending[:n])
	l.pending = append(l.pending[:0], l.pending[n:]...)
	return out
}

// Run blocks until ctx is done, Stop is called, or the event handler asks to quit
func (l *Loop) Run(ctx context.Context) error {
	defer l.closeDone()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	events := l.events
	l.log.Debug("loop started", zap.Duration("interval", l.interval))

	for {
		select {
		case <-ctx.Done():
			l.log.Debug("loop cancelled")
			return ctx.Err()

		case <-l.stopChan:
			l.log.Debug("loop stopped")
			return nil

		case ev, ok := <-events:
			if !ok {
				// Source closed; keep animating until told to stop
				events = nil
				continue
			}
			if l.onEvent != nil && !l.onEvent(ev) {
				l.log.Debug("loop quit requested")
				return nil
			}

		case <-ticker.C:
			l.Step(l.clock.Now())
		}
	}
}

// Start runs the loop on its own goroutine with panic recovery
func (l *Loop) Start(ctx context.Context) {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				l.closeDone()
				l.log.Error("loop crashed", zap.Any("panic", r))
				if l.crash != nil {
					l.crash(r)
				}
			}
		}()
		_ = l.Run(ctx)
	}()
}

// Stop halts the loop and waits for a started loop to exit. Safe to call more than once
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	l.wg.Wait()
}

// Done is closed once Run returns
func (l *Loop) Done() <-chan struct{} { return l.done }

func (l *Loop) closeDone() {
	select {
	case <-l.done:
	default:
		close(l.done)
	}
}
