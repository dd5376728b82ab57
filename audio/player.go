// Package audio synthesizes the entity's feedback sounds and plays them
// through beep. A missing audio device leaves the player silent
package audio

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/ai-entity/engine"
	"github.com/lixenwraith/ai-entity/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player mixes one-shot effects into a single speaker stream
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	cache  *soundCache
	clock  engine.TimeSource
	log    *zap.Logger
	volume float64

	// out receives streams once initialized; swapped out in tests
	out         func(beep.Streamer)
	initialized bool
	lastPlay    time.Time
	played      int
}

type Option func(*Player)

func WithClock(c engine.TimeSource) Option {
	return func(p *Player) {
		if c != nil {
			p.clock = c
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// WithVolume sets master gain, clamped to [0, 1]
func WithVolume(v float64) Option {
	return func(p *Player) {
		p.volume = min(max(v, 0), 1)
	}
}

func NewPlayer(opts ...Option) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		cache:  newSoundCache(),
		clock:  engine.NewTimeProvider(),
		log:    zap.NewNop(),
		volume: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cache.preload()
	return p
}

// Init opens the speaker. Failure is returned for logging only; the player
// stays usable and silent
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "audio: speaker init")
	}
	speaker.Play(p.mixer)
	p.out = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	p.log.Debug("audio initialized", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Play queues st. Returns false when silent or inside MinSoundGap of the
// previous sound
func (p *Player) Play(st SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.out == nil || p.volume == 0 {
		return false
	}
	now := p.clock.Now()
	if !p.lastPlay.IsZero() && now.Sub(p.lastPlay) < parameter.MinSoundGap {
		return false
	}
	buf := p.cache.get(st)
	if len(buf) == 0 {
		return false
	}
	p.lastPlay = now
	p.played++
	p.out(&bufferStreamer{buf: buf, gain: p.volume})
	return true
}

func (p *Player) PlayPulse() { p.Play(SoundPulse) }

func (p *Player) PlaySweep() { p.Play(SoundSweep) }

// Close silences the mixer; later Play calls are no-ops
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.out = nil
	p.initialized = false
}

// Played returns the number of sounds queued so far
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}
