package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Pulse Blip
const (
	PulseFreq     = 880.0
	PulseDuration = 50 * time.Millisecond
	PulseVolume   = 0.25
)

// Reveal Sweep
const (
	SweepFreqStart = 220.0
	SweepFreqEnd   = 880.0
	SweepDuration  = 600 * time.Millisecond
	SweepVolume    = 0.2
)

// Envelope
const (
	AudioAttack  = 5 * time.Millisecond
	AudioRelease = 20 * time.Millisecond

	// MinSoundGap between consecutive blips
	MinSoundGap = 40 * time.Millisecond
)
