package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/ai-entity/parameter"
)

// floatBuffer is mono float64 samples
type floatBuffer []float64

// durationToSamples converts a duration to a sample count
func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// sine generates a tone whose frequency moves linearly from f0 to f1.
// Phase is accumulated so the sweep stays continuous
func sine(f0, f1 float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * phase)
		t := 0.0
		if samples > 1 {
			t = float64(i) / float64(samples-1)
		}
		phase += (f0 + (f1-f0)*t) / float64(parameter.AudioSampleRate)
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := durationToSamples(attack)
	releaseSamples := durationToSamples(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

func scale(buf floatBuffer, gain float64) floatBuffer {
	for i := range buf {
		buf[i] *= gain
	}
	return buf
}

func generatePulseSound() floatBuffer {
	buf := sine(parameter.PulseFreq, parameter.PulseFreq, durationToSamples(parameter.PulseDuration))
	applyEnvelope(buf, parameter.AudioAttack, parameter.AudioRelease)
	return scale(buf, parameter.PulseVolume)
}

func generateSweepSound() floatBuffer {
	buf := sine(parameter.SweepFreqStart, parameter.SweepFreqEnd, durationToSamples(parameter.SweepDuration))
	// Long tail so the sweep fades out instead of clicking off
	applyEnvelope(buf, parameter.AudioAttack, parameter.SweepDuration/3)
	return scale(buf, parameter.SweepVolume)
}

// generateSound dispatches to the specific generator
func generateSound(st SoundType) floatBuffer {
	switch st {
	case SoundPulse:
		return generatePulseSound()
	case SoundSweep:
		return generateSweepSound()
	default:
		return nil
	}
}

// bufferStreamer plays a buffer once on both channels
type bufferStreamer struct {
	buf  floatBuffer
	pos  int
	gain float64
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			break
		}
		v := s.buf[s.pos] * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
