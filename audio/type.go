package audio

// SoundType identifies a synthesized effect
type SoundType int

const (
	// SoundPulse is the short blip played when an energy pulse fires
	SoundPulse SoundType = iota
	// SoundSweep rises across the reveal
	SoundSweep

	soundTypeCount
)

func (st SoundType) String() string {
	switch st {
	case SoundPulse:
		return "pulse"
	case SoundSweep:
		return "sweep"
	default:
		return "unknown"
	}
}
