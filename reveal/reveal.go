// Package reveal implements the one-way visibility gate of the entity.
// Hidden → Revealing → Revealed, no reverse transition exists
package reveal

// State of the reveal gate
type State uint8

const (
	Hidden State = iota
	Revealing
	Revealed
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealing:
		return "revealing"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Gate animates the shared visibility scalar from 0 to 1 once triggered.
// Visibility is monotonically non-decreasing and clamped to [0, 1]
type Gate struct {
	state      State
	visibility float64
	step       float64
}

// New returns a hidden gate advancing by step per frame
func New(step float64) *Gate {
	return &Gate{step: step}
}

// Reveal starts the transition; no-op unless Hidden
func (g *Gate) Reveal() bool {
	if g.state != Hidden {
		return false
	}
	g.state = Revealing
	return true
}

// Step advances one frame. Reports true on the frame the gate becomes Revealed
func (g *Gate) Step() bool {
	if g.state != Revealing {
		return false
	}
	g.visibility += g.step
	if g.visibility >= 1 {
		g.visibility = 1
		g.state = Revealed
		return true
	}
	return false
}

// SetStep changes the per-frame increment for future frames; non-positive values are ignored
func (g *Gate) SetStep(step float64) {
	if step > 0 {
		g.step = step
	}
}

func (g *Gate) State() State {
	return g.state
}

func (g *Gate) Visibility() float64 {
	return g.visibility
}

// Interactive reports whether click dispatch is enabled
func (g *Gate) Interactive() bool {
	return g.state == Revealed
}
