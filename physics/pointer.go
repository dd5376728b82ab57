package physics

import "github.com/lixenwraith/ai-entity/vmath"

// Pointer separates raw input (Target, written by input handlers) from the
// eased position the simulation reads (Current, advanced once per frame)
type Pointer struct {
	Target  vmath.Vec2
	Current vmath.Vec2
	Present bool // False until the first target update
}

// SetTarget records a new input position. The first update snaps Current so
// the eased pointer does not sweep in from the origin
func (p *Pointer) SetTarget(v vmath.Vec2) {
	if !p.Present {
		p.Current = v
		p.Present = true
	}
	p.Target = v
}

// Ease moves Current toward Target by factor (exponential smoothing)
func (p *Pointer) Ease(factor float64) {
	if !p.Present {
		return
	}
	p.Current = vmath.LerpVec(p.Current, p.Target, factor)
}
