package vmath

// Sequence is a scripted Source for tests, cycling through Values.
// An empty Sequence always returns 0
type Sequence struct {
	Values []float64
	pos    int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{Values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// Drawn returns how many values were consumed
func (s *Sequence) Drawn() int {
	return s.pos
}
