package anim

// State is the animation clock. The zero value is the initial state.
type State struct {
	Time    float64
	Pattern int
	Frame   int
}

// Advance moves the clock forward one tick and reports whether the
// pattern changed. The frame counter resets on every pattern switch.
func (s *State) Advance(step float64, framesPerPattern, patternCount int) bool {
	s.Time += step
	s.Frame++
	if s.Frame < framesPerPattern {
		return false
	}
	s.Frame = 0
	if patternCount > 0 {
		s.Pattern = (s.Pattern + 1) % patternCount
	}
	return true
}
