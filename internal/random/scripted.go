package random

// Scripted is a Source that replays a fixed sequence of values, for tests.
// Each IntBetween call consumes the next value, clamped into [min, max].
// When the sequence is exhausted it wraps around to the beginning.
type Scripted struct {
	values []int
	next   int
}

// NewScripted creates a scripted source from the given values.
// An empty sequence always yields min.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
