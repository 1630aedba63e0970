package rng

// Scripted replays fixed values, for tests that pin an exact outcome.
// Float64 values come from Floats, IntN values from Ints; each stream
// falls back to zero once exhausted.
type Scripted struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

func (s *Scripted) Float64() float64 {
	if s.fi >= len(s.Floats) {
		return 0
	}
	v := s.Floats[s.fi]
	s.fi++
	return v
}

func (s *Scripted) IntN(n int) int {
	if s.ii >= len(s.Ints) {
		return 0
	}
	v := s.Ints[s.ii] % n
	if v < 0 {
		v += n
	}
	s.ii++
	return v
}
