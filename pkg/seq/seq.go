// Package seq provides the deterministic pseudo-random sequence that
// drives placement and routing decisions. The generator is an explicit
// instance so independent layouts can run concurrently with their own
// streams; a single instance is not safe for concurrent use.
package seq

// Sequence is a mulberry32 generator. The same seed always yields a
// bit-identical stream of floats in [0, 1).
type Sequence struct {
	state uint32
}

// New creates a sequence from a 32-bit seed.
func New(seed uint32) *Sequence {
	return &Sequence{state: seed}
}

// Float64 returns the next value in [0, 1).
func (s *Sequence) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range returns the next value scaled into [min, max).
func (s *Sequence) Range(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// Intn returns the next value as an integer in [0, n). Non-positive n
// yields 0.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Float64() * float64(n))
}

// Perm returns a deterministic permutation of [0, n) via Fisher-Yates.
func (s *Sequence) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
