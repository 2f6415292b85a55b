// Package randutil centralises how deterministic random sources are built
// from a single int64 seed, so every call site gets reproducible shuffles.
package randutil

import rand "math/rand/v2"

// New returns a *rand.Rand seeded deterministically from seed. rand/v2's
// PCG wants two well-mixed 64-bit words; splitmix64 turns one seed into
// both so correlated seeds (41, 42, 43...) still give independent streams.
func New(seed int64) *rand.Rand {
	s := splitmix64{state: uint64(seed)}
	return rand.New(rand.NewPCG(s.next(), s.next()))
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
