// Package rng provides the injectable randomness behind every probabilistic
// branch of damage resolution. Callers pick the source: a seeded generator
// for deterministic replays, scripted sources for tests, or a crypto-seeded
// generator for live battles.
package rng

import "math/rand/v2"

// Source yields uniform draws. One primitive is enough: every weighted
// choice in the resolver reduces to an integer draw.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) int
}

type seeded struct {
	r *rand.Rand
}

// New returns a deterministic Source for the given seed. Two sources built
// from the same seed produce identical draw sequences.
func New(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seeded) IntN(n int) int {
	return s.r.IntN(n)
}
