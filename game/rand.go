package game

import "math/rand/v2"

// Rand is the random source consumed by the simulation.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a deterministic generator for the given seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform samples from [lo, hi)
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// uniformInt samples from [lo, hi] inclusive
func uniformInt(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
