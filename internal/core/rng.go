package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Range returns a value in [lo, lo+span).
func (r *RNG) Range(lo, span float64) float64 {
	return lo + r.r.Float64()*span
}

// Uint8Range returns a value in [lo, hi]. Bounds are swapped when reversed.
func (r *RNG) Uint8Range(lo, hi uint8) uint8 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + uint8(r.r.IntN(int(hi-lo)+1))
}
