package game

import "math/rand"

// Rand is the source of every non-deterministic draw in a session.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, not security
}

// between returns a uniform draw in [lo, lo+span).
func between(r Rand, lo, span float64) float64 {
	return lo + r.Float64()*span
}
