package sim

import "math/rand"

// randBetween draws a uniform integer in [lo, hi], both ends inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
