package sim

import "math/rand"

// Source yields uniform draws in [0, 1). Every stochastic decision of the
// engine routes through a Source, so a run is a pure function of its
// parameters and draw sequence. A Source is consumed sequentially and must
// not be shared across goroutines without external synchronization.
type Source interface {
	Float64() float64
}

// NewSeededSource returns a deterministic Source backed by math/rand.
// Identical seeds replay identical runs.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// pickIndex maps a single uniform draw onto [0, n). The clamp covers the
// draw landing exactly on 1.0 after scaling.
func pickIndex(rng Source, n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(rng.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
