// Package rng provides a small deterministic pseudo-random source.
//
// The engine takes randomness as an injected dependency so tests can supply
// a fixed or zero-jitter source; nothing in the engine reaches for a
// process-global generator.
package rng

// Source is a deterministic pseudo-random number generator using an LCG
// (Linear Congruential Generator).
type Source struct {
	state uint64
}

// New creates a new source with the given seed.
func New(seed int64) *Source {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &Source{state: s}
}

// Next generates the next random uint64.
func (r *Source) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// State returns the generator state, for snapshots.
func (r *Source) State() uint64 {
	return r.state
}

// SetState restores a generator state captured by State.
func (r *Source) SetState(s uint64) {
	r.state = s
}

// Intn returns a random int in [0, n).
func (r *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *Source) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Unit returns a random float64 in [-1, 1).
func (r *Source) Unit() float64 {
	return r.Float64()*2 - 1
}

// Fixed is a Source-compatible stand-in that always yields the same value.
// Useful in tests that need jitter-free trajectories.
type Fixed struct {
	Value float64
}

// Float64 returns the configured value.
func (f Fixed) Float64() float64 {
	return f.Value
}

// Unit returns the configured value mapped to [-1, 1).
func (f Fixed) Unit() float64 {
	return f.Value*2 - 1
}
