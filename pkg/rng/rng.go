// Package rng is the seeded random source for the narrative engine.
// Every piece of pseudo-randomness in the engine derives from a string
// seed through this package, so identical inputs always reproduce
// identical text. The generator uses only 32-bit integer arithmetic
// with wraparound, keeping sequences bit-identical across platforms.
package rng

// fnvOffset and fnvPrime are the FNV-1a 32-bit parameters.
const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
)

// Hash32 folds a seed string into an unsigned 32-bit integer using
// an FNV-1a pass over its bytes.
func Hash32(seed string) uint32 {
	h := fnvOffset
	for i := 0; i < len(seed); i++ {
		h ^= uint32(seed[i])
		h *= fnvPrime
	}
	return h
}

// State is the explicit, immutable state of a mulberry32 generator.
// Advancing never mutates the receiver; callers thread the returned
// state through subsequent draws.
type State uint32

// mulberry32 increment and mixing constants.
const (
	stateIncrement uint32 = 0x6D2B79F5
	mixOdd61       uint32 = 61
)

// Advance steps the generator once, returning the next state and a
// float in [0,1).
func (s State) Advance() (State, float64) {
	next := uint32(s) + stateIncrement
	t := next
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|mixOdd61)
	t ^= t >> 14
	return State(next), float64(t) / 4294967296.0
}

// Source is a convenience wrapper that threads a State through
// successive draws. A Source is created fresh per call site and is
// never shared across calls; it is not safe for concurrent use.
type Source struct {
	state State
}

// New creates a Source bound to the given seed string.
func New(seed string) *Source {
	return &Source{state: State(Hash32(seed))}
}

// Next01 returns the next float in [0,1) from the stream.
func (s *Source) Next01() float64 {
	var v float64
	s.state, v = s.state.Advance()
	return v
}

// subSeed derives the seed for a one-shot generator bound to a single
// purpose tag. The separator keeps distinct (key, purpose) pairs from
// colliding on concatenation.
func subSeed(seedKey, purpose string) string {
	return seedKey + "::" + purpose
}

// StableFloat returns a single deterministic float in [0,1) for one
// purpose tag, without constructing a reusable Source. Use it where
// exactly one random decision is needed per key.
func StableFloat(seedKey, purpose string) float64 {
	_, v := State(Hash32(subSeed(seedKey, purpose))).Advance()
	return v
}
