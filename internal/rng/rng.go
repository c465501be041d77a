// Package rng implements the deterministic pseudo-random generator used
// by every stochastic system in the simulation. It is a Park-Miller
// linear-congruential generator: full period for seeds in [1, modulus-1],
// and two generators with the same seed produce identical call sequences,
// which is what makes terrain, ore layouts and event schedules replayable.
package rng

const (
	modulus    = 2147483647 // 2^31 - 1, prime
	multiplier = 48271
)

// LCG is a seedable linear-congruential generator.
type LCG struct {
	state int64
}

// New creates a generator from an arbitrary seed. Seeds are reduced into
// [1, modulus-1]; non-positive values are folded by adding modulus-1.
func New(seed int64) *LCG {
	s := seed % modulus
	if s <= 0 {
		s += modulus - 1
	}
	return &LCG{state: s}
}

// State returns the current internal state without advancing. Equal
// states mean equal future sequences.
func (r *LCG) State() int64 {
	return r.state
}

// Next advances the generator and returns the raw integer state,
// a value in [1, modulus-1].
func (r *LCG) Next() int64 {
	r.state = r.state * multiplier % modulus
	return r.state
}

// Float returns the next value in [0, 1).
func (r *LCG) Float() float64 {
	return float64(r.Next()-1) / float64(modulus-1)
}

// Range returns the next value in [min, max).
func (r *LCG) Range(min, max float64) float64 {
	return min + r.Float()*(max-min)
}

// Int returns the next integer in [min, max] inclusive.
func (r *LCG) Int(min, max int) int {
	return min + int(r.Float()*float64(max-min+1))
}

// Pick returns a uniformly selected index in [0, n).
func (r *LCG) Pick(n int) int {
	return int(r.Float() * float64(n))
}
