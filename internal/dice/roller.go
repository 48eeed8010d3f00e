// Package dice provides the seeded random source behind rolls and random events.
package dice

import (
	"math"
	"math/rand"
	"time"
)

// Roller wraps a single seeded uniform generator.
// Two rollers created with the same seed produce the same sequence.
type Roller struct {
	seed int64
	rng  *rand.Rand
}

// New creates a roller for the given seed.
// A seed of 0 means a time-based seed is chosen.
func New(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the roller was created with.
func (r *Roller) Seed() int64 {
	return r.seed
}

// RollDice returns an integer in [min, max] inclusive.
// Swapped bounds are normalized.
func (r *Roller) RollDice(min, max int) int {
	if max < min {
		min, max = max, min
	}
	// Unsigned so the full int range does not overflow; 0 means all 2^64 values.
	span := uint64(max) - uint64(min) + 1
	if span != 0 && span <= math.MaxInt {
		return min + r.rng.Intn(int(span))
	}
	for {
		v := r.rng.Uint64()
		if span == 0 || v < span {
			return int(uint64(min) + v)
		}
	}
}

// Chance reports whether a 1-in-n event fires.
func (r *Roller) Chance(n int) bool {
	if n <= 1 {
		return true
	}
	return r.RollDice(1, n) == 1
}

// Pick returns a uniform index in [0, n). It returns -1 when n <= 0.
func (r *Roller) Pick(n int) int {
	if n <= 0 {
		return -1
	}
	return r.RollDice(0, n-1)
}

// Jitter returns a duration in [base, base+spread].
func (r *Roller) Jitter(base, spread time.Duration) time.Duration {
	if spread <= 0 {
		return base
	}
	return base + time.Duration(r.rng.Int63n(int64(spread)+1))
}
