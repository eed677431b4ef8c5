// Package rng provides the deterministic random source used by world
// generation. It is a plain 64-bit linear-congruential generator rather
// than math/rand so that a given seed produces the same tile sequence on
// every platform and every Go release.
package rng

import "hash/fnv"

// Knuth's MMIX constants.
const (
	multiplier = 6364136223846793005
	increment  = 1442695040888963407
)

// RNG is an explicit-state pseudo-random generator. One instance is
// threaded through a full generation run; it is not safe for concurrent
// use.
type RNG struct {
	state uint64
}

// New creates a generator with the given seed.
func New(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint32 advances the state and returns the high 32 bits, which have a
// much longer period than the low bits of an LCG.
func (r *RNG) Uint32() uint32 {
	r.state = r.state*multiplier + increment
	return uint32(r.state >> 32)
}

// Float01 returns a value in [0, 1).
func (r *RNG) Float01() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// IntRange returns a value in [min, max] inclusive. If max <= min it
// returns min.
func (r *RNG) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	span := uint32(max - min + 1)
	return min + int(r.Uint32()%span)
}

// FloatRange returns a value in [min, max).
func (r *RNG) FloatRange(min, max float64) float64 {
	return min + r.Float01()*(max-min)
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float01() < p
}

// SeedFor derives the world seed from the level parameters that identify
// a layout, so reloading the same level regenerates an identical world.
func SeedFor(environment, colonyGoal, width, height int) uint64 {
	h := fnv.New64a()
	for _, v := range []int{environment, colonyGoal, width, height} {
		h.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
	}
	sum := h.Sum64()
	if sum == 0 {
		sum = 1
	}
	return sum
}
