package seed

import (
	"math/rand/v2"
	"time"
)

// Randomizer wraps a per-instance random source so a whole pipeline run can
// be reproduced from a single seed.
type Randomizer struct {
	r *rand.Rand
}

// NewRandomizer returns a Randomizer seeded from the current time.
func NewRandomizer() *Randomizer {
	return NewSeededRandomizer(uint64(time.Now().UnixNano()))
}

// NewSeededRandomizer returns a Randomizer producing a reproducible sequence.
func NewSeededRandomizer(seed uint64) *Randomizer {
	return &Randomizer{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between returns an integer in [lo, hi] inclusive. Reversed bounds are
// swapped.
func (rz *Randomizer) Between(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + rz.r.IntN(hi-lo+1)
}

// Bool returns true with probability p.
func (rz *Randomizer) Bool(p float64) bool {
	return rz.r.Float64() < p
}

// DateBetween returns a random instant in [start, end]. Reversed bounds are
// swapped; equal bounds return start.
func (rz *Randomizer) DateBetween(start, end time.Time) time.Time {
	if end.Before(start) {
		start, end = end, start
	}
	span := int64(end.Sub(start))
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(rz.r.Int64N(span + 1)))
}

// Pick returns a uniformly chosen element of set. The set must be non-empty.
func Pick[T any](rz *Randomizer, set []T) T {
	return set[rz.r.IntN(len(set))]
}

// Weighted pairs a candidate value with its selection weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// PickWeighted chooses among choices proportionally to their weights, which
// are normalized and need not sum to 1. Selection walks the cumulative
// weights subtracting from a random remainder; the first non-positive
// remainder wins. If floating point error exhausts the walk without a
// winner, the first choice is returned — the fallback is part of the
// contract so the pick always terminates with a valid candidate.
func PickWeighted[T any](rz *Randomizer, choices []Weighted[T]) T {
	var total float64
	for i := range choices {
		total += choices[i].Weight
	}
	if total <= 0 {
		return choices[0].Value
	}
	remainder := rz.r.Float64() * total
	for i := range choices {
		remainder -= choices[i].Weight
		if remainder <= 0 {
			return choices[i].Value
		}
	}
	return choices[0].Value
}

// PickN samples n distinct elements of set without replacement, in random
// order. When n exceeds the set size the whole set is returned shuffled.
func PickN[T any](rz *Randomizer, set []T, n int) []T {
	out := append([]T(nil), set...)
	rz.r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n < 0 {
		n = 0
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}
