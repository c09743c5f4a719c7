package rng

import (
	"fmt"
	"math"
)

// EmptyPoolError reports a draw from a zero-length pool. An empty pool
// is always a data or configuration defect, so callers propagate this
// rather than recovering from it.
type EmptyPoolError struct {
	Op string
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("%s: empty pool", e.Op)
}

// minWeight is the floor applied to every entry before summing, so a
// weighted pool's total weight is always positive.
const minWeight = 1e-6

func clampWeight(w float64) float64 {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < minWeight {
		return minWeight
	}
	return w
}

// Pick draws one element of pool uniformly at random from src.
func Pick[T any](src *Source, pool []T) (T, error) {
	var zero T
	if len(pool) == 0 {
		return zero, &EmptyPoolError{Op: "pick"}
	}
	idx := int(src.Next01() * float64(len(pool)))
	if idx >= len(pool) {
		idx = len(pool) - 1
	}
	return pool[idx], nil
}

// WeightedPick draws one element of pool with probability proportional
// to weightOf. Malformed weights are clamped to a minimum epsilon, and
// the last entry is the fallback for any rounding at the top of the
// cumulative walk.
func WeightedPick[T any](src *Source, pool []T, weightOf func(T) float64) (T, error) {
	var zero T
	if len(pool) == 0 {
		return zero, &EmptyPoolError{Op: "weighted pick"}
	}

	total := 0.0
	for _, item := range pool {
		total += clampWeight(weightOf(item))
	}

	roll := src.Next01() * total
	cumulative := 0.0
	for _, item := range pool {
		cumulative += clampWeight(weightOf(item))
		if roll <= cumulative {
			return item, nil
		}
	}
	return pool[len(pool)-1], nil
}

// PickDeterministic derives a one-shot generator from seedKey and
// purpose and performs a single uniform pick.
func PickDeterministic[T any](pool []T, seedKey, purpose string) (T, error) {
	return Pick(New(subSeed(seedKey, purpose)), pool)
}

// PickDeterministicNoRepeat picks as PickDeterministic, but when the
// draw matches lastID and the pool holds more than one element, it
// redraws from a secondary derived stream until a different element is
// found. Redraws are bounded by the pool length; if they all collide,
// a linear scan supplies the first non-matching element, so the result
// is guaranteed to differ from lastID whenever lastID is a pool member
// and the pool has at least two entries. A single-element pool returns
// its sole element unconditionally.
func PickDeterministicNoRepeat[T any](pool []T, seedKey, lastID, purpose string, idOf func(T) string) (T, error) {
	picked, err := PickDeterministic(pool, seedKey, purpose)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(pool) == 1 || idOf(picked) != lastID {
		return picked, nil
	}

	redraw := New(subSeed(seedKey, purpose) + "::redraw")
	for range pool {
		candidate, err := Pick(redraw, pool)
		if err != nil {
			var zero T
			return zero, err
		}
		if idOf(candidate) != lastID {
			return candidate, nil
		}
	}

	for _, item := range pool {
		if idOf(item) != lastID {
			return item, nil
		}
	}
	return picked, nil
}
