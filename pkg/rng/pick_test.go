package rng

import (
	"errors"
	"math"
	"testing"
)

func ident(s string) string { return s }

func TestPick_EmptyPool(t *testing.T) {
	_, err := Pick(New("seed"), []string{})
	var emptyErr *EmptyPoolError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("Pick on empty pool returned %v, want EmptyPoolError", err)
	}
}

func TestWeightedPick_EmptyPool(t *testing.T) {
	_, err := WeightedPick(New("seed"), []string{}, func(string) float64 { return 1 })
	var emptyErr *EmptyPoolError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("WeightedPick on empty pool returned %v, want EmptyPoolError", err)
	}
}

func TestPick_Deterministic(t *testing.T) {
	pool := []string{"ember", "frost", "gale", "stone"}
	a, err := Pick(New("pick-seed"), pool)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Pick(New("pick-seed"), pool)
	if a != b {
		t.Errorf("identical seeds disagreed: %q vs %q", a, b)
	}
}

func TestPick_CoversPool(t *testing.T) {
	pool := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	src := New("coverage")
	for i := 0; i < 200; i++ {
		v, err := Pick(src, pool)
		if err != nil {
			t.Fatal(err)
		}
		seen[v] = true
	}
	if len(seen) != len(pool) {
		t.Errorf("200 draws covered %d of %d elements", len(seen), len(pool))
	}
}

func TestWeightedPick_FavorsHeavyEntries(t *testing.T) {
	type entry struct {
		id     string
		weight float64
	}
	pool := []entry{
		{id: "rare", weight: 1},
		{id: "common", weight: 50},
	}

	src := New("weighted")
	counts := make(map[string]int)
	for i := 0; i < 500; i++ {
		e, err := WeightedPick(src, pool, func(e entry) float64 { return e.weight })
		if err != nil {
			t.Fatal(err)
		}
		counts[e.id]++
	}
	if counts["common"] <= counts["rare"] {
		t.Errorf("heavy entry drawn %d times, light entry %d times", counts["common"], counts["rare"])
	}
}

func TestWeightedPick_ClampsMalformedWeights(t *testing.T) {
	pool := []float64{math.NaN(), math.Inf(1), -4, 0}
	src := New("clamped")
	for i := 0; i < 50; i++ {
		if _, err := WeightedPick(src, pool, func(w float64) float64 { return w }); err != nil {
			t.Fatalf("WeightedPick failed on clamped weights: %v", err)
		}
	}
}

func TestPickDeterministic_PurposeTagChangesOutcome(t *testing.T) {
	pool := []string{"north", "south", "east", "west", "up", "down", "in", "out"}

	a, err := PickDeterministic(pool, "travel", "route")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := PickDeterministic(pool, "travel", "route")
	if a != b {
		t.Errorf("same purpose tag disagreed: %q vs %q", a, b)
	}

	differs := false
	for _, purpose := range []string{"detour", "weather", "omen", "pace", "camp"} {
		v, _ := PickDeterministic(pool, "travel", purpose)
		if v != a {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("five distinct purpose tags all produced the same pick")
	}
}

func TestPickDeterministicNoRepeat_AvoidsLastID(t *testing.T) {
	pool := []string{"opener-1", "opener-2", "opener-3"}

	for _, last := range pool {
		for i := 0; i < 20; i++ {
			seed := "turn-" + string(rune('a'+i))
			got, err := PickDeterministicNoRepeat(pool, seed, last, "opener", ident)
			if err != nil {
				t.Fatal(err)
			}
			if got == last {
				t.Fatalf("seed %q repeated last id %q", seed, last)
			}
		}
	}
}

func TestPickDeterministicNoRepeat_SingleElementPool(t *testing.T) {
	pool := []string{"only"}
	got, err := PickDeterministicNoRepeat(pool, "seed", "only", "opener", ident)
	if err != nil {
		t.Fatal(err)
	}
	if got != "only" {
		t.Errorf("single-element pool returned %q", got)
	}
}

func TestPickDeterministicNoRepeat_Deterministic(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	first, err := PickDeterministicNoRepeat(pool, "seed", "b", "tag", ident)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := PickDeterministicNoRepeat(pool, "seed", "b", "tag", ident)
	if first != second {
		t.Errorf("identical inputs disagreed: %q vs %q", first, second)
	}
}

func TestPickDeterministicNoRepeat_EmptyPool(t *testing.T) {
	_, err := PickDeterministicNoRepeat(nil, "seed", "x", "tag", ident)
	var emptyErr *EmptyPoolError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("empty pool returned %v, want EmptyPoolError", err)
	}
}
