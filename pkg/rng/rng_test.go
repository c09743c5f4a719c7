package rng

import (
	"testing"
)

func TestHash32_KnownValues(t *testing.T) {
	// FNV-1a offset basis for the empty string.
	if got := Hash32(""); got != 2166136261 {
		t.Errorf("Hash32(\"\") = %d, want 2166136261", got)
	}

	// Stable across calls.
	if Hash32("campaign::session::event") != Hash32("campaign::session::event") {
		t.Error("Hash32 is not stable for identical input")
	}

	// Distinct seeds should not trivially collide.
	if Hash32("town:opener") == Hash32("travel:opener") {
		t.Error("Hash32 collided on distinct seeds")
	}
}

func TestAdvance_Deterministic(t *testing.T) {
	s := State(Hash32("determinism"))

	a1, v1 := s.Advance()
	a2, v2 := s.Advance()
	if a1 != a2 || v1 != v2 {
		t.Errorf("Advance from same state diverged: (%d, %v) vs (%d, %v)", a1, v1, a2, v2)
	}

	// Advancing never mutates the receiver.
	if s != State(Hash32("determinism")) {
		t.Error("Advance mutated its receiver")
	}
}

func TestAdvance_Range(t *testing.T) {
	s := State(Hash32("range-check"))
	for i := 0; i < 1000; i++ {
		var v float64
		s, v = s.Advance()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestSource_RepeatableStream(t *testing.T) {
	a := New("stream-seed")
	b := New("stream-seed")
	for i := 0; i < 50; i++ {
		if a.Next01() != b.Next01() {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
}

func TestSource_DistinctSeedsDiverge(t *testing.T) {
	a := New("seed-a")
	b := New("seed-b")
	same := true
	for i := 0; i < 10; i++ {
		if a.Next01() != b.Next01() {
			same = false
			break
		}
	}
	if same {
		t.Error("distinct seeds produced identical 10-draw prefixes")
	}
}

func TestStableFloat(t *testing.T) {
	v1 := StableFloat("spell:fireball", "whimsy")
	v2 := StableFloat("spell:fireball", "whimsy")
	if v1 != v2 {
		t.Errorf("StableFloat not stable: %v vs %v", v1, v2)
	}
	if v1 < 0 || v1 >= 1 {
		t.Errorf("StableFloat out of [0,1): %v", v1)
	}

	if StableFloat("spell:fireball", "whimsy") == StableFloat("spell:fireball", "heroic-tail") {
		t.Error("purpose tag did not change the derived float")
	}
	if StableFloat("spell:fireball", "whimsy") == StableFloat("spell:icebolt", "whimsy") {
		t.Error("seed key did not change the derived float")
	}
}
