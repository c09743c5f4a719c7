package state

import "testing"

func TestLineHash_Stable(t *testing.T) {
	a := LineHash("The blade finds its mark.")
	b := LineHash("The blade finds its mark.")
	if a != b {
		t.Errorf("LineHash not stable: %q vs %q", a, b)
	}
	if len(a) != 8 {
		t.Errorf("LineHash length = %d, want 8", len(a))
	}
	if a == LineHash("A different line entirely.") {
		t.Error("distinct lines hashed identically")
	}

	// Surrounding whitespace is not significant.
	if LineHash("  padded line  ") != LineHash("padded line") {
		t.Error("whitespace changed the hash")
	}
}

func TestSeenLine(t *testing.T) {
	ps := &PresentationState{}
	h := LineHash("an opener")
	if ps.SeenLine(h) {
		t.Error("empty state reported a seen line")
	}
	ps.PushLineHash(h)
	if !ps.SeenLine(h) {
		t.Error("pushed hash not reported as seen")
	}
}

func TestPushLineHash_Window(t *testing.T) {
	ps := &PresentationState{}
	hashes := make([]string, 0, RecentLineLimit+4)
	for i := 0; i < RecentLineLimit+4; i++ {
		h := LineHash(string(rune('a' + i)))
		hashes = append(hashes, h)
		ps.PushLineHash(h)
	}

	if len(ps.RecentLineHashes) != RecentLineLimit {
		t.Fatalf("window length = %d, want %d", len(ps.RecentLineHashes), RecentLineLimit)
	}
	if ps.SeenLine(hashes[0]) {
		t.Error("oldest hash was not evicted")
	}
	if !ps.SeenLine(hashes[len(hashes)-1]) {
		t.Error("newest hash missing from window")
	}
}

func TestPushVerbKey(t *testing.T) {
	ps := &PresentationState{}
	if ps.LastVerbKey() != "" {
		t.Error("empty state has a last verb key")
	}

	ps.PushVerbKey("attack_resolved:cleaves")
	ps.PushVerbKey("attack_resolved:rends")
	if got := ps.LastVerbKey(); got != "attack_resolved:rends" {
		t.Errorf("LastVerbKey = %q", got)
	}

	for i := 0; i < LastVerbLimit+3; i++ {
		ps.PushVerbKey("k" + string(rune('0'+i)))
	}
	if len(ps.LastVerbKeys) != LastVerbLimit {
		t.Errorf("verb window length = %d, want %d", len(ps.LastVerbKeys), LastVerbLimit)
	}

	ps.PushVerbKey("")
	if len(ps.LastVerbKeys) != LastVerbLimit {
		t.Error("empty key was recorded")
	}
}
