package reputation

import (
	"math"
	"strings"
	"testing"
)

func kael(score float64) Input {
	return Input{
		BaseName:        "Kael",
		ReputationScore: score,
		SeedKey:         "campaign::kael",
	}
}

func TestBuildTitle_LowScoreAnchor(t *testing.T) {
	res := BuildTitle(kael(20))
	if res.Tier != 1 {
		t.Errorf("tier = %d, want 1", res.Tier)
	}
	if res.DisplayName != "Kael" {
		t.Errorf("display name = %q, want unchanged %q", res.DisplayName, "Kael")
	}
	if res.Title != "" {
		t.Errorf("unexpected title %q at tier 1", res.Title)
	}
}

func TestBuildTitle_HighScoreAnchor(t *testing.T) {
	res := BuildTitle(kael(140))
	if res.Tier < 3 {
		t.Errorf("tier = %d, want >= 3", res.Tier)
	}
	if res.DisplayName == "Kael" {
		t.Error("display name unchanged at score 140")
	}
	if !strings.HasPrefix(res.DisplayName, "Kael ") {
		t.Errorf("display name %q does not extend the base name", res.DisplayName)
	}
}

func TestBuildTitle_TierMonotone(t *testing.T) {
	prev := 0
	for score := 0.0; score <= 400; score += 5 {
		res := BuildTitle(kael(score))
		if res.Tier < prev {
			t.Fatalf("tier decreased from %d to %d at score %v", prev, res.Tier, score)
		}
		if res.Tier < 1 || res.Tier > 5 {
			t.Fatalf("tier %d out of range at score %v", res.Tier, score)
		}
		prev = res.Tier
	}
	if prev != 5 {
		t.Errorf("score 400 reached tier %d, want 5", prev)
	}
}

func TestBuildTitle_Deterministic(t *testing.T) {
	in := kael(200)
	in.NotableKills = []string{"the bog tyrant"}
	in.FactionStanding = "revered"

	a := BuildTitle(in)
	b := BuildTitle(in)
	if a != b {
		t.Errorf("identical inputs diverged: %+v vs %+v", a, b)
	}
}

func TestBuildTitle_SparkleFlagOverride(t *testing.T) {
	in := kael(20)
	in.BehaviorFlags = []string{"chronic_sparkle_abuse"}

	res := BuildTitle(in)
	if !strings.Contains(strings.ToLower(res.DisplayName), "glitterstorm") {
		t.Errorf("display name %q missing the glitterstorm theme", res.DisplayName)
	}
	if res.Tier != 1 {
		t.Errorf("flag override changed the tier: %d", res.Tier)
	}

	// Identical across repeated calls with the same seed.
	if again := BuildTitle(in); again.DisplayName != res.DisplayName {
		t.Errorf("flagged name not reproducible: %q vs %q", res.DisplayName, again.DisplayName)
	}

	// And it outranks score-derived titling at high tiers too.
	in.ReputationScore = 300
	high := BuildTitle(in)
	if !strings.Contains(strings.ToLower(high.DisplayName), "glitterstorm") {
		t.Errorf("flag override lost at tier 5: %q", high.DisplayName)
	}
}

func TestBuildTitle_TitlesAtHighTiers(t *testing.T) {
	res := BuildTitle(kael(300))
	if res.Tier != 5 {
		t.Fatalf("tier = %d, want 5", res.Tier)
	}
	if res.Title == "" {
		t.Error("no spoken title at tier 5")
	}
}

func TestBuildTitle_FactionStandingPrefix(t *testing.T) {
	in := kael(300)
	in.FactionStanding = "Exalted"
	res := BuildTitle(in)
	if !strings.HasPrefix(res.Title, "Exalted ") {
		t.Errorf("title %q missing standing prefix", res.Title)
	}
}

func TestBuildTitle_MalformedInputs(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		res := BuildTitle(Input{BaseName: "Kael", ReputationScore: bad, SeedKey: "s"})
		if res.Tier != 1 {
			t.Errorf("score %v coerced to tier %d, want 1", bad, res.Tier)
		}
	}

	res := BuildTitle(Input{ReputationScore: 10, SeedKey: "s"})
	if res.DisplayName != "Nameless One" {
		t.Errorf("blank base name rendered %q", res.DisplayName)
	}
}

func TestTierFor_Floors(t *testing.T) {
	tests := []struct {
		score    float64
		expected int
	}{
		{score: 0, expected: 1},
		{score: 49, expected: 1},
		{score: 50, expected: 2},
		{score: 99, expected: 2},
		{score: 100, expected: 3},
		{score: 179, expected: 3},
		{score: 180, expected: 4},
		{score: 260, expected: 5},
		{score: 9999, expected: 5},
	}
	for _, tt := range tests {
		if got := tierFor(tt.score); got != tt.expected {
			t.Errorf("tierFor(%v) = %d, want %d", tt.score, got, tt.expected)
		}
	}
}
