package board

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCompose_Deterministic(t *testing.T) {
	in := Input{SeedKey: "campaign::s1::t3", Board: Town, Hooks: []string{"a courier went missing near the docks"}}
	a, err := Compose(in)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compose(in)
	if err != nil {
		t.Fatal(err)
	}
	if a.Text != b.Text || a.OpenerID != b.OpenerID {
		t.Errorf("identical inputs diverged:\n%q (%s)\n%q (%s)", a.Text, a.OpenerID, b.Text, b.OpenerID)
	}
}

func TestCompose_OpenerAntiRepeat(t *testing.T) {
	last := ""
	for i := 0; i < 12; i++ {
		in := Input{
			SeedKey:      "camp::s::" + string(rune('a'+i)),
			Board:        Dungeon,
			LastOpenerID: last,
		}
		res, err := Compose(in)
		if err != nil {
			t.Fatal(err)
		}
		if last != "" && res.OpenerID == last {
			t.Fatalf("opener %q repeated immediately on turn %d", last, i)
		}
		last = res.OpenerID
	}
}

func TestCompose_TwoParts(t *testing.T) {
	res, err := Compose(Input{SeedKey: "k", Board: Travel})
	if err != nil {
		t.Fatal(err)
	}
	if res.SecondLine == "" {
		t.Fatal("missing second line")
	}
	if !strings.HasSuffix(res.Text, res.SecondLine) {
		t.Errorf("text %q does not end with second line %q", res.Text, res.SecondLine)
	}
	found := false
	for _, o := range openers[Travel] {
		if strings.HasPrefix(res.Text, o.Text) {
			found = true
		}
	}
	if !found {
		t.Errorf("text %q does not start with a travel opener", res.Text)
	}
}

func TestSecondLine_TownPriority(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		prefix string
	}{
		{
			name:   "hook leads",
			in:     Input{SeedKey: "k", Board: Town, Hooks: []string{"the guild wants answers"}, FactionTension: "guilds at odds", TimePressure: "dawn deadline"},
			prefix: "Lead: the guild wants answers.",
		},
		{
			name:   "faction tension next",
			in:     Input{SeedKey: "k", Board: Town, FactionTension: "guilds at odds", TimePressure: "dawn deadline"},
			prefix: "Faction pressure: guilds at odds.",
		},
		{
			name:   "time pressure next",
			in:     Input{SeedKey: "k", Board: Town, TimePressure: "dawn deadline"},
			prefix: "Clock: dawn deadline.",
		},
		{
			name:   "region name fallback",
			in:     Input{SeedKey: "k", Board: Town, RegionName: "  Lower   Fenwick "},
			prefix: "District: Lower Fenwick.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := secondLine(tt.in, Town)
			if err != nil {
				t.Fatal(err)
			}
			if line != tt.prefix {
				t.Errorf("second line = %q, want %q", line, tt.prefix)
			}
		})
	}
}

func TestSecondLine_TownDistrictTag(t *testing.T) {
	in := Input{SeedKey: "fixed-district-seed", Board: Town}
	first, err := secondLine(in, Town)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(first, "District: ") || !strings.HasSuffix(first, ".") {
		t.Fatalf("district line shape: %q", first)
	}

	tag := strings.TrimSuffix(strings.TrimPrefix(first, "District: "), ".")
	if tag == "" {
		t.Fatal("empty district tag")
	}

	second, _ := secondLine(in, Town)
	if first != second {
		t.Errorf("district tag not reproducible: %q vs %q", first, second)
	}
}

func TestSecondLine_TravelAndDungeon(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		board    Type
		expected string
	}{
		{name: "travel hook", in: Input{Hooks: []string{"bandits ahead"}}, board: Travel, expected: "Route lead: bandits ahead."},
		{name: "travel clock", in: Input{TimePressure: "storm closing"}, board: Travel, expected: "Clock: storm closing."},
		{name: "travel fallback", in: Input{}, board: Travel, expected: "The road asks nothing yet."},
		{name: "dungeon hook", in: Input{Hooks: []string{"scratching behind the wall"}}, board: Dungeon, expected: "Stone hook: scratching behind the wall."},
		{name: "dungeon resources", in: Input{ResourceWindow: "two torches left"}, board: Dungeon, expected: "Resources: two torches left."},
		{name: "dungeon fallback", in: Input{}, board: Dungeon, expected: "The dark keeps its own count."},
		{name: "combat fallback", in: Input{}, board: Combat, expected: "Steel is already out."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.SeedKey = "k"
			tt.in.Board = tt.board
			line, err := secondLine(tt.in, tt.board)
			if err != nil {
				t.Fatal(err)
			}
			if line != tt.expected {
				t.Errorf("second line = %q, want %q", line, tt.expected)
			}
		})
	}
}

func TestLeadHooks_Truncation(t *testing.T) {
	long := strings.Repeat("the winding stair goes down ", 5) // > 72 chars
	leads := leadHooks([]string{long, "short hook", "third hook ignored"})
	if len(leads) != 2 {
		t.Fatalf("lead count = %d, want 2", len(leads))
	}
	if len(leads[0]) != maxHookLen {
		t.Errorf("truncated hook length = %d, want %d", len(leads[0]), maxHookLen)
	}
	if !strings.HasSuffix(leads[0], "...") {
		t.Errorf("truncated hook missing ellipsis: %q", leads[0])
	}
	if leads[1] != "short hook" {
		t.Errorf("second lead = %q", leads[1])
	}
}

func TestLeadHooks_MultiByteHooks(t *testing.T) {
	// 50 two-byte characters is 100 bytes but only 50 characters,
	// well under the hook limit.
	short := strings.Repeat("é", 50)
	leads := leadHooks([]string{short})
	if leads[0] != short {
		t.Errorf("50-char hook truncated: %q", leads[0])
	}

	long := strings.Repeat("é", 80)
	leads = leadHooks([]string{long})
	if got := utf8.RuneCountInString(leads[0]); got != maxHookLen {
		t.Errorf("truncated hook rune count = %d, want %d", got, maxHookLen)
	}
	if !utf8.ValidString(leads[0]) {
		t.Errorf("truncated hook is not valid UTF-8: %q", leads[0])
	}
	if !strings.HasSuffix(leads[0], "...") {
		t.Errorf("truncated hook missing ellipsis: %q", leads[0])
	}
}

func TestLeadHooks_SkipsBlank(t *testing.T) {
	leads := leadHooks([]string{"   ", "", "real hook"})
	if len(leads) != 1 || leads[0] != "real hook" {
		t.Errorf("leads = %v", leads)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in       string
		expected Type
	}{
		{in: "town", expected: Town},
		{in: " TRAVEL ", expected: Travel},
		{in: "dungeon", expected: Dungeon},
		{in: "combat", expected: Combat},
		{in: "swamp", expected: Town},
		{in: "", expected: Town},
	}
	for _, tt := range tests {
		if got := ParseType(tt.in); got != tt.expected {
			t.Errorf("ParseType(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
