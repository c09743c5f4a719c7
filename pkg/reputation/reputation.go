// Package reputation turns a character's accumulated reputation into a
// tier, a display name, and an optional title. Tier is a monotone
// function of the score; behavior flags force themed epithets that
// override score-derived titling. Everything is a deterministic
// function of the inputs and the seed key.
package reputation

import (
	"math"
	"strconv"
	"strings"

	"github.com/tmallory/chronicler/pkg/grammar"
	"github.com/tmallory/chronicler/pkg/rng"
)

// Input carries everything one titling decision depends on.
type Input struct {
	BaseName        string   `json:"base_name"`
	ReputationScore float64  `json:"reputation_score"`
	BehaviorFlags   []string `json:"behavior_flags,omitempty"`
	NotableKills    []string `json:"notable_kills,omitempty"`
	FactionStanding string   `json:"faction_standing,omitempty"`
	SeedKey         string   `json:"seed_key"`
}

// Result is the titling decision. Title is empty when no title was
// earned.
type Result struct {
	Tier        int    `json:"tier"`
	DisplayName string `json:"display_name"`
	Title       string `json:"title,omitempty"`
}

// Tier thresholds. Monotone in score; anchored so that a score of 20
// stays tier 1 with an unchanged name and a score of 140 reaches at
// least tier 3 with a changed name.
var tierFloors = [...]float64{0, 50, 100, 180, 260}

// Self-styled chance for a tier-3 character to carry a spoken title in
// addition to the epithet.
const tier3TitleChance = 0.5

func tierFor(score float64) int {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
	}
	tier := 1
	for i, floor := range tierFloors {
		if score >= floor {
			tier = i + 1
		}
	}
	return tier
}

// behaviorOverrides maps a recognized flag trigger substring to its
// themed epithet pool. A matching flag forces the theme into the
// display name regardless of the score-derived tier.
var behaviorOverrides = []struct {
	trigger string
	pool    []string
}{
	{trigger: "sparkle", pool: []string{"the Glitterstorm", "Glitterstorm Herald", "Glitterstorm Incarnate"}},
	{trigger: "arson", pool: []string{"the Everburning", "Cinderhand", "the Ash-Crowned"}},
	{trigger: "pacifist", pool: []string{"the Gentle", "the Open Hand", "the Unbloodied"}},
}

var tierEpithets = map[int][]string{
	3: {"the Bold", "the Unyielding", "the Farstrider", "the Grim"},
	4: {"the Renowned", "the Stormcaller", "the Oathkeeper", "the Dread"},
	5: {"the Legend", "the Worldwalker", "the Undying", "the Kingmaker"},
}

var spokenTitles = map[int][]string{
	3: {"Veteran of a Hundred Roads", "Keeper of Hard Promises"},
	4: {"Champion of the Marches", "Scourge of the Deep Halls"},
	5: {"Living Legend of the Realm", "Last Word in Any Argument"},
}

// standingTitles decorate the spoken title for recognized faction
// standings.
var standingTitles = map[string]string{
	"exalted": "Exalted ",
	"revered": "Revered ",
}

// BuildTitle computes the titling decision for one character.
func BuildTitle(in Input) Result {
	base := grammar.CompactSentence(in.BaseName)
	if base == "" {
		base = "Nameless One"
	}
	tier := tierFor(in.ReputationScore)

	res := Result{Tier: tier, DisplayName: base}

	// Behavior flags outrank score-derived titling.
	if epithet, ok := flaggedEpithet(in, base); ok {
		res.DisplayName = base + " " + epithet
		return res
	}

	if tier < 3 {
		return res
	}

	res.DisplayName = base + " " + epithetFor(in, tier)

	if tier >= 4 || rng.StableFloat(in.SeedKey, "tier3-title") < tier3TitleChance {
		res.Title = spokenTitle(in, tier)
	}
	return res
}

// flaggedEpithet resolves the first recognized behavior flag, in
// override declaration order, to its themed epithet.
func flaggedEpithet(in Input, base string) (string, bool) {
	for _, override := range behaviorOverrides {
		for _, flag := range in.BehaviorFlags {
			if !strings.Contains(strings.ToLower(flag), override.trigger) {
				continue
			}
			// Keyed on name and trigger so the same character keeps
			// the same themed name across calls and seeds stay
			// per-purpose.
			epithet, err := rng.PickDeterministic(override.pool, in.SeedKey, "flag:"+override.trigger+":"+base)
			if err != nil {
				return "", false
			}
			return epithet, true
		}
	}
	return "", false
}

// epithetFor picks the tier epithet, preferring a slayer styling when
// notable kills are on record.
func epithetFor(in Input, tier int) string {
	if len(in.NotableKills) > 0 && rng.StableFloat(in.SeedKey, "kill-epithet") < 0.5 {
		return "Bane of " + grammar.Title(grammar.CompactSentence(in.NotableKills[0]))
	}
	pool := tierEpithets[tier]
	epithet, err := rng.PickDeterministic(pool, in.SeedKey, "epithet:tier"+strconv.Itoa(tier))
	if err != nil {
		return "the Known"
	}
	return epithet
}

func spokenTitle(in Input, tier int) string {
	pool := spokenTitles[tier]
	title, err := rng.PickDeterministic(pool, in.SeedKey, "title:tier"+strconv.Itoa(tier))
	if err != nil {
		return ""
	}
	if prefix, ok := standingTitles[strings.ToLower(strings.TrimSpace(in.FactionStanding))]; ok {
		return prefix + title
	}
	return title
}

// Epithets exposes the epithet and title pools for validation.
func Epithets() (map[int][]string, map[int][]string) {
	return tierEpithets, spokenTitles
}
