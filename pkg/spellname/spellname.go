// Package spellname escalates a spell's display name as its rank,
// rarity, and escalation level climb, from a plain base name up to
// fully unhinged word salad. Every choice is a deterministic function
// of the seed key and a fixed purpose tag, so a given spell always
// renders the same name for the same inputs.
package spellname

import (
	"strings"

	"github.com/tmallory/chronicler/pkg/grammar"
	"github.com/tmallory/chronicler/pkg/rng"
)

// Rarity buckets, in ascending contribution to the naming score.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityMagical
	RarityUnique
	RarityLegendary
	RarityMythic
	RarityUnhinged
)

// ParseRarity coerces a caller-supplied rarity string, defaulting to
// common for anything unrecognized.
func ParseRarity(s string) Rarity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "magical":
		return RarityMagical
	case "unique":
		return RarityUnique
	case "legendary":
		return RarityLegendary
	case "mythic":
		return RarityMythic
	case "unhinged":
		return RarityUnhinged
	default:
		return RarityCommon
	}
}

func (r Rarity) String() string {
	switch r {
	case RarityMagical:
		return "magical"
	case RarityUnique:
		return "unique"
	case RarityLegendary:
		return "legendary"
	case RarityMythic:
		return "mythic"
	case RarityUnhinged:
		return "unhinged"
	default:
		return "common"
	}
}

func (r Rarity) score() int {
	if r < RarityCommon {
		return 0
	}
	if r > RarityUnhinged {
		return int(RarityUnhinged)
	}
	return int(r)
}

// Probability constants observed for the escalation bands.
const (
	whimsyChance       = 0.14
	whimsyScoreFloor   = 9
	heroicTailChance   = 0.45
	mythicBridgeChance = 0.50
	intensifierChance  = 0.45
)

// fallbackBaseSeed is the fixed literal seed used when the base name
// is blank. Intentionally independent of the caller's seed key, so
// every blank base in a campaign resolves to the same classic name.
// A long-standing quirk callers rely on; do not thread the caller
// seed through here.
const fallbackBaseSeed = "spell:base:fallback"

// Build composes the escalated display name. Rank is floored at 1 and
// escalation at 0 before scoring.
func Build(spellBase string, rank int, rarity Rarity, escalationLevel int, seedKey string) string {
	if rank < 1 {
		rank = 1
	}
	if escalationLevel < 0 {
		escalationLevel = 0
	}

	base := cleanBase(spellBase)
	score := rank*2 + rarity.score() + escalationLevel

	whimsy := ""
	if score >= whimsyScoreFloor && rng.StableFloat(seedKey, "whimsy") < whimsyChance {
		whimsy = mustPick(whimsyPool, seedKey, "whimsy-word")
	}

	switch {
	case score <= 3:
		if score <= 1 {
			return base
		}
		return mustPick(minorPrefixes, seedKey, "minor-prefix") + " " + base
	case score <= 7:
		return join(mustPick(enhancedLeads, seedKey, "enhanced-lead"), whimsy, base)
	case score <= 11:
		tail := ""
		if rng.StableFloat(seedKey, "heroic-tail") < heroicTailChance {
			tail = mustPick(actionNouns, seedKey, "heroic-tail-word")
		}
		return join(mustPick(heroicLeads, seedKey, "heroic-lead"), whimsy, base, tail)
	case score <= 15:
		bridge := ""
		if rng.StableFloat(seedKey, "mythic-bridge") < mythicBridgeChance {
			bridge = mustPick(epicBridges, seedKey, "mythic-bridge-word")
		}
		return join(mustPick(mythicLeads, seedKey, "mythic-lead"), whimsy, base, bridge)
	default:
		lead := ""
		if rng.StableFloat(seedKey, "absurd-lead") < 0.5 {
			lead = mustPick(mythicLeads, seedKey, "absurd-lead-word")
		} else {
			lead = mustPick(heroicLeads, seedKey, "absurd-lead-word")
		}
		suffix := ""
		if rng.StableFloat(seedKey, "intensifier") < intensifierChance {
			suffix = mustPick(intensifiers, seedKey, "intensifier-word")
		}
		return join(
			mustPick(absurdPool, seedKey, "absurd-a"),
			whimsy,
			lead,
			mustPick(absurdPool, seedKey, "absurd-b"),
			base,
			suffix,
		)
	}
}

// cleanBase trims and collapses the base name, substituting a
// deterministic classic name when the input is blank.
func cleanBase(spellBase string) string {
	base := grammar.CompactSentence(spellBase)
	if base == "" {
		return mustPick(classicNames, fallbackBaseSeed, "classic")
	}
	return grammar.Title(base)
}

// mustPick draws from a fixed, compile-time non-empty pool. An empty
// pool is a defect in the package's own word banks, so it panics
// rather than degrading the output.
func mustPick(pool []string, seedKey, purpose string) string {
	w, err := rng.PickDeterministic(pool, seedKey, purpose)
	if err != nil {
		panic(err)
	}
	return w
}

// join concatenates the non-empty parts with single spaces.
func join(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
