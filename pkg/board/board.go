// Package board composes the short introduction shown when a play
// board opens: a deterministic opener that never immediately repeats,
// plus one context line chosen by board-type priority.
package board

import (
	"strings"

	"github.com/tmallory/chronicler/pkg/grammar"
	"github.com/tmallory/chronicler/pkg/rng"
)

// Type is the kind of board being introduced.
type Type string

const (
	Town    Type = "town"
	Travel  Type = "travel"
	Dungeon Type = "dungeon"
	Combat  Type = "combat"
)

// ParseType coerces a caller-supplied board string to a known type,
// defaulting to Town for anything unrecognized.
func ParseType(s string) Type {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Travel:
		return Travel
	case Dungeon:
		return Dungeon
	case Combat:
		return Combat
	default:
		return Town
	}
}

// Hook and region display limits.
const (
	maxHookLen   = 72
	maxRegionLen = 40
)

// Input is everything one board introduction depends on. LastOpenerID
// is the opener chosen on the previous call for the same board type;
// callers persist the returned OpenerID to supply it next time.
type Input struct {
	SeedKey        string   `json:"seed_key"`
	Board          Type     `json:"board"`
	Hooks          []string `json:"hooks,omitempty"`
	TimePressure   string   `json:"time_pressure,omitempty"`
	FactionTension string   `json:"faction_tension,omitempty"`
	ResourceWindow string   `json:"resource_window,omitempty"`
	RegionName     string   `json:"region_name,omitempty"`
	LastOpenerID   string   `json:"last_opener_id,omitempty"`
}

// Narration is the composed introduction.
type Narration struct {
	Text       string `json:"text"`
	OpenerID   string `json:"opener_id"`
	SecondLine string `json:"second_line"`
}

// Compose builds the two-part board introduction. The only error it
// can surface is an EmptyPoolError from malformed static data.
func Compose(in Input) (*Narration, error) {
	boardType := in.Board
	if _, ok := openers[boardType]; !ok {
		boardType = ParseType(string(boardType))
	}

	opener, err := rng.PickDeterministicNoRepeat(
		openers[boardType], in.SeedKey, in.LastOpenerID,
		string(boardType)+":opener",
		func(o Opener) string { return o.ID },
	)
	if err != nil {
		return nil, err
	}

	second, err := secondLine(in, boardType)
	if err != nil {
		return nil, err
	}

	text := grammar.CompactSentence(opener.Text + " " + second)
	return &Narration{
		Text:       text,
		OpenerID:   opener.ID,
		SecondLine: second,
	}, nil
}

// leadHooks compacts up to two hook strings as candidate leads.
func leadHooks(hooks []string) []string {
	leads := make([]string, 0, 2)
	for _, h := range hooks {
		c := truncate(grammar.CompactSentence(h), maxHookLen)
		if c == "" {
			continue
		}
		leads = append(leads, c)
		if len(leads) == 2 {
			break
		}
	}
	return leads
}

// truncate limits s to max characters, not bytes, so multi-byte
// text is neither cut early nor split mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// secondLine builds the context line by board-type priority.
func secondLine(in Input, boardType Type) (string, error) {
	leads := leadHooks(in.Hooks)
	lead := ""
	if len(leads) > 0 {
		lead = leads[0]
	}

	switch boardType {
	case Town:
		switch {
		case lead != "":
			return "Lead: " + lead + ".", nil
		case in.FactionTension != "":
			return "Faction pressure: " + grammar.CompactSentence(in.FactionTension) + ".", nil
		case in.TimePressure != "":
			return "Clock: " + grammar.CompactSentence(in.TimePressure) + ".", nil
		default:
			tag, err := districtTag(in)
			if err != nil {
				return "", err
			}
			return "District: " + tag + ".", nil
		}
	case Travel:
		switch {
		case lead != "":
			return "Route lead: " + lead + ".", nil
		case in.TimePressure != "":
			return "Clock: " + grammar.CompactSentence(in.TimePressure) + ".", nil
		default:
			return "The road asks nothing yet.", nil
		}
	case Dungeon:
		switch {
		case lead != "":
			return "Stone hook: " + lead + ".", nil
		case in.ResourceWindow != "":
			return "Resources: " + grammar.CompactSentence(in.ResourceWindow) + ".", nil
		default:
			return "The dark keeps its own count.", nil
		}
	default: // Combat
		switch {
		case lead != "":
			return "Threat: " + lead + ".", nil
		default:
			return "Steel is already out.", nil
		}
	}
}

// districtTag names the town district line: the compacted region name
// when one is supplied, otherwise a two-syllable deterministic tag
// assembled from the syllable pools.
func districtTag(in Input) (string, error) {
	if region := grammar.CompactSentence(in.RegionName); region != "" {
		return truncate(region, maxRegionLen), nil
	}

	a, err := rng.PickDeterministicNoRepeat(tagSyllablesA, in.SeedKey, "", "town-tag-a", ident)
	if err != nil {
		return "", err
	}
	b, err := rng.PickDeterministicNoRepeat(tagSyllablesB, in.SeedKey, "", "town-tag-b", ident)
	if err != nil {
		return "", err
	}
	return grammar.Title(a) + b, nil
}

func ident(s string) string { return s }
