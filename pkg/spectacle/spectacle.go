// Package spectacle renders the combat "spectacle" line for a spell
// cast: a single sentence that escalates with the spell's escalation
// level, interpolating the caller's style tags. Deterministic for
// identical inputs.
package spectacle

import (
	"fmt"
	"strings"

	"github.com/tmallory/chronicler/pkg/grammar"
	"github.com/tmallory/chronicler/pkg/rng"
)

// StyleTags are the stylistic hooks a spell carries. Blank fields are
// defaulted before rendering.
type StyleTags struct {
	Element         string `json:"element,omitempty"`
	Mood            string `json:"mood,omitempty"`
	VisualSignature string `json:"visual_signature,omitempty"`
	ImpactVerb      string `json:"impact_verb,omitempty"`
}

// Fixed fallbacks for blank style fields.
const (
	defaultElement    = "arcane"
	defaultMood       = "steady"
	defaultVisual     = "a ripple of pale light"
	defaultImpactVerb = "strike"
	defaultTarget     = "the target"
)

// Input describes one spell impact to narrate.
type Input struct {
	SeedKey         string    `json:"seed_key"`
	SpellName       string    `json:"spell_name"`
	EscalationLevel int       `json:"escalation_level"`
	Style           StyleTags `json:"style,omitempty"`
	TargetName      string    `json:"target_name,omitempty"`
}

// finishers are the fixed closing lines appended in the top band.
var finishers = []string{
	"The afterimage takes a full breath to fade.",
	"Nearby birds file a formal complaint.",
	"The ground will remember this.",
	"Somewhere, a bard starts taking notes.",
}

// Finishers exposes the finisher pool for validation.
func Finishers() []string {
	return finishers
}

func (s StyleTags) withDefaults() StyleTags {
	if strings.TrimSpace(s.Element) == "" {
		s.Element = defaultElement
	}
	if strings.TrimSpace(s.Mood) == "" {
		s.Mood = defaultMood
	}
	if strings.TrimSpace(s.VisualSignature) == "" {
		s.VisualSignature = defaultVisual
	}
	if strings.TrimSpace(s.ImpactVerb) == "" {
		s.ImpactVerb = defaultImpactVerb
	}
	return s
}

// BuildLine renders the spectacle sentence for one impact.
func BuildLine(in Input) string {
	style := in.Style.withDefaults()

	level := in.EscalationLevel
	if level < 0 {
		level = 0
	}

	spell := grammar.CompactSentence(in.SpellName)
	if spell == "" {
		spell = "The spell"
	}

	target := grammar.CompactSentence(in.TargetName)
	if target == "" {
		target = defaultTarget
	}

	verb := grammar.ThirdPerson(style.ImpactVerb)

	var line string
	switch {
	case level <= 1:
		line = fmt.Sprintf("%s %s %s with %s.", spell, verb, target, style.VisualSignature)
	case level <= 3:
		line = fmt.Sprintf("%s flares %s as %s energy gathers, then %s %s with %s.",
			spell, style.Mood, style.Element, verb, target, style.VisualSignature)
	case level <= 5:
		line = fmt.Sprintf("The air bends around %s; %s light floods the field, %s trailing in its wake as it %s %s.",
			spell, style.Element, style.VisualSignature, verb, target)
	default:
		finisher, err := rng.PickDeterministic(finishers, in.SeedKey, "spectacle:finisher")
		if err != nil {
			finisher = finishers[0]
		}
		line = fmt.Sprintf("%s detonates in full %s glory; %s everywhere, the %s roar of it washing over %s as it %s home. %s",
			spell, style.Element, style.VisualSignature, style.Mood, target, verb, finisher)
	}

	return grammar.CompactSentence(line)
}
