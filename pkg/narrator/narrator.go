// Package narrator turns classified game events into player-facing
// prose through weighted template selection on a seeded random stream.
// Every call builds its own generator from its own seed, so identical
// inputs always reproduce identical narration, and every random
// decision is recorded in a trace the caller can replay in tests.
package narrator

import (
	"github.com/tmallory/chronicler/pkg/grammar"
	"github.com/tmallory/chronicler/pkg/rng"
	"github.com/tmallory/chronicler/pkg/state"
)

// suppressedLine is the minimal safe narration substituted when a turn
// arrives flagged as suppressed or errored.
const suppressedLine = "The moment passes quietly."

// flourishIntensity is the intensity floor above which a tone flourish
// sentence is appended after the event line.
const flourishIntensity = 3

// TurnInput is everything one narration turn depends on. State is a
// read-only snapshot; Narrate never mutates it.
type TurnInput struct {
	CampaignSeed string `json:"campaign_seed"`
	SessionID    string `json:"session_id"`
	EventID      string `json:"event_id"`

	Tone      string `json:"tone,omitempty"`
	Intensity int    `json:"intensity,omitempty"`
	Biome     string `json:"biome,omitempty"`

	BoardAnchor    string `json:"board_anchor,omitempty"`
	ActionSummary  string `json:"action_summary,omitempty"`
	RecoveryBeat   string `json:"recovery_beat,omitempty"`
	BoardNarration string `json:"board_narration,omitempty"`

	// Suppressed marks a turn the caller has flagged as errored or
	// muted; it yields the minimal safe line instead of failing.
	Suppressed bool `json:"suppressed,omitempty"`

	Events []RawEvent `json:"events"`

	State state.PresentationState `json:"state"`
}

// TurnSeed derives the seed all of this turn's randomness hangs off.
func (in TurnInput) TurnSeed() string {
	return in.CampaignSeed + "::" + in.SessionID + "::" + in.EventID
}

// PickRecord is one recorded RNG decision.
type PickRecord struct {
	Purpose string `json:"purpose"`
	Choice  string `json:"choice"`
}

// Trace records every decision behind a narration so any output can be
// independently replayed and asserted on.
type Trace struct {
	Seed         string       `json:"seed"`
	Tone         string       `json:"tone,omitempty"`
	Biome        string       `json:"biome,omitempty"`
	Intensity    int          `json:"intensity"`
	EventIDs     []string     `json:"event_ids,omitempty"`
	EventTypes   []EventType  `json:"event_types,omitempty"`
	TemplateID   string       `json:"template_id,omitempty"`
	TemplateTags []string     `json:"template_tags,omitempty"`
	Suppressed   bool         `json:"suppressed,omitempty"`
	Picks        []PickRecord `json:"picks,omitempty"`
}

func (t *Trace) record(purpose, choice string) {
	t.Picks = append(t.Picks, PickRecord{Purpose: purpose, Choice: choice})
}

// TurnResult is the narration plus the updated "last" pointers the
// caller persists into PresentationState for the next turn.
type TurnResult struct {
	Text     string `json:"text"`
	LineHash string `json:"line_hash"`
	VerbKey  string `json:"verb_key,omitempty"`
	Trace    Trace  `json:"trace"`
}

// Narrate composes the narration for one turn. The only error it can
// surface is an EmptyPoolError from malformed static data; missing
// template registrations fall back internally and suppressed turns
// yield the minimal safe line.
func Narrate(in TurnInput) (*TurnResult, error) {
	seed := in.TurnSeed()
	trace := Trace{
		Seed:      seed,
		Tone:      in.Tone,
		Biome:     in.Biome,
		Intensity: in.Intensity,
	}

	if in.Suppressed {
		trace.Suppressed = true
		return &TurnResult{
			Text:     suppressedLine,
			LineHash: state.LineHash(suppressedLine),
			Trace:    trace,
		}, nil
	}

	events := make([]Event, 0, len(in.Events))
	for _, raw := range in.Events {
		e := Classify(raw, seed)
		events = append(events, e)
		trace.EventIDs = append(trace.EventIDs, e.ID)
		trace.EventTypes = append(trace.EventTypes, e.Type)
	}

	parts := make([]string, 0, 4)
	if in.BoardNarration != "" {
		parts = append(parts, in.BoardNarration)
	}

	event, ok := dominant(events)
	if ok {
		line, verbKey, err := renderEvent(event, seed, in, &trace)
		if err != nil {
			return nil, err
		}
		parts = append(parts, line)

		if in.Intensity >= flourishIntensity && in.Tone != "" {
			flourish, err := rng.PickDeterministic(flourishPool(in.Tone), seed, "tone-flourish")
			if err != nil {
				return nil, err
			}
			trace.record("tone-flourish", flourish)
			parts = append(parts, flourish)
		}

		text := assemble(parts, in)
		return &TurnResult{
			Text:     text,
			LineHash: state.LineHash(text),
			VerbKey:  verbKey,
			Trace:    trace,
		}, nil
	}

	// No events this turn: fall back to the action summary or a quiet
	// default beat.
	if in.ActionSummary != "" {
		parts = append(parts, grammar.CompactSentence(in.ActionSummary))
		trace.record("no-event-fallback", "action-summary")
	} else {
		fallback, err := rng.PickDeterministic(DefaultTemplates(), seed, "no-event-template")
		if err != nil {
			return nil, err
		}
		trace.TemplateID = fallback.ID
		trace.TemplateTags = fallback.Tags
		trace.record("no-event-template", fallback.ID)
		parts = append(parts, fallback.Render(Context{Verb: fallbackVerb, Noun: fallbackNoun}))
	}

	text := assemble(parts, in)
	return &TurnResult{
		Text:     text,
		LineHash: state.LineHash(text),
		Trace:    trace,
	}, nil
}

// renderEvent selects and renders a template for the dominant event,
// drawing flavor words keyed off the turn seed. The returned verb key
// is persisted by the caller to steer anti-repeat on the next turn.
func renderEvent(event Event, seed string, in TurnInput, trace *Trace) (string, string, error) {
	pool := templatesFor(event.Type)

	src := rng.New(seed + "::template::" + string(event.Type))
	tmpl, err := rng.WeightedPick(src, pool, func(t Template) float64 { return t.Weight })
	if err != nil {
		return "", "", err
	}

	// A line repeated within the recent window gets one alternate
	// template draw; the advisory history is never mutated here.
	if rendered := probeRender(tmpl, event); in.State.SeenLine(state.LineHash(rendered)) && len(pool) > 1 {
		alt, err := rng.PickDeterministicNoRepeat(pool, seed, tmpl.ID, "template-alt", func(t Template) string { return t.ID })
		if err != nil {
			return "", "", err
		}
		trace.record("template-alt", alt.ID)
		tmpl = alt
	}

	trace.TemplateID = tmpl.ID
	trace.TemplateTags = tmpl.Tags
	trace.record("template::"+string(event.Type), tmpl.ID)

	verb, err := rng.PickDeterministicNoRepeat(verbPool(event.Type), seed, lastVerbFor(in.State, event.Type), "flavor-verb", verbID(event.Type))
	if err != nil {
		return "", "", err
	}
	trace.record("flavor-verb", verb)

	noun, err := rng.PickDeterministic(nounPool(event.Type), seed, "flavor-noun")
	if err != nil {
		return "", "", err
	}
	trace.record("flavor-noun", noun)

	ctx := event.Context
	ctx.Verb = verb
	ctx.Noun = noun

	return tmpl.Render(ctx), string(event.Type) + ":" + verb, nil
}

// probeRender renders a template with neutral flavor words, used only
// to test the candidate line against the recent-line window.
func probeRender(tmpl Template, event Event) string {
	ctx := event.Context
	ctx.Verb = fallbackVerb
	ctx.Noun = fallbackNoun
	return tmpl.Render(ctx)
}

// verbID maps a drawn verb to the key format stored in LastVerbKeys.
func verbID(t EventType) func(string) string {
	return func(verb string) string {
		return string(t) + ":" + verb
	}
}

// lastVerbFor extracts the previous verb key so the anti-repeat picker
// can avoid it. Only keys for the same event type apply.
func lastVerbFor(ps state.PresentationState, t EventType) string {
	prefix := string(t) + ":"
	for i := len(ps.LastVerbKeys) - 1; i >= 0; i-- {
		if len(ps.LastVerbKeys[i]) > len(prefix) && ps.LastVerbKeys[i][:len(prefix)] == prefix {
			return ps.LastVerbKeys[i]
		}
	}
	return ""
}

// assemble joins the narration parts, appends the recovery beat, and
// compacts the result.
func assemble(parts []string, in TurnInput) string {
	if in.RecoveryBeat != "" {
		parts = append(parts, grammar.CompactSentence(in.RecoveryBeat))
	}
	joined := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if joined != "" {
			joined += " "
		}
		joined += p
	}
	if joined == "" {
		joined = suppressedLine
	}
	return grammar.CompactSentence(joined)
}
