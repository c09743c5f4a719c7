package narrator

import (
	"math"
	"strings"
)

// EventType classifies a game occurrence for template selection.
type EventType string

const (
	EventAttackResolved  EventType = "attack_resolved"
	EventLootDropped     EventType = "loot_dropped"
	EventTravelStep      EventType = "travel_step"
	EventRoomEntered     EventType = "room_entered"
	EventDialogue        EventType = "dialogue"
	EventLevelUp         EventType = "level_up"
	EventStatusTick      EventType = "status_tick"
	EventQuestUpdate     EventType = "quest_update"
	EventBoardTransition EventType = "board_transition"
)

// EventTypes lists every classified event type, in dominance order:
// when a turn carries several events, the earliest type in this list
// is the one the turn is narrated around.
var EventTypes = []EventType{
	EventAttackResolved,
	EventLevelUp,
	EventQuestUpdate,
	EventLootDropped,
	EventBoardTransition,
	EventRoomEntered,
	EventTravelStep,
	EventDialogue,
	EventStatusTick,
}

// Context carries the structured values a template renders from.
type Context struct {
	Actor       string   `json:"actor,omitempty"`
	Target      string   `json:"target,omitempty"`
	Amount      float64  `json:"amount,omitempty"`
	Status      string   `json:"status,omitempty"`
	Hooks       []string `json:"hooks,omitempty"`
	BoardAnchor string   `json:"board_anchor,omitempty"`

	// Verb and Noun are stylistic flavor words the orchestrator draws
	// from the word banks before rendering.
	Verb string `json:"verb,omitempty"`
	Noun string `json:"noun,omitempty"`
}

// Event is a classified game occurrence ready for narration.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"`
	Seed      string    `json:"seed"`
	ID        string    `json:"id"`
	Context   Context   `json:"context"`
}

// RawEvent is the loosely-typed occurrence delivered by the turn
// orchestrator's caller before classification.
type RawEvent struct {
	Kind        string   `json:"kind"`
	ID          string   `json:"id"`
	Timestamp   int64    `json:"timestamp"`
	Actor       string   `json:"actor,omitempty"`
	Target      string   `json:"target,omitempty"`
	Amount      float64  `json:"amount,omitempty"`
	Status      string   `json:"status,omitempty"`
	Hooks       []string `json:"hooks,omitempty"`
	BoardAnchor string   `json:"board_anchor,omitempty"`
}

// kindAliases maps the caller vocabulary onto event types.
var kindAliases = map[string]EventType{
	"attack":           EventAttackResolved,
	"attack_resolved":  EventAttackResolved,
	"hit":              EventAttackResolved,
	"damage":           EventAttackResolved,
	"loot":             EventLootDropped,
	"loot_dropped":     EventLootDropped,
	"drop":             EventLootDropped,
	"travel":           EventTravelStep,
	"travel_step":      EventTravelStep,
	"move":             EventTravelStep,
	"room":             EventRoomEntered,
	"room_entered":     EventRoomEntered,
	"enter":            EventRoomEntered,
	"dialogue":         EventDialogue,
	"say":              EventDialogue,
	"talk":             EventDialogue,
	"level_up":         EventLevelUp,
	"levelup":          EventLevelUp,
	"status":           EventStatusTick,
	"status_tick":      EventStatusTick,
	"tick":             EventStatusTick,
	"quest":            EventQuestUpdate,
	"quest_update":     EventQuestUpdate,
	"board":            EventBoardTransition,
	"board_transition": EventBoardTransition,
	"transition":       EventBoardTransition,
}

// Classify turns a raw occurrence into a narration event. Unrecognized
// kinds coerce to a status tick and non-finite amounts to zero rather
// than failing the turn.
func Classify(raw RawEvent, turnSeed string) Event {
	kind := strings.ToLower(strings.TrimSpace(raw.Kind))
	eventType, ok := kindAliases[kind]
	if !ok {
		eventType = EventStatusTick
	}

	amount := raw.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	id := raw.ID
	if id == "" {
		id = string(eventType)
	}

	return Event{
		Type:      eventType,
		Timestamp: raw.Timestamp,
		Seed:      turnSeed + "::" + id,
		ID:        id,
		Context: Context{
			Actor:       strings.TrimSpace(raw.Actor),
			Target:      strings.TrimSpace(raw.Target),
			Amount:      amount,
			Status:      strings.TrimSpace(raw.Status),
			Hooks:       raw.Hooks,
			BoardAnchor: strings.TrimSpace(raw.BoardAnchor),
		},
	}
}

// dominant returns the event the turn should be narrated around,
// following the dominance order of EventTypes. The second return is
// false when the slice is empty.
func dominant(events []Event) (Event, bool) {
	if len(events) == 0 {
		return Event{}, false
	}
	for _, t := range EventTypes {
		for _, e := range events {
			if e.Type == t {
				return e, true
			}
		}
	}
	return events[0], true
}
