package narrator

import (
	"fmt"

	"github.com/tmallory/chronicler/pkg/grammar"
)

func actorOr(ctx Context, fallback string) string {
	if ctx.Actor != "" {
		return ctx.Actor
	}
	return fallback
}

func targetOr(ctx Context, fallback string) string {
	if ctx.Target != "" {
		return ctx.Target
	}
	return fallback
}

func statusOr(ctx Context, fallback string) string {
	if ctx.Status != "" {
		return ctx.Status
	}
	return fallback
}

// registry holds every template pool, keyed by event type. The tables
// are process-wide read-only constants; nothing in the engine mutates
// them after init.
var registry = map[EventType][]Template{
	EventAttackResolved: {
		{
			ID: "attack_clean_hit", Event: EventAttackResolved, Weight: 3, Tags: []string{"combat", "direct"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("%s %s %s for %.0f.",
					actorOr(ctx, "The attacker"), grammar.ThirdPerson(ctx.Verb), targetOr(ctx, "the foe"), ctx.Amount)
			},
		},
		{
			ID: "attack_flavored", Event: EventAttackResolved, Weight: 2, Tags: []string{"combat", "flavor"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("With %s %s, %s %s %s; %.0f lands true.",
					grammar.ArticleFor(ctx.Noun), ctx.Noun, actorOr(ctx, "the attacker"),
					grammar.ThirdPerson(ctx.Verb), targetOr(ctx, "the foe"), ctx.Amount)
			},
		},
		{
			ID: "attack_grim", Event: EventAttackResolved, Weight: 1, Tags: []string{"combat", "grim"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("%s staggers as %s %s home. %.0f taken.",
					targetOr(ctx, "The foe"), actorOr(ctx, "the blow"), grammar.ThirdPerson(ctx.Verb), ctx.Amount)
			},
		},
	},
	EventLootDropped: {
		{
			ID: "loot_plain", Event: EventLootDropped, Weight: 3, Tags: []string{"loot"},
			Render: func(ctx Context) string {
				item := targetOr(ctx, "something of value")
				return fmt.Sprintf("%s claims %s %s from the %s.",
					actorOr(ctx, "The party"), grammar.ArticleFor(item), item, statusOr(ctx, "wreckage"))
			},
		},
		{
			ID: "loot_count", Event: EventLootDropped, Weight: 2, Tags: []string{"loot", "count"},
			Render: func(ctx Context) string {
				n := int(ctx.Amount)
				if n < 1 {
					n = 1
				}
				item := targetOr(ctx, "coin")
				verb := "fall"
				if n == 1 {
					verb = "falls"
				}
				return fmt.Sprintf("%d %s %s into %s's hands.", n, grammar.Pluralize(item, n), verb, actorOr(ctx, "the party"))
			},
		},
		{
			ID: "loot_gleam", Event: EventLootDropped, Weight: 1, Tags: []string{"loot", "flavor"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("Something %s in the dust: %s.", grammar.ThirdPerson(ctx.Verb), targetOr(ctx, "a find worth keeping"))
			},
		},
	},
	EventTravelStep: {
		{
			ID: "travel_plain", Event: EventTravelStep, Weight: 3, Tags: []string{"travel"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("The road %s toward %s.", grammar.ThirdPerson(ctx.Verb), targetOr(ctx, "the horizon"))
			},
		},
		{
			ID: "travel_weather", Event: EventTravelStep, Weight: 2, Tags: []string{"travel", "weather"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("%s presses on through %s weather, %s never far behind.",
					actorOr(ctx, "The party"), statusOr(ctx, "turning"), ctx.Noun)
			},
		},
	},
	EventRoomEntered: {
		{
			ID: "room_plain", Event: EventRoomEntered, Weight: 3, Tags: []string{"dungeon"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("%s opens into %s. The air %s.",
					targetOr(ctx, "The passage"), statusOr(ctx, "a low chamber"), grammar.ThirdPerson(ctx.Verb))
			},
		},
		{
			ID: "room_detail", Event: EventRoomEntered, Weight: 2, Tags: []string{"dungeon", "detail"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("Beyond the threshold: %s, and %s %s half-buried in shadow.",
					statusOr(ctx, "old stonework"), grammar.ArticleFor(ctx.Noun), ctx.Noun)
			},
		},
	},
	EventDialogue: {
		{
			ID: "dialogue_plain", Event: EventDialogue, Weight: 3, Tags: []string{"social"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("%s %s with %s.", actorOr(ctx, "A voice"),
					grammar.ThirdPerson(ctx.Verb), targetOr(ctx, "the party"))
			},
		},
		{
			ID: "dialogue_guarded", Event: EventDialogue, Weight: 2, Tags: []string{"social", "guarded"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("%s weighs each word, %s plain behind the %s tone.",
					actorOr(ctx, "The stranger"), statusOr(ctx, "caution"), ctx.Noun)
			},
		},
	},
	EventLevelUp: {
		{
			ID: "levelup_plain", Event: EventLevelUp, Weight: 3, Tags: []string{"progress"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("%s stands taller. Something hard-won %s into place.",
					actorOr(ctx, "The hero"), grammar.ThirdPerson(ctx.Verb))
			},
		},
		{
			ID: "levelup_surge", Event: EventLevelUp, Weight: 2, Tags: []string{"progress", "surge"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("A surge of %s runs through %s. Stronger now, and it shows.",
					ctx.Noun, actorOr(ctx, "the hero"))
			},
		},
	},
	EventStatusTick: {
		{
			ID: "status_plain", Event: EventStatusTick, Weight: 3, Tags: []string{"status"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("The %s holds; %s lingers at the edge of it.", statusOr(ctx, "moment"), ctx.Noun)
			},
		},
		{
			ID: "status_quiet", Event: EventStatusTick, Weight: 1, Tags: []string{"status", "quiet"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("Nothing breaks the quiet, though %s %s at the edges.",
					ctx.Noun, grammar.ThirdPerson(ctx.Verb))
			},
		},
	},
	EventQuestUpdate: {
		{
			ID: "quest_plain", Event: EventQuestUpdate, Weight: 3, Tags: []string{"quest"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("The thread of %s pulls tighter: %s.",
					targetOr(ctx, "the quest"), statusOr(ctx, "a new turn revealed"))
			},
		},
		{
			ID: "quest_omen", Event: EventQuestUpdate, Weight: 1, Tags: []string{"quest", "omen"},
			Render: func(ctx Context) string {
				return fmt.Sprintf("An omen of %s attends the news; %s will not wait.",
					ctx.Noun, targetOr(ctx, "the quest"))
			},
		},
	},
	EventBoardTransition: {
		{
			ID: "board_plain", Event: EventBoardTransition, Weight: 3, Tags: []string{"board"},
			Render: func(ctx Context) string {
				anchor := ctx.BoardAnchor
				if anchor == "" {
					anchor = "new ground"
				}
				return fmt.Sprintf("The scene shifts to %s.", anchor)
			},
		},
		{
			ID: "board_turn", Event: EventBoardTransition, Weight: 2, Tags: []string{"board", "flavor"},
			Render: func(ctx Context) string {
				anchor := ctx.BoardAnchor
				if anchor == "" {
					anchor = "what lies ahead"
				}
				return fmt.Sprintf("One chapter %s shut; %s waits.", grammar.ThirdPerson(ctx.Verb), anchor)
			},
		},
	},
}

// defaultTemplates is the guaranteed fallback pool, used when an event
// type has no registered templates. Never empty.
var defaultTemplates = []Template{
	{
		ID: "default_beat", Event: EventStatusTick, Weight: 1, Tags: []string{"fallback"},
		Render: func(ctx Context) string {
			return fmt.Sprintf("The story %s forward.", grammar.ThirdPerson(ctx.Verb))
		},
	},
	{
		ID: "default_hold", Event: EventStatusTick, Weight: 1, Tags: []string{"fallback"},
		Render: func(ctx Context) string {
			return "The moment holds its breath."
		},
	},
}
