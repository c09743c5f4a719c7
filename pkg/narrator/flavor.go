package narrator

// Flavor word banks, one verb and one noun pool per event type. Verbs
// are base form; templates conjugate as needed. Like the template
// registry, these are immutable process-wide constants.

var flavorVerbs = map[EventType][]string{
	EventAttackResolved:  {"strike", "cleave", "rend", "batter", "pierce", "crash"},
	EventLootDropped:     {"glint", "gleam", "shimmer", "catch the light"},
	EventTravelStep:      {"wind", "stretch", "climb", "narrow", "bend"},
	EventRoomEntered:     {"shift", "thicken", "go still", "turn cold"},
	EventDialogue:        {"speak", "parley", "bargain", "press"},
	EventLevelUp:         {"settle", "lock", "snap", "slide"},
	EventStatusTick:      {"fray", "gnaw", "press", "linger"},
	EventQuestUpdate:     {"turn", "tighten", "unravel", "sharpen"},
	EventBoardTransition: {"swing", "fall", "slam", "drift"},
}

var flavorNouns = map[EventType][]string{
	EventAttackResolved:  {"arc of steel", "brutal feint", "measured cut", "sudden lunge"},
	EventLootDropped:     {"prize", "trinket", "spoil", "relic"},
	EventTravelStep:      {"dust", "distance", "weariness", "road-song"},
	EventRoomEntered:     {"altar", "idol", "archway", "mosaic"},
	EventDialogue:        {"courtesy", "wariness", "warmth", "formality"},
	EventLevelUp:         {"resolve", "vigor", "clarity", "iron"},
	EventStatusTick:      {"doubt", "hunger", "cold", "tension"},
	EventQuestUpdate:     {"crossroads", "reckoning", "debt", "promise"},
	EventBoardTransition: {"curtain", "door", "page", "tide"},
}

// fallback words when a bank has no entry for a type; keeps renders
// safe even for future event types.
const (
	fallbackVerb = "move"
	fallbackNoun = "moment"
)

func verbPool(t EventType) []string {
	if pool, ok := flavorVerbs[t]; ok && len(pool) > 0 {
		return pool
	}
	return []string{fallbackVerb}
}

func nounPool(t EventType) []string {
	if pool, ok := flavorNouns[t]; ok && len(pool) > 0 {
		return pool
	}
	return []string{fallbackNoun}
}

// tone flourishes appended after the event line at high intensity.
var toneFlourishes = map[string][]string{
	"grim":    {"No one cheers.", "The cost is plain on every face.", "Somewhere, a bell tolls once."},
	"heroic":  {"The moment will be retold.", "Banners seem to snap in an unfelt wind.", "Courage is contagious here."},
	"wry":     {"Naturally, it could be worse.", "Someone mutters about hazard pay.", "The bards will exaggerate this."},
	"ominous": {"The shadows take note.", "Something old stirs at the edge of hearing.", "This will have a price."},
	"whimsy":  {"A stray sparkle drifts by, unbothered.", "Somewhere, a gnome applauds.", "The universe giggles quietly."},
	"neutral": {"The turn passes.", "The world takes it in stride."},
}

func flourishPool(tone string) []string {
	if pool, ok := toneFlourishes[tone]; ok && len(pool) > 0 {
		return pool
	}
	return toneFlourishes["neutral"]
}

// FlavorBanks exposes the verb and noun banks for validation.
func FlavorBanks() (map[EventType][]string, map[EventType][]string) {
	return flavorVerbs, flavorNouns
}

// ToneFlourishes exposes the flourish banks for validation.
func ToneFlourishes() map[string][]string {
	return toneFlourishes
}
