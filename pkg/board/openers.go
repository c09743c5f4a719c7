package board

// Opener is one candidate first line for a board introduction.
type Opener struct {
	ID   string
	Text string
}

// openers holds the fixed opener pool per board type. Each pool keeps
// at least two entries so the anti-repeat guarantee always applies.
var openers = map[Type][]Opener{
	Town: {
		{ID: "town_market", Text: "Market noise washes over the square."},
		{ID: "town_bells", Text: "Bells mark the hour somewhere above the rooftops."},
		{ID: "town_lanterns", Text: "Lanterns are being lit against the early dusk."},
		{ID: "town_gossip", Text: "Gossip moves faster than the cart traffic here."},
		{ID: "town_rain", Text: "A thin rain keeps the cobbles slick and the crowds short-tempered."},
	},
	Travel: {
		{ID: "travel_ridge", Text: "The trail crests a ridge and the land opens wide."},
		{ID: "travel_mile", Text: "Another mile falls away behind the party."},
		{ID: "travel_crows", Text: "Crows track the road from fence post to fence post."},
		{ID: "travel_wind", Text: "Wind works at cloaks and patience alike."},
	},
	Dungeon: {
		{ID: "dungeon_drip", Text: "Water drips somewhere past the reach of the torchlight."},
		{ID: "dungeon_stale", Text: "The air turns stale and close beyond the threshold."},
		{ID: "dungeon_carvings", Text: "Old carvings crowd the walls, worn past reading."},
		{ID: "dungeon_echo", Text: "Every footfall comes back twice from the dark."},
	},
	Combat: {
		{ID: "combat_lines", Text: "Lines are drawn in the space of a breath."},
		{ID: "combat_first", Text: "The first blow is already moving."},
		{ID: "combat_quiet", Text: "The quiet before the clash stretches thin and snaps."},
		{ID: "combat_ground", Text: "Both sides measure the ground between them."},
	},
}

// Syllable pools backing the deterministic town district tag.
var (
	tagSyllablesA = []string{"vel", "mar", "cor", "ash", "bran", "hol", "fen", "gray"}
	tagSyllablesB = []string{"mora", "wick", "stead", "fall", "march", "holt", "den", "forth"}
)

// Openers exposes the opener pools for validation.
func Openers() map[Type][]Opener {
	return openers
}

// TagSyllables exposes the district syllable pools for validation.
func TagSyllables() ([]string, []string) {
	return tagSyllablesA, tagSyllablesB
}
