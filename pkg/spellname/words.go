package spellname

// Word banks for the escalation bands. Fixed, process-wide constants;
// the engine never mutates them.

var minorPrefixes = []string{"Greater", "Grand"}

var enhancedLeads = []string{
	"Empowered", "Focused", "Keen", "Tempered", "Charged", "Honed",
}

var heroicLeads = []string{
	"Valiant", "Thunderous", "Radiant", "Indomitable", "Sovereign", "Blazing",
}

var mythicLeads = []string{
	"Worldrending", "Starforged", "Eternal", "Apocalyptic", "Transcendent", "Voidborn",
}

var absurdPool = []string{
	"Screaming", "Infinite", "Backwards", "Caffeinated", "Unstoppable",
	"Sideways", "Forbidden", "Double", "Quantum", "Feral",
}

var whimsyPool = []string{
	"Sparkly", "Wiggly", "Bouncy", "Glittering", "Snazzy",
}

var actionNouns = []string{
	"Strike", "Barrage", "Onslaught", "Reckoning", "Verdict",
}

var epicBridges = []string{
	"of the Endless", "of the Shattered Sky", "of the Last Dawn",
	"of the Deep Hollow", "of the Burning Crown",
}

var intensifiers = []string{"EX", "Deluxe", "Maximum", "Final", "Ultimate"}

var classicNames = []string{
	"Fireball", "Magic Missile", "Lightning Bolt", "Frost Lance", "Arcane Burst",
}

// WordBanks exposes every bank for validation, keyed by a stable name.
func WordBanks() map[string][]string {
	return map[string][]string{
		"minor_prefixes": minorPrefixes,
		"enhanced_leads": enhancedLeads,
		"heroic_leads":   heroicLeads,
		"mythic_leads":   mythicLeads,
		"absurd_pool":    absurdPool,
		"whimsy_pool":    whimsyPool,
		"action_nouns":   actionNouns,
		"epic_bridges":   epicBridges,
		"intensifiers":   intensifiers,
		"classic_names":  classicNames,
	}
}
