// Command skirmish runs a small scripted combat and prints the
// narration for each round. It exists to eyeball engine output end to
// end: same seed, same fight, same words.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/jwebster45206/d20"

	"github.com/tmallory/chronicler/pkg/narrator"
	"github.com/tmallory/chronicler/pkg/rng"
	"github.com/tmallory/chronicler/pkg/spectacle"
	"github.com/tmallory/chronicler/pkg/spellname"
	"github.com/tmallory/chronicler/pkg/state"
)

func main() {
	seed := flag.String("seed", "skirmish-demo", "campaign seed for the fight")
	rounds := flag.Int("rounds", 6, "maximum rounds to run")
	tone := flag.String("tone", "grim", "narration tone")
	flag.Parse()

	const heroName = "Kael"
	const gnollName = "the gnoll packleader"

	hero, err := d20.NewActor(heroName).
		WithHP(24).
		WithAC(15).
		WithAttributes(map[string]int{"str": 16, "dex": 12}).
		WithCombatModifiers(map[string]int{"longsword": 2}).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build hero: %v\n", err)
		os.Exit(1)
	}

	gnoll, err := d20.NewActor(gnollName).
		WithHP(18).
		WithAC(13).
		WithAttributes(map[string]int{"str": 14, "dex": 10}).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build gnoll: %v\n", err)
		os.Exit(1)
	}

	spell := spellname.Build("ember lance", 2, spellname.RarityUnique, 4, *seed+":kael:spell")
	fmt.Printf("%s draws steel. Prepared spell: %s\n\n", heroName, spell)

	src := rng.New(*seed + "::rolls")
	ps := state.PresentationState{}

	for round := 1; round <= *rounds; round++ {
		events := runRound(src, hero, gnoll, heroName, gnollName, round)

		result, err := narrator.Narrate(narrator.TurnInput{
			CampaignSeed: *seed,
			SessionID:    "skirmish",
			EventID:      "round-" + strconv.Itoa(round),
			Tone:         *tone,
			Intensity:    3,
			Events:       events,
			State:        ps,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "narration failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Round %d: %s\n", round, result.Text)

		ps.LastTone = *tone
		ps.PushLineHash(result.LineHash)
		ps.PushVerbKey(result.VerbKey)

		if gnoll.HP() <= 0 || hero.HP() <= 0 {
			break
		}
	}

	fmt.Println()
	if gnoll.HP() <= 0 {
		fmt.Println(spectacle.BuildLine(spectacle.Input{
			SeedKey:         *seed + ":finale",
			SpellName:       spell,
			EscalationLevel: 6,
			TargetName:      gnollName,
			Style:           spectacle.StyleTags{Element: "ember", Mood: "furious"},
		}))
	} else {
		fmt.Printf("The fight breaks off. %s: %d/%d HP, %s: %d/%d HP\n",
			heroName, hero.HP(), hero.MaxHP(), gnollName, gnoll.HP(), gnoll.MaxHP())
	}
}

// runRound resolves one exchange of attacks and returns the raw
// events for narration.
func runRound(src *rng.Source, hero, gnoll *d20.Actor, heroName, gnollName string, round int) []narrator.RawEvent {
	var events []narrator.RawEvent

	attackBonus := 0
	for _, mod := range hero.GetCombatModifiers() {
		attackBonus += mod.Value
	}

	// Hero swings first.
	if roll(src)+attackBonus >= gnoll.AC() {
		damage := 1 + int(src.Next01()*8)
		hp := gnoll.HP() - damage
		if hp < 0 {
			hp = 0
		}
		_ = gnoll.SetHP(hp)

		events = append(events, narrator.RawEvent{
			Kind:   "attack",
			ID:     fmt.Sprintf("hero-hit-%d", round),
			Actor:  heroName,
			Target: gnollName,
			Amount: float64(damage),
		})
	} else {
		events = append(events, narrator.RawEvent{
			Kind:   "status",
			ID:     fmt.Sprintf("hero-miss-%d", round),
			Actor:  heroName,
			Status: "off balance",
		})
	}

	if gnoll.HP() <= 0 {
		events = append(events, narrator.RawEvent{
			Kind:   "loot",
			ID:     fmt.Sprintf("loot-%d", round),
			Actor:  heroName,
			Amount: 2,
		})
		return events
	}

	// Gnoll answers.
	if roll(src) >= hero.AC() {
		damage := 1 + int(src.Next01()*6)
		hp := hero.HP() - damage
		if hp < 0 {
			hp = 0
		}
		_ = hero.SetHP(hp)

		events = append(events, narrator.RawEvent{
			Kind:   "attack",
			ID:     fmt.Sprintf("gnoll-hit-%d", round),
			Actor:  gnollName,
			Target: heroName,
			Amount: float64(damage),
		})
	}

	return events
}

func roll(src *rng.Source) int {
	return 1 + int(src.Next01()*20)
}
