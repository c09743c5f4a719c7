// Command validate checks the engine's static content for mistakes
// that would otherwise only surface as bad narration at runtime:
// empty pools, duplicate or malformed IDs, non-positive template
// weights, and anti-repeat pools too small to honor their guarantee.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tmallory/chronicler/pkg/board"
	"github.com/tmallory/chronicler/pkg/narrator"
	"github.com/tmallory/chronicler/pkg/reputation"
	"github.com/tmallory/chronicler/pkg/spectacle"
	"github.com/tmallory/chronicler/pkg/spellname"
)

func main() {
	v := &ContentValidator{}

	v.validateTemplates()
	v.validateFlavorBanks()
	v.validateBoards()
	v.validateSpellWords()
	v.validateReputation()
	v.validateSpectacle()

	if len(v.errors) > 0 {
		fmt.Fprintf(os.Stderr, "Content validation failed:\n%s\n", strings.Join(v.errors, "\n"))
		os.Exit(1)
	}

	fmt.Println("Static content is valid!")
}

type ContentValidator struct {
	errors []string
}

func (v *ContentValidator) errorf(format string, args ...interface{}) {
	v.errors = append(v.errors, fmt.Sprintf("  - "+format, args...))
}

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func (v *ContentValidator) validateID(context, id string) {
	if !idPattern.MatchString(id) {
		v.errorf("%s: ID %q must be lowercase snake_case", context, id)
	}
}

func (v *ContentValidator) validateTemplates() {
	types := narrator.RegisteredTypes()
	if len(types) == 0 {
		v.errorf("templates: no event types registered")
		return
	}

	for _, eventType := range types {
		templates := narrator.TemplatesOf(eventType)
		if len(templates) == 0 {
			v.errorf("templates[%s]: empty pool", eventType)
			continue
		}

		seen := make(map[string]bool)
		for _, tmpl := range templates {
			v.validateID(fmt.Sprintf("templates[%s]", eventType), tmpl.ID)
			if seen[tmpl.ID] {
				v.errorf("templates[%s]: duplicate ID %q", eventType, tmpl.ID)
			}
			seen[tmpl.ID] = true

			if tmpl.Weight <= 0 {
				v.errorf("templates[%s][%s]: weight must be positive, got %v", eventType, tmpl.ID, tmpl.Weight)
			}
			if tmpl.Render == nil {
				v.errorf("templates[%s][%s]: nil render function", eventType, tmpl.ID)
			} else if text := tmpl.Render(narrator.Context{}); strings.TrimSpace(text) == "" {
				v.errorf("templates[%s][%s]: renders empty text for zero context", eventType, tmpl.ID)
			}
		}
	}

	defaults := narrator.DefaultTemplates()
	if len(defaults) == 0 {
		v.errorf("templates: no default fallback templates")
	}
	for _, tmpl := range defaults {
		v.validateID("default templates", tmpl.ID)
		if tmpl.Weight <= 0 {
			v.errorf("default templates[%s]: weight must be positive, got %v", tmpl.ID, tmpl.Weight)
		}
	}
}

func (v *ContentValidator) validateFlavorBanks() {
	verbs, nouns := narrator.FlavorBanks()

	for _, eventType := range narrator.RegisteredTypes() {
		// Verb pools need at least two entries or the no-repeat pick
		// degenerates into repetition.
		if pool := verbs[eventType]; len(pool) < 2 {
			v.errorf("flavor verbs[%s]: pool needs at least 2 entries, has %d", eventType, len(pool))
		}
		if pool := nouns[eventType]; len(pool) == 0 {
			v.errorf("flavor nouns[%s]: empty pool", eventType)
		}
	}

	for tone, pool := range narrator.ToneFlourishes() {
		v.validateID("tone flourishes", tone)
		if len(pool) == 0 {
			v.errorf("tone flourishes[%s]: empty pool", tone)
		}
		for _, line := range pool {
			if strings.TrimSpace(line) == "" {
				v.errorf("tone flourishes[%s]: blank entry", tone)
			}
		}
	}
}

func (v *ContentValidator) validateBoards() {
	openers := board.Openers()
	if len(openers) == 0 {
		v.errorf("boards: no opener pools")
		return
	}

	for boardType, pool := range openers {
		// Opener anti-repeat needs at least two candidates.
		if len(pool) < 2 {
			v.errorf("boards[%s]: opener pool needs at least 2 entries, has %d", boardType, len(pool))
		}

		seen := make(map[string]bool)
		for _, opener := range pool {
			v.validateID(fmt.Sprintf("boards[%s]", boardType), opener.ID)
			if seen[opener.ID] {
				v.errorf("boards[%s]: duplicate opener ID %q", boardType, opener.ID)
			}
			seen[opener.ID] = true

			if strings.TrimSpace(opener.Text) == "" {
				v.errorf("boards[%s][%s]: blank opener text", boardType, opener.ID)
			}
		}
	}

	sylA, sylB := board.TagSyllables()
	if len(sylA) == 0 || len(sylB) == 0 {
		v.errorf("boards: district tag syllable pools must be non-empty (%d, %d)", len(sylA), len(sylB))
	}
}

func (v *ContentValidator) validateSpellWords() {
	for bank, pool := range spellname.WordBanks() {
		if len(pool) == 0 {
			v.errorf("spell words[%s]: empty pool", bank)
		}
		for _, word := range pool {
			if strings.TrimSpace(word) == "" {
				v.errorf("spell words[%s]: blank entry", bank)
			}
		}
	}
}

func (v *ContentValidator) validateReputation() {
	epithets, titles := reputation.Epithets()

	for tier := 3; tier <= 5; tier++ {
		if len(epithets[tier]) == 0 {
			v.errorf("reputation epithets[tier %d]: empty pool", tier)
		}
		if len(titles[tier]) == 0 {
			v.errorf("reputation titles[tier %d]: empty pool", tier)
		}
	}
}

func (v *ContentValidator) validateSpectacle() {
	finishers := spectacle.Finishers()
	if len(finishers) == 0 {
		v.errorf("spectacle: no finisher lines")
	}
	for _, line := range finishers {
		if strings.TrimSpace(line) == "" {
			v.errorf("spectacle: blank finisher line")
		}
	}
}
