// Package grammar provides the small, deterministic English helpers the
// narrative engine renders with. These are simple heuristics for
// readable game text, not a linguistic engine, and none of them draw
// randomness.
package grammar

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	spaceBeforeMark = regexp.MustCompile(`\s+([.,!?;:])`)
)

// ArticleFor returns "an" when the trimmed word starts with a vowel,
// "a" otherwise. Empty input gets "a".
func ArticleFor(word string) string {
	w := strings.TrimSpace(word)
	if w == "" {
		return "a"
	}
	if strings.ContainsRune("aeiou", rune(strings.ToLower(w)[0])) {
		return "an"
	}
	return "a"
}

// Pluralize returns word unchanged when count is 1, otherwise applies
// a suffix heuristic: trailing "y" becomes "ies", trailing "s" gains
// "es", everything else gains "s".
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	switch {
	case strings.HasSuffix(word, "y"):
		return strings.TrimSuffix(word, "y") + "ies"
	case strings.HasSuffix(word, "s"):
		return word + "es"
	default:
		return word + "s"
	}
}

// ThirdPerson conjugates a base-form verb for a third-person singular
// subject, treating "s", "x", "ch" and "sh" endings as needing "es".
// Phrasal verbs conjugate their head word ("go still" becomes
// "goes still").
func ThirdPerson(verb string) string {
	if head, rest, ok := strings.Cut(verb, " "); ok {
		return ThirdPerson(head) + " " + rest
	}
	switch {
	case strings.HasSuffix(verb, "y"):
		return strings.TrimSuffix(verb, "y") + "ies"
	case strings.HasSuffix(verb, "s"),
		strings.HasSuffix(verb, "x"),
		strings.HasSuffix(verb, "o"),
		strings.HasSuffix(verb, "ch"),
		strings.HasSuffix(verb, "sh"):
		return verb + "es"
	default:
		return verb + "s"
	}
}

// CompactSentence trims the text, collapses internal whitespace runs to
// a single space, and removes whitespace immediately preceding
// punctuation. Idempotent.
func CompactSentence(text string) string {
	out := whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	return spaceBeforeMark.ReplaceAllString(out, "$1")
}

// Title renders the string in English title case.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
