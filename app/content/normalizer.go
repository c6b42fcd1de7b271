package content

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kvanta/cardgen/app/rules"
)

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// NormalizeKey canonicalizes a characteristic key for comparison: lower case,
// punctuation runs replaced with a single space, whitespace collapsed. The
// result is used for matching only, never for display. Idempotent.
func NormalizeKey(key string) string {
	if key == "" {
		return ""
	}

	// Caser instances are stateful, so one is created per call rather than
	// shared between worker goroutines.
	normalized := cases.Lower(language.Russian).String(key)
	normalized = nonWordRe.ReplaceAllString(normalized, " ")

	return strings.Join(strings.Fields(normalized), " ")
}

// Normalizer cleans characteristic values and renders boolean-like values for
// the two consumers: human-facing HTML (Да/Нет) and the attribute vocabulary
// payload (yes/no). The same source value deliberately branches into two
// different textual representations depending on the caller.
type Normalizer struct {
	rules *rules.Rules
}

func NewNormalizer(r *rules.Rules) *Normalizer {
	return &Normalizer{rules: r}
}

// Run is the generic cleanup applied to every value: trim and collapse
// whitespace.
func (n *Normalizer) Run(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// Display renders a value for the HTML description: boolean tokens become
// Cyrillic Да/Нет, anything else is returned unchanged with casing preserved.
func (n *Normalizer) Display(value string) string {
	if value == "" {
		return ""
	}
	if mapped, ok := n.rules.DisplayBooleans[strings.ToLower(strings.TrimSpace(value))]; ok {
		return mapped
	}
	return value
}

// Attribute renders a value for the external attribute payload: boolean-like
// tokens are kept in (or converted to) the machine yes/no encoding, never
// Cyrillic. Anything else is returned unchanged.
func (n *Normalizer) Attribute(value string) string {
	if value == "" {
		return ""
	}
	if mapped, ok := n.rules.AttributeBooleans[strings.ToLower(strings.TrimSpace(value))]; ok {
		return mapped
	}
	return value
}
