package content

import (
	"strings"
)

// Tokenizer splits a raw semicolon-delimited characteristics string into
// ordered key/value pairs. It tolerates malformed input and never fails.
type Tokenizer struct{}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

func (t *Tokenizer) Run(raw string) []Pair {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	parts := splitOutsideBrackets(text)

	// A single segment usually means the depth tracking degenerated on
	// unbalanced brackets; fall back to a naive split.
	if len(parts) <= 1 {
		parts = parts[:0]
		for _, p := range strings.Split(text, ";") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
	}

	var pairs []Pair
	for _, part := range parts {
		if part == "" {
			continue
		}

		// Split on the first colon only: values may contain colons themselves.
		if idx := strings.Index(part, ":"); idx >= 0 {
			key := strings.TrimSpace(part[:idx])
			value := strings.TrimSpace(part[idx+1:])
			value = strings.TrimSpace(strings.TrimRight(value, ";"))

			if key != "" && value != "" {
				pairs = append(pairs, Pair{Key: key, Value: value})
			}
		} else {
			// No colon at all: keep the segment as a bare key.
			pairs = append(pairs, Pair{Key: part})
		}
	}

	return pairs
}

// splitOutsideBrackets splits on semicolons at parenthesis depth zero, so
// values like "Защита (IP24; брызги)" are not mis-split.
func splitOutsideBrackets(text string) []string {
	var parts []string
	var current strings.Builder

	depth := 0
	for _, ch := range text {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		}

		if ch == ';' && depth == 0 {
			if p := strings.TrimSpace(current.String()); p != "" {
				parts = append(parts, p)
			}
			current.Reset()
		} else {
			current.WriteRune(ch)
		}
	}

	if p := strings.TrimSpace(current.String()); p != "" {
		parts = append(parts, p)
	}

	return parts
}
