package content

import (
	"strings"

	"github.com/kvanta/cardgen/app/rules"
)

// Matcher decides whether a characteristic key corresponds to an entry of the
// external attribute vocabulary.
type Matcher struct {
	rules *rules.Rules
}

func NewMatcher(r *rules.Rules) *Matcher {
	return &Matcher{rules: r}
}

// Run matches in two phases: an exact lookup of the raw key first, then
// bidirectional substring containment over normalized keys, which recovers
// near-miss vocabulary keys (plural forms, extra words). Vocabulary order is
// the tie-break: the first entry satisfying containment wins.
func (m *Matcher) Run(key string) (bool, string) {
	for _, attr := range m.rules.Attributes {
		if attr.Key == key {
			return true, attr.Slug
		}
	}

	normalized := NormalizeKey(key)
	if normalized == "" {
		return false, ""
	}

	for _, attr := range m.rules.Attributes {
		vocabKey := NormalizeKey(attr.Key)
		if vocabKey == "" {
			continue
		}
		if strings.Contains(normalized, vocabKey) || strings.Contains(vocabKey, normalized) {
			return true, attr.Slug
		}
	}

	return false, ""
}
