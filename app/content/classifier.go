package content

import (
	"strings"

	"github.com/kvanta/cardgen/app/rules"
)

// Classifier assigns a characteristic to a display group by ordered keyword
// rules. Rule order is the tie-break policy: when several rules match, the
// earliest configured one wins.
type Classifier struct {
	rules *rules.Rules
}

func NewClassifier(r *rules.Rules) *Classifier {
	return &Classifier{rules: r}
}

func (c *Classifier) Run(key string) string {
	normalized := NormalizeKey(key)

	for _, group := range c.rules.Groups {
		for _, keyword := range group.Keywords {
			if keyword != "" && strings.Contains(normalized, keyword) {
				return group.Name
			}
		}
	}

	return c.rules.DefaultGroup
}
