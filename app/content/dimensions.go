package content

import (
	"strings"
)

// DimensionMerger collapses independent width/height/length characteristics
// into one composite attribute value. The external vocabulary models a single
// dimensions attribute, so the three axes are joined as "W x H x L" with only
// the axes actually present.
type DimensionMerger struct{}

func NewDimensionMerger() *DimensionMerger {
	return &DimensionMerger{}
}

// Run scans all characteristics regardless of group. The first occurrence per
// axis wins; a key matching several axis substrings is taken as the first
// axis in width > height > length order.
func (d *DimensionMerger) Run(characteristics []Characteristic) (string, bool) {
	var width, height, length string
	var haveWidth, haveHeight, haveLength bool

	for _, ch := range characteristics {
		key := NormalizeKey(ch.Key)

		switch {
		case strings.Contains(key, "ширин"):
			if !haveWidth {
				width, haveWidth = ch.Value, true
			}
		case strings.Contains(key, "высот"):
			if !haveHeight {
				height, haveHeight = ch.Value, true
			}
		case strings.Contains(key, "глубин") || strings.Contains(key, "длин"):
			if !haveLength {
				length, haveLength = ch.Value, true
			}
		}
	}

	var parts []string
	if haveWidth {
		parts = append(parts, width)
	}
	if haveHeight {
		parts = append(parts, height)
	}
	if haveLength {
		parts = append(parts, length)
	}

	if len(parts) == 0 {
		return "", false
	}

	return strings.Join(parts, " x "), true
}
