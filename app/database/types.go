package database

import (
	"time"
)

// Card is one stored product card.
type Card struct {
	ID                string // Database UUID
	SKU               string
	Name              string
	Content           string
	Excerpt           string
	Attributes        map[string]string
	ExtractedFields   map[string]string
	Diagnostics       []string
	ParsedCount       int
	AttributesMatched int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
