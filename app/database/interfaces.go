package database

// StoredCard carries the fields written on upsert; database-managed columns
// (id, timestamps) are filled by the server.
type StoredCard struct {
	SKU               string
	Name              string
	Content           string
	Excerpt           string
	Attributes        map[string]string
	ExtractedFields   map[string]string
	Diagnostics       []string
	ParsedCount       int
	AttributesMatched int
}

type CardRepository interface {
	GetCard(sku string) (*Card, error)
	GetRecentCards(limit int) ([]Card, error)
	GetCardCount() (int, error)
	GetDiagnosticCount() (int, error)

	UpsertCard(card StoredCard) error
}
