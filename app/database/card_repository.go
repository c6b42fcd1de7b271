package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

var _ CardRepository = (*CardRepositoryImpl)(nil)

// CardRepositoryImpl handles database operations for product cards.
type CardRepositoryImpl struct {
	db *DB
}

func NewCardRepository(db *DB) *CardRepositoryImpl {
	return &CardRepositoryImpl{db: db}
}

// UpsertCard inserts or replaces a card by SKU.
func (r *CardRepositoryImpl) UpsertCard(card StoredCard) error {
	attributes, err := json.Marshal(emptyIfNil(card.Attributes))
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}

	extracted, err := json.Marshal(emptyIfNil(card.ExtractedFields))
	if err != nil {
		return fmt.Errorf("failed to marshal extracted fields: %w", err)
	}

	diagnostics := card.Diagnostics
	if diagnostics == nil {
		diagnostics = []string{}
	}

	_, err = r.db.Exec(`
		INSERT INTO cards (
			sku, name, content, excerpt, attributes, extracted_fields,
			diagnostics, parsed_count, attributes_matched
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (sku) DO UPDATE SET
			name = EXCLUDED.name,
			content = EXCLUDED.content,
			excerpt = EXCLUDED.excerpt,
			attributes = EXCLUDED.attributes,
			extracted_fields = EXCLUDED.extracted_fields,
			diagnostics = EXCLUDED.diagnostics,
			parsed_count = EXCLUDED.parsed_count,
			attributes_matched = EXCLUDED.attributes_matched,
			updated_at = NOW()
	`, card.SKU, card.Name, card.Content, card.Excerpt, attributes, extracted,
		pq.Array(diagnostics), card.ParsedCount, card.AttributesMatched)

	if err != nil {
		return fmt.Errorf("failed to upsert card: %w", err)
	}

	return nil
}

// GetCard returns the stored card for a SKU, nil when absent.
func (r *CardRepositoryImpl) GetCard(sku string) (*Card, error) {
	row := r.db.QueryRow(`
		SELECT id, sku, name, content, excerpt, attributes, extracted_fields,
		       diagnostics, parsed_count, attributes_matched, created_at, updated_at
		FROM cards
		WHERE sku = $1
	`, sku)

	card, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return card, nil
}

// GetRecentCards returns the most recently updated cards.
func (r *CardRepositoryImpl) GetRecentCards(limit int) ([]Card, error) {
	rows, err := r.db.Query(`
		SELECT id, sku, name, content, excerpt, attributes, extracted_fields,
		       diagnostics, parsed_count, attributes_matched, created_at, updated_at
		FROM cards
		ORDER BY updated_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent cards: %w", err)
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card row: %w", err)
		}
		cards = append(cards, *card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating card rows: %w", err)
	}

	return cards, nil
}

// GetCardCount returns the total number of stored cards.
func (r *CardRepositoryImpl) GetCardCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM cards`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get card count: %w", err)
	}
	return count, nil
}

// GetDiagnosticCount returns the number of cards that carry diagnostics.
func (r *CardRepositoryImpl) GetDiagnosticCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM cards WHERE cardinality(diagnostics) > 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get diagnostic count: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCard(row rowScanner) (*Card, error) {
	var card Card
	var attributes, extracted []byte

	err := row.Scan(
		&card.ID, &card.SKU, &card.Name, &card.Content, &card.Excerpt,
		&attributes, &extracted, pq.Array(&card.Diagnostics),
		&card.ParsedCount, &card.AttributesMatched,
		&card.CreatedAt, &card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(attributes, &card.Attributes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attributes: %w", err)
	}
	if err := json.Unmarshal(extracted, &card.ExtractedFields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extracted fields: %w", err)
	}

	return &card, nil
}

func emptyIfNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
