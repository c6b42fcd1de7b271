package api

import (
	"time"

	"github.com/kvanta/cardgen/app/cache"
	"github.com/kvanta/cardgen/app/content"
	"github.com/kvanta/cardgen/app/database"
	"github.com/kvanta/cardgen/app/tasks"
)

type Handler struct {
	cardRepo  database.CardRepository
	cardCache *cache.Cache
	builder   *content.Builder
	runner    tasks.RunnerInterface
}

// submitRequest is the batch submission payload.
type submitRequest struct {
	Products []content.Product `json:"products" binding:"required"`
}

// cardResponse is the stored card as served to the export side.
type cardResponse struct {
	SKU             string            `json:"sku"`
	Name            string            `json:"name"`
	Content         string            `json:"content"`
	Excerpt         string            `json:"excerpt"`
	Attributes      map[string]string `json:"attributes"`
	ExtractedFields map[string]string `json:"extracted_fields"`
	Diagnostics     []string          `json:"diagnostics,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func newCardResponse(card *database.Card) cardResponse {
	return cardResponse{
		SKU:             card.SKU,
		Name:            card.Name,
		Content:         card.Content,
		Excerpt:         card.Excerpt,
		Attributes:      card.Attributes,
		ExtractedFields: card.ExtractedFields,
		Diagnostics:     card.Diagnostics,
		UpdatedAt:       card.UpdatedAt,
	}
}
