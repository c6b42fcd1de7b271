package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kvanta/cardgen/app/cache"
	"github.com/kvanta/cardgen/app/content"
	"github.com/kvanta/cardgen/app/database"
	"github.com/kvanta/cardgen/app/tasks"
)

func NewHandler(cardRepo database.CardRepository, cardCache *cache.Cache,
	builder *content.Builder, runner tasks.RunnerInterface) *Handler {
	return &Handler{
		cardRepo:  cardRepo,
		cardCache: cardCache,
		builder:   builder,
		runner:    runner,
	}
}

func (h *Handler) GetCard(c *gin.Context) {
	sku := c.Param("sku")
	if sku == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	if h.cardCache != nil {
		if payload, hit, err := h.cardCache.GetCard(sku); err == nil && hit {
			c.Header("X-Card-Cache", "hit")
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		} else if err != nil {
			slog.Warn("Cache error", "operation", "get_card", "sku", sku, "error", err)
		}
	}

	card, err := h.cardRepo.GetCard(sku)
	if err != nil {
		slog.Error("Database error", "operation", "get_card", "sku", sku, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if card == nil {
		slog.Error("Card not found in database", "sku", sku)
		c.Status(http.StatusNotFound)
		return
	}

	response := newCardResponse(card)

	if h.cardCache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := h.cardCache.SetCard(sku, payload, cache.DefaultCardTTL); err != nil {
				slog.Warn("Failed to cache card", "sku", sku, "error", err)
			}
		}
	}

	c.Header("X-Card-Cache", "miss")
	c.Header("X-Last-Updated", card.UpdatedAt.Format(time.RFC3339))

	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if cardCount, err := h.cardRepo.GetCardCount(); err == nil {
		health["cards"] = cardCount
	}

	if h.cardCache != nil {
		health["cache"] = h.cardCache.Health()
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"processing": h.runner.Stats(),
	}

	if cardCount, err := h.cardRepo.GetCardCount(); err == nil {
		stats["cards"] = cardCount
	}

	if diagnosticCount, err := h.cardRepo.GetDiagnosticCount(); err == nil {
		stats["cards_with_diagnostics"] = diagnosticCount
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) APISubmitProducts(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if len(req.Products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No products provided"})
		return
	}

	products := make([]content.Product, 0, len(req.Products))
	skipped := 0
	for _, product := range req.Products {
		if strings.TrimSpace(product.SKU) == "" {
			skipped++
			continue
		}
		products = append(products, product)
	}

	accepted := h.runner.EnqueueProducts(products)
	rejected := len(products) - accepted

	slog.Info("Products submitted", "received", len(req.Products), "accepted", accepted, "rejected", rejected, "skipped", skipped)

	status := http.StatusAccepted
	if accepted == 0 {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"accepted": accepted,
		"rejected": rejected,
		"skipped":  skipped,
	})
}

// APIPreviewCard builds a card synchronously without storing it, so rule
// changes can be checked against a sample product.
func (h *Handler) APIPreviewCard(c *gin.Context) {
	var product content.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	result := h.builder.Run(product)

	c.JSON(http.StatusOK, gin.H{
		"sku":    product.SKU,
		"name":   product.Name,
		"result": result,
	})
}

func (h *Handler) APIListCards(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	cards, err := h.cardRepo.GetRecentCards(limit)
	if err != nil {
		slog.Error("Database error", "operation", "list_cards", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	list := make([]map[string]interface{}, 0, len(cards))
	for _, card := range cards {
		list = append(list, map[string]interface{}{
			"sku":                card.SKU,
			"name":               card.Name,
			"parsed_count":       card.ParsedCount,
			"attributes_matched": card.AttributesMatched,
			"diagnostics":        len(card.Diagnostics),
			"updated_at":         card.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"cards": list,
		"total": len(list),
	})
}
