package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kvanta/cardgen/app/cache"
	"github.com/kvanta/cardgen/app/content"
	"github.com/kvanta/cardgen/app/database"
)

// BuildCardTask builds the card for one product and stores it. Building
// itself never fails (malformed product data degrades to a partial card);
// only storage errors are returned and retried.
type BuildCardTask struct {
	Task
	Product   content.Product
	builder   *content.Builder
	cardRepo  database.CardRepository
	cardCache *cache.Cache
	stats     *RunStatsCollector
}

func NewBuildCardTask(product content.Product, builder *content.Builder,
	cardRepo database.CardRepository, cardCache *cache.Cache, stats *RunStatsCollector) *BuildCardTask {
	return &BuildCardTask{
		Task:      NewTask(TaskTypeBuildCard, product.SKU),
		Product:   product,
		builder:   builder,
		cardRepo:  cardRepo,
		cardCache: cardCache,
		stats:     stats,
	}
}

func (t *BuildCardTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	result := t.builder.Run(t.Product)
	t.stats.RecordBuild(result)

	err := t.cardRepo.UpsertCard(database.StoredCard{
		SKU:               t.Product.SKU,
		Name:              t.Product.Name,
		Content:           result.Content,
		Excerpt:           result.Excerpt,
		Attributes:        result.Attributes,
		ExtractedFields:   result.ExtractedFields,
		Diagnostics:       result.Diagnostics,
		ParsedCount:       result.Stats.Parsed,
		AttributesMatched: result.Stats.AttributesMatched,
	})
	if err != nil {
		slog.Error("Task failed", "type", "BuildCard", "sku", t.SKU, "error", err)
		return fmt.Errorf("failed to store card: %w", err)
	}

	t.stats.RecordStore()

	if t.cardCache != nil {
		if err := t.cardCache.InvalidateCard(t.Product.SKU); err != nil {
			slog.Warn("Failed to invalidate cached card", "sku", t.SKU, "error", err)
		}
	}

	slog.Info("Task completed",
		"type", "BuildCard",
		"sku", t.SKU,
		"duration", t.GetDuration(),
		"parsed", result.Stats.Parsed,
		"attributes", result.Stats.AttributesMatched,
		"diagnostics", len(result.Diagnostics))

	return nil
}
