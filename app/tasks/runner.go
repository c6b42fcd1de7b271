package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kvanta/cardgen/app/cache"
	"github.com/kvanta/cardgen/app/cfg"
	"github.com/kvanta/cardgen/app/content"
	"github.com/kvanta/cardgen/app/database"
)

var _ RunnerInterface = (*Runner)(nil)

// Runner owns the build queue and the worker pool. Batches arrive through
// EnqueueProducts; a failed product is retried with capped backoff and never
// stops the rest of the batch.
type Runner struct {
	builder     *content.Builder
	cardRepo    database.CardRepository
	cardCache   *cache.Cache
	stats       *RunStatsCollector
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewRunner(builder *content.Builder, cardRepo database.CardRepository, cardCache *cache.Cache) *Runner {
	ctx, cancel := context.WithCancel(context.Background())

	return &Runner{
		builder:     builder,
		cardRepo:    cardRepo,
		cardCache:   cardCache,
		stats:       NewRunStatsCollector(),
		workerCount: cfg.Get().WorkerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
	}
}

func (r *Runner) Start() {
	for i := 0; i < r.workerCount; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
}

func (r *Runner) Stop() {
	r.cancel()
	r.wg.Wait()
	close(r.taskQueue)
}

func (r *Runner) EnqueueTask(task TaskInterface) error {
	select {
	case r.taskQueue <- task:
		return nil
	case <-r.ctx.Done():
		return r.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

// EnqueueProducts queues one build task per product and returns how many were
// accepted.
func (r *Runner) EnqueueProducts(products []content.Product) int {
	accepted := 0
	for _, product := range products {
		task := NewBuildCardTask(product, r.builder, r.cardRepo, r.cardCache, r.stats)
		if err := r.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue BuildCardTask", "sku", product.SKU, "error", err)
			continue
		}
		r.stats.RecordEnqueue()
		accepted++
	}
	return accepted
}

func (r *Runner) Stats() RunStats {
	return r.stats.Snapshot()
}

func (r *Runner) worker(id int) {
	defer r.wg.Done()

	for {
		select {
		case task, ok := <-r.taskQueue:
			if !ok {
				return
			}
			r.executeTask(id, task)

		case <-r.ctx.Done():
			return
		}
	}
}

func (r *Runner) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(r.ctx, 1*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)
	if err == nil {
		return
	}

	slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

	if !task.CanRetry() {
		r.stats.RecordFailure()
		slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		return
	}

	task.IncrementRetryCount()
	retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
	if retryDelay > 30*time.Second {
		retryDelay = 30 * time.Second
	}

	slog.Warn("Task retry scheduled", "type", string(task.GetType()), "sku", task.GetSKU(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

	go func() {
		time.Sleep(retryDelay)
		select {
		case <-r.ctx.Done():
			slog.Debug("Runner stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
			return
		default:
			if retryErr := r.EnqueueTask(task); retryErr != nil {
				r.stats.RecordFailure()
				slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
			}
		}
	}()
}
