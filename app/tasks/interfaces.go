package tasks

import "github.com/kvanta/cardgen/app/content"

// RunnerInterface is the task queue surface used by the API layer: batches of
// products are enqueued as build tasks and executed by the worker pool.
type RunnerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
	EnqueueProducts(products []content.Product) int
	Stats() RunStats
}
