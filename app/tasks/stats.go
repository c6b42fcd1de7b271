package tasks

import (
	"sync/atomic"

	"github.com/kvanta/cardgen/app/content"
)

// RunStats is a snapshot of the aggregate processing counters.
type RunStats struct {
	Enqueued          int64 `json:"enqueued"`
	Built             int64 `json:"built"`
	Stored            int64 `json:"stored"`
	Failed            int64 `json:"failed"`
	Parsed            int64 `json:"parsed"`
	AttributesMatched int64 `json:"attributes_matched"`
	Diagnostics       int64 `json:"diagnostics"`
}

// RunStatsCollector accumulates counters across workers. Per-build stats come
// out of the builder result and are summed here with atomic increments, so
// workers never share mutable state beyond these counters.
type RunStatsCollector struct {
	enqueued          atomic.Int64
	built             atomic.Int64
	stored            atomic.Int64
	failed            atomic.Int64
	parsed            atomic.Int64
	attributesMatched atomic.Int64
	diagnostics       atomic.Int64
}

func NewRunStatsCollector() *RunStatsCollector {
	return &RunStatsCollector{}
}

func (s *RunStatsCollector) RecordEnqueue() {
	s.enqueued.Add(1)
}

func (s *RunStatsCollector) RecordBuild(result content.Result) {
	s.built.Add(1)
	s.parsed.Add(int64(result.Stats.Parsed))
	s.attributesMatched.Add(int64(result.Stats.AttributesMatched))
	s.diagnostics.Add(int64(len(result.Diagnostics)))
}

func (s *RunStatsCollector) RecordStore() {
	s.stored.Add(1)
}

func (s *RunStatsCollector) RecordFailure() {
	s.failed.Add(1)
}

func (s *RunStatsCollector) Snapshot() RunStats {
	return RunStats{
		Enqueued:          s.enqueued.Load(),
		Built:             s.built.Load(),
		Stored:            s.stored.Load(),
		Failed:            s.failed.Load(),
		Parsed:            s.parsed.Load(),
		AttributesMatched: s.attributesMatched.Load(),
		Diagnostics:       s.diagnostics.Load(),
	}
}
