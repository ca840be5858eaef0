package pipeline

import (
	"go.uber.org/zap"

	"go-log-analyzer/internal/analyze"
	"go-log-analyzer/internal/model"
)

// Collector drains the result queue and folds partial results into the one
// accumulator. It is the accumulator's only writer, so no locking is needed.
type Collector struct {
	log      *zap.Logger
	failures []model.ChunkResult
}

// NewCollector returns an empty collector.
func NewCollector(log *zap.Logger) *Collector {
	return &Collector{log: log}
}

// Collect merges results until the channel is closed. The channel is closed
// by the orchestrator only after every worker has terminated, so a worker
// that is alive but has not yet published its last result can never be
// mistaken for done.
func (c *Collector) Collect(results <-chan model.ChunkResult) *analyze.Accumulator {
	acc := analyze.NewAccumulator()

	for res := range results {
		if !res.OK() {
			chunkFailures.Inc()
			c.failures = append(c.failures, res)
			c.log.Warn("chunk failed",
				zap.String("file", res.File),
				zap.Int("chunk", res.Index),
				zap.Int("worker", res.WorkerID),
				zap.String("error", res.Err))
			continue
		}

		acc.Merge(res.Partial)
		chunksProcessed.Inc()
		linesProcessed.Add(float64(res.Partial.LinesTotal))
	}
	return acc
}

// Failures returns the error-tagged results seen during Collect, in arrival
// order.
func (c *Collector) Failures() []model.ChunkResult {
	return c.failures
}
