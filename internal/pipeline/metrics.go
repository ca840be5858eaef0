package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Process-wide pipeline counters, exposed on the API server's /metrics
// endpoint. CLI runs update them too; they are simply never scraped there.
var (
	linesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loganalyzer_lines_processed_total",
		Help: "Lines counted across all successfully summarized chunks.",
	})
	chunksProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loganalyzer_chunks_processed_total",
		Help: "Chunks summarized and merged into an accumulator.",
	})
	chunkFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loganalyzer_chunk_failures_total",
		Help: "Chunks that produced an error-tagged result instead of a summary.",
	})
	filesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loganalyzer_files_skipped_total",
		Help: "Log files skipped because they could not be read.",
	})
)
