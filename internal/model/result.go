package model

// PartialResult holds the statistics computed from a single chunk. All counts
// are non-negative. A PartialResult is produced once per chunk, carries no
// live references, and is safe to send across goroutine boundaries.
type PartialResult struct {
	LinesTotal     int            `json:"lines_total"`
	ByLevel        map[string]int `json:"by_level"`
	BySource       map[string]int `json:"by_source"`
	ErrorsByBucket map[string]int `json:"errors_by_bucket"`
}

// NewPartialResult returns an empty partial with all maps allocated.
func NewPartialResult() PartialResult {
	return PartialResult{
		ByLevel:        make(map[string]int),
		BySource:       make(map[string]int),
		ErrorsByBucket: make(map[string]int),
	}
}

// ChunkResult wraps a PartialResult with chunk provenance for the collector.
// A result is either ok (Partial is valid) or error-tagged (Err is set and
// Partial must be ignored).
type ChunkResult struct {
	File     string        `json:"file"`
	Index    int           `json:"chunk_index"`
	WorkerID int           `json:"worker_id"`
	Partial  PartialResult `json:"result"`
	Err      string        `json:"error,omitempty"`
}

// OK reports whether the chunk was summarized successfully.
func (r ChunkResult) OK() bool { return r.Err == "" }

// RankedEntry is one row of the top-N source ranking derived from the
// accumulator. It is a read-only view and is never persisted on its own.
type RankedEntry struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}
