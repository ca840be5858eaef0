package model

// AnalysisRequest is the payload for POST /api/v1/runs. Zero values fall back
// to the server defaults; LogDir is the only required field.
type AnalysisRequest struct {
	LogDir    string   `json:"logDir"`
	Patterns  []string `json:"patterns,omitempty"`  // glob patterns, e.g. ["*.log"]
	ChunkSize int      `json:"chunkSize,omitempty"` // lines per chunk
	Workers   int      `json:"workers,omitempty"`   // worker pool size
	Monitor   *bool    `json:"monitor,omitempty"`   // sample resource usage during the run
	BucketBy  string   `json:"bucketBy,omitempty"`  // "hour" or "day"
	TopN      int      `json:"topN,omitempty"`      // ranking size in the report
}

// Run statuses as persisted in the store.
const (
	RunPending   = "pending"
	RunRunning   = "running"
	RunCompleted = "completed"
	RunFailed    = "failed"
)
