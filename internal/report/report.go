// Package report turns a finished run into the JSON report document.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-log-analyzer/internal/config"
	"go-log-analyzer/internal/model"
	"go-log-analyzer/internal/pipeline"
)

// Params records the run parameters alongside the results.
type Params struct {
	LogDir    string   `json:"log_dir"`
	Patterns  []string `json:"patterns"`
	ChunkSize int      `json:"chunk_size"`
	Workers   int      `json:"workers"`
	BucketBy  string   `json:"bucket_by"`
}

// Report is the final serializable document for one analysis run.
type Report struct {
	GeneratedAt     time.Time           `json:"generated_at"`
	Params          Params              `json:"params"`
	DurationSeconds float64             `json:"duration_seconds"`
	LinesTotal      int                 `json:"lines_total"`
	ByLevel         map[string]int      `json:"by_level"`
	TopSources      []model.RankedEntry `json:"top_sources"`
	BySource        map[string]int      `json:"by_source"`
	ErrorsByBucket  map[string]int      `json:"errors_by_bucket"`
	Files           int                 `json:"files"`
	FilesSkipped    int                 `json:"files_skipped,omitempty"`
	Chunks          int                 `json:"chunks"`
	ChunkFailures   int                 `json:"chunk_failures,omitempty"`
}

// Build assembles the report from a run result and the configuration that
// produced it.
func Build(res *pipeline.Result, cfg config.Config) Report {
	return Report{
		GeneratedAt: time.Now().UTC(),
		Params: Params{
			LogDir:    cfg.LogDir,
			Patterns:  cfg.Patterns,
			ChunkSize: cfg.ChunkSize,
			Workers:   cfg.Workers,
			BucketBy:  cfg.BucketBy,
		},
		DurationSeconds: res.Duration.Seconds(),
		LinesTotal:      res.Accumulator.LinesTotal,
		ByLevel:         res.Accumulator.ByLevel,
		TopSources:      res.Accumulator.TopN(cfg.TopN),
		BySource:        res.Accumulator.BySource,
		ErrorsByBucket:  res.Accumulator.ErrorsByBucket,
		Files:           res.Producer.Files,
		FilesSkipped:    res.Producer.FilesSkipped,
		Chunks:          res.Producer.Chunks,
		ChunkFailures:   len(res.Failures),
	}
}

// Save writes the report as indented JSON, creating parent directories as
// needed.
func (r Report) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
