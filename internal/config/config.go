// Package config holds the analyzer configuration surface. Precedence is
// defaults < YAML config file < LOGAN_* environment variables; the CLI layers
// its flags on top of whatever Load returns.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Time-bucket granularities for the errors-by-bucket map.
const (
	BucketByHour = "hour"
	BucketByDay  = "day"
)

// Config is the full run configuration.
type Config struct {
	// LogDir is the directory scanned for log files.
	LogDir string `yaml:"log_dir" envconfig:"LOG_DIR"`
	// Patterns are glob patterns matched against file names in LogDir.
	Patterns []string `yaml:"patterns" envconfig:"PATTERNS"`
	// ChunkSize is the number of lines per chunk. Must be positive.
	ChunkSize int `yaml:"chunk_size" envconfig:"CHUNK_SIZE"`
	// Workers is the worker pool size. Must be positive.
	Workers int `yaml:"workers" envconfig:"WORKERS"`
	// QueueDepth bounds the task queue; the producer blocks when it is full.
	QueueDepth int `yaml:"queue_depth" envconfig:"QUEUE_DEPTH"`
	// Monitor enables the resource sampling loop during the run.
	Monitor bool `yaml:"monitor" envconfig:"MONITOR"`
	// MonitorInterval is the sampling period.
	MonitorInterval time.Duration `yaml:"monitor_interval" envconfig:"MONITOR_INTERVAL"`
	// BucketBy selects hour or day resolution for error buckets.
	BucketBy string `yaml:"bucket_by" envconfig:"BUCKET_BY"`
	// TopN is the size of the source ranking in the report.
	TopN int `yaml:"top_n" envconfig:"TOP_N"`
	// Output is the report file path for CLI runs.
	Output string `yaml:"output" envconfig:"OUTPUT"`
	// StopOnFault makes a worker exit on a fatal fault instead of moving on
	// to the next task.
	StopOnFault bool `yaml:"stop_on_fault" envconfig:"STOP_ON_FAULT"`
	// JoinTimeout bounds how long shutdown waits for workers and the monitor.
	JoinTimeout time.Duration `yaml:"join_timeout" envconfig:"JOIN_TIMEOUT"`
	// Development switches the logger to human-readable output.
	Development bool `yaml:"development" envconfig:"DEVELOPMENT"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		LogDir:          "./logs",
		Patterns:        []string{"*.log"},
		ChunkSize:       1000,
		Workers:         4,
		QueueDepth:      16,
		Monitor:         true,
		MonitorInterval: time.Second,
		BucketBy:        BucketByHour,
		TopN:            10,
		Output:          "./info/report.json",
		JoinTimeout:     10 * time.Second,
	}
}

// Load builds a Config from defaults, an optional YAML file, and LOGAN_*
// environment variables, in that order.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("logan", &cfg); err != nil {
		return cfg, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

// Validate fails fast on configuration errors before any pipeline work
// starts.
func (c Config) Validate() error {
	info, err := os.Stat(c.LogDir)
	if err != nil {
		return fmt.Errorf("log directory %s: %w", c.LogDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("log directory %s is not a directory", c.LogDir)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk size must be >= 1, got %d", c.ChunkSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.QueueDepth < 1 {
		return fmt.Errorf("queue depth must be >= 1, got %d", c.QueueDepth)
	}
	if len(c.Patterns) == 0 {
		return fmt.Errorf("at least one filename pattern is required")
	}
	if c.BucketBy != BucketByHour && c.BucketBy != BucketByDay {
		return fmt.Errorf("bucket_by must be %q or %q, got %q", BucketByHour, BucketByDay, c.BucketBy)
	}
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be >= 1, got %d", c.TopN)
	}
	return nil
}
