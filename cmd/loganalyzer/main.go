package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"go-log-analyzer/internal/config"
	"go-log-analyzer/internal/logging"
	"go-log-analyzer/internal/pipeline"
	"go-log-analyzer/internal/report"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML config file")
		dir        = flag.String("dir", "", "directory of log files")
		patterns   = flag.String("patterns", "", "comma-separated glob patterns, e.g. '*.log,*.txt'")
		chunkSize  = flag.Int("chunk", 0, "lines per chunk")
		workers    = flag.Int("workers", 0, "worker pool size")
		bucketBy   = flag.String("bucket", "", "error bucket granularity: hour or day")
		topN       = flag.Int("top", 0, "size of the source ranking")
		output     = flag.String("out", "", "report output path")
		noMonitor  = flag.Bool("no-monitor", false, "disable resource monitoring")
		sequential = flag.Bool("sequential", false, "run without the worker pool (debug)")
		dev        = flag.Bool("dev", false, "human-readable logs")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags set explicitly override file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.LogDir = *dir
		case "patterns":
			cfg.Patterns = strings.Split(*patterns, ",")
		case "chunk":
			cfg.ChunkSize = *chunkSize
		case "workers":
			cfg.Workers = *workers
		case "bucket":
			cfg.BucketBy = *bucketBy
		case "top":
			cfg.TopN = *topN
		case "out":
			cfg.Output = *output
		case "no-monitor":
			cfg.Monitor = !*noMonitor
		case "dev":
			cfg.Development = *dev
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pl := pipeline.New(cfg, log)

	var (
		res    *pipeline.Result
		runErr error
	)
	if *sequential {
		res, runErr = pl.RunSequential()
	} else {
		res, runErr = pl.Run()
	}
	if runErr != nil {
		log.Error("run finished with errors", zap.Error(runErr))
	}

	rep := report.Build(res, cfg)
	if err := rep.Save(cfg.Output); err != nil {
		log.Error("could not write report", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("🏁 Analyzed %d lines in %d chunks across %d files (%.2fs)\n",
		rep.LinesTotal, rep.Chunks, rep.Files, rep.DurationSeconds)
	fmt.Printf("📊 Levels: INFO=%d WARNING=%d ERROR=%d\n",
		rep.ByLevel["INFO"], rep.ByLevel["WARNING"], rep.ByLevel["ERROR"])
	for i, e := range rep.TopSources {
		fmt.Printf("   %2d. %-16s %d events\n", i+1, e.Source, e.Count)
	}
	fmt.Printf("💾 Report written to %s\n", cfg.Output)
}
