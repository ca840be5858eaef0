// @title Log Analyzer API
// @version 1.0
// @description API for running parallel log analysis and fetching reports.
// @host localhost:8080
// @BasePath /api/v1
package main

import (
	"flag"
	"fmt"
	"os"

	"go-log-analyzer/internal/api"
	"go-log-analyzer/internal/api/handler"
	"go-log-analyzer/internal/config"
	"go-log-analyzer/internal/logging"
	"go-log-analyzer/internal/store"
	"go-log-analyzer/pkg/router"

	_ "go-log-analyzer/docs"
)

func main() {
	var (
		addr      = flag.String("addr", ":8080", "listen address")
		dbPath    = flag.String("db", "analyzer.db", "sqlite database path")
		outputDir = flag.String("output-dir", "./info", "base directory for run reports")
	)
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := store.InitDB(*dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		os.Exit(1)
	}

	handler.Init(log, *outputDir)

	r := router.New()
	api.RegisterRoutes(r)
	r.Start(*addr)
}
