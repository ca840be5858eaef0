package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-log-analyzer/internal/loggen"
)

func main() {
	var (
		out     = flag.String("out", "./logs/system_logs.log", "output file path")
		lines   = flag.Int("lines", 1000, "number of log records")
		sources = flag.Int("sources", 20, "size of the source address pool")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "loggen: %v\n", err)
		os.Exit(1)
	}

	opts := loggen.Options{Lines: *lines, Sources: *sources, Seed: *seed}
	if err := loggen.WriteFile(*out, opts); err != nil {
		fmt.Fprintf(os.Stderr, "loggen: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Wrote %d records to %s\n", *lines, *out)
}
