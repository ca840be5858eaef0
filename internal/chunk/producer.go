package chunk

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"

	"go-log-analyzer/internal/model"
)

// maxLineBytes bounds a single log line; longer lines abort that file's read.
const maxLineBytes = 1024 * 1024

// Producer scans a directory and emits LogChunk values in a reproducible
// order: files sorted by name, chunk index ascending within each file.
type Producer struct {
	dir       string
	patterns  []string
	chunkSize int
	log       *zap.Logger
}

// Stats summarizes what a producer pass read and dispatched.
type Stats struct {
	Files        int `json:"files"`
	FilesSkipped int `json:"files_skipped"`
	Chunks       int `json:"chunks"`
	Lines        int `json:"lines"`
}

// NewProducer returns a producer over dir. chunkSize must already be
// validated as positive.
func NewProducer(dir string, patterns []string, chunkSize int, log *zap.Logger) *Producer {
	return &Producer{dir: dir, patterns: patterns, chunkSize: chunkSize, log: log}
}

// Run walks every matching file and publishes its chunks as work tasks, then
// publishes exactly one stop task per worker. Sending blocks when the bounded
// task queue is full, so producer throughput follows worker consumption.
func (p *Producer) Run(tasks chan<- model.Task, workers int) (Stats, error) {
	stats, err := p.Walk(func(c model.LogChunk) {
		tasks <- model.WorkTask(c)
	})

	for i := 0; i < workers; i++ {
		tasks <- model.StopTask()
	}
	return stats, err
}

// Walk streams every chunk to fn in producer order. A file that cannot be
// read is logged and skipped; it never aborts the walk for other files.
func (p *Producer) Walk(fn func(model.LogChunk)) (Stats, error) {
	var stats Stats

	files, err := ListFiles(p.dir, p.patterns)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		p.log.Warn("no log files matched", zap.String("dir", p.dir), zap.Strings("patterns", p.patterns))
	}

	for _, path := range files {
		chunks, lines, err := p.walkFile(path, fn)
		stats.Chunks += chunks
		stats.Lines += lines
		if err != nil {
			stats.FilesSkipped++
			p.log.Warn("skipping unreadable log file",
				zap.String("file", path),
				zap.Int("lines_dispatched", lines),
				zap.Error(err))
			continue
		}
		stats.Files++
		p.log.Debug("file chunked",
			zap.String("file", path),
			zap.Int("chunks", chunks),
			zap.Int("lines", lines))
	}
	return stats, nil
}

// walkFile reads one file as a line stream, grouping lines into chunks of the
// configured size; a non-empty final group becomes a shorter trailing chunk.
// Invalid UTF-8 bytes are replaced, never fatal, so a bad byte cannot abort
// ingestion of the rest of the file.
func (p *Producer) walkFile(path string, fn func(model.LogChunk)) (chunks, lines int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	batch := make([]string, 0, p.chunkSize)
	index := 0
	flush := func() {
		fn(model.LogChunk{File: path, Index: index, Lines: batch})
		chunks++
		index++
		batch = make([]string, 0, p.chunkSize)
	}

	for sc.Scan() {
		batch = append(batch, strings.ToValidUTF8(sc.Text(), "�"))
		lines++
		if len(batch) >= p.chunkSize {
			flush()
		}
	}
	if err := sc.Err(); err != nil {
		// Mid-read failure: completed chunks stay dispatched, the partial
		// batch is dropped with the file.
		return chunks, lines - len(batch), err
	}
	if len(batch) > 0 {
		flush()
	}
	return chunks, lines, nil
}
