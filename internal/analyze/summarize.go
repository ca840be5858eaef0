// Package analyze computes per-chunk statistics and folds them into a single
// accumulator. Summarize is pure and is used identically inside pool workers
// and in sequential debug runs.
package analyze

import (
	"go-log-analyzer/internal/config"
	"go-log-analyzer/internal/logparse"
	"go-log-analyzer/internal/model"
)

// FallbackBucket groups ERROR events whose timestamp cannot be parsed. An
// ERROR is always counted in exactly one bucket.
const FallbackBucket = "unknown"

// Summarize computes the partial result for one chunk. Every line contributes
// to LinesTotal; a line the field parser rejects contributes nothing else.
// bucketBy is config.BucketByHour or config.BucketByDay.
func Summarize(lines []string, bucketBy string) model.PartialResult {
	part := model.NewPartialResult()

	for _, line := range lines {
		part.LinesTotal++

		fields, ok := logparse.ParseLine(line)
		if !ok {
			continue
		}

		level, known := logparse.NormalizeLevel(fields.Level)
		if known {
			part.ByLevel[level]++
		}

		if fields.Source != "" {
			part.BySource[fields.Source]++
		}

		if known && level == logparse.LevelError {
			part.ErrorsByBucket[bucketKey(fields.Timestamp, bucketBy)]++
		}
	}
	return part
}

// bucketKey renders the time bucket for an ERROR event, falling back to
// FallbackBucket when the timestamp does not parse.
func bucketKey(timestamp, bucketBy string) string {
	t, err := logparse.ParseTimestamp(timestamp)
	if err != nil {
		return FallbackBucket
	}
	if bucketBy == config.BucketByDay {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15")
}
