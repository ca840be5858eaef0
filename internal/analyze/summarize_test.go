package analyze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-log-analyzer/internal/config"
)

func TestSummarizeCountsLevelsAndBuckets(t *testing.T) {
	lines := make([]string, 0, 12)
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("2025-10-08 08:00:%02d,000 [INFO] 192.168.1.10 ok", i))
	}
	lines = append(lines, "2025-10-08 08:30:00,000 [WARN] 192.168.1.11 watch out")
	lines = append(lines, "2025-10-08 09:00:00,000 [ERROR] 10.0.0.1 boom")

	part := Summarize(lines, config.BucketByHour)

	assert.Equal(t, 12, part.LinesTotal)
	assert.Equal(t, map[string]int{"INFO": 10, "WARNING": 1, "ERROR": 1}, part.ByLevel)
	assert.Equal(t, map[string]int{"2025-10-08 09": 1}, part.ErrorsByBucket)
	assert.Equal(t, 10, part.BySource["192.168.1.10"])
}

func TestSummarizeMalformedLinesOnlyCountTowardsTotal(t *testing.T) {
	lines := []string{"", "garbage", "still not a log line", "a b"}

	part := Summarize(lines, config.BucketByHour)

	assert.Equal(t, len(lines), part.LinesTotal)
	assert.Empty(t, part.ByLevel)
	assert.Empty(t, part.BySource)
	assert.Empty(t, part.ErrorsByBucket)
}

func TestSummarizeErrorWithBadTimestampUsesFallbackBucket(t *testing.T) {
	lines := []string{"not-a-date whenever [ERROR] 10.0.0.9 exploded"}

	part := Summarize(lines, config.BucketByHour)

	require.Equal(t, 1, part.ByLevel["ERROR"])
	assert.Equal(t, map[string]int{FallbackBucket: 1}, part.ErrorsByBucket)
}

func TestSummarizeDayGranularity(t *testing.T) {
	lines := []string{
		"2025-10-08 09:00:00,000 [ERROR] 10.0.0.1 boom",
		"2025-10-08 17:45:00,000 [ERROR] 10.0.0.1 boom again",
		"2025-10-09 01:00:00,000 [ERROR] 10.0.0.1 and again",
	}

	part := Summarize(lines, config.BucketByDay)

	assert.Equal(t, map[string]int{"2025-10-08": 2, "2025-10-09": 1}, part.ErrorsByBucket)
}

func TestSummarizeOnlyErrorsAreBucketed(t *testing.T) {
	lines := []string{
		"2025-10-08 09:00:00,000 [INFO] 10.0.0.1 fine",
		"2025-10-08 09:00:01,000 [WARNING] 10.0.0.1 hmm",
	}

	part := Summarize(lines, config.BucketByHour)
	assert.Empty(t, part.ErrorsByBucket)
}
