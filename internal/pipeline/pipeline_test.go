package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-log-analyzer/internal/config"
	"go-log-analyzer/internal/loggen"
)

func testConfig(dir string) config.Config {
	cfg := config.Default()
	cfg.LogDir = dir
	cfg.ChunkSize = 2
	cfg.Workers = 2
	cfg.Monitor = false
	cfg.JoinTimeout = 5 * time.Second
	return cfg
}

func writeLog(t *testing.T, dir, name string, lines int) {
	t.Helper()
	content := ""
	for i := 0; i < lines; i++ {
		content += fmt.Sprintf("2025-10-08 09:%02d:00,000 [INFO] 192.168.1.10 line %d\n", i%60, i)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunCountsEveryLineExactlyOnce(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "a.log", 2)
	writeLog(t, dir, "b.log", 3)
	writeLog(t, dir, "c.log", 0)

	res, err := New(testConfig(dir), zap.NewNop()).Run()
	require.NoError(t, err)

	assert.Equal(t, 5, res.Accumulator.LinesTotal)
	assert.Equal(t, 5, res.Producer.Lines)
	assert.Equal(t, 3, res.Producer.Files)
	assert.Empty(t, res.Failures)
}

func TestRunMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, loggen.WriteFile(filepath.Join(dir, "gen.log"),
		loggen.Options{Lines: 500, Seed: 42}))

	cfg := testConfig(dir)
	cfg.ChunkSize = 37
	cfg.Workers = 4

	parallel, err := New(cfg, zap.NewNop()).Run()
	require.NoError(t, err)

	sequential, err := New(cfg, zap.NewNop()).RunSequential()
	require.NoError(t, err)

	assert.Equal(t, sequential.Accumulator, parallel.Accumulator)
	assert.Equal(t, 500, parallel.Accumulator.LinesTotal)
}

func TestChunkSizeDoesNotAffectTotals(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, loggen.WriteFile(filepath.Join(dir, "gen.log"),
		loggen.Options{Lines: 200, Seed: 7}))

	var accs []interface{}
	for _, size := range []int{1, 3, 50, 1000} {
		cfg := testConfig(dir)
		cfg.ChunkSize = size

		res, err := New(cfg, zap.NewNop()).Run()
		require.NoError(t, err)
		accs = append(accs, res.Accumulator)
	}

	for i := 1; i < len(accs); i++ {
		assert.Equal(t, accs[0], accs[i], "chunk size variant %d", i)
	}
}

func TestRunOnEmptyDirectoryYieldsEmptyAccumulator(t *testing.T) {
	res, err := New(testConfig(t.TempDir()), zap.NewNop()).Run()
	require.NoError(t, err)

	assert.Zero(t, res.Accumulator.LinesTotal)
	assert.Empty(t, res.Accumulator.ByLevel)
}

func TestRunWithMonitorStillTerminates(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "a.log", 20)

	cfg := testConfig(dir)
	cfg.Monitor = true
	cfg.MonitorInterval = 10 * time.Millisecond

	done := make(chan struct{})
	go func() {
		defer close(done)
		res, err := New(cfg, zap.NewNop()).Run()
		assert.NoError(t, err)
		assert.Equal(t, 20, res.Accumulator.LinesTotal)
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("pipeline with monitor did not terminate")
	}
}

func TestRunAggregatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	content := "" +
		"2025-10-08 09:00:00,000 [ERROR] 10.0.0.1 boom\n" +
		"2025-10-08 09:30:00,000 [ERROR] 10.0.0.1 boom\n" +
		"2025-10-08 10:00:00,000 [WARN] 10.0.0.2 careful\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte(content), 0o644))

	res, err := New(testConfig(dir), zap.NewNop()).Run()
	require.NoError(t, err)

	acc := res.Accumulator
	assert.Equal(t, map[string]int{"ERROR": 2, "WARNING": 1}, acc.ByLevel)
	assert.Equal(t, map[string]int{"2025-10-08 09": 2}, acc.ErrorsByBucket)
	assert.Equal(t, map[string]int{"10.0.0.1": 2, "10.0.0.2": 1}, acc.BySource)
}
