package chunk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-log-analyzer/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListFilesMatchesAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.log", "x\n")
	writeFile(t, dir, "a.log", "x\n")
	writeFile(t, dir, "notes.txt", "x\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.log"), 0o755))

	files, err := ListFiles(dir, []string{"*.log"})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.log", filepath.Base(files[0]))
	assert.Equal(t, "b.log", filepath.Base(files[1]))
}

func TestListFilesMultiplePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.log", "x\n")
	writeFile(t, dir, "b.txt", "x\n")

	files, err := ListFiles(dir, []string{"*.log", "*.txt"})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestListFilesMissingDir(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "nope"), []string{"*.log"})
	assert.Error(t, err)
}

func TestWalkChunksWithTrailingPartial(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.log", "l0\nl1\nl2\nl3\nl4\n")

	p := NewProducer(dir, []string{"*.log"}, 2, zap.NewNop())

	var chunks []model.LogChunk
	stats, err := p.Walk(func(c model.LogChunk) { chunks = append(chunks, c) })
	require.NoError(t, err)

	require.Len(t, chunks, 3)
	assert.Equal(t, []string{"l0", "l1"}, chunks[0].Lines)
	assert.Equal(t, []string{"l2", "l3"}, chunks[1].Lines)
	assert.Equal(t, []string{"l4"}, chunks[2].Lines)
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
	}

	assert.Equal(t, Stats{Files: 1, Chunks: 3, Lines: 5}, stats)
}

func TestWalkEmptyFileProducesNoChunks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.log", "")

	p := NewProducer(dir, []string{"*.log"}, 10, zap.NewNop())

	calls := 0
	stats, err := p.Walk(func(model.LogChunk) { calls++ })
	require.NoError(t, err)
	assert.Zero(t, calls)
	assert.Equal(t, Stats{Files: 1}, stats)
}

func TestWalkReplacesInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.log", "ok line\n\xff\xfe broken\n")

	p := NewProducer(dir, []string{"*.log"}, 10, zap.NewNop())

	var lines []string
	_, err := p.Walk(func(c model.LogChunk) { lines = append(lines, c.Lines...) })
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.True(t, strings.Contains(lines[1], "�"))
}

func TestRunSendsOneStopPerWorker(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.log", "l0\nl1\nl2\n")

	const workers = 3
	tasks := make(chan model.Task, 16)

	p := NewProducer(dir, []string{"*.log"}, 2, zap.NewNop())
	stats, err := p.Run(tasks, workers)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Lines)

	var work, stop int
	for i := 0; i < stats.Chunks+workers; i++ {
		task := <-tasks
		if task.Kind == model.TaskStop {
			stop++
		} else {
			work++
		}
	}
	assert.Equal(t, stats.Chunks, work)
	assert.Equal(t, workers, stop)
}

func TestCountLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.log", "1\n2\n3\n")

	n, err := CountLines(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
