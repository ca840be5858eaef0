package model

// LogChunk is a bounded, ordered batch of raw log lines from a single file.
// Chunks are immutable once produced: the producer hands ownership to exactly
// one worker and never touches the slice again.
type LogChunk struct {
	// File is the path of the file the lines came from.
	File string
	// Index is the zero-based position of this chunk within its file.
	Index int
	// Lines holds the raw text lines, trailing newlines stripped.
	Lines []string
}

// TaskKind discriminates the two task variants carried on the task queue.
type TaskKind int

const (
	// TaskWork carries a chunk to summarize.
	TaskWork TaskKind = iota
	// TaskStop tells a worker to terminate. Exactly one is sent per worker
	// after all work tasks have been enqueued.
	TaskStop
)

// Task is the unit of transport on the task queue: either a chunk of work or
// a stop signal.
type Task struct {
	Kind  TaskKind
	Chunk LogChunk
}

// WorkTask wraps a chunk for dispatch.
func WorkTask(c LogChunk) Task {
	return Task{Kind: TaskWork, Chunk: c}
}

// StopTask returns the termination variant.
func StopTask() Task {
	return Task{Kind: TaskStop}
}
