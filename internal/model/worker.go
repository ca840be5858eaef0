package model

import "sync/atomic"

// WorkerState tracks where a worker is in its Idle → Processing → Idle → …
// → Terminated lifecycle. Terminated is reached only by consuming a stop
// task.
type WorkerState int32

const (
	WorkerIdle WorkerState = iota
	WorkerProcessing
	WorkerTerminated
)

func (s WorkerState) String() string {
	switch s {
	case WorkerIdle:
		return "idle"
	case WorkerProcessing:
		return "processing"
	case WorkerTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// WorkerHandle identifies a running worker for the monitor and for shutdown
// bookkeeping. It carries progress counters but no analysis data. All fields
// are updated by the worker and read by the monitor, so access is atomic.
type WorkerHandle struct {
	ID int

	state      atomic.Int32
	chunksDone atomic.Int64
	linesDone  atomic.Int64
}

// NewWorkerHandle returns a handle in the Idle state.
func NewWorkerHandle(id int) *WorkerHandle {
	return &WorkerHandle{ID: id}
}

// SetState records a lifecycle transition.
func (h *WorkerHandle) SetState(s WorkerState) { h.state.Store(int32(s)) }

// State returns the last recorded lifecycle state.
func (h *WorkerHandle) State() WorkerState { return WorkerState(h.state.Load()) }

// AddChunk records one processed chunk of n lines.
func (h *WorkerHandle) AddChunk(n int) {
	h.chunksDone.Add(1)
	h.linesDone.Add(int64(n))
}

// ChunksDone returns the number of chunks this worker has completed.
func (h *WorkerHandle) ChunksDone() int64 { return h.chunksDone.Load() }

// LinesDone returns the number of lines this worker has processed.
func (h *WorkerHandle) LinesDone() int64 { return h.linesDone.Load() }
