package pipeline

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"go-log-analyzer/internal/analyze"
	"go-log-analyzer/internal/model"
)

// Pool owns a fixed number of summarize workers. Each worker loops
// independently: dequeue task, summarize, enqueue result, until it consumes a
// stop task. No two workers ever share a chunk or a partial result.
type Pool struct {
	bucketBy    string
	stopOnFault bool
	log         *zap.Logger

	handles []*model.WorkerHandle
	wg      sync.WaitGroup
}

// NewPool prepares size workers. Start must be called before any task is
// produced so the bounded task queue always has consumers.
func NewPool(size int, bucketBy string, stopOnFault bool, log *zap.Logger) *Pool {
	p := &Pool{
		bucketBy:    bucketBy,
		stopOnFault: stopOnFault,
		log:         log,
		handles:     make([]*model.WorkerHandle, size),
	}
	for i := range p.handles {
		p.handles[i] = model.NewWorkerHandle(i)
	}
	return p
}

// Handles exposes the worker handles for the monitor. They carry no analysis
// data.
func (p *Pool) Handles() []*model.WorkerHandle {
	return p.handles
}

// Start launches all workers.
func (p *Pool) Start(tasks <-chan model.Task, results chan<- model.ChunkResult) {
	for _, h := range p.handles {
		p.wg.Add(1)
		go p.worker(h, tasks, results)
	}
}

// WaitTimeout waits for every worker to terminate, giving up after d. It
// returns false when at least one worker missed the deadline; such a worker
// is not force-killed, only reported.
func (p *Pool) WaitTimeout(d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(d):
		for _, h := range p.handles {
			if h.State() != model.WorkerTerminated {
				p.log.Error("worker did not terminate within join timeout",
					zap.Int("worker", h.ID),
					zap.Stringer("state", h.State()))
			}
		}
		return false
	}
}

func (p *Pool) worker(h *model.WorkerHandle, tasks <-chan model.Task, results chan<- model.ChunkResult) {
	defer p.wg.Done()
	defer h.SetState(model.WorkerTerminated)

	p.log.Debug("worker started", zap.Int("worker", h.ID))
	for {
		task, ok := <-tasks
		if !ok || task.Kind == model.TaskStop {
			p.log.Debug("worker received stop", zap.Int("worker", h.ID))
			return
		}

		h.SetState(model.WorkerProcessing)
		res := p.processChunk(h, task.Chunk)
		if !p.publish(results, res) && p.stopOnFault {
			return
		}
		h.SetState(model.WorkerIdle)

		if !res.OK() && p.stopOnFault {
			p.log.Error("worker stopping on fault", zap.Int("worker", h.ID), zap.String("error", res.Err))
			return
		}
	}
}

// processChunk summarizes one chunk and wraps the outcome with provenance.
// Per-line parse failures are already absorbed inside Summarize; anything
// that still escapes (an unexpected fault) is recovered here and converted
// into an error-tagged result so the pool keeps running.
func (p *Pool) processChunk(h *model.WorkerHandle, c model.LogChunk) (res model.ChunkResult) {
	res = model.ChunkResult{File: c.File, Index: c.Index, WorkerID: h.ID}

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Sprintf("summarize %s chunk %d: %v", c.File, c.Index, r)
			p.log.Error("chunk processing fault",
				zap.Int("worker", h.ID),
				zap.String("file", c.File),
				zap.Int("chunk", c.Index),
				zap.Any("panic", r))
		}
	}()

	res.Partial = analyze.Summarize(c.Lines, p.bucketBy)
	h.AddChunk(len(c.Lines))
	return res
}

// publish enqueues a result, absorbing a failed enqueue (closed queue) so a
// worker never dies on the result path without logging locally first.
func (p *Pool) publish(results chan<- model.ChunkResult, res model.ChunkResult) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			p.log.Error("could not publish chunk result",
				zap.Int("worker", res.WorkerID),
				zap.String("file", res.File),
				zap.Int("chunk", res.Index),
				zap.Any("cause", r))
		}
	}()

	results <- res
	return true
}
