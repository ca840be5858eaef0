// Package monitor samples resource usage alongside a running pipeline. It is
// observation only: it reads worker handles but never touches the data flow.
package monitor

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"go.uber.org/zap"

	"go-log-analyzer/internal/model"
)

// Monitor periodically logs system CPU/memory, this process's resident
// memory, and per-worker progress. It stops cooperatively: the orchestrator
// closes the stop channel and the loop observes it at the next interval
// boundary.
type Monitor struct {
	interval time.Duration
	log      *zap.Logger
	done     chan struct{}
}

// New returns a monitor that samples every interval.
func New(interval time.Duration, log *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = time.Second
	}
	return &Monitor{interval: interval, log: log, done: make(chan struct{})}
}

// Start launches the sampling loop. handles are read-only from here;
// terminated workers are reported as such, never treated as an error.
func (m *Monitor) Start(stop <-chan struct{}, handles []*model.WorkerHandle) {
	go func() {
		defer close(m.done)

		proc, _ := process.NewProcess(int32(os.Getpid()))
		// Prime the CPU delta so the first tick reports a real value.
		_, _ = cpu.Percent(0, false)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				m.log.Debug("monitor stopped")
				return
			case <-ticker.C:
				m.sample(proc, handles)
			}
		}
	}()
}

// Wait blocks until the sampling loop has exited or timeout elapses, so the
// monitor can never hold up pipeline shutdown indefinitely.
func (m *Monitor) Wait(timeout time.Duration) bool {
	select {
	case <-m.done:
		return true
	case <-time.After(timeout):
		m.log.Warn("monitor did not stop within timeout", zap.Duration("timeout", timeout))
		return false
	}
}

func (m *Monitor) sample(proc *process.Process, handles []*model.WorkerHandle) {
	fields := make([]zap.Field, 0, len(handles)+3)

	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		fields = append(fields, zap.Float64("cpu_pct", pct[0]))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		fields = append(fields, zap.Float64("mem_pct", vm.UsedPercent))
	}
	if proc != nil {
		if info, err := proc.MemoryInfo(); err == nil {
			fields = append(fields, zap.Float64("rss_mb", float64(info.RSS)/(1024*1024)))
		}
	}

	for _, h := range handles {
		state := h.State()
		if state == model.WorkerTerminated {
			fields = append(fields, zap.String(fmt.Sprintf("worker_%d", h.ID), "terminated"))
			continue
		}
		fields = append(fields, zap.String(fmt.Sprintf("worker_%d", h.ID),
			fmt.Sprintf("%s chunks=%d lines=%d", state, h.ChunksDone(), h.LinesDone())))
	}

	m.log.Info("resource sample", fields...)
}
