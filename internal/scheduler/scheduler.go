// Package scheduler feeds interval jobs into a worker pool.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TavernSim_Go/internal/logger"
	"github.com/osse101/TavernSim_Go/internal/worker"
)

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobSkipped   = "Worker queue full, skipping tick"
)

type entry struct {
	name     string
	interval time.Duration
	job      worker.Job
}

// Scheduler manages scheduled jobs. Jobs registered before Start begin
// ticking on Start; jobs registered afterwards begin immediately.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup

	mu      sync.Mutex
	entries []entry
	started bool
	stopped bool
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A tick that finds the
// worker queue full is skipped rather than blocking the other schedules.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.ScheduleNamed(fmt.Sprintf("%T", job), interval, job)
}

// ScheduleNamed is Schedule with a name used in logs
func (s *Scheduler) ScheduleNamed(name string, interval time.Duration, job worker.Job) {
	e := entry{name: name, interval: interval, job: job}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.entries = append(s.entries, e)
	if s.started {
		s.run(e)
	}
}

// Start begins ticking every registered job
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true
	for _, e := range s.entries {
		s.run(e)
	}
}

func (s *Scheduler) run(e entry) {
	logger.FromContext(context.Background()).Info(LogMsgJobScheduled, "job", e.name, "interval", e.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(e.job) {
					logger.FromContext(context.Background()).Warn(LogMsgJobSkipped, "job", e.name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.quit)
	s.mu.Unlock()

	s.wg.Wait()
}
