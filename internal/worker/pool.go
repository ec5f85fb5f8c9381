package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TavernSim_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobQueue   chan Job
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
	jobTimeout time.Duration
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		quit:       make(chan struct{}),
		jobTimeout: DefaultJobTimeout,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// worker is the worker loop
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(id, job)
		case <-p.quit:
			return
		}
	}
}

// run processes one job with a timeout. A panicking job does not take the worker down.
func (p *Pool) run(id int, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), p.jobTimeout)
	defer cancel()
	log := logger.FromContext(ctx).With("worker", id, "job", fmt.Sprintf("%T", job))

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanic, "panic", r)
		}
	}()

	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full
func (p *Pool) Enqueue(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.quit:
	}
}

// TryEnqueue adds a job without blocking and reports whether it was queued
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop stops the workers and waits for them to finish. Jobs still queued are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
	logger.FromContext(context.Background()).Debug(LogMsgPoolStopped, "workers", p.workers)
}
