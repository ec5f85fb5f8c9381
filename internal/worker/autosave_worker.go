package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/TavernSim_Go/internal/logger"
)

// AutoSaver writes the auto save slot
type AutoSaver interface {
	AutoSave(ctx context.Context) error
}

// AutoSaveWorker saves on a fixed wall-clock interval until stopped.
// Each run reschedules the next one, so a slow save never overlaps itself.
type AutoSaveWorker struct {
	saver    AutoSaver
	interval time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	gen     uint64
	wg      sync.WaitGroup
}

// NewAutoSaveWorker creates a stopped worker. A non-positive interval uses DefaultAutoSaveInterval.
func NewAutoSaveWorker(saver AutoSaver, interval time.Duration) *AutoSaveWorker {
	if interval <= 0 {
		interval = DefaultAutoSaveInterval
	}
	return &AutoSaveWorker{saver: saver, interval: interval}
}

// Start schedules the first save. Starting a running worker is a no-op.
func (w *AutoSaveWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	w.scheduleLocked()
	logger.FromContext(context.Background()).Info(LogMsgAutoSaveStarted, "interval", w.interval)
}

// Stop cancels the pending save. A save already in flight finishes.
func (w *AutoSaveWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	w.gen++
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	logger.FromContext(context.Background()).Info(LogMsgAutoSaveStopped)
}

// Restart stops the worker and starts it again, optionally with a new interval.
func (w *AutoSaveWorker) Restart(interval time.Duration) {
	w.Stop()
	if interval > 0 {
		w.mu.Lock()
		w.interval = interval
		w.mu.Unlock()
	}
	w.Start()
}

// Running reports whether a save is scheduled
func (w *AutoSaveWorker) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Interval returns the current save interval
func (w *AutoSaveWorker) Interval() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.interval
}

// scheduleLocked arms the timer for the current generation. A timer from an
// earlier Start that fires after a Restart sees a stale generation and exits.
func (w *AutoSaveWorker) scheduleLocked() {
	gen := w.gen
	w.timer = time.AfterFunc(w.interval, func() { w.fire(gen) })
}

func (w *AutoSaveWorker) current(gen uint64) bool {
	return w.running && w.gen == gen
}

func (w *AutoSaveWorker) fire(gen uint64) {
	w.mu.Lock()
	if !w.current(gen) {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Debug(LogMsgAutoSaveRunning)
	if err := w.saver.AutoSave(ctx); err != nil {
		log.Error(LogMsgAutoSaveFailed, "error", err)
	}

	w.mu.Lock()
	if w.current(gen) {
		w.scheduleLocked()
	}
	w.mu.Unlock()
}

// Shutdown stops the worker and waits for an in-flight save to complete
func (w *AutoSaveWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAutoSaveShutdown)

	w.Stop()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgAutoSaveShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgAutoSaveShutdownTimeout)
		return ctx.Err()
	}
}
