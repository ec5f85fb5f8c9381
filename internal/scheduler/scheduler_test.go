package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/TavernSim_Go/internal/testing/leaktest"
	"github.com/osse101/TavernSim_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)
	sched.Start()

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_NothingRunsBeforeStart(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.ScheduleNamed("tick", 5*time.Millisecond, job)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), job.RunCount.Load())
	sched.Stop()
}

func TestScheduler_ScheduleAfterStart(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	sched.Start()
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(5*time.Millisecond, job)

	assert.Eventually(t, func() bool { return job.RunCount.Load() >= 1 }, time.Second, time.Millisecond)
}

func TestScheduler_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := worker.NewPool(1, 1)
		pool.Start()

		sched := New(pool)
		for i := 0; i < 3; i++ {
			sched.Schedule(time.Millisecond, &MockJob{Done: make(chan struct{})})
		}
		sched.Start()
		time.Sleep(10 * time.Millisecond)

		sched.Stop()
		sched.Stop()
		pool.Stop()
	})
}
