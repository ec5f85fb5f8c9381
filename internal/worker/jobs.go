package worker

import (
	"context"
	"time"

	"github.com/osse101/TavernSim_Go/internal/logger"
)

// ClockAdvancer moves the game clock by a base number of minutes, scaled by
// the clock speed, and returns the minutes actually applied (0 while paused).
type ClockAdvancer interface {
	TickClock(ctx context.Context, baseMinutes int) (int, error)
}

// PatienceTicker decays waiting customers' patience and returns who left.
type PatienceTicker interface {
	TickPatience(ctx context.Context, elapsedSeconds float64) ([]string, error)
}

// CustomerSpawner rolls for a new arrival.
type CustomerSpawner interface {
	TrySpawn(ctx context.Context) (bool, error)
}

// ClockTickJob advances the game clock once per run
type ClockTickJob struct {
	target         ClockAdvancer
	minutesPerTick int
}

// NewClockTickJob creates a clock tick job
func NewClockTickJob(target ClockAdvancer, minutesPerTick int) *ClockTickJob {
	return &ClockTickJob{target: target, minutesPerTick: minutesPerTick}
}

// Process advances the clock
func (j *ClockTickJob) Process(ctx context.Context) error {
	applied, err := j.target.TickClock(ctx, j.minutesPerTick)
	if err != nil {
		return err
	}
	if applied > 0 {
		logger.FromContext(ctx).Debug(LogMsgClockTicked, "minutes", applied)
	}
	return nil
}

// PatienceTickJob decays customer patience by the wall time between runs
type PatienceTickJob struct {
	target  PatienceTicker
	elapsed time.Duration
}

// NewPatienceTickJob creates a patience tick job that assumes elapsed passes between runs
func NewPatienceTickJob(target PatienceTicker, elapsed time.Duration) *PatienceTickJob {
	return &PatienceTickJob{target: target, elapsed: elapsed}
}

// Process decays patience
func (j *PatienceTickJob) Process(ctx context.Context) error {
	left, err := j.target.TickPatience(ctx, j.elapsed.Seconds())
	if err != nil {
		return err
	}
	if len(left) > 0 {
		logger.FromContext(ctx).Info(LogMsgCustomersLeft, "customers", left)
	}
	return nil
}

// SpawnJob lets a customer in when the spawn roll succeeds
type SpawnJob struct {
	target CustomerSpawner
}

// NewSpawnJob creates a spawn job
func NewSpawnJob(target CustomerSpawner) *SpawnJob {
	return &SpawnJob{target: target}
}

// Process rolls for a customer
func (j *SpawnJob) Process(ctx context.Context) error {
	spawned, err := j.target.TrySpawn(ctx)
	if err != nil {
		return err
	}
	if spawned {
		logger.FromContext(ctx).Debug(LogMsgCustomerSpawned)
	}
	return nil
}
