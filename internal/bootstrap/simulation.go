package bootstrap

import (
	"log/slog"

	"github.com/osse101/TavernSim_Go/internal/config"
	"github.com/osse101/TavernSim_Go/internal/eventlog"
	"github.com/osse101/TavernSim_Go/internal/scheduler"
	"github.com/osse101/TavernSim_Go/internal/sim"
	"github.com/osse101/TavernSim_Go/internal/sse"
	"github.com/osse101/TavernSim_Go/internal/worker"
)

// Simulation is the wall-clock loop driving a world
type Simulation struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartSimulation schedules the clock, patience, spawn and journal cleanup
// jobs and starts the auto save worker when the config enables it.
func StartSimulation(cfg *config.Config, world *sim.World) *Simulation {
	pool := worker.NewPool(WorkerCount, JobQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.ScheduleNamed(JobNameClockTick, cfg.TickInterval, worker.NewClockTickJob(world, cfg.MinutesPerTick))
	sched.ScheduleNamed(JobNamePatienceTick, cfg.PatienceTickInterval, worker.NewPatienceTickJob(world, cfg.PatienceTickInterval))
	sched.ScheduleNamed(JobNameCustomerSpawn, cfg.CustomerSpawnEvery, worker.NewSpawnJob(world))
	sched.ScheduleNamed(JobNameJournalCleanup, JournalCleanupInterval, eventlog.NewCleanupJob(world.Journal(), JournalRetention))
	sched.Start()

	slog.Info(LogMsgSimulationStarted,
		"tick_interval", cfg.TickInterval,
		"minutes_per_tick", cfg.MinutesPerTick,
		"spawn_every", cfg.CustomerSpawnEvery)

	if cfg.AutoSaveEnabled {
		world.AutoSaver().Start()
		slog.Info(LogMsgAutoSaveStarted, "interval", world.AutoSaver().Interval())
	}

	return &Simulation{Pool: pool, Scheduler: sched}
}

// Stop halts the scheduler before the pool so no tick lands on a stopped queue
func (s *Simulation) Stop() {
	s.Scheduler.Stop()
	s.Pool.Stop()
}

// StartNotificationHub starts the SSE hub and feeds it every world notification
func StartNotificationHub(world *sim.World) *sse.Hub {
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub).Subscribe(world.Bus())
	return hub
}
