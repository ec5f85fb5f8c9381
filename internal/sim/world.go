// Package sim composes the game components into one world and serialises
// every mutation through a single lock. The components themselves are not
// safe for concurrent use; jobs and HTTP handlers reach them only via Do.
package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/clock"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/eventlog"
	"github.com/osse101/TavernSim_Go/internal/gamestate"
	"github.com/osse101/TavernSim_Go/internal/logger"
	"github.com/osse101/TavernSim_Go/internal/metrics"
	"github.com/osse101/TavernSim_Go/internal/save"
	"github.com/osse101/TavernSim_Go/internal/tavern"
	"github.com/osse101/TavernSim_Go/internal/utils"
	"github.com/osse101/TavernSim_Go/internal/worker"
	"github.com/osse101/TavernSim_Go/internal/worldevent"
)

// Options configure a World. Catalog and Store are required.
type Options struct {
	Catalog          *catalog.Catalog
	Store            save.Store
	Slots            int
	Clock            clock.Clock
	Seed             int64 // 0 uses the shared random source
	Rand             func() float64
	JournalSize      int
	AutoSaveInterval time.Duration
	Metrics          bool
}

// Tx is the set of components a Do callback may use. It must not escape fn.
type Tx struct {
	State  *gamestate.State
	Events *worldevent.Manager
	Tavern *tavern.Tavern
	Saves  *save.Manager
}

// World owns one running game
type World struct {
	mu sync.Mutex
	tx Tx

	bus      *event.MemoryBus
	journal  eventlog.Service
	autoSave *worker.AutoSaveWorker

	// fractional minutes left over from speed-scaled ticks
	carry float64
}

// New builds a fresh game and wires its listeners
func New(ctx context.Context, opts Options) (*World, error) {
	if opts.Catalog == nil || opts.Store == nil {
		return nil, fmt.Errorf("%w: catalog and store are required", domain.ErrInvalidInput)
	}
	if opts.JournalSize <= 0 {
		opts.JournalSize = DefaultJournalSize
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	rnd := opts.Rand
	if rnd == nil && opts.Seed != 0 {
		seed := uint64(opts.Seed)
		rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)).Float64 //nolint:gosec // Game logic randomness
	}
	if rnd == nil {
		rnd = utils.RandomFloat
	}

	bus := event.NewMemoryBus()
	state := gamestate.New(opts.Catalog, bus)
	events := worldevent.NewManager(state, opts.Catalog, bus, rnd)
	floor := tavern.New(state, events, bus, rnd)

	saveOpts := []save.Option{save.WithClock(opts.Clock)}
	if opts.Slots > 0 {
		saveOpts = append(saveOpts, save.WithSlots(opts.Slots))
	}
	saves := save.NewManager(opts.Store, state, bus, saveOpts...)

	repo, err := eventlog.NewMemoryRepository(opts.JournalSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}
	journal := eventlog.NewService(repo, opts.Clock)

	w := &World{
		tx:      Tx{State: state, Events: events, Tavern: floor, Saves: saves},
		bus:     bus,
		journal: journal,
	}
	w.autoSave = worker.NewAutoSaveWorker(w, opts.AutoSaveInterval)

	events.Subscribe(bus)
	event.On(bus, domain.EventTypeLoadCompleted, func(ctx context.Context, p event.SavePayloadV1) error {
		if p.Success {
			floor.Reset()
			logger.FromContext(ctx).Info(LogMsgFloorCleared, "slot", p.Slot)
		}
		return nil
	})
	if err := journal.Subscribe(bus); err != nil {
		return nil, fmt.Errorf("failed to subscribe journal: %w", err)
	}
	if opts.Metrics {
		if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	logger.FromContext(ctx).Info(LogMsgWorldReady, "slots", saves.Slots(), "journal", opts.JournalSize)
	return w, nil
}

// Do runs fn while holding the world lock
func (w *World) Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, w.tx)
}

// Bus returns the notification bus. Subscribing is safe at any time;
// publishing from outside Do is not.
func (w *World) Bus() event.Bus { return w.bus }

// Journal returns the notification journal. It is safe for concurrent use.
func (w *World) Journal() eventlog.Service { return w.journal }

// Ping checks the save store
func (w *World) Ping(ctx context.Context) error {
	return w.tx.Saves.Ping(ctx)
}

// Snapshot returns a deep copy of the game data
func (w *World) Snapshot(ctx context.Context) (domain.GameData, error) {
	var data domain.GameData
	err := w.Do(ctx, func(_ context.Context, tx Tx) error {
		data = tx.State.Snapshot()
		return nil
	})
	return data, err
}

// TickClock advances the clock by baseMinutes scaled by the clock speed.
// Fractions carry over to the next tick. Nothing happens while paused.
func (w *World) TickClock(ctx context.Context, baseMinutes int) (int, error) {
	var applied int
	err := w.Do(ctx, func(ctx context.Context, tx Tx) error {
		clk := tx.State.Clock()
		if clk.Paused {
			return nil
		}
		total := w.carry + float64(baseMinutes)*clk.Speed
		applied = int(total)
		w.carry = total - float64(applied)
		tx.State.AdvanceTime(ctx, applied)
		return nil
	})
	return applied, err
}

// TickPatience decays waiting customers' patience. Nothing happens while paused.
func (w *World) TickPatience(ctx context.Context, elapsedSeconds float64) ([]string, error) {
	var left []string
	err := w.Do(ctx, func(ctx context.Context, tx Tx) error {
		if tx.State.Clock().Paused {
			return nil
		}
		left = tx.Tavern.TickCustomers(ctx, elapsedSeconds)
		return nil
	})
	return left, err
}

// TrySpawn rolls for a new customer while the clock runs
func (w *World) TrySpawn(ctx context.Context) (bool, error) {
	var spawned bool
	err := w.Do(ctx, func(ctx context.Context, tx Tx) error {
		if tx.State.Clock().Paused {
			return nil
		}
		var err error
		spawned, err = tx.Tavern.TrySpawn(ctx)
		return err
	})
	return spawned, err
}

// AutoSave writes the auto save slot if the game's settings allow it
func (w *World) AutoSave(ctx context.Context) error {
	return w.Do(ctx, func(ctx context.Context, tx Tx) error {
		return tx.Saves.AutoSave(ctx)
	})
}

// AutoSaver exposes the auto save worker
func (w *World) AutoSaver() *worker.AutoSaveWorker { return w.autoSave }

// SetAutoSave updates the game setting and starts or stops the worker to match
func (w *World) SetAutoSave(ctx context.Context, enabled bool) error {
	err := w.Do(ctx, func(_ context.Context, tx Tx) error {
		tx.State.SetAutoSave(enabled)
		return nil
	})
	if err != nil {
		return err
	}
	if enabled {
		w.autoSave.Start()
	} else {
		w.autoSave.Stop()
	}
	logger.FromContext(ctx).Info(LogMsgAutoSaveToggled, "enabled", enabled)
	return nil
}

// Shutdown stops auto save and writes one last auto save
func (w *World) Shutdown(ctx context.Context) error {
	if err := w.autoSave.Shutdown(ctx); err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	log.Info(LogMsgFinalAutoSave)
	if err := w.AutoSave(ctx); err != nil {
		log.Error(LogMsgFinalAutoSaveFail, "error", err)
		return err
	}
	return nil
}
