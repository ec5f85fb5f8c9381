package world_bench

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/save"
	"github.com/osse101/TavernSim_Go/internal/sim"
)

var errRoundTrip = errors.New("save round trip failed")

func newWorld(b *testing.B) *sim.World {
	b.Helper()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	world, err := sim.New(context.Background(), sim.Options{
		Catalog:          catalog.MustDefault(),
		Store:            save.NewMemoryStore(),
		Seed:             42,
		AutoSaveInterval: time.Hour,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = world.Shutdown(context.Background()) })
	return world
}

// BenchmarkTickClock measures one wall-clock tick: time advance, day
// rollover listeners and world event expiry.
func BenchmarkTickClock(b *testing.B) {
	world := newWorld(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := world.TickClock(ctx, 15); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkServeLoop measures a craft, spawn and serve cycle
func BenchmarkServeLoop(b *testing.B) {
	world := newWorld(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := world.Do(ctx, func(ctx context.Context, tx sim.Tx) error {
			tx.State.AddMaterial(ctx, "herb", 2)
			tx.State.AddMaterial(ctx, "water", 1)
			if _, err := tx.Tavern.CraftPotion(ctx, "healing_potion", 1); err != nil {
				return err
			}
			c, err := tx.Tavern.SpawnCustomer(ctx)
			if err != nil {
				tx.Tavern.Reset()
				return nil
			}
			_, _ = tx.Tavern.AutoServe(ctx, c.ID)
			return nil
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSaveLoad measures a full envelope write and restore
func BenchmarkSaveLoad(b *testing.B) {
	world := newWorld(b)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err := world.Do(ctx, func(ctx context.Context, tx sim.Tx) error {
			if !tx.Saves.Save(ctx, 0, "bench") || !tx.Saves.Load(ctx, 0) {
				return errRoundTrip
			}
			return nil
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}
