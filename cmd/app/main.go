package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/TavernSim_Go/internal/bootstrap"
	"github.com/osse101/TavernSim_Go/internal/config"
	"github.com/osse101/TavernSim_Go/internal/server"
	"github.com/osse101/TavernSim_Go/internal/sim"
)

const shutdownTimeout = 10 * time.Second

// @title TavernSim API
// @version 1.0
// @description HTTP interface to the tavern simulation: clock, customers, crafting, staff, world events and save slots.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	world, err := sim.New(ctx, sim.Options{
		Catalog:          cat,
		Store:            store,
		Slots:            cfg.SaveSlots,
		Seed:             cfg.RandomSeed,
		JournalSize:      cfg.JournalSize,
		AutoSaveInterval: cfg.AutoSaveInterval,
		Metrics:          true,
	})
	if err != nil {
		_ = closeStore()
		return err
	}

	simulation := bootstrap.StartSimulation(cfg, world)
	hub := bootstrap.StartNotificationHub(world)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		Hub:            hub,
	}, world)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Hub:        hub,
		Server:     srv,
		Simulation: simulation,
		World:      world,
		CloseStore: closeStore,
	})

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
