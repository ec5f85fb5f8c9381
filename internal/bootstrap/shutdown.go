package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/TavernSim_Go/internal/server"
	"github.com/osse101/TavernSim_Go/internal/sim"
	"github.com/osse101/TavernSim_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Hub        *sse.Hub
	Server     *server.Server
	Simulation *Simulation
	World      *sim.World
	CloseStore func() error
}

// GracefulShutdown stops components in order:
// 1. Notification hub (open streams end, otherwise the server waits on them)
// 2. HTTP server (stop accepting new requests)
// 3. Simulation loop (no more ticks)
// 4. World (stop the auto save worker and save once more)
// 5. Save store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Simulation != nil {
		slog.Info(LogMsgStoppingSimulation)
		components.Simulation.Stop()
	}

	if components.World != nil {
		if err := components.World.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorldShutdownFailed, "error", err)
		}
	}

	if components.CloseStore != nil {
		if err := components.CloseStore(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
