package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/config"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/save"
	"github.com/osse101/TavernSim_Go/internal/sim"
	"github.com/osse101/TavernSim_Go/internal/testing/leaktest"
)

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog(&config.Config{})
	require.NoError(t, err)
	assert.NotNil(t, cat)

	_, err = LoadCatalog(&config.Config{CatalogPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"memory", config.Config{SaveBackend: config.BackendMemory}, false},
		{"file", config.Config{SaveBackend: config.BackendFile, SaveDir: filepath.Join(dir, "saves")}, false},
		{"sqlite", config.Config{SaveBackend: config.BackendSQLite, SQLitePath: filepath.Join(dir, "tavern.db")}, false},
		{"unknown", config.Config{SaveBackend: "floppy"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, closeStore, err := OpenStore(ctx, &tt.cfg)
			require.NotNil(t, closeStore)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer func() { assert.NoError(t, closeStore()) }()

			require.NoError(t, store.Ping(ctx))
			require.NoError(t, store.Put(ctx, save.StorageKey, []byte(`{}`)))
		})
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, base.Add(time.Duration(i)*time.Hour).Format(LogFileTimestampFormat))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFileRetentionCount+1)
	_, err = os.Stat(filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, base.Format(LogFileTimestampFormat))))
	assert.True(t, os.IsNotExist(err), "oldest session log is removed")
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := &config.Config{LogDir: filepath.Join(t.TempDir(), "logs"), LogLevel: "info", LogFormat: "text", ServiceName: "tavern-test", Environment: "test"}
	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	defer f.Close()

	slog.Info("hello from the tavern")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from the tavern")
	assert.Contains(t, string(data), "service=tavern-test")
}

func TestStartSimulation_StopsCleanly(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	world, err := sim.New(context.Background(), sim.Options{
		Catalog:          catalog.MustDefault(),
		Store:            save.NewMemoryStore(),
		AutoSaveInterval: time.Hour,
	})
	require.NoError(t, err)

	cfg := &config.Config{
		TickInterval:         5 * time.Millisecond,
		MinutesPerTick:       1,
		PatienceTickInterval: 5 * time.Millisecond,
		CustomerSpawnEvery:   5 * time.Millisecond,
		AutoSaveEnabled:      true,
	}
	start, err := world.Snapshot(context.Background())
	require.NoError(t, err)

	s := StartSimulation(cfg, world)
	hub := StartNotificationHub(world)
	client := hub.Register([]string{domain.EventTypeTimeAdvanced})
	assert.True(t, world.AutoSaver().Running())

	require.Eventually(t, func() bool {
		data, err := world.Snapshot(context.Background())
		return err == nil && data.Time.Now() > start.Time.Now()
	}, time.Second, 5*time.Millisecond)

	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, domain.EventTypeTimeAdvanced, evt.Type)
	case <-time.After(time.Second):
		t.Fatal("hub received no clock notification")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	GracefulShutdown(ctx, ShutdownComponents{Hub: hub, Simulation: s, World: world})

	assert.False(t, world.AutoSaver().Running())
	checker.Check(0)
}
