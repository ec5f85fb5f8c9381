package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/config"
	"github.com/osse101/TavernSim_Go/internal/database"
	"github.com/osse101/TavernSim_Go/internal/database/postgres"
	"github.com/osse101/TavernSim_Go/internal/database/sqlite"
	"github.com/osse101/TavernSim_Go/internal/filestore"
	"github.com/osse101/TavernSim_Go/internal/save"
)

// LoadCatalog reads CATALOG_PATH when set, otherwise the embedded default
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}

	source := cfg.CatalogPath
	if source == "" {
		source = "embedded"
	}
	slog.Info(LogMsgCatalogLoaded, "source", source)
	return cat, nil
}

// OpenStore opens the save backend named by SAVE_BACKEND. The returned
// close function releases any connection and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config) (save.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.SaveBackend {
	case config.BackendMemory, "":
		slog.Info(LogMsgStoreOpened, "backend", config.BackendMemory)
		return save.NewMemoryStore(), noop, nil

	case config.BackendFile:
		store, err := filestore.New(cfg.SaveDir)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgOpenStore, err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.SaveBackend, "dir", cfg.SaveDir)
		return store, noop, nil

	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgOpenStore, err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.SaveBackend, "path", cfg.SQLitePath)
		return store, store.Close, nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, database.PoolOptions{
			ConnString:  cfg.GetDBConnString(),
			MaxConns:    cfg.DBMaxConns,
			MaxIdle:     DBMaxIdleTime,
			MaxLifetime: DBMaxLifetime,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgOpenStore, err)
		}
		store := postgres.NewSaveStore(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("%s: %w", ErrMsgMigratePostgres, err)
		}
		slog.Info(LogMsgStoreOpened, "backend", cfg.SaveBackend, "host", cfg.DBHost, "db", cfg.DBName)
		return store, func() error { pool.Close(); return nil }, nil
	}

	return nil, noop, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.SaveBackend)
}
