// Package sqlite stores save blobs in a single-file SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osse101/TavernSim_Go/internal/database"
	sqlitegen "github.com/osse101/TavernSim_Go/internal/database/generated/sqlite"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

const (
	driverName  = "sqlite"
	pingTimeout = 10 * time.Second

	LogMsgOpened = "SQLite save store opened"
)

// SaveStore implements save.Store over database/sql with the modernc driver
type SaveStore struct {
	db *sql.DB
	q  *sqlitegen.Queries
}

// Open creates the database file if needed and applies migrations
func Open(ctx context.Context, path string) (*SaveStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One writer; sqlite serialises anyway and this avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgOpened, "path", path)
	return &SaveStore{db: db, q: sqlitegen.New(db)}, nil
}

func (s *SaveStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.q.GetSaveBlob(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read save %s: %w", key, err)
	}
	return data, nil
}

func (s *SaveStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.q.UpsertSaveBlob(ctx, sqlitegen.UpsertSaveBlobParams{SaveKey: key, Data: data}); err != nil {
		return fmt.Errorf("write save %s: %w", key, err)
	}
	return nil
}

func (s *SaveStore) Delete(ctx context.Context, key string) error {
	if err := s.q.DeleteSaveBlob(ctx, key); err != nil {
		return fmt.Errorf("delete save %s: %w", key, err)
	}
	return nil
}

func (s *SaveStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database handle
func (s *SaveStore) Close() error {
	return s.db.Close()
}
