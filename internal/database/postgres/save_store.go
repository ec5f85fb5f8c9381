package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/TavernSim_Go/internal/database"
	pggen "github.com/osse101/TavernSim_Go/internal/database/generated/postgres"
	"github.com/osse101/TavernSim_Go/internal/domain"
)

// SaveStore implements save.Store on a pgx pool
type SaveStore struct {
	pool *pgxpool.Pool
	q    *pggen.Queries
}

// NewSaveStore wraps an existing pool. Call Migrate before first use.
func NewSaveStore(pool *pgxpool.Pool) *SaveStore {
	return &SaveStore{pool: pool, q: pggen.New(pool)}
}

// Migrate applies the embedded goose migrations through a database/sql view of the pool
func (s *SaveStore) Migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()
	return database.Migrate(ctx, db, database.DialectPostgres)
}

func (s *SaveStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.q.GetSaveBlob(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadSave, key, err)
	}
	return data, nil
}

func (s *SaveStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.q.UpsertSaveBlob(ctx, pggen.UpsertSaveBlobParams{SaveKey: key, Data: data}); err != nil {
		return fmt.Errorf(ErrFmtWriteSave, key, err)
	}
	return nil
}

func (s *SaveStore) Delete(ctx context.Context, key string) error {
	if err := s.q.DeleteSaveBlob(ctx, key); err != nil {
		return fmt.Errorf(ErrFmtDeleteSave, key, err)
	}
	return nil
}

func (s *SaveStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
