package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TavernSim_Go/internal/logger"
)

// PoolOptions size and age the connections of a save store pool
type PoolOptions struct {
	ConnString  string
	MaxConns    int
	MaxIdle     time.Duration
	MaxLifetime time.Duration
}

// NewPool opens a PostgreSQL pool and pings it before returning
func NewPool(ctx context.Context, opts PoolOptions) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if opts.MaxConns > 0 {
		config.MaxConns = int32(min(opts.MaxConns, math.MaxInt32))
	}
	config.MinConns = min(DefaultMinConnections, config.MaxConns)
	if opts.MaxLifetime > 0 {
		config.MaxConnLifetime = opts.MaxLifetime
	}
	if opts.MaxIdle > 0 {
		config.MaxConnIdleTime = opts.MaxIdle
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", config.ConnConfig.Host,
		"database", config.ConnConfig.Database,
		"max_conns", config.MaxConns)
	return pool, nil
}
