package database

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	_ "modernc.org/sqlite"

	"github.com/osse101/TavernSim_Go/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), PoolOptions{ConnString: "postgres://%zz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db, DialectSQLite))
	require.NoError(t, Migrate(ctx, db, DialectSQLite), "second run is a no-op")

	_, err = db.ExecContext(ctx, `INSERT INTO save_blobs (save_key, data) VALUES ('k', x'7b7d')`)
	assert.NoError(t, err)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	err := Migrate(context.Background(), nil, Dialect("oracle"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnsupportedDialect)
}

func TestMigrate_Postgres(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), PoolOptions{ConnString: testDBConnString, MaxConns: 3})
	require.NoError(t, err)
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, DialectPostgres))
	require.NoError(t, Migrate(ctx, db, DialectPostgres))

	var exists bool
	require.NoError(t, pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'save_blobs')`).Scan(&exists))
	assert.True(t, exists)
}

// TestPool_ConnectionsReleased verifies connections are returned to the pool
func TestPool_ConnectionsReleased(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), PoolOptions{ConnString: testDBConnString, MaxConns: 5, MaxIdle: time.Minute})
	require.NoError(t, err)
	defer pool.Close()

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err, "Failed to acquire connection on iteration %d", i)

		var result int
		assert.NoError(t, conn.QueryRow(ctx, "SELECT 1").Scan(&result))
		assert.Equal(t, 1, result)

		conn.Release()
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
}

// TestPool_ConcurrentAccess tests thread safety
func TestPool_ConcurrentAccess(t *testing.T) {
	requireDB(t)

	pool, err := NewPool(context.Background(), PoolOptions{ConnString: testDBConnString, MaxConns: 10, MaxLifetime: 5 * time.Minute})
	require.NoError(t, err)
	defer pool.Close()

	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			ctx := context.Background()
			conn, err := pool.Acquire(ctx)
			if err != nil {
				t.Errorf("Worker %d failed to acquire connection: %v", id, err)
				return
			}
			defer conn.Release()

			var result int
			if err := conn.QueryRow(ctx, "SELECT $1::int", id).Scan(&result); err != nil {
				t.Errorf("Worker %d query failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns(), "All connections should be released")
	checker.Check(2)
}
