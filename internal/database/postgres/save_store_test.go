package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/database"
	"github.com/osse101/TavernSim_Go/internal/gamestate"
	"github.com/osse101/TavernSim_Go/internal/save"
	"github.com/osse101/TavernSim_Go/internal/save/savetest"
)

func newTestStore(t *testing.T) *SaveStore {
	t.Helper()
	requireDB(t)

	pool, err := database.NewPool(context.Background(), database.PoolOptions{ConnString: testDBConnString, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := NewSaveStore(pool)
	require.NoError(t, store.Migrate(context.Background()))

	_, err = pool.Exec(context.Background(), "TRUNCATE save_blobs")
	require.NoError(t, err)
	return store
}

func TestSaveStore_Integration(t *testing.T) {
	savetest.RunStoreTests(t, func(t *testing.T) save.Store {
		return newTestStore(t)
	})
}

func TestSaveStore_MigrateTwice(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestSaveStore_RoundTripThroughManager(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	state := gamestate.New(catalog.MustDefault(), nil)
	state.AddGold(ctx, 123)
	want := state.Snapshot()

	m := save.NewManager(store, state, nil)
	require.True(t, m.Save(ctx, 0, "postgres"))

	state.AddGold(ctx, 1000)
	require.True(t, m.Load(ctx, 0))
	assert.Equal(t, want, state.Snapshot())
}
