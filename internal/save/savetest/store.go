// Package savetest holds the behaviour every save.Store implementation must share.
package savetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/save"
)

// RunStoreTests exercises a fresh store returned by newStore.
func RunStoreTests(t *testing.T, newStore func(t *testing.T) save.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := newStore(t).Get(ctx, "nothing-here")
		assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, save.StorageKey, []byte(`{"version":"1.0.0"}`)))

		got, err := s.Get(ctx, save.StorageKey)
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":"1.0.0"}`, string(got))
	})

	t.Run("put overwrites", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "k", []byte(`{"n":1}`)))
		require.NoError(t, s.Put(ctx, "k", []byte(`{"n":2}`)))

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.JSONEq(t, `{"n":2}`, string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Put(ctx, "a", []byte(`"a"`)))
		require.NoError(t, s.Put(ctx, "b", []byte(`"b"`)))
		require.NoError(t, s.Delete(ctx, "a"))

		_, err := s.Get(ctx, "a")
		assert.ErrorIs(t, err, domain.ErrStoreNotFound)
		got, err := s.Get(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, `"b"`, string(got))
	})

	t.Run("delete missing key", func(t *testing.T) {
		assert.NoError(t, newStore(t).Delete(ctx, "never-written"))
	})

	t.Run("returned bytes are a copy", func(t *testing.T) {
		s := newStore(t)
		data := []byte(`"original"`)
		require.NoError(t, s.Put(ctx, "k", data))
		data[1] = 'X'

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		got[1] = 'Y'

		again, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, `"original"`, string(again))
	})
}
