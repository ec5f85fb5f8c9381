package save_test

import (
	"testing"

	"github.com/osse101/TavernSim_Go/internal/save"
	"github.com/osse101/TavernSim_Go/internal/save/savetest"
)

func TestMemoryStore(t *testing.T) {
	savetest.RunStoreTests(t, func(t *testing.T) save.Store {
		return save.NewMemoryStore()
	})
}
