package save

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/clock"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/gamestate"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	ctx      context.Context
	state    *gamestate.State
	store    *MemoryStore
	clock    *clock.FakeClock
	manager  *Manager
	payloads map[string][]event.SavePayloadV1
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bus := event.NewMemoryBus()
	f := &fixture{
		ctx:      context.Background(),
		state:    gamestate.New(catalog.MustDefault(), bus),
		store:    NewMemoryStore(),
		clock:    clock.NewFakeClock(epoch),
		payloads: make(map[string][]event.SavePayloadV1),
	}
	for _, et := range []string{
		domain.EventTypeSaveCompleted,
		domain.EventTypeLoadCompleted,
		domain.EventTypeSaveDeleted,
		domain.EventTypeSaveImported,
	} {
		et := et
		event.On(bus, event.Type(et), func(_ context.Context, p event.SavePayloadV1) error {
			f.payloads[et] = append(f.payloads[et], p)
			return nil
		})
	}
	f.manager = NewManager(f.store, f.state, bus, WithClock(f.clock))
	return f
}

func (f *fixture) last(t *testing.T, eventType string) event.SavePayloadV1 {
	t.Helper()
	got := f.payloads[eventType]
	require.NotEmpty(t, got, "no %s notification", eventType)
	return got[len(got)-1]
}

func (f *fixture) envelope(t *testing.T) map[string]interface{} {
	t.Helper()
	blob, err := f.store.Get(f.ctx, StorageKey)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(blob, &out))
	return out
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	f := newFixture(t)

	f.state.AddGold(f.ctx, 250)
	f.state.AddMaterial(f.ctx, "crystal", 3)
	f.state.DiscoverRecipe(f.ctx, "stamina_tonic")
	f.state.AdvanceTime(f.ctx, 90)
	_, err := f.state.HireStaff(f.ctx, "bartender")
	require.NoError(t, err)
	saved := f.state.Snapshot()

	require.True(t, f.manager.Save(f.ctx, 2, "before the festival"))
	assert.Equal(t, event.SavePayloadV1{Slot: 2, Success: true}, f.last(t, domain.EventTypeSaveCompleted))

	f.state.AddGold(f.ctx, 10000)
	f.state.ConsumeMaterial(f.ctx, "crystal", 3)
	f.state.AdvanceTime(f.ctx, 3000)

	require.True(t, f.manager.Load(f.ctx, 2))
	assert.Equal(t, saved, f.state.Snapshot())
	assert.Equal(t, event.SavePayloadV1{Slot: 2, Success: true}, f.last(t, domain.EventTypeLoadCompleted))
}

func TestSave_EnvelopeShape(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.manager.Save(f.ctx, 1, "named"))

	env := f.envelope(t)
	assert.Equal(t, Version, env["version"])
	assert.Equal(t, float64(epoch.UnixMilli()), env["lastSaved"])
	assert.Equal(t, float64(1), env["currentSlot"])

	slots := env["slots"].([]interface{})
	require.Len(t, slots, DefaultSlots)
	assert.Nil(t, slots[0])

	slot := slots[1].(map[string]interface{})
	assert.ElementsMatch(t, []string{"slot", "timestamp", "description", "gameData", "version"}, keys(slot))
	assert.Equal(t, "named", slot["description"])
	assert.Equal(t, Version, slot["version"])
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestSave_GeneratedDescription(t *testing.T) {
	f := newFixture(t)
	f.state.AddGold(f.ctx, 1000)

	require.True(t, f.manager.Save(f.ctx, 0, ""))

	infos, err := f.manager.List(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Day 1 - 1,500 gold - 50 reputation - 2026-03-01 12:00", infos[0].Description)
}

func TestSave_SlotOutOfRange(t *testing.T) {
	f := newFixture(t)

	for _, slot := range []int{-1, DefaultSlots} {
		assert.False(t, f.manager.Save(f.ctx, slot, ""))
		got := f.last(t, domain.EventTypeSaveCompleted)
		assert.False(t, got.Success)
		assert.Contains(t, got.Error, domain.ErrMsgSlotOutOfRange)
	}

	_, err := f.store.Get(f.ctx, StorageKey)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

type failingStore struct {
	*MemoryStore
	putErr error
}

func (s *failingStore) Put(context.Context, string, []byte) error { return s.putErr }

func TestSave_StoreFailureIsReported(t *testing.T) {
	f := newFixture(t)
	f.manager.store = &failingStore{MemoryStore: f.store, putErr: errors.New("disk full")}

	assert.False(t, f.manager.Save(f.ctx, 0, ""))
	got := f.last(t, domain.EventTypeSaveCompleted)
	assert.False(t, got.Success)
	assert.Contains(t, got.Error, "disk full")
}

func TestLoad_EmptySlotLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.state.AddGold(f.ctx, 42)
	before := f.state.Snapshot()

	assert.False(t, f.manager.Load(f.ctx, 3))
	assert.Equal(t, before, f.state.Snapshot())

	got := f.last(t, domain.EventTypeLoadCompleted)
	assert.False(t, got.Success)
	assert.Contains(t, got.Error, domain.ErrMsgSlotEmpty)
}

func TestLoad_MalformedSlotRejectedBeforeRestore(t *testing.T) {
	f := newFixture(t)
	broken := `{"version":"1.0.0","lastSaved":1,"currentSlot":0,"slots":[{"slot":0,"timestamp":1,"version":"1.0.0","gameData":{"player":{"gold":9999}}}]}`
	require.NoError(t, f.store.Put(f.ctx, StorageKey, []byte(broken)))

	assert.False(t, f.manager.Load(f.ctx, 0))
	assert.Equal(t, 500, f.state.Gold())
	assert.Contains(t, f.last(t, domain.EventTypeLoadCompleted).Error, domain.ErrMsgMalformedSave)
}

func TestLoad_CorruptEnvelope(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Put(f.ctx, StorageKey, []byte("{not json")))

	assert.False(t, f.manager.Load(f.ctx, 0))
	assert.False(t, f.manager.Save(f.ctx, 0, ""))
	assert.Contains(t, f.last(t, domain.EventTypeSaveCompleted).Error, domain.ErrMsgMalformedSave)
}

func TestLoad_VersionMismatchStillLoads(t *testing.T) {
	f := newFixture(t)
	f.state.AddGold(f.ctx, 100)
	require.True(t, f.manager.Save(f.ctx, 0, ""))

	exported, err := f.manager.Export(f.ctx, 0)
	require.NoError(t, err)

	var slot map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(exported), &slot))
	slot["version"] = "0.9.0"
	old, err := json.Marshal(slot)
	require.NoError(t, err)

	require.True(t, f.manager.Import(f.ctx, 4, string(old)))
	f.state.AddGold(f.ctx, 1)

	assert.True(t, f.manager.Load(f.ctx, 4))
	assert.Equal(t, 600, f.state.Gold())
}

func TestQuickSaveQuickLoad(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.manager.Save(f.ctx, 3, ""))
	assert.Equal(t, 3, f.manager.CurrentSlot(f.ctx))

	f.state.AddGold(f.ctx, 77)
	require.True(t, f.manager.QuickSave(f.ctx))
	assert.Equal(t, 3, f.last(t, domain.EventTypeSaveCompleted).Slot)

	f.state.AddGold(f.ctx, 1000)
	require.True(t, f.manager.QuickLoad(f.ctx))
	assert.Equal(t, 577, f.state.Gold())
}

func TestLoad_UpdatesCurrentSlot(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.manager.Save(f.ctx, 1, ""))
	require.True(t, f.manager.Save(f.ctx, 2, ""))
	assert.Equal(t, 2, f.manager.CurrentSlot(f.ctx))

	require.True(t, f.manager.Load(f.ctx, 1))
	assert.Equal(t, 1, f.manager.CurrentSlot(f.ctx))
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.manager.Save(f.ctx, 1, ""))

	assert.True(t, f.manager.Delete(f.ctx, 1))
	assert.Equal(t, event.SavePayloadV1{Slot: 1, Success: true}, f.last(t, domain.EventTypeSaveDeleted))
	assert.False(t, f.manager.Load(f.ctx, 1))

	assert.False(t, f.manager.Delete(f.ctx, 9))
	assert.False(t, f.last(t, domain.EventTypeSaveDeleted).Success)
}

func TestExportImport(t *testing.T) {
	f := newFixture(t)
	f.state.AddGold(f.ctx, 300)
	require.True(t, f.manager.Save(f.ctx, 0, "portable"))

	exported, err := f.manager.Export(f.ctx, 0)
	require.NoError(t, err)
	assert.NoError(t, f.manager.ValidateSaveData([]byte(exported)))

	require.True(t, f.manager.Import(f.ctx, 3, exported))
	assert.Equal(t, event.SavePayloadV1{Slot: 3, Success: true}, f.last(t, domain.EventTypeSaveImported))

	infos, err := f.manager.List(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, infos[3].Slot)
	assert.Equal(t, "portable", infos[3].Description)
	assert.Equal(t, 800, infos[3].Gold)

	_, err = f.manager.Export(f.ctx, 2)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
	_, err = f.manager.Export(f.ctx, 7)
	assert.ErrorIs(t, err, domain.ErrSlotOutOfRange)
}

func TestImport_RejectsMissingFieldsWithoutWriting(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "definitely not json"},
		{"missing gameData", `{"timestamp": 1700000000000, "description": "x"}`},
		{"missing timestamp", `{"gameData": {"player": {"level": 1, "experience": 0, "gold": 1, "reputation": 1}, "tavern": {"level": 1, "capacity": 1}, "inventory": {"materials": {}, "potions": {}}, "recipes": {"discovered": []}, "time": {"day": 1, "hour": 0, "minute": 0}, "statistics": {}}}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			assert.False(t, f.manager.Import(f.ctx, 0, tt.payload))
			got := f.last(t, domain.EventTypeSaveImported)
			assert.False(t, got.Success)
			assert.Contains(t, got.Error, domain.ErrMsgMalformedSave)

			_, err := f.store.Get(f.ctx, StorageKey)
			assert.ErrorIs(t, err, domain.ErrStoreNotFound)
		})
	}
}

func TestHasAutoSave(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.manager.HasAutoSave(f.ctx))

	require.True(t, f.manager.Save(f.ctx, 0, ""))
	assert.True(t, f.manager.HasAutoSave(f.ctx))

	f.clock.Advance(23 * time.Hour)
	assert.True(t, f.manager.HasAutoSave(f.ctx))

	f.clock.Advance(2 * time.Hour)
	assert.False(t, f.manager.HasAutoSave(f.ctx))
}

func TestCleanupOldSaves(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.manager.Save(f.ctx, 0, "ancient"))

	f.clock.Advance(20 * 24 * time.Hour)
	require.True(t, f.manager.Save(f.ctx, 1, "recent"))

	f.clock.Advance(11 * 24 * time.Hour)
	cleared, err := f.manager.CleanupOldSaves(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)

	infos, err := f.manager.List(f.ctx)
	require.NoError(t, err)
	assert.True(t, infos[0].Empty)
	assert.False(t, infos[1].Empty)

	cleared, err = f.manager.CleanupOldSaves(f.ctx)
	require.NoError(t, err)
	assert.Zero(t, cleared)
}

func TestAutoSave_HonoursSetting(t *testing.T) {
	f := newFixture(t)

	f.state.SetAutoSave(false)
	require.NoError(t, f.manager.AutoSave(f.ctx))
	assert.Empty(t, f.payloads[domain.EventTypeSaveCompleted])

	f.state.SetAutoSave(true)
	require.NoError(t, f.manager.AutoSave(f.ctx))
	assert.True(t, f.last(t, domain.EventTypeSaveCompleted).Success)
	assert.True(t, f.manager.HasAutoSave(f.ctx))
}

func TestList_FreshStore(t *testing.T) {
	f := newFixture(t)
	m := NewManager(f.store, f.state, nil, WithSlots(3))

	infos, err := m.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	for i, info := range infos {
		assert.Equal(t, domain.SlotInfo{Slot: i, Empty: true}, info)
	}
}

func TestEnvelopePaddedToSlotCount(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.manager.Save(f.ctx, 1, ""))

	bigger := NewManager(f.store, f.state, nil, WithSlots(8), WithClock(f.clock))
	infos, err := bigger.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, infos, 8)
	assert.False(t, infos[1].Empty)
	assert.True(t, infos[7].Empty)
}

func TestSave_LeavesUnreadableSlotUntouched(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.manager.Save(f.ctx, 1, "keep me"))

	env := f.envelope(t)
	slots := env["slots"].([]interface{})
	slots[1].(map[string]interface{})["timestamp"] = "yesterday"
	blob, err := json.Marshal(env)
	require.NoError(t, err)
	require.NoError(t, f.store.Put(f.ctx, StorageKey, blob))

	require.True(t, f.manager.Save(f.ctx, 0, ""))
	require.True(t, f.manager.Delete(f.ctx, 2))
	require.True(t, f.manager.Import(f.ctx, 3, mustExport(t, f, 0)))

	after := f.envelope(t)["slots"].([]interface{})
	require.NotNil(t, after[1], "slot 1 was dropped by a write to another slot")
	assert.Equal(t, "yesterday", after[1].(map[string]interface{})["timestamp"])
	assert.Equal(t, "keep me", after[1].(map[string]interface{})["description"])

	assert.False(t, f.manager.Load(f.ctx, 1))
	assert.Contains(t, f.last(t, domain.EventTypeLoadCompleted).Error, domain.ErrMsgMalformedSave)

	_, err = f.manager.Export(f.ctx, 1)
	assert.ErrorIs(t, err, domain.ErrMalformedSave)

	infos, err := f.manager.List(f.ctx)
	require.NoError(t, err)
	assert.True(t, infos[1].Unreadable)
	assert.False(t, infos[1].Empty)
	assert.False(t, infos[0].Empty)
}

func TestSave_KeepsSlotsBeyondConfiguredCount(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.manager.Save(f.ctx, 4, "last slot"))

	narrow := NewManager(f.store, f.state, nil, WithClock(f.clock), WithSlots(2))
	require.True(t, narrow.Save(f.ctx, 0, ""))
	require.True(t, narrow.Delete(f.ctx, 1))

	slots := f.envelope(t)["slots"].([]interface{})
	require.Len(t, slots, DefaultSlots)
	require.NotNil(t, slots[4])
	assert.Equal(t, "last slot", slots[4].(map[string]interface{})["description"])

	assert.True(t, f.manager.Load(f.ctx, 4))
}

func TestSave_RejectsEnvelopeWithBadHeader(t *testing.T) {
	f := newFixture(t)
	stored := []byte(`{"version":"1.0.0","lastSaved":1,"currentSlot":-1,"slots":[null]}`)
	require.NoError(t, f.store.Put(f.ctx, StorageKey, stored))

	assert.False(t, f.manager.Save(f.ctx, 0, ""))
	assert.Contains(t, f.last(t, domain.EventTypeSaveCompleted).Error, domain.ErrMsgMalformedSave)

	blob, err := f.store.Get(f.ctx, StorageKey)
	require.NoError(t, err)
	assert.Equal(t, stored, blob)
}

func mustExport(t *testing.T, f *fixture, slot int) string {
	t.Helper()
	out, err := f.manager.Export(f.ctx, slot)
	require.NoError(t, err)
	return out
}
