package save

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/TavernSim_Go/internal/clock"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/logger"
	"github.com/osse101/TavernSim_Go/internal/validation"
)

// State is the part of the game state the save manager snapshots and restores
type State interface {
	Snapshot() domain.GameData
	Restore(ctx context.Context, data domain.GameData)
	Settings() domain.Settings
}

// Manager keeps a fixed number of save slots in one envelope under StorageKey.
// Failures never escape as panics: every operation reports through its return
// value and the matching save notification. Not safe for concurrent use.
type Manager struct {
	store     Store
	state     State
	bus       event.Bus
	clock     clock.Clock
	validator validation.SchemaValidator
	printer   *message.Printer
	slots     int
}

// Option configures a Manager
type Option func(*Manager)

// WithClock replaces the wall clock used for timestamps
func WithClock(c clock.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithSlots sets the number of save slots
func WithSlots(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.slots = n
		}
	}
}

// WithValidator replaces the schema validator used for imports and loads
func WithValidator(v validation.SchemaValidator) Option {
	return func(m *Manager) { m.validator = v }
}

// NewManager creates a save manager
func NewManager(store Store, state State, bus event.Bus, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		state:     state,
		bus:       bus,
		clock:     clock.RealClock{},
		validator: validation.NewSchemaValidator(),
		printer:   message.NewPrinter(language.English),
		slots:     DefaultSlots,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Slots returns the number of save slots
func (m *Manager) Slots() int { return m.slots }

// Ping checks the backing store
func (m *Manager) Ping(ctx context.Context) error { return m.store.Ping(ctx) }

// Save snapshots the game into slot. An empty description is generated from
// the current day, gold, reputation and wall time.
func (m *Manager) Save(ctx context.Context, slot int, description string) bool {
	err := m.save(ctx, slot, description)
	m.report(ctx, domain.EventTypeSaveCompleted, slot, err, LogMsgSaveCompleted, LogMsgSaveFailed)
	return err == nil
}

func (m *Manager) save(ctx context.Context, slot int, description string) error {
	if err := m.checkSlot(slot); err != nil {
		return err
	}

	env, err := m.readEnvelope(ctx)
	if err != nil {
		return err
	}

	now := m.clock.Now()
	data := m.state.Snapshot()
	if description == "" {
		description = m.describe(data, now)
	}

	err = env.set(slot, &domain.SaveSlot{
		Slot:        slot,
		Timestamp:   now.UnixMilli(),
		Description: description,
		GameData:    data,
		Version:     Version,
	})
	if err != nil {
		return err
	}
	env.CurrentSlot = slot
	env.LastSaved = now.UnixMilli()

	return m.writeEnvelope(ctx, env)
}

func (m *Manager) describe(data domain.GameData, now time.Time) string {
	return m.printer.Sprintf(DescriptionFormat,
		data.Time.Day, data.Player.Gold, data.Player.Reputation, now.Format(DescriptionTimeFmt))
}

// Load restores the game from slot. An empty or malformed slot leaves the
// game untouched. A version mismatch is logged and the load proceeds.
func (m *Manager) Load(ctx context.Context, slot int) bool {
	err := m.load(ctx, slot)
	m.report(ctx, domain.EventTypeLoadCompleted, slot, err, LogMsgLoadCompleted, LogMsgLoadFailed)
	return err == nil
}

func (m *Manager) load(ctx context.Context, slot int) error {
	if err := m.checkSlot(slot); err != nil {
		return err
	}

	env, err := m.readEnvelope(ctx)
	if err != nil {
		return err
	}

	saved, err := env.slot(slot)
	if err != nil {
		return err
	}
	if err := m.ValidateSaveData(env.raw[slot]); err != nil {
		return err
	}

	if saved.Version != Version {
		logger.FromContext(ctx).Warn(LogMsgVersionMismatch, "slot", slot, "saved", saved.Version, "current", Version)
	}

	m.state.Restore(ctx, saved.GameData)

	if env.CurrentSlot != slot {
		env.CurrentSlot = slot
		if err := m.writeEnvelope(ctx, env); err != nil {
			return err
		}
	}
	return nil
}

// QuickSave saves into the current slot
func (m *Manager) QuickSave(ctx context.Context) bool {
	return m.Save(ctx, m.CurrentSlot(ctx), "")
}

// QuickLoad loads the current slot
func (m *Manager) QuickLoad(ctx context.Context) bool {
	return m.Load(ctx, m.CurrentSlot(ctx))
}

// CurrentSlot returns the slot last saved to or loaded from
func (m *Manager) CurrentSlot(ctx context.Context) int {
	env, err := m.readEnvelope(ctx)
	if err != nil || env.CurrentSlot < 0 || env.CurrentSlot >= m.slots {
		return 0
	}
	return env.CurrentSlot
}

// AutoSave quick-saves when the player has auto save enabled
func (m *Manager) AutoSave(ctx context.Context) error {
	if !m.state.Settings().AutoSave {
		logger.FromContext(ctx).Debug(LogMsgAutoSaveSkipped)
		return nil
	}
	slot := m.CurrentSlot(ctx)
	err := m.save(ctx, slot, "")
	m.report(ctx, domain.EventTypeSaveCompleted, slot, err, LogMsgSaveCompleted, LogMsgSaveFailed)
	return err
}

// Delete empties slot
func (m *Manager) Delete(ctx context.Context, slot int) bool {
	err := m.delete(ctx, slot)
	m.report(ctx, domain.EventTypeSaveDeleted, slot, err, LogMsgSlotDeleted, LogMsgDeleteFailed)
	return err == nil
}

func (m *Manager) delete(ctx context.Context, slot int) error {
	if err := m.checkSlot(slot); err != nil {
		return err
	}
	env, err := m.readEnvelope(ctx)
	if err != nil {
		return err
	}
	if err := env.set(slot, nil); err != nil {
		return err
	}
	return m.writeEnvelope(ctx, env)
}

// Export serialises one slot to a portable JSON string
func (m *Manager) Export(ctx context.Context, slot int) (string, error) {
	if err := m.checkSlot(slot); err != nil {
		return "", err
	}
	env, err := m.readEnvelope(ctx)
	if err != nil {
		return "", err
	}
	saved, err := env.slot(slot)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(saved)
	if err != nil {
		return "", fmt.Errorf("failed to encode slot %d: %w", slot, err)
	}
	return string(data), nil
}

// Import validates an exported slot and writes it into slot. Nothing is
// written when the payload is malformed.
func (m *Manager) Import(ctx context.Context, slot int, payload string) bool {
	err := m.importSlot(ctx, slot, payload)
	m.report(ctx, domain.EventTypeSaveImported, slot, err, LogMsgImportCompleted, LogMsgImportFailed)
	return err == nil
}

func (m *Manager) importSlot(ctx context.Context, slot int, payload string) error {
	if err := m.checkSlot(slot); err != nil {
		return err
	}
	if err := m.ValidateSaveData([]byte(payload)); err != nil {
		return err
	}

	var imported domain.SaveSlot
	if err := json.Unmarshal([]byte(payload), &imported); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedSave, err)
	}
	imported.Slot = slot

	env, err := m.readEnvelope(ctx)
	if err != nil {
		return err
	}
	if err := env.set(slot, &imported); err != nil {
		return err
	}
	return m.writeEnvelope(ctx, env)
}

// HasAutoSave reports whether something was saved within AutoSaveFreshness
func (m *Manager) HasAutoSave(ctx context.Context) bool {
	env, err := m.readEnvelope(ctx)
	if err != nil || env.LastSaved <= 0 {
		return false
	}
	age := m.clock.Now().Sub(time.UnixMilli(env.LastSaved))
	return age < AutoSaveFreshness
}

// CleanupOldSaves empties every slot older than MaxSaveAge and returns how many were cleared
func (m *Manager) CleanupOldSaves(ctx context.Context) (int, error) {
	env, err := m.readEnvelope(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := m.clock.Now().Add(-MaxSaveAge).UnixMilli()
	cleared := 0
	for i, s := range env.Slots {
		if s != nil && s.Timestamp < cutoff {
			if err := env.set(i, nil); err != nil {
				return 0, err
			}
			cleared++
		}
	}
	if cleared == 0 {
		return 0, nil
	}

	if err := m.writeEnvelope(ctx, env); err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info(LogMsgOldSavesCleaned, "cleared", cleared)
	return cleared, nil
}

// ValidateSaveData checks that a serialised slot carries every required field.
// It is a presence check, not a semantic one.
func (m *Manager) ValidateSaveData(data []byte) error {
	if err := m.validator.ValidateBytes(data, validation.SchemaSaveSlot); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedSave, err)
	}
	return nil
}

// List describes every slot, empty ones included
func (m *Manager) List(ctx context.Context) ([]domain.SlotInfo, error) {
	env, err := m.readEnvelope(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]domain.SlotInfo, m.slots)
	for i := range infos {
		s := env.Slots[i]
		if env.unreadable[i] != nil {
			infos[i] = domain.SlotInfo{Slot: i, Unreadable: true}
			continue
		}
		if s == nil {
			infos[i] = domain.SlotInfo{Slot: i, Empty: true}
			continue
		}
		infos[i] = domain.SlotInfo{
			Slot:        i,
			Timestamp:   s.Timestamp,
			Description: s.Description,
			Version:     s.Version,
			Day:         s.GameData.Time.Day,
			Gold:        s.GameData.Player.Gold,
		}
	}
	return infos, nil
}

func (m *Manager) checkSlot(slot int) error {
	if slot < 0 || slot >= m.slots {
		return fmt.Errorf(ErrFmtSlotOutOfRange, domain.ErrSlotOutOfRange, slot, m.slots)
	}
	return nil
}

// rawEnvelope is the stored form. Slots stay as raw bytes so a write only
// re-encodes the slots it changed.
type rawEnvelope struct {
	Version     string            `json:"version"`
	LastSaved   int64             `json:"lastSaved"`
	CurrentSlot int               `json:"currentSlot"`
	Slots       []json.RawMessage `json:"slots"`
}

var jsonNull = json.RawMessage("null")

func isNull(data []byte) bool {
	return len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), jsonNull)
}

// storedEnvelope is the envelope as read. raw holds every stored slot,
// including slots that no longer decode and slots past the configured count;
// those are written back byte for byte.
type storedEnvelope struct {
	*domain.SaveEnvelope
	raw        []json.RawMessage
	unreadable []error
}

// set replaces one slot, nil empties it.
func (e *storedEnvelope) set(slot int, s *domain.SaveSlot) error {
	data := jsonNull
	if s != nil {
		encoded, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("failed to encode slot %d: %w", slot, err)
		}
		data = encoded
	}
	e.Slots[slot] = s
	e.raw[slot] = data
	e.unreadable[slot] = nil
	return nil
}

// slot returns a decoded slot, or ErrSlotEmpty / ErrMalformedSave.
func (e *storedEnvelope) slot(i int) (*domain.SaveSlot, error) {
	if err := e.unreadable[i]; err != nil {
		return nil, fmt.Errorf("%w: slot %d: %v", domain.ErrMalformedSave, i, err)
	}
	if e.Slots[i] == nil {
		return nil, fmt.Errorf(ErrFmtSlotEmpty, domain.ErrSlotEmpty, i)
	}
	return e.Slots[i], nil
}

// readEnvelope returns the stored envelope, or a fresh one when nothing has
// been saved yet. The envelope itself must match the envelope schema; a slot
// that fails to decode is only marked unreadable.
func (m *Manager) readEnvelope(ctx context.Context) (*storedEnvelope, error) {
	env := &storedEnvelope{
		SaveEnvelope: &domain.SaveEnvelope{Version: Version, Slots: make([]*domain.SaveSlot, m.slots)},
		raw:          make([]json.RawMessage, m.slots),
		unreadable:   make([]error, m.slots),
	}

	blob, err := m.store.Get(ctx, StorageKey)
	if errors.Is(err, domain.ErrStoreNotFound) {
		return env, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saves: %w", err)
	}

	if err := m.validator.ValidateBytes(blob, validation.SchemaSaveEnvelope); err != nil {
		logger.FromContext(ctx).Error(LogMsgEnvelopeMalformed, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSave, err)
	}
	var stored rawEnvelope
	if err := json.Unmarshal(blob, &stored); err != nil {
		logger.FromContext(ctx).Error(LogMsgEnvelopeMalformed, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSave, err)
	}

	env.Version = stored.Version
	env.LastSaved = stored.LastSaved
	env.CurrentSlot = stored.CurrentSlot
	if len(stored.Slots) > m.slots {
		env.raw = make([]json.RawMessage, len(stored.Slots))
	}
	copy(env.raw, stored.Slots)

	for i := 0; i < m.slots && i < len(stored.Slots); i++ {
		data := stored.Slots[i]
		if isNull(data) {
			continue
		}
		var s domain.SaveSlot
		if err := json.Unmarshal(data, &s); err != nil {
			logger.FromContext(ctx).Warn(LogMsgUnreadableSlot, "slot", i, "error", err)
			env.unreadable[i] = err
			continue
		}
		env.Slots[i] = &s
	}
	return env, nil
}

func (m *Manager) writeEnvelope(ctx context.Context, env *storedEnvelope) error {
	out := rawEnvelope{
		Version:     Version,
		LastSaved:   env.LastSaved,
		CurrentSlot: env.CurrentSlot,
		Slots:       make([]json.RawMessage, len(env.raw)),
	}
	for i, data := range env.raw {
		if isNull(data) {
			data = jsonNull
		}
		out.Slots[i] = data
	}

	blob, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to encode saves: %w", err)
	}
	if err := m.store.Put(ctx, StorageKey, blob); err != nil {
		return fmt.Errorf("failed to write saves: %w", err)
	}
	return nil
}

func (m *Manager) report(ctx context.Context, eventType string, slot int, err error, okMsg, failMsg string) {
	log := logger.FromContext(ctx)
	if err != nil {
		log.Error(failMsg, "slot", slot, "error", err)
	} else {
		log.Info(okMsg, "slot", slot)
	}
	event.Emit(ctx, m.bus, event.NewSaveEvent(eventType, slot, err))
}
