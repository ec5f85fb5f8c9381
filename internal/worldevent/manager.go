// Package worldevent generates, schedules and resolves world events. Events
// move queue -> active -> history; the lists live in the game state so they
// are saved with it.
package worldevent

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/logger"
	"github.com/osse101/TavernSim_Go/internal/utils"
)

// State is the part of the game state the manager reads and rewards through.
type State interface {
	Now() domain.GameTime
	EventBook() *domain.EventBook
	AddGold(ctx context.Context, amount int)
	AddReputation(ctx context.Context, amount int) int
	AddExperience(ctx context.Context, exp int) int
	AddMaterial(ctx context.Context, id string, amount int) bool
	DiscoverRecipe(ctx context.Context, id string) bool
	RecordEventCompleted()
}

// Manager owns the world event lifecycle. Not safe for concurrent use.
type Manager struct {
	state   State
	catalog *catalog.Catalog
	bus     event.Bus
	rnd     func() float64
	newUUID func() string
	seq     uint64
}

// NewManager creates a manager. A nil rnd uses utils.RandomFloat.
func NewManager(state State, cat *catalog.Catalog, bus event.Bus, rnd func() float64) *Manager {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Manager{
		state:   state,
		catalog: cat,
		bus:     bus,
		rnd:     rnd,
		newUUID: uuid.NewString,
	}
}

// Subscribe registers the manager's listeners on the bus.
func (m *Manager) Subscribe(bus event.Bus) {
	event.On(bus, domain.EventTypeNewDay, func(ctx context.Context, p event.NewDayPayloadV1) error {
		m.GenerateDailyEvents(ctx, p.Day)
		return nil
	})
	event.On(bus, domain.EventTypeTimeAdvanced, func(ctx context.Context, _ event.TimeAdvancedPayloadV1) error {
		m.CheckTimedEvents(ctx)
		return nil
	})
	event.On(bus, domain.EventTypeCustomerServed, m.onCustomerServed)
	event.On(bus, domain.EventTypeBattleEnded, m.onBattleEnded)
	event.On(bus, domain.EventTypePotionMade, m.onPotionMade)
}

// nextID combines a monotonic counter with a random suffix.
func (m *Manager) nextID() string {
	m.seq++
	return fmt.Sprintf("%s-%d-%s", IDPrefix, m.seq, m.newUUID()[:8])
}

// Events returns a copy of the three lists.
func (m *Manager) Events() domain.EventBook {
	return m.state.EventBook().Clone()
}

// Event finds an event in any list.
func (m *Manager) Event(id string) (domain.EventRecord, error) {
	book := m.state.EventBook()
	for _, list := range [][]domain.EventRecord{book.Queue, book.Active, book.History} {
		if i := indexOf(list, id); i >= 0 {
			return list[i].Clone(), nil
		}
	}
	return domain.EventRecord{}, fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
}

// QueueEvent appends a record to the queue, assigning an id if it has none.
func (m *Manager) QueueEvent(ctx context.Context, rec domain.EventRecord) domain.EventRecord {
	if rec.ID == "" {
		rec.ID = m.nextID()
	}
	rec.Completed, rec.Success = false, false
	book := m.state.EventBook()
	book.Queue = append(book.Queue, rec)

	logger.FromContext(ctx).Info(LogMsgEventQueued, "id", rec.ID, "type", rec.Type, "start", rec.StartTime, "end", rec.EndTime)
	event.Emit(ctx, m.bus, event.NewEventQueuedEvent(rec.Clone()))
	return rec.Clone()
}

// ActivateEvent moves a queued event to the active list.
func (m *Manager) ActivateEvent(ctx context.Context, id string) error {
	book := m.state.EventBook()
	i := indexOf(book.Queue, id)
	if i < 0 {
		return fmt.Errorf("%w: %s is not queued", domain.ErrEventNotFound, id)
	}
	rec := book.Queue[i]
	book.Queue = slices.Delete(book.Queue, i, i+1)
	book.Active = append(book.Active, rec)

	logger.FromContext(ctx).Info(LogMsgEventActivated, "id", rec.ID, "type", rec.Type)
	event.Emit(ctx, m.bus, event.NewEventActivatedEvent(rec.Clone()))

	if rec.Type == domain.EventGuildGathering {
		return m.completeWithReason(ctx, id, true, ReasonAuto)
	}
	return nil
}

// CompleteEvent moves an active event to history and applies its reward if
// it succeeded.
func (m *Manager) CompleteEvent(ctx context.Context, id string, success bool) error {
	return m.complete(ctx, id, success, nil)
}

func (m *Manager) completeWithReason(ctx context.Context, id string, success bool, reason string) error {
	return m.complete(ctx, id, success, &domain.EventResult{Reason: reason})
}

func (m *Manager) complete(ctx context.Context, id string, success bool, result *domain.EventResult) error {
	book := m.state.EventBook()
	i := indexOf(book.Active, id)
	if i < 0 {
		return fmt.Errorf("%w: %s is not active", domain.ErrEventNotFound, id)
	}
	rec := book.Active[i]
	book.Active = slices.Delete(book.Active, i, i+1)

	rec.Completed = true
	rec.Success = success
	if result != nil {
		rec.Result = result
	}
	book.History = append(book.History, rec)

	if success {
		m.applyReward(ctx, rec)
		m.state.RecordEventCompleted()
	}

	logger.FromContext(ctx).Info(LogMsgEventCompleted, "id", rec.ID, "type", rec.Type, "success", success)
	event.Emit(ctx, m.bus, event.NewEventCompletedEvent(rec.Clone()))
	return nil
}

// RecordEventResult resolves an event with an optional narrative choice.
// Active and queued events are completed, a queued one leaving the queue
// without being activated. Events already in history get the choice
// attached; unknown ids get a minimal history record so results from
// scripted content are never lost.
func (m *Manager) RecordEventResult(ctx context.Context, id string, success bool, choice *domain.EventChoice) error {
	result := &domain.EventResult{Reason: ReasonExternal}
	if choice != nil {
		c := choice.Clone()
		result.Choice = &c
	}

	book := m.state.EventBook()
	if i := indexOf(book.Queue, id); i >= 0 {
		book.Active = append(book.Active, book.Queue[i])
		book.Queue = slices.Delete(book.Queue, i, i+1)
		logger.FromContext(ctx).Info(LogMsgQueuedEventResolved, "id", id)
	}
	if indexOf(book.Active, id) >= 0 {
		return m.complete(ctx, id, success, result)
	}
	if i := indexOf(book.History, id); i >= 0 {
		book.History[i].Result = result
		return nil
	}

	now := m.state.Now()
	rec := domain.EventRecord{
		ID:        id,
		Type:      domain.EventNarrative,
		Category:  domain.CategoryCustomer,
		Title:     id,
		StartTime: now,
		EndTime:   now,
		Completed: true,
		Success:   success,
		Result:    result,
	}
	book.History = append(book.History, rec)
	logger.FromContext(ctx).Warn(LogMsgEventSynthesized, "id", id, "success", success)
	event.Emit(ctx, m.bus, event.NewEventCompletedEvent(rec.Clone()))
	return nil
}

// CheckTimedEvents expires active events whose end time has passed, then
// activates queued events whose start time has arrived. Queued events are
// never expired.
func (m *Manager) CheckTimedEvents(ctx context.Context) {
	now := m.state.Now()
	book := m.state.EventBook()

	var expired []string
	for _, rec := range book.Active {
		if now >= rec.EndTime {
			expired = append(expired, rec.ID)
		}
	}
	for _, id := range expired {
		logger.FromContext(ctx).Info(LogMsgEventExpired, "id", id)
		_ = m.completeWithReason(ctx, id, false, ReasonExpired)
	}

	var due []string
	for _, rec := range book.Queue {
		if now >= rec.StartTime {
			due = append(due, rec.ID)
		}
	}
	for _, id := range due {
		_ = m.ActivateEvent(ctx, id)
	}
}

func indexOf(list []domain.EventRecord, id string) int {
	return slices.IndexFunc(list, func(r domain.EventRecord) bool { return r.ID == id })
}
