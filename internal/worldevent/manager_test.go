package worldevent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/gamestate"
)

func constant(v float64) func() float64 {
	return func() float64 { return v }
}

// noRoll never passes a probability below 1
var noRoll = constant(0.999)

func setup(t *testing.T, rnd func() float64) (*Manager, *gamestate.State, *event.MemoryBus) {
	t.Helper()
	cat := catalog.MustDefault()
	bus := event.NewMemoryBus()
	st := gamestate.New(cat, bus)
	m := NewManager(st, cat, bus, rnd)
	m.Subscribe(bus)
	return m, st, bus
}

func queueActive(t *testing.T, m *Manager, rec domain.EventRecord) domain.EventRecord {
	t.Helper()
	ctx := context.Background()
	rec = m.QueueEvent(ctx, rec)
	require.NoError(t, m.ActivateEvent(ctx, rec.ID))
	return rec
}

func serve(t *testing.T, bus event.Bus, customerType, potion string, qty int) {
	t.Helper()
	err := bus.Publish(context.Background(), event.NewCustomerServedEvent(event.CustomerServedPayloadV1{
		CustomerID:   "cust-x",
		CustomerType: customerType,
		PotionType:   potion,
		Quantity:     qty,
		Price:        30,
		Satisfaction: 70,
	}))
	require.NoError(t, err)
}

func TestBigOrder_CompletesOnThirdDelivery(t *testing.T) {
	m, st, bus := setup(t, noRoll)
	now := st.Now()

	order := queueActive(t, m, domain.EventRecord{
		Type:      domain.EventBigOrder,
		Category:  domain.CategoryCustomer,
		StartTime: now,
		EndTime:   now.Add(48 * 60),
		Data:      &domain.EventData{PotionType: "healing", Quantity: 30, RewardGold: 750, RewardReputation: 20},
	})

	serve(t, bus, "villager", "healing", 10)
	serve(t, bus, "villager", "mana", 10)
	serve(t, bus, "villager", "healing", 10)

	book := m.Events()
	require.Len(t, book.Active, 1, "still open after 20 of 30")
	assert.Equal(t, 20, book.Active[0].Data.Delivered)
	assert.Equal(t, 500, st.Gold())

	serve(t, bus, "adventurer", "healing", 10)

	book = m.Events()
	assert.Empty(t, book.Active)
	require.Len(t, book.History, 1)
	done := book.History[0]
	assert.Equal(t, order.ID, done.ID)
	assert.True(t, done.Completed)
	assert.True(t, done.Success)
	assert.Equal(t, 30, done.Data.Delivered)
	assert.Equal(t, 1250, st.Gold())
	assert.Equal(t, 70, st.Reputation())
	assert.Equal(t, 1, st.Statistics().EventsCompleted)
}

func TestCheckTimedEvents_ExpiresOnlyActive(t *testing.T) {
	ctx := context.Background()
	m, st, _ := setup(t, noRoll)
	now := st.Now()

	stale := m.QueueEvent(ctx, domain.EventRecord{
		Type:      domain.EventMarketSurplus,
		StartTime: 0,
		EndTime:   now.Add(-60),
	})
	future := m.QueueEvent(ctx, domain.EventRecord{
		Type:      domain.EventFestival,
		StartTime: now.Add(600),
		EndTime:   now.Add(-10),
	})

	m.CheckTimedEvents(ctx)

	book := m.Events()
	require.Len(t, book.Active, 1, "due event is activated, not expired, on the first check")
	assert.Equal(t, stale.ID, book.Active[0].ID)
	assert.Empty(t, book.History)
	require.Len(t, book.Queue, 1)
	assert.Equal(t, future.ID, book.Queue[0].ID)

	m.CheckTimedEvents(ctx)

	book = m.Events()
	assert.Empty(t, book.Active)
	require.Len(t, book.History, 1)
	assert.Equal(t, stale.ID, book.History[0].ID)
	assert.True(t, book.History[0].Completed)
	assert.False(t, book.History[0].Success)
	assert.Equal(t, ReasonExpired, book.History[0].Result.Reason)
	assert.Len(t, book.Queue, 1, "queued events are never force-expired")
}

func TestGenerateDailyEvents(t *testing.T) {
	tests := []struct {
		name  string
		roll  float64
		day   int
		types []domain.EventType
	}{
		{"nothing rolls on an ordinary day", 0.999, 1, nil},
		{"weekly on day 14", 0.999, 14, []domain.EventType{domain.EventGuildGathering}},
		{"monthly on day 30", 0.999, 30, []domain.EventType{domain.EventMagicCompetition}},
		{"both on day 210", 0.999, 210, []domain.EventType{domain.EventGuildGathering, domain.EventMagicCompetition}},
		{"everything rolls", 0.0, 2, rolledEvents},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := setup(t, constant(tt.roll))
			queued := m.GenerateDailyEvents(context.Background(), tt.day)

			var got []domain.EventType
			for _, rec := range queued {
				got = append(got, rec.Type)
			}
			assert.Equal(t, tt.types, got)
			assert.Len(t, m.Events().Queue, len(tt.types))
		})
	}
}

func TestGenerate_RecordShapes(t *testing.T) {
	m, st, _ := setup(t, constant(0.0))
	now := st.Now()

	byType := map[domain.EventType]domain.EventRecord{}
	for _, rec := range m.GenerateDailyEvents(context.Background(), 30) {
		byType[rec.Type] = rec
	}

	order := byType[domain.EventBigOrder]
	require.NotNil(t, order.Data)
	assert.Equal(t, "healing", order.Data.PotionType)
	assert.Equal(t, 20, order.Data.Quantity)
	assert.Equal(t, 500, order.Data.RewardGold)
	assert.Equal(t, 20, order.Data.RewardReputation)
	assert.Equal(t, now, order.StartTime)
	assert.Equal(t, now.Add(48*60), order.EndTime)

	vip := byType[domain.EventVIPVisit]
	assert.Equal(t, now.Add(120), vip.StartTime, "VIP arrives two hours ahead")
	assert.Equal(t, "noble", vip.Data.CustomerType)

	challenge := byType[domain.EventCompetitorChallenge]
	assert.Equal(t, "Grimsby the Brewer", challenge.Data.Opponent)
	assert.Equal(t, now.Add(24*60), challenge.EndTime)

	comp := byType[domain.EventMagicCompetition]
	assert.Equal(t, now.Add(7*24*60), comp.StartTime, "competition starts a week later")
	assert.Equal(t, "phoenix_elixir", comp.Data.RewardRecipe)

	surplus := byType[domain.EventMarketSurplus]
	assert.Nil(t, surplus.Data)
	assert.Equal(t, 0.8, surplus.Effects[domain.EffectPriceMultiplier])
}

func TestNewDay_GeneratesAndGuildGatheringAutoResolves(t *testing.T) {
	ctx := context.Background()
	m, st, _ := setup(t, noRoll)

	st.AdvanceTime(ctx, 6*domain.MinutesPerDay) // day 1 -> day 7

	book := m.Events()
	require.Len(t, book.History, 1)
	guild := book.History[0]
	assert.Equal(t, domain.EventGuildGathering, guild.Type)
	assert.True(t, guild.Success)
	assert.Equal(t, ReasonAuto, guild.Result.Reason)
	assert.Equal(t, 2, st.Player().Level, "100 experience crosses the first threshold")
	assert.Equal(t, 50-6+10, st.Reputation())
}

func TestVIPVisit(t *testing.T) {
	ctx := context.Background()
	m, st, bus := setup(t, noRoll)

	rec, err := m.NewEvent(domain.EventVIPVisit)
	require.NoError(t, err)
	vip := m.QueueEvent(ctx, rec)

	m.CheckTimedEvents(ctx)
	require.Len(t, m.Events().Queue, 1, "not yet due")

	st.AdvanceTime(ctx, 120)
	require.Len(t, m.Events().Active, 1)

	serve(t, bus, "villager", "healing", 1)
	require.Len(t, m.Events().Active, 1, "only the noble counts")

	serve(t, bus, "noble", "mana", 1)
	book := m.Events()
	require.Len(t, book.History, 1)
	assert.Equal(t, vip.ID, book.History[0].ID)
	assert.True(t, book.History[0].Success)
	assert.Equal(t, 65, st.Reputation())
	assert.Equal(t, 500, st.Gold())
}

func TestCompetitorChallenge(t *testing.T) {
	ctx := context.Background()
	m, st, _ := setup(t, noRoll)

	rec, err := m.NewEvent(domain.EventCompetitorChallenge)
	require.NoError(t, err)
	queueActive(t, m, rec)

	st.RecordBattle(ctx, false, 1200)
	assert.Len(t, m.Events().Active, 1)

	st.RecordBattle(ctx, true, 1200)
	book := m.Events()
	assert.Empty(t, book.Active)
	require.Len(t, book.History, 1)
	assert.True(t, book.History[0].Success)
	assert.Equal(t, 700, st.Gold())
	assert.Equal(t, 80, st.Reputation())
	assert.Equal(t, 1, st.Material("dragon_scale"))
}

func TestPlagueBonus(t *testing.T) {
	ctx := context.Background()
	m, st, bus := setup(t, noRoll)

	rec, err := m.NewEvent(domain.EventPlague)
	require.NoError(t, err)
	queueActive(t, m, rec)

	require.NoError(t, bus.Publish(ctx, event.NewPotionMadeEvent("healing", 3)))
	assert.Equal(t, 560, st.Gold())
	assert.Equal(t, 56, st.Reputation())

	require.NoError(t, bus.Publish(ctx, event.NewPotionMadeEvent("mana", 3)))
	assert.Equal(t, 560, st.Gold())

	assert.Len(t, m.Events().Active, 1, "the bonus does not resolve the plague")
}

func TestPlagueBonus_RequiresActivePlague(t *testing.T) {
	ctx := context.Background()
	_, st, bus := setup(t, noRoll)

	require.NoError(t, bus.Publish(ctx, event.NewPotionMadeEvent("healing", 3)))
	assert.Equal(t, 500, st.Gold())
}

func TestRecordEventResult(t *testing.T) {
	ctx := context.Background()
	m, _, _ := setup(t, noRoll)
	choice := &domain.EventChoice{ID: "help", Text: "Help the stranger", Rewards: map[string]int{"reputation": 5}}

	t.Run("active event is completed with the choice", func(t *testing.T) {
		rec := queueActive(t, m, domain.EventRecord{Type: domain.EventNarrative, EndTime: 1 << 30})
		require.NoError(t, m.RecordEventResult(ctx, rec.ID, true, choice))

		got, err := m.Event(rec.ID)
		require.NoError(t, err)
		assert.True(t, got.Completed)
		assert.Equal(t, "help", got.Result.Choice.ID)

		choice.Rewards["reputation"] = 999
		got, _ = m.Event(rec.ID)
		assert.Equal(t, 5, got.Result.Choice.Rewards["reputation"], "choice is snapshotted")
	})

	t.Run("unknown id synthesizes history", func(t *testing.T) {
		require.NoError(t, m.RecordEventResult(ctx, "scripted-intro", false, nil))
		got, err := m.Event("scripted-intro")
		require.NoError(t, err)
		assert.True(t, got.Completed)
		assert.False(t, got.Success)
		assert.Equal(t, domain.EventNarrative, got.Type)
	})

	t.Run("history entry gets the result attached", func(t *testing.T) {
		require.NoError(t, m.RecordEventResult(ctx, "scripted-intro", false, &domain.EventChoice{ID: "later"}))
		got, _ := m.Event("scripted-intro")
		assert.Equal(t, "later", got.Result.Choice.ID)
		assert.Len(t, m.Events().History, 2)
	})
}

func TestLifecycleErrors(t *testing.T) {
	ctx := context.Background()
	m, _, _ := setup(t, noRoll)

	assert.ErrorIs(t, m.ActivateEvent(ctx, "nope"), domain.ErrEventNotFound)
	assert.ErrorIs(t, m.CompleteEvent(ctx, "nope", true), domain.ErrEventNotFound)

	rec := m.QueueEvent(ctx, domain.EventRecord{Type: domain.EventFestival})
	assert.ErrorIs(t, m.CompleteEvent(ctx, rec.ID, true), domain.ErrEventNotFound, "queued events cannot skip activation")

	_, err := m.Event("nope")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestFailureGrantsNothing(t *testing.T) {
	ctx := context.Background()
	state := &MockState{}
	m := NewManager(state, catalog.MustDefault(), event.NewMemoryBus(), noRoll)

	rec := queueActive(t, m, domain.EventRecord{
		Type: domain.EventCompetitorChallenge,
		Data: &domain.EventData{RewardGold: 200, RewardReputation: 30, RewardMaterial: "dragon_scale"},
	})
	require.NoError(t, m.CompleteEvent(ctx, rec.ID, false))

	state.AssertNotCalled(t, "AddGold", mock.Anything, mock.Anything)
	state.AssertNotCalled(t, "RecordEventCompleted")
	assert.Len(t, state.book.History, 1)
}

func TestSuccessAppliesRewardTable(t *testing.T) {
	ctx := context.Background()
	state := &MockState{}
	state.On("AddGold", mock.Anything, 200).Once()
	state.On("AddReputation", mock.Anything, 30).Return(30).Once()
	state.On("AddMaterial", mock.Anything, "dragon_scale", 1).Return(true).Once()
	state.On("RecordEventCompleted").Once()
	m := NewManager(state, catalog.MustDefault(), event.NewMemoryBus(), noRoll)

	// no data: rewards come from the catalog
	rec := queueActive(t, m, domain.EventRecord{Type: domain.EventCompetitorChallenge})
	require.NoError(t, m.CompleteEvent(ctx, rec.ID, true))

	state.AssertExpectations(t)
}

func TestRecordEventResult_QueuedEventResolvesOnce(t *testing.T) {
	ctx := context.Background()
	state := &MockState{}
	state.On("AddGold", mock.Anything, 200).Once()
	state.On("AddReputation", mock.Anything, 30).Return(30).Once()
	state.On("AddMaterial", mock.Anything, "dragon_scale", 1).Return(true).Once()
	state.On("RecordEventCompleted").Once()
	m := NewManager(state, catalog.MustDefault(), event.NewMemoryBus(), noRoll)

	rec := m.QueueEvent(ctx, domain.EventRecord{Type: domain.EventCompetitorChallenge, StartTime: 1 << 20})
	require.NoError(t, m.RecordEventResult(ctx, rec.ID, true, &domain.EventChoice{ID: "accept"}))

	book := m.Events()
	assert.Empty(t, book.Queue)
	assert.Empty(t, book.Active)
	require.Len(t, book.History, 1)
	assert.Equal(t, rec.ID, book.History[0].ID)
	assert.True(t, book.History[0].Success)
	assert.Equal(t, "accept", book.History[0].Result.Choice.ID)

	state.AssertExpectations(t)
	state.AssertNumberOfCalls(t, "AddGold", 1)
	state.AssertNumberOfCalls(t, "RecordEventCompleted", 1)
}

func TestEffectMultipliers(t *testing.T) {
	m, _, _ := setup(t, noRoll)

	assert.Equal(t, 1.0, m.PriceMultiplier())
	assert.Equal(t, 1.0, m.DemandMultiplier("healing"))

	for _, et := range []domain.EventType{domain.EventMarketSurplus, domain.EventMarketShortage, domain.EventFestival, domain.EventPlague} {
		rec, err := m.NewEvent(et)
		require.NoError(t, err)
		rec.EndTime = 1 << 30
		queueActive(t, m, rec)
	}

	assert.InDelta(t, 1.04, m.PriceMultiplier(), 1e-9)
	assert.Equal(t, 1.5, m.CustomerRateMultiplier())
	assert.Equal(t, 1.2, m.ReputationMultiplier())
	assert.Equal(t, 2.0, m.DemandMultiplier("healing"))
	assert.Equal(t, 1.0, m.DemandMultiplier("strength"))
	assert.Equal(t, 1.0, m.DemandMultiplier("unknown"))
}

func TestEventIDsAreUnique(t *testing.T) {
	m, _, _ := setup(t, noRoll)
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := m.nextID()
		require.False(t, seen[id], id)
		seen[id] = true
	}
}
