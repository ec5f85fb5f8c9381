package metrics

import (
	"context"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

// EventMetricsCollector turns game notifications into Prometheus samples
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes the collector to the bus
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, et := range domain.AllEventTypes {
		bus.Subscribe(event.Type(et), e.countEvent)
	}

	event.On(bus, domain.EventTypeGoldChanged, e.onGold)
	event.On(bus, domain.EventTypeReputationChanged, e.onReputation)
	event.On(bus, domain.EventTypeTimeAdvanced, e.onTime)
	event.On(bus, domain.EventTypeLevelUp, e.onLevelUp)
	event.On(bus, domain.EventTypeCustomerServed, e.onCustomerServed)
	event.On(bus, domain.EventTypeCustomerLeft, e.onCustomerLeft)
	event.On(bus, domain.EventTypePotionMade, e.onPotionMade)
	event.On(bus, domain.EventTypeRecipeMastered, e.onRecipeMastered)
	event.On(bus, domain.EventTypeBattleEnded, e.onBattle)
	event.On(bus, domain.EventTypeEventCompleted, e.onWorldEvent)

	for _, op := range []string{
		domain.EventTypeSaveCompleted,
		domain.EventTypeLoadCompleted,
		domain.EventTypeSaveDeleted,
		domain.EventTypeSaveImported,
	} {
		op := op
		event.On(bus, event.Type(op), func(ctx context.Context, p event.SavePayloadV1) error {
			SaveOperations.WithLabelValues(op, outcome(p.Success)).Inc()
			return nil
		})
	}
	return nil
}

func (e *EventMetricsCollector) countEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) onGold(_ context.Context, p event.GoldChangedPayloadV1) error {
	if p.Amount > 0 {
		GoldEarned.Add(float64(p.Amount))
	} else {
		GoldSpent.Add(float64(-p.Amount))
	}
	GoldBalance.Set(float64(p.Total))
	return nil
}

func (e *EventMetricsCollector) onReputation(_ context.Context, p event.ReputationChangedPayloadV1) error {
	Reputation.Set(float64(p.Total))
	return nil
}

func (e *EventMetricsCollector) onTime(_ context.Context, p event.TimeAdvancedPayloadV1) error {
	GameDay.Set(float64(p.Day))
	return nil
}

func (e *EventMetricsCollector) onLevelUp(_ context.Context, p event.LevelUpPayloadV1) error {
	PlayerLevel.Set(float64(p.NewLevel))
	return nil
}

func (e *EventMetricsCollector) onCustomerServed(_ context.Context, p event.CustomerServedPayloadV1) error {
	CustomersServed.WithLabelValues(p.CustomerType).Inc()
	Satisfaction.Observe(float64(p.Satisfaction))
	return nil
}

func (e *EventMetricsCollector) onCustomerLeft(_ context.Context, p event.CustomerLeftPayloadV1) error {
	CustomersLeft.WithLabelValues(p.Reason).Inc()
	return nil
}

func (e *EventMetricsCollector) onPotionMade(_ context.Context, p event.PotionMadePayloadV1) error {
	PotionsCrafted.WithLabelValues(p.PotionType).Add(float64(p.Quantity))
	return nil
}

func (e *EventMetricsCollector) onRecipeMastered(context.Context, event.RecipePayloadV1) error {
	RecipesMastered.Inc()
	return nil
}

func (e *EventMetricsCollector) onBattle(_ context.Context, p event.BattleEndedPayloadV1) error {
	if p.Won {
		Battles.WithLabelValues(OutcomeWon).Inc()
	} else {
		Battles.WithLabelValues(OutcomeLost).Inc()
	}
	return nil
}

func (e *EventMetricsCollector) onWorldEvent(_ context.Context, p event.WorldEventPayloadV1) error {
	WorldEvents.WithLabelValues(string(p.Event.Type), outcome(p.Event.Success)).Inc()
	return nil
}

func outcome(success bool) string {
	if success {
		return OutcomeSuccess
	}
	return OutcomeFailure
}
