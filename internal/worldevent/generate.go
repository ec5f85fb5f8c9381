package worldevent

import (
	"context"
	"fmt"
	"maps"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/logger"
	"github.com/osse101/TavernSim_Go/internal/utils"
)

// GenerateDailyEvents rolls each random event independently and adds the
// weekly and monthly events on their days. It returns the queued records.
func (m *Manager) GenerateDailyEvents(ctx context.Context, day int) []domain.EventRecord {
	var queued []domain.EventRecord

	for _, t := range rolledEvents {
		spec, err := m.catalog.Event(t)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgNoEventSpec, "type", t)
			continue
		}
		if !utils.Chance(spec.Probability, m.rnd()) {
			continue
		}
		queued = append(queued, m.QueueEvent(ctx, m.build(t, spec)))
	}

	if day%WeeklyEveryDays == 0 {
		if rec, ok := m.buildScheduled(ctx, domain.EventGuildGathering); ok {
			queued = append(queued, m.QueueEvent(ctx, rec))
		}
	}
	if day%MonthlyEveryDays == 0 {
		if rec, ok := m.buildScheduled(ctx, domain.EventMagicCompetition); ok {
			queued = append(queued, m.QueueEvent(ctx, rec))
		}
	}
	return queued
}

func (m *Manager) buildScheduled(ctx context.Context, t domain.EventType) (domain.EventRecord, bool) {
	spec, err := m.catalog.Event(t)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgNoEventSpec, "type", t)
		return domain.EventRecord{}, false
	}
	return m.build(t, spec), true
}

// NewEvent builds a record for an event type from the catalog without
// queueing it.
func (m *Manager) NewEvent(t domain.EventType) (domain.EventRecord, error) {
	spec, err := m.catalog.Event(t)
	if err != nil {
		return domain.EventRecord{}, err
	}
	return m.build(t, spec), nil
}

func (m *Manager) build(t domain.EventType, spec catalog.EventSpec) domain.EventRecord {
	start := m.state.Now().Add(spec.LeadHours * domain.MinutesPerHour)
	rec := domain.EventRecord{
		ID:          m.nextID(),
		Type:        t,
		Category:    spec.Category,
		Title:       spec.Title,
		Description: spec.Description,
		Duration:    spec.DurationHours,
		Effects:     maps.Clone(spec.Effects),
		StartTime:   start,
		EndTime:     start.Add(spec.DurationHours * domain.MinutesPerHour),
	}

	switch t {
	case domain.EventBigOrder:
		potion := m.pick(spec.PotionTypes)
		qty := utils.IntFromRoll(spec.QuantityMin, spec.QuantityMax, m.rnd())
		rec.Description = fmt.Sprintf("%s (%d x %s)", spec.Description, qty, potion)
		rec.Data = &domain.EventData{
			PotionType:       potion,
			Quantity:         qty,
			RewardGold:       qty * spec.GoldPerUnit,
			RewardReputation: spec.RewardReputation,
		}
	case domain.EventCompetitorChallenge:
		opponent := m.pick(spec.Opponents)
		rec.Description = fmt.Sprintf("%s (%s)", spec.Description, opponent)
		rec.Data = rewardData(spec)
		rec.Data.Opponent = opponent
	case domain.EventVIPVisit, domain.EventGuildGathering, domain.EventMagicCompetition:
		rec.Data = rewardData(spec)
	}
	return rec
}

func rewardData(spec catalog.EventSpec) *domain.EventData {
	return &domain.EventData{
		RewardGold:       spec.RewardGold,
		RewardReputation: spec.RewardReputation,
		RewardExperience: spec.RewardExperience,
		RewardRecipe:     spec.RewardRecipe,
		RewardMaterial:   spec.RewardMaterial,
		CustomerType:     spec.CustomerType,
	}
}

func (m *Manager) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[utils.IntFromRoll(0, len(options)-1, m.rnd())]
}
