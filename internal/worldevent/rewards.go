package worldevent

import (
	"context"
	"math"
	"slices"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

// applyReward grants what a successful event carries in its data. Records
// queued without data fall back to the catalog's reward table.
func (m *Manager) applyReward(ctx context.Context, rec domain.EventRecord) {
	data := rec.Data
	if data == nil {
		spec, err := m.catalog.Event(rec.Type)
		if err != nil {
			return
		}
		data = rewardData(spec)
	}

	if data.RewardGold > 0 {
		m.state.AddGold(ctx, data.RewardGold)
	}
	if data.RewardReputation > 0 {
		m.state.AddReputation(ctx, m.scaleReputation(data.RewardReputation))
	}
	if data.RewardExperience > 0 {
		m.state.AddExperience(ctx, data.RewardExperience)
	}
	if data.RewardMaterial != "" && !m.state.AddMaterial(ctx, data.RewardMaterial, 1) {
		logger.FromContext(ctx).Warn(LogMsgRewardFailed, "id", rec.ID, "material", data.RewardMaterial)
	}
	if data.RewardRecipe != "" {
		m.state.DiscoverRecipe(ctx, data.RewardRecipe)
	}
}

func (m *Manager) scaleReputation(amount int) int {
	return int(math.Round(float64(amount) * m.ReputationMultiplier()))
}

func (m *Manager) onCustomerServed(ctx context.Context, p event.CustomerServedPayloadV1) error {
	book := m.state.EventBook()
	var done []string
	for i := range book.Active {
		rec := &book.Active[i]
		if rec.Data == nil {
			continue
		}
		switch rec.Type {
		case domain.EventVIPVisit:
			if rec.Data.CustomerType == p.CustomerType {
				done = append(done, rec.ID)
			}
		case domain.EventBigOrder:
			if rec.Data.PotionType != p.PotionType {
				continue
			}
			rec.Data.Delivered += p.Quantity
			logger.FromContext(ctx).Debug(LogMsgBigOrderProgress,
				"id", rec.ID, "delivered", rec.Data.Delivered, "quantity", rec.Data.Quantity)
			if rec.Data.Delivered >= rec.Data.Quantity {
				done = append(done, rec.ID)
			}
		}
	}
	for _, id := range done {
		if err := m.completeWithReason(ctx, id, true, ReasonFulfilled); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) onBattleEnded(ctx context.Context, p event.BattleEndedPayloadV1) error {
	if !p.Won {
		return nil
	}
	for _, rec := range m.state.EventBook().Active {
		if rec.Type == domain.EventCompetitorChallenge {
			return m.completeWithReason(ctx, rec.ID, true, ReasonFulfilled)
		}
	}
	return nil
}

// onPotionMade pays the plague side bonus. The plague itself stays active.
func (m *Manager) onPotionMade(ctx context.Context, p event.PotionMadePayloadV1) error {
	if !m.hasActive(domain.EventPlague) {
		return nil
	}
	spec, err := m.catalog.Event(domain.EventPlague)
	if err != nil || !slices.Contains(spec.PotionTypes, p.PotionType) {
		return nil
	}
	gold := p.Quantity * spec.BonusGoldPerUnit
	rep := p.Quantity * spec.BonusReputationPerUnit
	if gold > 0 {
		m.state.AddGold(ctx, gold)
	}
	if rep > 0 {
		m.state.AddReputation(ctx, rep)
	}
	logger.FromContext(ctx).Info(LogMsgPlagueBonus, "quantity", p.Quantity, "gold", gold, "reputation", rep)
	return nil
}

func (m *Manager) hasActive(t domain.EventType) bool {
	for _, rec := range m.state.EventBook().Active {
		if rec.Type == t {
			return true
		}
	}
	return false
}

// Effect aggregation over active events. Multipliers of the same kind stack
// multiplicatively; with nothing active each query returns 1.

func (m *Manager) effect(key string) float64 {
	mult := 1.0
	for _, rec := range m.state.EventBook().Active {
		if v, ok := rec.Effects[key]; ok {
			mult *= v
		}
	}
	return mult
}

func (m *Manager) PriceMultiplier() float64 {
	return m.effect(domain.EffectPriceMultiplier)
}

func (m *Manager) CustomerRateMultiplier() float64 {
	return m.effect(domain.EffectCustomerRateMultiplier)
}

func (m *Manager) ReputationMultiplier() float64 {
	return m.effect(domain.EffectReputationMultiplier)
}

// DemandMultiplier returns the demand boost for a potion's category.
func (m *Manager) DemandMultiplier(potionType string) float64 {
	p, err := m.catalog.Potion(potionType)
	if err != nil {
		return 1
	}
	switch p.Category {
	case catalog.PotionCategoryHealing:
		return m.effect(domain.EffectHealingDemand)
	case catalog.PotionCategoryBattle:
		return m.effect(domain.EffectBattleDemand)
	}
	return 1
}
