package gamestate

import (
	"context"
	"slices"

	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/logger"
	"github.com/osse101/TavernSim_Go/internal/utils"
)

// AddGold credits gold. Positive amounts count towards lifetime earnings and
// the tavern's daily income.
func (s *State) AddGold(ctx context.Context, amount int) {
	s.data.Player.Gold += amount
	if amount > 0 {
		s.data.Statistics.TotalGoldEarned += amount
		s.data.Tavern.DailyIncome += amount
	}
	s.emit(ctx, event.NewGoldChangedEvent(amount, s.data.Player.Gold))
}

// SpendGold debits gold if the balance covers it. It returns false, leaving
// the balance untouched and firing nothing, otherwise.
func (s *State) SpendGold(ctx context.Context, amount int) bool {
	if amount < 0 || amount > s.data.Player.Gold {
		logger.FromContext(ctx).Debug(LogMsgGoldSpendRejected, "amount", amount, "gold", s.data.Player.Gold)
		return false
	}
	s.debit(ctx, amount)
	return true
}

// debit removes gold without a balance check.
func (s *State) debit(ctx context.Context, amount int) {
	s.data.Player.Gold -= amount
	s.data.Statistics.TotalGoldSpent += amount
	s.emit(ctx, event.NewGoldChangedEvent(-amount, s.data.Player.Gold))
}

// AddReputation applies a delta clamped to the reputation bounds and returns
// the delta actually applied.
func (s *State) AddReputation(ctx context.Context, amount int) int {
	before := s.data.Player.Reputation
	s.data.Player.Reputation = utils.Clamp(before+amount, domain.MinReputation, domain.MaxReputation)
	applied := s.data.Player.Reputation - before
	s.emit(ctx, event.NewReputationChangedEvent(applied, s.data.Player.Reputation))
	return applied
}

// AddMaterial adds stock of a known material.
func (s *State) AddMaterial(ctx context.Context, id string, amount int) bool {
	if amount <= 0 || !s.knownMaterial(ctx, id) {
		return false
	}
	s.data.Inventory.Materials[id] += amount
	s.emit(ctx, event.NewMaterialAddedEvent(id, amount, s.data.Inventory.Materials[id]))
	return true
}

// ConsumeMaterial removes stock, all or nothing.
func (s *State) ConsumeMaterial(ctx context.Context, id string, amount int) bool {
	return s.ConsumeMaterials(ctx, map[string]int{id: amount})
}

// ConsumeMaterials removes several materials at once. If any single one is
// short, nothing is consumed.
func (s *State) ConsumeMaterials(ctx context.Context, need map[string]int) bool {
	if len(need) == 0 {
		return false
	}
	for id, amount := range need {
		if amount <= 0 || s.data.Inventory.Materials[id] < amount {
			logger.FromContext(ctx).Debug(LogMsgConsumeRejected,
				"material", id, "amount", amount, "have", s.data.Inventory.Materials[id])
			return false
		}
	}
	ids := make([]string, 0, len(need))
	for id := range need {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		s.data.Inventory.Materials[id] -= need[id]
	}
	for _, id := range ids {
		s.emit(ctx, event.NewMaterialConsumedEvent(id, need[id], s.data.Inventory.Materials[id]))
	}
	return true
}

// AddPotion adds potions and counts them as made.
func (s *State) AddPotion(ctx context.Context, id string, amount int) bool {
	if amount <= 0 || !s.knownPotion(ctx, id) {
		return false
	}
	s.data.Inventory.Potions[id] += amount
	s.data.Statistics.PotionsMade += amount
	s.emit(ctx, event.NewPotionAddedEvent(id, amount, s.data.Inventory.Potions[id]))
	return true
}

// ConsumePotion removes potions, all or nothing.
func (s *State) ConsumePotion(ctx context.Context, id string, amount int) bool {
	if amount <= 0 || s.data.Inventory.Potions[id] < amount {
		logger.FromContext(ctx).Debug(LogMsgConsumeRejected,
			"potion", id, "amount", amount, "have", s.data.Inventory.Potions[id])
		return false
	}
	s.data.Inventory.Potions[id] -= amount
	s.emit(ctx, event.NewPotionConsumedEvent(id, amount, s.data.Inventory.Potions[id]))
	return true
}

// KnowsRecipe reports whether the recipe is discovered or mastered.
func (s *State) KnowsRecipe(id string) bool {
	r := &s.data.Recipes
	return slices.Contains(r.Discovered, id) || slices.Contains(r.Mastered, id)
}

// IsMastered reports whether the recipe is mastered.
func (s *State) IsMastered(id string) bool {
	return slices.Contains(s.data.Recipes.Mastered, id)
}

// DiscoverRecipe marks a recipe as discovered. It returns true only when the
// recipe was not known before.
func (s *State) DiscoverRecipe(ctx context.Context, id string) bool {
	if s.KnowsRecipe(id) {
		return false
	}
	if _, err := s.catalog.Recipe(id); err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnknownCatalogID, "recipe", id)
		return false
	}
	r := &s.data.Recipes
	r.Experimental = slices.DeleteFunc(r.Experimental, func(x string) bool { return x == id })
	r.Discovered = append(r.Discovered, id)
	s.emit(ctx, event.NewRecipeDiscoveredEvent(id))
	return true
}

// MasterRecipe moves a discovered recipe to mastered. It returns true only on
// an actual transition.
func (s *State) MasterRecipe(ctx context.Context, id string) bool {
	r := &s.data.Recipes
	if slices.Contains(r.Mastered, id) {
		return false
	}
	idx := slices.Index(r.Discovered, id)
	if idx < 0 {
		logger.FromContext(ctx).Debug(LogMsgRecipeMasteryRejected, "recipe", id)
		return false
	}
	r.Discovered = slices.Delete(r.Discovered, idx, idx+1)
	r.Mastered = append(r.Mastered, id)
	s.emit(ctx, event.NewRecipeMasteredEvent(id))
	return true
}

// AddExperience grants experience and returns the number of levels gained.
func (s *State) AddExperience(ctx context.Context, exp int) int {
	if exp <= 0 {
		return 0
	}
	s.data.Player.Experience += exp
	return s.CheckLevelUp(ctx)
}

// CheckLevelUp converts banked experience into levels, carrying the
// remainder. One grant may cross several thresholds.
func (s *State) CheckLevelUp(ctx context.Context) int {
	p := &s.data.Player
	gained := 0
	for p.Experience >= ExperienceForLevel(p.Level) {
		p.Experience -= ExperienceForLevel(p.Level)
		p.Level++
		gained++
		logger.FromContext(ctx).Info(LogMsgLevelUp, "level", p.Level, "experience", p.Experience)
		s.emit(ctx, event.NewLevelUpEvent(p.Level))
	}
	return gained
}

func (s *State) knownMaterial(ctx context.Context, id string) bool {
	if _, err := s.catalog.Material(id); err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnknownCatalogID, "material", id)
		return false
	}
	return true
}

func (s *State) knownPotion(ctx context.Context, id string) bool {
	if _, err := s.catalog.Potion(id); err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnknownCatalogID, "potion", id)
		return false
	}
	return true
}
