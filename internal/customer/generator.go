// Package customer spawns customers from the catalog and scores how they
// react to service.
package customer

import (
	"fmt"
	"math"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/utils"
)

// Generator picks customer types and builds instances. Not safe for
// concurrent use.
type Generator struct {
	catalog *catalog.Catalog
	rnd     func() float64
	seq     uint64
}

// NewGenerator creates a generator. A nil rnd uses utils.RandomFloat.
func NewGenerator(cat *catalog.Catalog, rnd func() float64) *Generator {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Generator{catalog: cat, rnd: rnd}
}

// Eligible returns the catalog types allowed at this reputation and time of
// day, in catalog order.
func (g *Generator) Eligible(reputation int, timeOfDay domain.SpawnTime) []domain.CustomerType {
	var out []domain.CustomerType
	for _, ct := range g.catalog.Customers {
		if ct.ReputationRequirement > reputation {
			continue
		}
		if ct.SpawnTime != "" && ct.SpawnTime != domain.SpawnAny && ct.SpawnTime != timeOfDay {
			continue
		}
		out = append(out, ct)
	}
	return out
}

// Select draws one eligible type weighted by spawn rate.
func (g *Generator) Select(reputation int, timeOfDay domain.SpawnTime) (domain.CustomerType, error) {
	candidates := g.Eligible(reputation, timeOfDay)
	weights := make([]float64, len(candidates))
	for i, ct := range candidates {
		weights[i] = ct.SpawnRate
	}
	idx := utils.WeightedIndex(weights, g.rnd())
	if idx < 0 {
		return domain.CustomerType{}, fmt.Errorf("%w: reputation %d, %s", domain.ErrNoEligibleCustomer, reputation, timeOfDay)
	}
	return candidates[idx], nil
}

// Spawn builds a live customer from a type. Both budget bounds get their own
// upward jitter and the instance shares no slices or maps with the catalog.
func (g *Generator) Spawn(ct domain.CustomerType, now domain.GameTime) domain.CustomerInstance {
	g.seq++
	c := ct.Clone()
	jitter := g.catalog.Economy.BudgetJitter

	budget := domain.Budget{
		Min: ct.Budget.Min + int(math.Floor(float64(ct.Budget.Min)*jitter*g.rnd())),
		Max: ct.Budget.Max + int(math.Floor(float64(ct.Budget.Max)*jitter*g.rnd())),
	}
	budget.Max = max(budget.Max, budget.Min)

	return domain.CustomerInstance{
		ID:              fmt.Sprintf("%s-%d", IDPrefix, g.seq),
		TypeID:          ct.ID,
		Name:            ct.Name,
		Tier:            ct.Tier,
		Budget:          budget,
		Patience:        ct.Patience,
		CurrentPatience: ct.Patience,
		Preferences:     c.Preferences,
		Behavior:        ct.Behavior,
		Dialogue:        c.Dialogue,
		ArrivedAt:       now,
		Status:          domain.StatusWaiting,
	}
}

// Generate selects a type and spawns it.
func (g *Generator) Generate(reputation int, timeOfDay domain.SpawnTime, now domain.GameTime) (domain.CustomerInstance, error) {
	ct, err := g.Select(reputation, timeOfDay)
	if err != nil {
		return domain.CustomerInstance{}, err
	}
	return g.Spawn(ct, now), nil
}
