// Package tavern implements the gameplay actions that drive the simulation:
// crafting potions, letting customers in, serving them and watching their
// patience run out.
package tavern

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/customer"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/gamestate"
	"github.com/osse101/TavernSim_Go/internal/logger"
	"github.com/osse101/TavernSim_Go/internal/utils"
)

// Effects are the active world event modifiers the tavern prices and spawns by.
type Effects interface {
	PriceMultiplier() float64
	CustomerRateMultiplier() float64
	DemandMultiplier(potionType string) float64
}

// ServeOrder is a request to hand a potion to a waiting customer.
type ServeOrder struct {
	CustomerID string
	PotionID   string
	// Price of 0 sells at list price.
	Price int
	// ServiceTime nil uses the patience the customer has already spent.
	ServiceTime *float64
}

// ServeResult reports how a service went.
type ServeResult struct {
	Customer     domain.CustomerInstance `json:"customer"`
	PotionID     string                  `json:"potionId"`
	ListPrice    int                     `json:"listPrice"`
	PricePaid    int                     `json:"pricePaid"`
	Haggled      bool                    `json:"haggled"`
	Satisfaction int                     `json:"satisfaction"`
	Departure    customer.Departure      `json:"departure"`
}

// Tavern runs the shop floor. Not safe for concurrent use.
type Tavern struct {
	state     *gamestate.State
	catalog   *catalog.Catalog
	effects   Effects
	generator *customer.Generator
	behavior  *customer.Behavior
	bus       event.Bus
	rnd       func() float64
	waiting   []*domain.CustomerInstance
}

// New creates a tavern. A nil rnd uses utils.RandomFloat.
func New(state *gamestate.State, effects Effects, bus event.Bus, rnd func() float64) *Tavern {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	cat := state.Catalog()
	return &Tavern{
		state:     state,
		catalog:   cat,
		effects:   effects,
		generator: customer.NewGenerator(cat, rnd),
		behavior:  customer.NewBehavior(cat.Economy, rnd),
		bus:       bus,
		rnd:       rnd,
	}
}

// CraftPotion brews batches of a known recipe. Materials for all batches are
// consumed together or not at all.
func (t *Tavern) CraftPotion(ctx context.Context, recipeID string, batches int) (int, error) {
	if batches <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	recipe, err := t.catalog.Recipe(recipeID)
	if err != nil {
		return 0, err
	}
	if !t.state.KnowsRecipe(recipeID) {
		return 0, fmt.Errorf("%w: %s", domain.ErrRecipeNotDiscovered, recipeID)
	}

	need := make(map[string]int, len(recipe.Materials))
	for id, n := range recipe.Materials {
		need[id] = n * batches
	}
	if !t.state.ConsumeMaterials(ctx, need) {
		return 0, fmt.Errorf("%w: materials for %d x %s", domain.ErrInsufficientQuantity, batches, recipeID)
	}

	produced := recipe.Yield * batches
	t.state.AddPotion(ctx, recipe.Potion, produced)

	if t.state.RecordCraft(recipeID, batches) >= t.catalog.Economy.MasteryCrafts && t.state.MasterRecipe(ctx, recipeID) {
		logger.FromContext(ctx).Info(LogMsgRecipeMastered, "recipe", recipeID)
	}
	t.state.AddExperience(ctx, t.catalog.Economy.CraftExperience*batches)

	logger.FromContext(ctx).Info(LogMsgPotionCrafted, "recipe", recipeID, "potion", recipe.Potion, "quantity", produced)
	event.Emit(ctx, t.bus, event.NewPotionMadeEvent(recipe.Potion, produced))
	return produced, nil
}

// ListPrice is a potion's base price adjusted by active market and demand
// effects.
func (t *Tavern) ListPrice(potionID string) (int, error) {
	p, err := t.catalog.Potion(potionID)
	if err != nil {
		return 0, err
	}
	mult := t.effects.PriceMultiplier() * t.effects.DemandMultiplier(potionID)
	return max(1, int(math.Round(float64(p.BasePrice)*mult))), nil
}

// Customers returns copies of the waiting customers in arrival order.
func (t *Tavern) Customers() []domain.CustomerInstance {
	out := make([]domain.CustomerInstance, len(t.waiting))
	for i, c := range t.waiting {
		out[i] = c.Clone()
	}
	return out
}

// Reset empties the floor. Customers are not part of a save.
func (t *Tavern) Reset() {
	t.waiting = nil
}

// SpawnCustomer lets one customer in if there is room.
func (t *Tavern) SpawnCustomer(ctx context.Context) (domain.CustomerInstance, error) {
	if len(t.waiting) >= t.capacity() {
		logger.FromContext(ctx).Debug(LogMsgQueueFull, "waiting", len(t.waiting))
		return domain.CustomerInstance{}, fmt.Errorf("%w: %d waiting", domain.ErrQueueFull, len(t.waiting))
	}
	c, err := t.generator.Generate(t.state.Reputation(), t.state.TimeOfDay(), t.state.Now())
	if err != nil {
		return domain.CustomerInstance{}, err
	}
	t.waiting = append(t.waiting, &c)
	logger.FromContext(ctx).Info(LogMsgCustomerArrived, "id", c.ID, "type", c.TypeID, "greeting", t.behavior.Line(&c, domain.DialogueGreeting))
	return c.Clone(), nil
}

// TrySpawn rolls the spawn chance, scaled by the active customer rate
// multiplier, and spawns on success. A full tavern is not an error here.
func (t *Tavern) TrySpawn(ctx context.Context) (bool, error) {
	if !t.state.Tavern().IsOpen {
		return false, nil
	}
	chance := math.Min(1, BaseSpawnChance*t.effects.CustomerRateMultiplier())
	if !utils.Chance(chance, t.rnd()) {
		return false, nil
	}
	if _, err := t.SpawnCustomer(ctx); err != nil {
		if isQueueFull(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (t *Tavern) capacity() int {
	return min(t.state.Tavern().Capacity, t.catalog.Economy.MaxWaitingCustomers)
}

func (t *Tavern) find(id string) (int, *domain.CustomerInstance) {
	i := slices.IndexFunc(t.waiting, func(c *domain.CustomerInstance) bool { return c.ID == id })
	if i < 0 {
		return -1, nil
	}
	return i, t.waiting[i]
}

func (t *Tavern) remove(i int) {
	t.waiting = slices.Delete(t.waiting, i, i+1)
}
