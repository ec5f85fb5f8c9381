// Package catalog holds the read-only static game tables: economy constants,
// materials, recipes, potions, staff roles, customer types, world event tables
// and reputation tiers.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/TavernSim_Go/internal/domain"
)

//go:embed default.yaml
var defaultYAML []byte

// Potion categories
const (
	PotionCategoryHealing = "healing"
	PotionCategoryBattle  = "battle"
	PotionCategoryUtility = "utility"
)

// Economy holds the tunable balance numbers.
type Economy struct {
	StartingGold         int     `yaml:"starting_gold" json:"startingGold" validate:"gte=0"`
	StartingReputation   int     `yaml:"starting_reputation" json:"startingReputation" validate:"gte=0,lte=1000"`
	StartingLevel        int     `yaml:"starting_level" json:"startingLevel" validate:"gte=1"`
	StartingCapacity     int     `yaml:"starting_capacity" json:"startingCapacity" validate:"gte=1"`
	StartingBattleRating int     `yaml:"starting_battle_rating" json:"startingBattleRating" validate:"gte=0"`
	DailyRent            int     `yaml:"daily_rent" json:"dailyRent" validate:"gte=0"`
	ReputationDecay      int     `yaml:"reputation_decay" json:"reputationDecay" validate:"gte=0"`
	UpgradeBaseCost      int     `yaml:"upgrade_base_cost" json:"upgradeBaseCost" validate:"gt=0"`
	CapacityStep         int     `yaml:"capacity_step" json:"capacityStep" validate:"gte=1"`
	BattleRatingStep     int     `yaml:"battle_rating_step" json:"battleRatingStep" validate:"gte=0"`
	MasteryCrafts        int     `yaml:"mastery_crafts" json:"masteryCrafts" validate:"gte=1"`
	BudgetJitter         float64 `yaml:"budget_jitter" json:"budgetJitter" validate:"gte=0,lte=1"`
	SatisfiedThreshold   int     `yaml:"satisfied_threshold" json:"satisfiedThreshold" validate:"gte=0,lte=100"`
	ServeExperience      int     `yaml:"serve_experience" json:"serveExperience" validate:"gte=0"`
	CraftExperience      int     `yaml:"craft_experience" json:"craftExperience" validate:"gte=0"`
	ComplaintPenalty     int     `yaml:"complaint_penalty" json:"complaintPenalty" validate:"gte=0"`
	TipRatio             float64 `yaml:"tip_ratio" json:"tipRatio" validate:"gte=0,lte=1"`
	MaxWaitingCustomers  int     `yaml:"max_waiting_customers" json:"maxWaitingCustomers" validate:"gte=1"`
}

// StartingStock is what a new game begins with.
type StartingStock struct {
	Recipes   []string       `yaml:"recipes" json:"recipes"`
	Materials map[string]int `yaml:"materials" json:"materials" validate:"dive,gt=0"`
	Potions   map[string]int `yaml:"potions" json:"potions" validate:"dive,gt=0"`
}

// Material is a crafting ingredient.
type Material struct {
	ID     string `yaml:"id" json:"id" validate:"required"`
	Name   string `yaml:"name" json:"name" validate:"required"`
	Price  int    `yaml:"price" json:"price" validate:"gte=0"`
	Rarity string `yaml:"rarity" json:"rarity" validate:"oneof=common uncommon rare legendary"`
}

// Potion is a sellable product. Its id doubles as the potion type used by
// customer preferences and world events.
type Potion struct {
	ID        string `yaml:"id" json:"id" validate:"required"`
	Name      string `yaml:"name" json:"name" validate:"required"`
	Category  string `yaml:"category" json:"category" validate:"oneof=healing battle utility"`
	BasePrice int    `yaml:"base_price" json:"basePrice" validate:"gt=0"`
}

// Recipe turns materials into potions.
type Recipe struct {
	ID        string         `yaml:"id" json:"id" validate:"required"`
	Name      string         `yaml:"name" json:"name" validate:"required"`
	Potion    string         `yaml:"potion" json:"potion" validate:"required"`
	Yield     int            `yaml:"yield" json:"yield" validate:"gte=1"`
	Legendary bool           `yaml:"legendary" json:"legendary"`
	Materials map[string]int `yaml:"materials" json:"materials" validate:"required,min=1,dive,gt=0"`
}

// StaffRole is a hireable staff template.
type StaffRole struct {
	ID              string  `yaml:"id" json:"id" validate:"required"`
	Name            string  `yaml:"name" json:"name" validate:"required"`
	Salary          int     `yaml:"salary" json:"salary" validate:"gte=0"`
	SkillMultiplier float64 `yaml:"skill_multiplier" json:"skillMultiplier" validate:"gt=0"`
	Efficiency      float64 `yaml:"efficiency" json:"efficiency" validate:"gt=0"`
}

// EventSpec configures generation and rewards of one world event type.
type EventSpec struct {
	Category               domain.EventCategory `yaml:"category" json:"category" validate:"oneof=market customer disaster weekly monthly battle"`
	Title                  string               `yaml:"title" json:"title" validate:"required"`
	Description            string               `yaml:"description" json:"description"`
	Probability            float64              `yaml:"probability" json:"probability" validate:"gte=0,lte=1"`
	DurationHours          int                  `yaml:"duration_hours" json:"durationHours" validate:"gte=0"`
	LeadHours              int                  `yaml:"lead_hours" json:"leadHours" validate:"gte=0"`
	Effects                map[string]float64   `yaml:"effects" json:"effects,omitempty" validate:"dive,gt=0"`
	QuantityMin            int                  `yaml:"quantity_min" json:"quantityMin,omitempty" validate:"gte=0"`
	QuantityMax            int                  `yaml:"quantity_max" json:"quantityMax,omitempty" validate:"gtefield=QuantityMin"`
	GoldPerUnit            int                  `yaml:"gold_per_unit" json:"goldPerUnit,omitempty" validate:"gte=0"`
	RewardGold             int                  `yaml:"reward_gold" json:"rewardGold,omitempty" validate:"gte=0"`
	RewardReputation       int                  `yaml:"reward_reputation" json:"rewardReputation,omitempty" validate:"gte=0"`
	RewardExperience       int                  `yaml:"reward_experience" json:"rewardExperience,omitempty" validate:"gte=0"`
	RewardRecipe           string               `yaml:"reward_recipe" json:"rewardRecipe,omitempty"`
	RewardMaterial         string               `yaml:"reward_material" json:"rewardMaterial,omitempty"`
	CustomerType           string               `yaml:"customer_type" json:"customerType,omitempty"`
	PotionTypes            []string             `yaml:"potion_types" json:"potionTypes,omitempty"`
	Opponents              []string             `yaml:"opponents" json:"opponents,omitempty"`
	BonusGoldPerUnit       int                  `yaml:"bonus_gold_per_unit" json:"bonusGoldPerUnit,omitempty" validate:"gte=0"`
	BonusReputationPerUnit int                  `yaml:"bonus_reputation_per_unit" json:"bonusReputationPerUnit,omitempty" validate:"gte=0"`
}

// ReputationTier names a reputation band starting at Min.
type ReputationTier struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	Min  int    `yaml:"min" json:"min" validate:"gte=0,lte=1000"`
}

// Catalog is the full static configuration. It is read-only after Parse.
type Catalog struct {
	Version    string                         `yaml:"version" json:"version" validate:"required"`
	Economy    Economy                        `yaml:"economy" json:"economy"`
	Start      StartingStock                  `yaml:"start" json:"start"`
	Materials  []Material                     `yaml:"materials" json:"materials" validate:"required,dive"`
	Potions    []Potion                       `yaml:"potions" json:"potions" validate:"required,dive"`
	Recipes    []Recipe                       `yaml:"recipes" json:"recipes" validate:"required,dive"`
	Staff      []StaffRole                    `yaml:"staff" json:"staff" validate:"dive"`
	Customers  []domain.CustomerType          `yaml:"customers" json:"customers" validate:"required,dive"`
	Events     map[domain.EventType]EventSpec `yaml:"events" json:"events" validate:"required,dive"`
	Reputation []ReputationTier               `yaml:"reputation" json:"reputation" validate:"required,dive"`

	materials map[string]Material
	potions   map[string]Potion
	recipes   map[string]Recipe
	staff     map[string]StaffRole
	customers map[string]domain.CustomerType
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// MustDefault is Default for tests and benchmarks.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalog, path, err)
	}
	return Parse(data)
}

// Parse decodes, validates and indexes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalog, err)
	}
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) index() error {
	c.materials = make(map[string]Material, len(c.Materials))
	for _, m := range c.Materials {
		if _, dup := c.materials[m.ID]; dup {
			return fmt.Errorf(ErrMsgDuplicateID, "material", m.ID)
		}
		c.materials[m.ID] = m
	}
	c.potions = make(map[string]Potion, len(c.Potions))
	for _, p := range c.Potions {
		if _, dup := c.potions[p.ID]; dup {
			return fmt.Errorf(ErrMsgDuplicateID, "potion", p.ID)
		}
		c.potions[p.ID] = p
	}
	c.recipes = make(map[string]Recipe, len(c.Recipes))
	for _, r := range c.Recipes {
		if _, dup := c.recipes[r.ID]; dup {
			return fmt.Errorf(ErrMsgDuplicateID, "recipe", r.ID)
		}
		if _, ok := c.potions[r.Potion]; !ok {
			return fmt.Errorf(ErrMsgDanglingRef, "recipe", r.ID, "potion", r.Potion)
		}
		for m := range r.Materials {
			if _, ok := c.materials[m]; !ok {
				return fmt.Errorf(ErrMsgDanglingRef, "recipe", r.ID, "material", m)
			}
		}
		c.recipes[r.ID] = r
	}
	c.staff = make(map[string]StaffRole, len(c.Staff))
	for _, s := range c.Staff {
		c.staff[s.ID] = s
	}
	c.customers = make(map[string]domain.CustomerType, len(c.Customers))
	for _, ct := range c.Customers {
		if _, dup := c.customers[ct.ID]; dup {
			return fmt.Errorf(ErrMsgDuplicateID, "customer", ct.ID)
		}
		c.customers[ct.ID] = ct
	}
	for _, id := range c.Start.Recipes {
		if _, ok := c.recipes[id]; !ok {
			return fmt.Errorf(ErrMsgDanglingRef, "start", "recipes", "recipe", id)
		}
	}
	for t, spec := range c.Events {
		for _, p := range spec.PotionTypes {
			if _, ok := c.potions[p]; !ok {
				return fmt.Errorf(ErrMsgDanglingRef, "event", string(t), "potion", p)
			}
		}
		if spec.RewardRecipe != "" {
			if _, ok := c.recipes[spec.RewardRecipe]; !ok {
				return fmt.Errorf(ErrMsgDanglingRef, "event", string(t), "recipe", spec.RewardRecipe)
			}
		}
		if spec.RewardMaterial != "" {
			if _, ok := c.materials[spec.RewardMaterial]; !ok {
				return fmt.Errorf(ErrMsgDanglingRef, "event", string(t), "material", spec.RewardMaterial)
			}
		}
	}
	sort.SliceStable(c.Reputation, func(i, j int) bool { return c.Reputation[i].Min < c.Reputation[j].Min })
	return nil
}

// Material looks up a material by id.
func (c *Catalog) Material(id string) (Material, error) {
	m, ok := c.materials[id]
	if !ok {
		return Material{}, unknown("material", id)
	}
	return m, nil
}

// Potion looks up a potion by id.
func (c *Catalog) Potion(id string) (Potion, error) {
	p, ok := c.potions[id]
	if !ok {
		return Potion{}, unknown("potion", id)
	}
	return p, nil
}

// Recipe looks up a recipe by id.
func (c *Catalog) Recipe(id string) (Recipe, error) {
	r, ok := c.recipes[id]
	if !ok {
		return Recipe{}, unknown("recipe", id)
	}
	return r, nil
}

// StaffRole looks up a staff template by id.
func (c *Catalog) StaffRole(id string) (StaffRole, error) {
	s, ok := c.staff[id]
	if !ok {
		return StaffRole{}, unknown("staff role", id)
	}
	return s, nil
}

// CustomerType looks up a customer type by id. The returned value shares its
// slices and maps with the catalog; callers that keep it must copy.
func (c *Catalog) CustomerType(id string) (domain.CustomerType, error) {
	ct, ok := c.customers[id]
	if !ok {
		return domain.CustomerType{}, unknown("customer type", id)
	}
	return ct, nil
}

// Event looks up the configuration of a world event type.
func (c *Catalog) Event(t domain.EventType) (EventSpec, error) {
	spec, ok := c.Events[t]
	if !ok {
		return EventSpec{}, unknown("event", string(t))
	}
	return spec, nil
}

// ReputationTier returns the name of the highest tier whose minimum is met.
func (c *Catalog) ReputationTier(reputation int) string {
	name := ""
	for _, tier := range c.Reputation {
		if reputation >= tier.Min {
			name = tier.Name
		}
	}
	return name
}

func unknown(kind, id string) error {
	return fmt.Errorf("%w: %s %q", domain.ErrUnknownID, kind, id)
}
