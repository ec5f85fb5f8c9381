package domain

// CustomerTier is the catalog tier of a customer type.
type CustomerTier string

const (
	TierCommon  CustomerTier = "common"
	TierVIP     CustomerTier = "vip"
	TierSpecial CustomerTier = "special"
)

// SpawnTime restricts when a customer type may arrive.
type SpawnTime string

const (
	SpawnAny   SpawnTime = "any"
	SpawnDay   SpawnTime = "day"
	SpawnNight SpawnTime = "night"
)

// CustomerStatus is the lifecycle state of a customer instance.
type CustomerStatus string

const (
	StatusWaiting CustomerStatus = "waiting"
	StatusServed  CustomerStatus = "served"
	StatusAngry   CustomerStatus = "angry"
	StatusLeft    CustomerStatus = "left"
)

// Dialogue states
const (
	DialogueGreeting  = "greeting"
	DialogueWaiting   = "waiting"
	DialogueImpatient = "impatient"
	DialogueHappy     = "happy"
	DialogueAngry     = "angry"
	DialogueFarewell  = "farewell"
	DialogueHaggle    = "haggle"
)

// Budget is an inclusive gold range.
type Budget struct {
	Min int `json:"min" yaml:"min" validate:"gte=0"`
	Max int `json:"max" yaml:"max" validate:"gtefield=Min"`
}

// CustomerBehavior are the probabilities and rates driving a customer.
type CustomerBehavior struct {
	PatienceDecayRate float64 `json:"patienceDecayRate" yaml:"patience_decay_rate" validate:"gt=0"`
	HaggleChance      float64 `json:"haggleChance" yaml:"haggle_chance" validate:"gte=0,lte=1"`
	TipChance         float64 `json:"tipChance" yaml:"tip_chance" validate:"gte=0,lte=1"`
	ComplaintChance   float64 `json:"complaintChance" yaml:"complaint_chance" validate:"gte=0,lte=1"`
}

// CustomerType is a static catalog entry.
type CustomerType struct {
	ID                    string              `json:"id" yaml:"id" validate:"required"`
	Name                  string              `json:"name" yaml:"name" validate:"required"`
	Tier                  CustomerTier        `json:"tier" yaml:"tier" validate:"oneof=common vip special"`
	Patience              float64             `json:"patience" yaml:"patience" validate:"gt=0"`
	Budget                Budget              `json:"budget" yaml:"budget"`
	Preferences           []string            `json:"preferences" yaml:"preferences"`
	ReputationRequirement int                 `json:"reputationRequirement" yaml:"reputation_requirement" validate:"gte=0"`
	SpawnRate             float64             `json:"spawnRate" yaml:"spawn_rate" validate:"gt=0"`
	SpawnTime             SpawnTime           `json:"spawnTime" yaml:"spawn_time" validate:"omitempty,oneof=any day night"`
	Behavior              CustomerBehavior    `json:"behavior" yaml:"behavior"`
	Dialogue              map[string][]string `json:"dialogue" yaml:"dialogue"`
}

// CustomerInstance is a live customer spawned from a CustomerType.
type CustomerInstance struct {
	ID              string              `json:"id"`
	TypeID          string              `json:"typeId"`
	Name            string              `json:"name"`
	Tier            CustomerTier        `json:"tier"`
	Budget          Budget              `json:"budget"`
	Patience        float64             `json:"patience"`
	CurrentPatience float64             `json:"currentPatience"`
	Preferences     []string            `json:"preferences"`
	Behavior        CustomerBehavior    `json:"behavior"`
	Dialogue        map[string][]string `json:"dialogue"`
	ArrivedAt       GameTime            `json:"arrivedAt"`
	Status          CustomerStatus      `json:"status"`
}

// Prefers reports whether the potion type is one of the customer's preferences.
func (c *CustomerInstance) Prefers(potionType string) bool {
	for _, p := range c.Preferences {
		if p == potionType {
			return true
		}
	}
	return false
}
