package event

import (
	"github.com/osse101/TavernSim_Go/internal/domain"
)

// Typed event payloads for type safety

// GoldChangedPayloadV1 is published after every successful gold mutation
type GoldChangedPayloadV1 struct {
	Amount int `json:"amount"`
	Total  int `json:"total"`
}

// ReputationChangedPayloadV1 carries the applied (post-clamp) delta
type ReputationChangedPayloadV1 struct {
	Amount int `json:"amount"`
	Total  int `json:"total"`
}

// MaterialPayloadV1 is used for material.added and material.consumed
type MaterialPayloadV1 struct {
	Material string `json:"material"`
	Amount   int    `json:"amount"`
	Total    int    `json:"total"`
}

// PotionPayloadV1 is used for potion.added and potion.consumed
type PotionPayloadV1 struct {
	Potion string `json:"potion"`
	Amount int    `json:"amount"`
	Total  int    `json:"total"`
}

// RecipePayloadV1 is used for recipe.discovered and recipe.mastered
type RecipePayloadV1 struct {
	Recipe string `json:"recipe"`
}

// LevelUpPayloadV1 is published once per level gained
type LevelUpPayloadV1 struct {
	NewLevel int `json:"newLevel"`
}

// TimeAdvancedPayloadV1 is published after every clock advance
type TimeAdvancedPayloadV1 struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewDayPayloadV1 is published once per day boundary crossed
type NewDayPayloadV1 struct {
	Day int `json:"day"`
}

// DailyResetPayloadV1 summarises the nightly settlement
type DailyResetPayloadV1 struct {
	Day              int `json:"day"`
	SalariesPaid     int `json:"salariesPaid"`
	RentPaid         int `json:"rentPaid"`
	ReputationDecay  int `json:"reputationDecay"`
	GoldAfterSettled int `json:"goldAfterSettled"`
}

// BattleEndedPayloadV1 is published when a card battle resolves
type BattleEndedPayloadV1 struct {
	Won            bool `json:"won"`
	OpponentRating int  `json:"opponentRating"`
}

// CustomerServedPayloadV1 is published when a customer is served a potion
type CustomerServedPayloadV1 struct {
	CustomerID   string `json:"customerId"`
	CustomerType string `json:"customerType"`
	PotionType   string `json:"potionType"`
	Quantity     int    `json:"quantity"`
	Price        int    `json:"price"`
	Satisfaction int    `json:"satisfaction"`
}

// CustomerLeftPayloadV1 is published when a customer leaves unserved
type CustomerLeftPayloadV1 struct {
	CustomerID   string `json:"customerId"`
	CustomerType string `json:"customerType"`
	Reason       string `json:"reason"`
}

// PotionMadePayloadV1 is published after a successful craft
type PotionMadePayloadV1 struct {
	PotionType string `json:"potionType"`
	Quantity   int    `json:"quantity"`
}

// WorldEventPayloadV1 is used for event.queued, event.activated and event.completed
type WorldEventPayloadV1 struct {
	Event domain.EventRecord `json:"event"`
}

// SavePayloadV1 is used for save.completed, load.completed, save.deleted and save.imported
type SavePayloadV1 struct {
	Slot    int    `json:"slot"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Type-safe event constructors

func newEvent(t string, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(t),
		Payload: payload,
	}
}

// NewGoldChangedEvent creates a gold.changed event
func NewGoldChangedEvent(amount, total int) Event {
	return newEvent(domain.EventTypeGoldChanged, GoldChangedPayloadV1{Amount: amount, Total: total})
}

// NewReputationChangedEvent creates a reputation.changed event
func NewReputationChangedEvent(amount, total int) Event {
	return newEvent(domain.EventTypeReputationChanged, ReputationChangedPayloadV1{Amount: amount, Total: total})
}

// NewMaterialAddedEvent creates a material.added event
func NewMaterialAddedEvent(material string, amount, total int) Event {
	return newEvent(domain.EventTypeMaterialAdded, MaterialPayloadV1{Material: material, Amount: amount, Total: total})
}

// NewMaterialConsumedEvent creates a material.consumed event
func NewMaterialConsumedEvent(material string, amount, total int) Event {
	return newEvent(domain.EventTypeMaterialConsumed, MaterialPayloadV1{Material: material, Amount: amount, Total: total})
}

// NewPotionAddedEvent creates a potion.added event
func NewPotionAddedEvent(potion string, amount, total int) Event {
	return newEvent(domain.EventTypePotionAdded, PotionPayloadV1{Potion: potion, Amount: amount, Total: total})
}

// NewPotionConsumedEvent creates a potion.consumed event
func NewPotionConsumedEvent(potion string, amount, total int) Event {
	return newEvent(domain.EventTypePotionConsumed, PotionPayloadV1{Potion: potion, Amount: amount, Total: total})
}

// NewRecipeDiscoveredEvent creates a recipe.discovered event
func NewRecipeDiscoveredEvent(recipe string) Event {
	return newEvent(domain.EventTypeRecipeDiscovered, RecipePayloadV1{Recipe: recipe})
}

// NewRecipeMasteredEvent creates a recipe.mastered event
func NewRecipeMasteredEvent(recipe string) Event {
	return newEvent(domain.EventTypeRecipeMastered, RecipePayloadV1{Recipe: recipe})
}

// NewLevelUpEvent creates a player.level_up event
func NewLevelUpEvent(newLevel int) Event {
	return newEvent(domain.EventTypeLevelUp, LevelUpPayloadV1{NewLevel: newLevel})
}

// NewTimeAdvancedEvent creates a time.advanced event
func NewTimeAdvancedEvent(day, hour, minute int) Event {
	return newEvent(domain.EventTypeTimeAdvanced, TimeAdvancedPayloadV1{Day: day, Hour: hour, Minute: minute})
}

// NewNewDayEvent creates a day.new event
func NewNewDayEvent(day int) Event {
	return newEvent(domain.EventTypeNewDay, NewDayPayloadV1{Day: day})
}

// NewDailyResetEvent creates a day.reset event
func NewDailyResetEvent(payload DailyResetPayloadV1) Event {
	return newEvent(domain.EventTypeDailyReset, payload)
}

// NewBattleEndedEvent creates a battle.ended event
func NewBattleEndedEvent(won bool, opponentRating int) Event {
	return newEvent(domain.EventTypeBattleEnded, BattleEndedPayloadV1{Won: won, OpponentRating: opponentRating})
}

// NewCustomerServedEvent creates a customer.served event
func NewCustomerServedEvent(payload CustomerServedPayloadV1) Event {
	return newEvent(domain.EventTypeCustomerServed, payload)
}

// NewCustomerLeftEvent creates a customer.left event
func NewCustomerLeftEvent(customerID, customerType, reason string) Event {
	return newEvent(domain.EventTypeCustomerLeft, CustomerLeftPayloadV1{
		CustomerID:   customerID,
		CustomerType: customerType,
		Reason:       reason,
	})
}

// NewPotionMadeEvent creates a potion.made event
func NewPotionMadeEvent(potionType string, quantity int) Event {
	return newEvent(domain.EventTypePotionMade, PotionMadePayloadV1{PotionType: potionType, Quantity: quantity})
}

// NewEventQueuedEvent creates an event.queued notification
func NewEventQueuedEvent(rec domain.EventRecord) Event {
	return newEvent(domain.EventTypeEventQueued, WorldEventPayloadV1{Event: rec})
}

// NewEventActivatedEvent creates an event.activated notification
func NewEventActivatedEvent(rec domain.EventRecord) Event {
	return newEvent(domain.EventTypeEventActivated, WorldEventPayloadV1{Event: rec})
}

// NewEventCompletedEvent creates an event.completed notification
func NewEventCompletedEvent(rec domain.EventRecord) Event {
	return newEvent(domain.EventTypeEventCompleted, WorldEventPayloadV1{Event: rec})
}

// NewSaveEvent creates one of the persistence notifications
func NewSaveEvent(eventType string, slot int, err error) Event {
	payload := SavePayloadV1{Slot: slot, Success: err == nil}
	if err != nil {
		payload.Error = err.Error()
	}
	return newEvent(eventType, payload)
}
