package domain

// Notification type constants used across the application for event bus
// subscriptions, metrics and the notification journal.
//
// Notification types follow the pattern: <entity>.<action> (e.g., "gold.changed")
const (
	// Ledger notifications
	EventTypeGoldChanged       = "gold.changed"
	EventTypeReputationChanged = "reputation.changed"
	EventTypeMaterialAdded     = "material.added"
	EventTypeMaterialConsumed  = "material.consumed"
	EventTypePotionAdded       = "potion.added"
	EventTypePotionConsumed    = "potion.consumed"
	EventTypeRecipeDiscovered  = "recipe.discovered"
	EventTypeRecipeMastered    = "recipe.mastered"
	EventTypeLevelUp           = "player.level_up"

	// Clock notifications
	EventTypeTimeAdvanced = "time.advanced"
	EventTypeNewDay       = "day.new"
	EventTypeDailyReset   = "day.reset"

	// Gameplay notifications
	EventTypeBattleEnded    = "battle.ended"
	EventTypeCustomerServed = "customer.served"
	EventTypeCustomerLeft   = "customer.left"
	EventTypePotionMade     = "potion.made"

	// World event lifecycle notifications
	EventTypeEventQueued    = "event.queued"
	EventTypeEventActivated = "event.activated"
	EventTypeEventCompleted = "event.completed"

	// Persistence notifications
	EventTypeSaveCompleted = "save.completed"
	EventTypeLoadCompleted = "load.completed"
	EventTypeSaveDeleted   = "save.deleted"
	EventTypeSaveImported  = "save.imported"
)

// AllEventTypes lists every notification type, in a stable order, for
// subscribers that observe the whole surface (journal, metrics).
var AllEventTypes = []string{
	EventTypeGoldChanged,
	EventTypeReputationChanged,
	EventTypeMaterialAdded,
	EventTypeMaterialConsumed,
	EventTypePotionAdded,
	EventTypePotionConsumed,
	EventTypeRecipeDiscovered,
	EventTypeRecipeMastered,
	EventTypeLevelUp,
	EventTypeTimeAdvanced,
	EventTypeNewDay,
	EventTypeDailyReset,
	EventTypeBattleEnded,
	EventTypeCustomerServed,
	EventTypeCustomerLeft,
	EventTypePotionMade,
	EventTypeEventQueued,
	EventTypeEventActivated,
	EventTypeEventCompleted,
	EventTypeSaveCompleted,
	EventTypeLoadCompleted,
	EventTypeSaveDeleted,
	EventTypeSaveImported,
}
