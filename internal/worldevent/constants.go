package worldevent

import "github.com/osse101/TavernSim_Go/internal/domain"

// Result reasons recorded on completed events
const (
	ReasonExpired   = "expired"
	ReasonFulfilled = "fulfilled"
	ReasonAuto      = "auto_resolved"
	ReasonExternal  = "external"
)

// IDPrefix prefixes generated event ids
const IDPrefix = "evt"

// Generation cadence for the unconditional categories
const (
	WeeklyEveryDays  = 7
	MonthlyEveryDays = 30
)

// rolledEvents are generated by an independent Bernoulli trial each day,
// in this order.
var rolledEvents = []domain.EventType{
	domain.EventMarketSurplus,
	domain.EventMarketShortage,
	domain.EventFestival,
	domain.EventBigOrder,
	domain.EventVIPVisit,
	domain.EventCompetitorChallenge,
	domain.EventPlague,
	domain.EventMonsterAttack,
}

// Log messages
const (
	LogMsgEventQueued         = "World event queued"
	LogMsgEventActivated      = "World event activated"
	LogMsgEventCompleted      = "World event completed"
	LogMsgEventExpired        = "World event expired"
	LogMsgEventSynthesized    = "Recorded result for unknown event, synthesized history entry"
	LogMsgQueuedEventResolved = "Result recorded for queued event, resolving without activation"
	LogMsgNoEventSpec         = "No catalog entry for event type, skipping"
	LogMsgPlagueBonus         = "Plague bonus granted for healing potions"
	LogMsgBigOrderProgress    = "Big order delivery recorded"
	LogMsgRewardFailed        = "Event reward could not be applied"
)
