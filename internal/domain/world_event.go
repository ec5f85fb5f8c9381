package domain

// EventType identifies the kind of world event.
type EventType string

const (
	EventMarketSurplus       EventType = "market_surplus"
	EventMarketShortage      EventType = "market_shortage"
	EventFestival            EventType = "festival"
	EventBigOrder            EventType = "big_order"
	EventVIPVisit            EventType = "vip_visit"
	EventCompetitorChallenge EventType = "competitor_challenge"
	EventPlague              EventType = "plague"
	EventMonsterAttack       EventType = "monster_attack"
	EventGuildGathering      EventType = "guild_gathering"
	EventMagicCompetition    EventType = "magic_competition"
	EventNarrative           EventType = "narrative"
	EventTournament          EventType = "tournament"
)

// EventCategory groups world events by their generation roll.
type EventCategory string

const (
	CategoryMarket   EventCategory = "market"
	CategoryCustomer EventCategory = "customer"
	CategoryDisaster EventCategory = "disaster"
	CategoryWeekly   EventCategory = "weekly"
	CategoryMonthly  EventCategory = "monthly"
	CategoryBattle   EventCategory = "battle"
)

// Effect keys understood by the effect aggregation queries.
const (
	EffectPriceMultiplier        = "priceMultiplier"
	EffectCustomerRateMultiplier = "customerRateMultiplier"
	EffectReputationMultiplier   = "reputationMultiplier"
	EffectHealingDemand          = "healingDemandMultiplier"
	EffectBattleDemand           = "battleDemandMultiplier"
)

// EventData is the optional type-specific payload of a world event.
type EventData struct {
	PotionType       string `json:"potionType,omitempty"`
	Quantity         int    `json:"quantity,omitempty"`
	Delivered        int    `json:"delivered,omitempty"`
	RewardGold       int    `json:"rewardGold,omitempty"`
	RewardReputation int    `json:"rewardReputation,omitempty"`
	RewardExperience int    `json:"rewardExperience,omitempty"`
	RewardRecipe     string `json:"rewardRecipe,omitempty"`
	RewardMaterial   string `json:"rewardMaterial,omitempty"`
	CustomerType     string `json:"customerType,omitempty"`
	Opponent         string `json:"opponent,omitempty"`
}

// EventChoice is one option of a choice-driven narrative event.
type EventChoice struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Rewards   map[string]int `json:"rewards,omitempty"`
	Penalties map[string]int `json:"penalties,omitempty"`
}

// EventResult records how an event was resolved.
type EventResult struct {
	Reason string       `json:"reason,omitempty"`
	Choice *EventChoice `json:"choice,omitempty"`
}

// EventRecord is a time-boxed world occurrence moving queue -> active -> history.
type EventRecord struct {
	ID          string             `json:"id"`
	Type        EventType          `json:"type"`
	Category    EventCategory      `json:"category"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Duration    int                `json:"duration,omitempty"`
	Effects     map[string]float64 `json:"effects,omitempty"`
	Data        *EventData         `json:"data,omitempty"`
	StartTime   GameTime           `json:"startTime"`
	EndTime     GameTime           `json:"endTime"`
	Completed   bool               `json:"completed"`
	Success     bool               `json:"success"`
	Result      *EventResult       `json:"resultDetails,omitempty"`
}

// EventBook holds the three lifecycle lists.
type EventBook struct {
	Queue   []EventRecord `json:"queue"`
	Active  []EventRecord `json:"active"`
	History []EventRecord `json:"history"`
}
