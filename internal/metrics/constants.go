package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Notification metric names
const (
	MetricNameEventsPublished = "tavern_notifications_total"
)

// Game metric names
const (
	MetricNameGoldEarned      = "tavern_gold_earned_total"
	MetricNameGoldSpent       = "tavern_gold_spent_total"
	MetricNameGoldBalance     = "tavern_gold_balance"
	MetricNameReputation      = "tavern_reputation"
	MetricNameGameDay         = "tavern_game_day"
	MetricNamePlayerLevel     = "tavern_player_level"
	MetricNameCustomersServed = "tavern_customers_served_total"
	MetricNameCustomersLeft   = "tavern_customers_left_total"
	MetricNameSatisfaction    = "tavern_customer_satisfaction"
	MetricNamePotionsCrafted  = "tavern_potions_crafted_total"
	MetricNameWorldEvents     = "tavern_world_events_total"
	MetricNameSaveOperations  = "tavern_save_operations_total"
	MetricNameBattles         = "tavern_battles_total"
	MetricNameRecipesMastered = "tavern_recipes_mastered_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished = "Notifications published on the game bus"

	HelpTextGoldEarned      = "Gold credited to the player"
	HelpTextGoldSpent       = "Gold debited from the player, nightly settlement included"
	HelpTextGoldBalance     = "Current gold balance"
	HelpTextReputation      = "Current reputation"
	HelpTextGameDay         = "Current in-game day"
	HelpTextPlayerLevel     = "Current player level"
	HelpTextCustomersServed = "Customers served by customer type"
	HelpTextCustomersLeft   = "Customers who left unserved by reason"
	HelpTextSatisfaction    = "Satisfaction score of served customers"
	HelpTextPotionsCrafted  = "Potions crafted by potion type"
	HelpTextWorldEvents     = "World events completed by type and outcome"
	HelpTextSaveOperations  = "Save manager operations by operation and outcome"
	HelpTextBattles         = "Card battles by outcome"
	HelpTextRecipesMastered = "Recipes mastered"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod       = "method"
	LabelPath         = "path"
	LabelStatus       = "status"
	LabelType         = "type"
	LabelCustomerType = "customer_type"
	LabelReason       = "reason"
	LabelPotion       = "potion"
	LabelOutcome      = "outcome"
	LabelOperation    = "operation"
)

// Label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeWon     = "won"
	OutcomeLost    = "lost"

	PathUnmatched = "unmatched"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets  = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
	SatisfactionBuckets  = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
)

// Log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for notification"
)
