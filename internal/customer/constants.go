package customer

// Decision weights
const (
	WeightBuyPreferred  = 0.7
	WeightBuyAffordable = 0.5
	WeightLeave         = 0.3
)

// Satisfaction scoring
const (
	SatisfactionBase        = 50.0
	SatisfactionPreference  = 30.0
	SatisfactionFastService = 20.0
	SatisfactionSlowService = -40.0
	SatisfactionCheapPrice  = 10.0
	SatisfactionDearPrice   = -30.0
	SatisfactionPerRep      = 0.02
	SatisfactionMin         = 0
	SatisfactionMax         = 100
)

// Departure thresholds
const (
	TipThreshold       = 80
	ComplaintThreshold = 30
)

// Haggle discount range, as a fraction of the list price
const (
	HaggleMinDiscount = 0.1
	HaggleMaxDiscount = 0.3
)

// Reasons a customer leaves unserved
const (
	ReasonImpatient = "impatient"
	ReasonNoDeal    = "no_deal"
)

// IDPrefix prefixes generated customer ids
const IDPrefix = "cust"
