package customer

import (
	"math"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/utils"
)

// Offer is a potion on the counter at a price.
type Offer struct {
	PotionType string `json:"potionType"`
	Price      int    `json:"price"`
}

// Action is what a customer decides to do.
type Action string

const (
	ActionBuyPreferred  Action = "buy_preferred"
	ActionBuyAffordable Action = "buy_affordable"
	ActionLeave         Action = "leave"
)

// Decision is the outcome of Decide.
type Decision struct {
	Action Action
	Offer  Offer
}

// WaitResult is the outcome of one patience tick.
type WaitResult struct {
	Left       bool
	Complained bool
	Line       string
}

// Outcome of a departure
type Outcome string

const (
	OutcomeTip       Outcome = "tip"
	OutcomeComplaint Outcome = "complaint"
	OutcomeNeutral   Outcome = "neutral"
)

// Departure is what a leaving customer leaves behind.
type Departure struct {
	Outcome           Outcome `json:"outcome"`
	Tip               int     `json:"tip"`
	ReputationPenalty int     `json:"reputationPenalty"`
	Line              string  `json:"line"`
}

// Behavior drives customer reactions. It never touches the ledger; callers
// apply tips and penalties.
type Behavior struct {
	economy catalog.Economy
	rnd     func() float64
}

// NewBehavior creates a behavior engine. A nil rnd uses utils.RandomFloat.
func NewBehavior(economy catalog.Economy, rnd func() float64) *Behavior {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Behavior{economy: economy, rnd: rnd}
}

// CalculateSatisfaction scores a service on a 0-100 scale. serviceTime is in
// the same unit as the customer's patience.
func CalculateSatisfaction(c *domain.CustomerInstance, potionType string, serviceTime float64, price, reputation int) int {
	score := SatisfactionBase

	if c.Prefers(potionType) {
		score += SatisfactionPreference
	}

	switch {
	case serviceTime <= c.Patience/2:
		score += SatisfactionFastService
	case serviceTime > c.Patience:
		score += SatisfactionSlowService
	}

	switch {
	case price <= c.Budget.Min:
		score += SatisfactionCheapPrice
	case price > c.Budget.Max:
		score += SatisfactionDearPrice
	}

	score += float64(reputation) * SatisfactionPerRep

	return utils.Clamp(int(math.Round(score)), SatisfactionMin, SatisfactionMax)
}

// Decide picks what the customer does with the offers on the counter.
func (b *Behavior) Decide(c *domain.CustomerInstance, offers []Offer) Decision {
	var (
		options []Decision
		weights []float64
	)
	for _, o := range offers {
		if c.Prefers(o.PotionType) {
			options = append(options, Decision{Action: ActionBuyPreferred, Offer: o})
			weights = append(weights, WeightBuyPreferred)
		}
	}
	for _, o := range offers {
		if o.Price <= c.Budget.Max {
			options = append(options, Decision{Action: ActionBuyAffordable, Offer: o})
			weights = append(weights, WeightBuyAffordable)
		}
	}
	options = append(options, Decision{Action: ActionLeave})
	weights = append(weights, WeightLeave)

	return options[utils.WeightedIndex(weights, b.rnd())]
}

// Wait decays patience for the elapsed time. A customer whose patience runs
// out leaves angry.
func (b *Behavior) Wait(c *domain.CustomerInstance, elapsed float64) WaitResult {
	if c.Status != domain.StatusWaiting {
		return WaitResult{}
	}
	c.CurrentPatience -= elapsed * c.Behavior.PatienceDecayRate
	if c.CurrentPatience <= 0 {
		c.CurrentPatience = 0
		c.Status = domain.StatusAngry
		return WaitResult{Left: true, Line: b.Line(c, domain.DialogueAngry)}
	}
	if utils.Chance(c.Behavior.ComplaintChance, b.rnd()) {
		return WaitResult{Complained: true, Line: b.Line(c, domain.DialogueImpatient)}
	}
	return WaitResult{}
}

// Purchase returns the price the customer actually pays and whether they
// haggled it down.
func (b *Behavior) Purchase(c *domain.CustomerInstance, price int) (int, bool) {
	if !utils.Chance(c.Behavior.HaggleChance, b.rnd()) {
		return price, false
	}
	discount := utils.FloatFromRoll(HaggleMinDiscount, HaggleMaxDiscount, b.rnd())
	return price - int(math.Floor(float64(price)*discount)), true
}

// Depart resolves how a served customer leaves.
func (b *Behavior) Depart(c *domain.CustomerInstance, satisfaction int) Departure {
	c.Status = domain.StatusServed
	switch {
	case satisfaction > TipThreshold:
		if utils.Chance(c.Behavior.TipChance, b.rnd()) {
			return Departure{
				Outcome: OutcomeTip,
				Tip:     int(math.Floor(float64(c.Budget.Max) * b.economy.TipRatio)),
				Line:    b.Line(c, domain.DialogueHappy),
			}
		}
		return Departure{Outcome: OutcomeNeutral, Line: b.Line(c, domain.DialogueHappy)}
	case satisfaction < ComplaintThreshold:
		if utils.Chance(c.Behavior.ComplaintChance, b.rnd()) {
			return Departure{
				Outcome:           OutcomeComplaint,
				ReputationPenalty: b.economy.ComplaintPenalty,
				Line:              b.Line(c, domain.DialogueAngry),
			}
		}
	}
	return Departure{Outcome: OutcomeNeutral, Line: b.Line(c, domain.DialogueFarewell)}
}

// Line picks a dialogue line for a state, or "" if the customer has none.
func (b *Behavior) Line(c *domain.CustomerInstance, state string) string {
	lines := c.Dialogue[state]
	if len(lines) == 0 {
		return ""
	}
	return lines[utils.IntFromRoll(0, len(lines)-1, b.rnd())]
}
