package tavern

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/TavernSim_Go/internal/customer"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

// ServeCustomer sells one potion to a waiting customer and sees them out.
func (t *Tavern) ServeCustomer(ctx context.Context, order ServeOrder) (ServeResult, error) {
	i, c := t.find(order.CustomerID)
	if c == nil {
		return ServeResult{}, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, order.CustomerID)
	}
	listPrice, err := t.ListPrice(order.PotionID)
	if err != nil {
		return ServeResult{}, err
	}
	price := order.Price
	if price <= 0 {
		price = listPrice
	}
	if !t.state.ConsumePotion(ctx, order.PotionID, 1) {
		return ServeResult{}, fmt.Errorf("%w: no %s in stock", domain.ErrInsufficientQuantity, order.PotionID)
	}

	paid, haggled := t.behavior.Purchase(c, price)
	t.state.AddGold(ctx, paid)

	serviceTime := c.Patience - c.CurrentPatience
	if order.ServiceTime != nil {
		serviceTime = *order.ServiceTime
	}
	satisfaction := customer.CalculateSatisfaction(c, order.PotionID, serviceTime, paid, t.state.Reputation())
	t.state.RecordCustomerServed(satisfaction >= t.catalog.Economy.SatisfiedThreshold)
	t.state.AddExperience(ctx, t.catalog.Economy.ServeExperience)

	dep := t.behavior.Depart(c, satisfaction)
	if dep.Tip > 0 {
		t.state.AddGold(ctx, dep.Tip)
	}
	if dep.ReputationPenalty > 0 {
		t.state.AddReputation(ctx, -dep.ReputationPenalty)
	}
	t.remove(i)

	logger.FromContext(ctx).Info(LogMsgCustomerServed,
		"id", c.ID, "type", c.TypeID, "potion", order.PotionID, "paid", paid, "satisfaction", satisfaction, "outcome", dep.Outcome)
	event.Emit(ctx, t.bus, event.NewCustomerServedEvent(event.CustomerServedPayloadV1{
		CustomerID:   c.ID,
		CustomerType: c.TypeID,
		PotionType:   order.PotionID,
		Quantity:     1,
		Price:        paid,
		Satisfaction: satisfaction,
	}))

	return ServeResult{
		Customer:     c.Clone(),
		PotionID:     order.PotionID,
		ListPrice:    listPrice,
		PricePaid:    paid,
		Haggled:      haggled,
		Satisfaction: satisfaction,
		Departure:    dep,
	}, nil
}

// Offers lists every potion in stock at its current list price.
func (t *Tavern) Offers() []customer.Offer {
	var offers []customer.Offer
	for _, p := range t.catalog.Potions {
		if t.state.Potion(p.ID) <= 0 {
			continue
		}
		price, err := t.ListPrice(p.ID)
		if err != nil {
			continue
		}
		offers = append(offers, customer.Offer{PotionType: p.ID, Price: price})
	}
	return offers
}

// AutoServe lets the customer choose from the counter. A customer who
// decides to leave walks out unserved and the result is nil.
func (t *Tavern) AutoServe(ctx context.Context, customerID string) (*ServeResult, error) {
	i, c := t.find(customerID)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, customerID)
	}
	decision := t.behavior.Decide(c, t.Offers())
	if decision.Action == customer.ActionLeave {
		c.Status = domain.StatusLeft
		t.leave(ctx, i, c, customer.ReasonNoDeal)
		return nil, nil
	}
	res, err := t.ServeCustomer(ctx, ServeOrder{
		CustomerID: customerID,
		PotionID:   decision.Offer.PotionType,
		Price:      decision.Offer.Price,
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// TickCustomers decays every waiting customer's patience by elapsed and
// returns the ids of those who stormed out.
func (t *Tavern) TickCustomers(ctx context.Context, elapsed float64) []string {
	var left []string
	for i := 0; i < len(t.waiting); {
		c := t.waiting[i]
		res := t.behavior.Wait(c, elapsed)
		switch {
		case res.Left:
			left = append(left, c.ID)
			t.leave(ctx, i, c, customer.ReasonImpatient)
			continue
		case res.Complained:
			logger.FromContext(ctx).Debug(LogMsgCustomerGrumble, "id", c.ID, "line", res.Line)
		}
		i++
	}
	return left
}

func (t *Tavern) leave(ctx context.Context, i int, c *domain.CustomerInstance, reason string) {
	t.remove(i)
	logger.FromContext(ctx).Info(LogMsgCustomerLeft, "id", c.ID, "type", c.TypeID, "reason", reason)
	event.Emit(ctx, t.bus, event.NewCustomerLeftEvent(c.ID, c.TypeID, reason))
}

func isQueueFull(err error) bool {
	return errors.Is(err, domain.ErrQueueFull)
}
