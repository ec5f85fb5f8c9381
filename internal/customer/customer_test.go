package customer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/domain"
)

// rolls returns an rnd func cycling through the given values
func rolls(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func typeIDs(types []domain.CustomerType) []string {
	ids := make([]string, len(types))
	for i, ct := range types {
		ids[i] = ct.ID
	}
	return ids
}

func TestEligible(t *testing.T) {
	g := NewGenerator(catalog.MustDefault(), rolls(0.5))

	tests := []struct {
		name       string
		reputation int
		tod        domain.SpawnTime
		want       []string
	}{
		{"new tavern by day", 0, domain.SpawnDay, []string{"villager"}},
		{"starting reputation by day", 50, domain.SpawnDay, []string{"villager", "adventurer", "merchant"}},
		{"starting reputation at night", 50, domain.SpawnNight, []string{"villager", "adventurer"}},
		{"famous at night", 1000, domain.SpawnNight, []string{"villager", "adventurer", "knight", "wizard"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typeIDs(g.Eligible(tt.reputation, tt.tod)))
		})
	}
}

func TestSelect(t *testing.T) {
	// villager 1.0, adventurer 0.8, merchant 0.5 => total 2.3
	g := NewGenerator(catalog.MustDefault(), rolls(0.1, 0.5, 0.99))

	for _, want := range []string{"villager", "adventurer", "merchant"} {
		ct, err := g.Select(50, domain.SpawnDay)
		require.NoError(t, err)
		assert.Equal(t, want, ct.ID)
	}

	_, err := g.Select(-1, domain.SpawnDay)
	assert.ErrorIs(t, err, domain.ErrNoEligibleCustomer)
}

func TestSpawn(t *testing.T) {
	cat := catalog.MustDefault()
	g := NewGenerator(cat, rolls(0.5))
	villager, err := cat.CustomerType("villager")
	require.NoError(t, err)

	now := domain.NewGameTime(3, 10, 0)
	c := g.Spawn(villager, now)

	assert.Equal(t, "cust-1", c.ID)
	assert.Equal(t, "villager", c.TypeID)
	assert.Equal(t, domain.Budget{Min: 11, Max: 44}, c.Budget, "each bound inflated by 0.2*0.5 of itself")
	assert.Equal(t, villager.Patience, c.CurrentPatience)
	assert.Equal(t, now, c.ArrivedAt)
	assert.Equal(t, domain.StatusWaiting, c.Status)

	c.Preferences[0] = "tampered"
	c.Dialogue[domain.DialogueGreeting][0] = "tampered"
	again, _ := cat.CustomerType("villager")
	assert.Equal(t, "healing", again.Preferences[0])
	assert.NotEqual(t, "tampered", again.Dialogue[domain.DialogueGreeting][0])

	assert.Equal(t, "cust-2", g.Spawn(villager, now).ID)
}

func TestGenerate(t *testing.T) {
	g := NewGenerator(catalog.MustDefault(), rolls(0.0))
	c, err := g.Generate(0, domain.SpawnNight, 0)
	require.NoError(t, err)
	assert.Equal(t, "villager", c.TypeID)
}

func newCustomer() *domain.CustomerInstance {
	return &domain.CustomerInstance{
		ID:              "cust-1",
		TypeID:          "villager",
		Budget:          domain.Budget{Min: 20, Max: 60},
		Patience:        60,
		CurrentPatience: 60,
		Preferences:     []string{"healing"},
		Behavior: domain.CustomerBehavior{
			PatienceDecayRate: 1,
			HaggleChance:      0.3,
			TipChance:         0.5,
			ComplaintChance:   0.2,
		},
		Dialogue: map[string][]string{
			domain.DialogueHappy:    {"thanks"},
			domain.DialogueAngry:    {"bah"},
			domain.DialogueFarewell: {"bye"},
		},
		Status: domain.StatusWaiting,
	}
}

func TestCalculateSatisfaction(t *testing.T) {
	tests := []struct {
		name        string
		potion      string
		serviceTime float64
		price       int
		reputation  int
		want        int
	}{
		{"everything right clamps to 100", "healing", 18, 20, 50, 100},
		{"neutral", "mana", 40, 40, 0, 50},
		{"slow and dear clamps to 0", "mana", 61, 61, 0, 0},
		{"exactly half patience is fast", "mana", 30, 40, 0, 70},
		{"exactly full patience is not slow", "mana", 60, 40, 0, 50},
		{"reputation term", "mana", 40, 40, 1000, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSatisfaction(newCustomer(), tt.potion, tt.serviceTime, tt.price, tt.reputation)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecide(t *testing.T) {
	offers := []Offer{{PotionType: "healing", Price: 30}}
	// options: preferred 0.7, affordable 0.5, leave 0.3 => total 1.5
	tests := []struct {
		roll float64
		want Action
	}{
		{0.1, ActionBuyPreferred},
		{0.6, ActionBuyAffordable},
		{0.95, ActionLeave},
	}
	for _, tt := range tests {
		b := NewBehavior(catalog.MustDefault().Economy, rolls(tt.roll))
		d := b.Decide(newCustomer(), offers)
		assert.Equal(t, tt.want, d.Action, "roll %v", tt.roll)
	}

	b := NewBehavior(catalog.MustDefault().Economy, rolls(0.5))
	assert.Equal(t, ActionLeave, b.Decide(newCustomer(), nil).Action, "nothing offered leaves")
}

func TestDecide_Distribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := NewBehavior(catalog.MustDefault().Economy, rng.Float64)
	offers := []Offer{{PotionType: "healing", Price: 30}}

	const trials = 100000
	counts := map[Action]int{}
	for i := 0; i < trials; i++ {
		counts[b.Decide(newCustomer(), offers).Action]++
	}

	assert.InDelta(t, 0.7/1.5, float64(counts[ActionBuyPreferred])/trials, 0.01)
	assert.InDelta(t, 0.5/1.5, float64(counts[ActionBuyAffordable])/trials, 0.01)
	assert.InDelta(t, 0.3/1.5, float64(counts[ActionLeave])/trials, 0.01)
}

func TestWait(t *testing.T) {
	b := NewBehavior(catalog.MustDefault().Economy, rolls(0.99))

	c := newCustomer()
	res := b.Wait(c, 10)
	assert.False(t, res.Left)
	assert.False(t, res.Complained)
	assert.Equal(t, 50.0, c.CurrentPatience)

	res = b.Wait(c, 50)
	assert.True(t, res.Left)
	assert.Equal(t, domain.StatusAngry, c.Status)
	assert.Equal(t, "bah", res.Line)

	assert.Equal(t, WaitResult{}, b.Wait(c, 10), "departed customers no longer wait")
}

func TestWait_Complaint(t *testing.T) {
	b := NewBehavior(catalog.MustDefault().Economy, rolls(0.1))
	res := b.Wait(newCustomer(), 1)
	assert.True(t, res.Complained)
	assert.False(t, res.Left)
}

func TestPurchase(t *testing.T) {
	c := newCustomer()

	b := NewBehavior(catalog.MustDefault().Economy, rolls(0.1, 0.5))
	paid, haggled := b.Purchase(c, 100)
	assert.True(t, haggled)
	assert.Equal(t, 80, paid)

	b = NewBehavior(catalog.MustDefault().Economy, rolls(0.9))
	paid, haggled = b.Purchase(c, 100)
	assert.False(t, haggled)
	assert.Equal(t, 100, paid)
}

func TestDepart(t *testing.T) {
	eco := catalog.MustDefault().Economy

	t.Run("happy customer tips", func(t *testing.T) {
		c := newCustomer()
		d := NewBehavior(eco, rolls(0.1)).Depart(c, 90)
		assert.Equal(t, OutcomeTip, d.Outcome)
		assert.Equal(t, 6, d.Tip)
		assert.Equal(t, domain.StatusServed, c.Status)
	})

	t.Run("unhappy customer complains", func(t *testing.T) {
		d := NewBehavior(eco, rolls(0.1)).Depart(newCustomer(), 10)
		assert.Equal(t, OutcomeComplaint, d.Outcome)
		assert.Equal(t, 5, d.ReputationPenalty)
	})

	t.Run("unhappy customer keeps quiet", func(t *testing.T) {
		d := NewBehavior(eco, rolls(0.9)).Depart(newCustomer(), 10)
		assert.Equal(t, OutcomeNeutral, d.Outcome)
		assert.Equal(t, "bye", d.Line)
	})

	t.Run("middling service", func(t *testing.T) {
		d := NewBehavior(eco, rolls(0.0)).Depart(newCustomer(), 50)
		assert.Equal(t, Departure{Outcome: OutcomeNeutral, Line: "bye"}, d)
	})
}

func TestLine(t *testing.T) {
	b := NewBehavior(catalog.MustDefault().Economy, rolls(0.5))
	assert.Equal(t, "", b.Line(newCustomer(), domain.DialogueHaggle))
	assert.Equal(t, "thanks", b.Line(newCustomer(), domain.DialogueHappy))
}
