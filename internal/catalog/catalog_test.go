package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TavernSim_Go/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 500, c.Economy.StartingGold)
	assert.Equal(t, 50, c.Economy.StartingReputation)
	assert.Equal(t, 50, c.Economy.DailyRent)
	assert.Equal(t, 1, c.Economy.ReputationDecay)

	for _, et := range []domain.EventType{
		domain.EventMarketSurplus, domain.EventMarketShortage, domain.EventFestival,
		domain.EventBigOrder, domain.EventVIPVisit, domain.EventCompetitorChallenge,
		domain.EventPlague, domain.EventMonsterAttack, domain.EventGuildGathering,
		domain.EventMagicCompetition,
	} {
		_, err := c.Event(et)
		assert.NoError(t, err, et)
	}

	bigOrder, err := c.Event(domain.EventBigOrder)
	require.NoError(t, err)
	assert.Equal(t, 20, bigOrder.QuantityMin)
	assert.Equal(t, 70, bigOrder.QuantityMax)
	assert.Equal(t, 20, bigOrder.RewardReputation)
}

func TestLookups(t *testing.T) {
	c := MustDefault()

	tests := []struct {
		name   string
		lookup func() error
	}{
		{"material", func() error { _, err := c.Material("herb"); return err }},
		{"potion", func() error { _, err := c.Potion("healing"); return err }},
		{"recipe", func() error { _, err := c.Recipe("healing_potion"); return err }},
		{"staff", func() error { _, err := c.StaffRole("bartender"); return err }},
		{"customer", func() error { _, err := c.CustomerType("noble"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.lookup())
		})
	}

	_, err := c.Material("unobtainium")
	assert.ErrorIs(t, err, domain.ErrUnknownID)
	_, err = c.Potion("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownID)
	_, err = c.Recipe("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownID)
	_, err = c.StaffRole("jester")
	assert.ErrorIs(t, err, domain.ErrUnknownID)
	_, err = c.CustomerType("dragon")
	assert.ErrorIs(t, err, domain.ErrUnknownID)
	_, err = c.Event(domain.EventTournament)
	assert.ErrorIs(t, err, domain.ErrUnknownID)
}

func TestReputationTier(t *testing.T) {
	c := MustDefault()

	assert.Equal(t, "unknown", c.ReputationTier(0))
	assert.Equal(t, "known", c.ReputationTier(100))
	assert.Equal(t, "respected", c.ReputationTier(599))
	assert.Equal(t, "legendary", c.ReputationTier(1000))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "economy: ["},
		{"missing tables", "version: \"1.0\"\n"},
		{"dangling recipe material", `
version: "1.0"
economy: {starting_level: 1, starting_capacity: 1, upgrade_base_cost: 1, capacity_step: 1, mastery_crafts: 1, max_waiting_customers: 1}
materials: [{id: herb, name: Herb, rarity: common}]
potions: [{id: healing, name: Healing, category: healing, base_price: 10}]
recipes: [{id: r, name: R, potion: healing, yield: 1, materials: {ghost: 1}}]
customers: [{id: v, name: V, tier: common, patience: 10, budget: {min: 1, max: 2}, spawn_rate: 1, behavior: {patience_decay_rate: 1}}]
events: {festival: {category: market, title: F, probability: 0.1}}
reputation: [{name: unknown, min: 0}]
`},
		{"bad tier", `
version: "1.0"
economy: {starting_level: 1, starting_capacity: 1, upgrade_base_cost: 1, capacity_step: 1, mastery_crafts: 1, max_waiting_customers: 1}
materials: [{id: herb, name: Herb, rarity: common}]
potions: [{id: healing, name: Healing, category: healing, base_price: 10}]
recipes: [{id: r, name: R, potion: healing, yield: 1, materials: {herb: 1}}]
customers: [{id: v, name: V, tier: royal, patience: 10, budget: {min: 1, max: 2}, spawn_rate: 1, behavior: {patience_decay_rate: 1}}]
events: {festival: {category: market, title: F, probability: 0.1}}
reputation: [{name: unknown, min: 0}]
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, defaultYAML, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Customers, len(MustDefault().Customers))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
