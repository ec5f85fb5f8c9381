// Package gamestate owns the authoritative game data: the resource ledger,
// the in-game clock and the bookkeeping the other services write through.
//
// State is not safe for concurrent use. Callers serialise access (see
// sim.World).
package gamestate

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/osse101/TavernSim_Go/internal/catalog"
	"github.com/osse101/TavernSim_Go/internal/domain"
	"github.com/osse101/TavernSim_Go/internal/event"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

// State is the mutable game state tree plus the bus it notifies.
type State struct {
	data     domain.GameData
	catalog  *catalog.Catalog
	bus      event.Bus
	staffSeq int
}

// New creates a fresh game seeded from the catalog.
func New(cat *catalog.Catalog, bus event.Bus) *State {
	return &State{
		data:    NewGameData(cat),
		catalog: cat,
		bus:     bus,
	}
}

// NewGameData builds the starting state tree.
func NewGameData(cat *catalog.Catalog) domain.GameData {
	eco := cat.Economy
	data := domain.GameData{
		Player: domain.PlayerProfile{
			Level:        eco.StartingLevel,
			Gold:         eco.StartingGold,
			Reputation:   eco.StartingReputation,
			BattleRating: eco.StartingBattleRating,
		},
		Tavern: domain.TavernState{
			Level:          1,
			Capacity:       eco.StartingCapacity,
			IsOpen:         true,
			UpgradeCounter: map[string]int{},
		},
		Inventory: domain.Inventory{
			Materials:   map[string]int{},
			Potions:     map[string]int{},
			BattleCards: []domain.BattleCard{},
		},
		Staff: []domain.StaffMember{},
		Recipes: domain.RecipeBook{
			Discovered:   append([]string{}, cat.Start.Recipes...),
			Mastered:     []string{},
			Experimental: []string{},
			CraftCounts:  map[string]int{},
		},
		Time: domain.ClockState{
			Day:   1,
			Hour:  DayStartHour,
			Speed: DefaultSpeed,
		},
		Settings: domain.Settings{
			AutoSave:    true,
			SoundVolume: 0.8,
			MusicVolume: 0.6,
		},
		Events: domain.EventBook{
			Queue:   []domain.EventRecord{},
			Active:  []domain.EventRecord{},
			History: []domain.EventRecord{},
		},
	}
	for id, n := range cat.Start.Materials {
		data.Inventory.Materials[id] = n
	}
	for id, n := range cat.Start.Potions {
		data.Inventory.Potions[id] = n
	}
	return data
}

// Catalog returns the static tables the state was created with.
func (s *State) Catalog() *catalog.Catalog {
	return s.catalog
}

// Bus returns the notification bus.
func (s *State) Bus() event.Bus {
	return s.bus
}

func (s *State) emit(ctx context.Context, evt event.Event) {
	event.Emit(ctx, s.bus, evt)
}

// Read accessors

func (s *State) Player() domain.PlayerProfile  { return s.data.Player }
func (s *State) Gold() int                     { return s.data.Player.Gold }
func (s *State) Reputation() int               { return s.data.Player.Reputation }
func (s *State) Tavern() domain.TavernState    { return s.data.Tavern }
func (s *State) Clock() domain.ClockState      { return s.data.Time }
func (s *State) Statistics() domain.Statistics { return s.data.Statistics }
func (s *State) Settings() domain.Settings     { return s.data.Settings }

// Material returns the stock of one material.
func (s *State) Material(id string) int { return s.data.Inventory.Materials[id] }

// Potion returns the stock of one potion.
func (s *State) Potion(id string) int { return s.data.Inventory.Potions[id] }

// Staff returns a copy of the roster.
func (s *State) Staff() []domain.StaffMember {
	return append([]domain.StaffMember(nil), s.data.Staff...)
}

// EventBook exposes the event lists to the event manager, which is their
// only writer.
func (s *State) EventBook() *domain.EventBook {
	return &s.data.Events
}

// SetAutoSave toggles the persisted auto-save preference.
func (s *State) SetAutoSave(enabled bool) {
	s.data.Settings.AutoSave = enabled
}

// Snapshot returns a deep copy of the whole state tree.
func (s *State) Snapshot() domain.GameData {
	return s.data.Clone()
}

// Restore replaces the state tree wholesale. Nil maps and lists are
// normalised so later mutations never hit a nil map.
func (s *State) Restore(ctx context.Context, data domain.GameData) {
	s.data = normalise(data.Clone())
	s.staffSeq = highestStaffSeq(s.data.Staff)
	logger.FromContext(ctx).Info(LogMsgStateRestored,
		"day", s.data.Time.Day, "gold", s.data.Player.Gold, "reputation", s.data.Player.Reputation)
}

func normalise(d domain.GameData) domain.GameData {
	if d.Tavern.UpgradeCounter == nil {
		d.Tavern.UpgradeCounter = map[string]int{}
	}
	if d.Inventory.Materials == nil {
		d.Inventory.Materials = map[string]int{}
	}
	if d.Inventory.Potions == nil {
		d.Inventory.Potions = map[string]int{}
	}
	if d.Recipes.CraftCounts == nil {
		d.Recipes.CraftCounts = map[string]int{}
	}
	if d.Time.Day < 1 {
		d.Time.Day = 1
	}
	if d.Time.Speed <= 0 {
		d.Time.Speed = DefaultSpeed
	}
	return d
}

// RecordBattle books the outcome of a card battle and fires battle.ended.
func (s *State) RecordBattle(ctx context.Context, won bool, opponentRating int) {
	p := &s.data.Player
	step := s.catalog.Economy.BattleRatingStep
	if won {
		p.Wins++
		p.BattleRating += step
		s.data.Statistics.BattlesWon++
		s.data.Statistics.DailyWins++
	} else {
		p.Losses++
		p.BattleRating = max(0, p.BattleRating-step)
		s.data.Statistics.BattlesLost++
	}
	s.emit(ctx, event.NewBattleEndedEvent(won, opponentRating))
}

// AddBattleCard adds a card to the inventory.
func (s *State) AddBattleCard(card domain.BattleCard) {
	s.data.Inventory.BattleCards = append(s.data.Inventory.BattleCards, card)
}

// RecordCustomerServed bumps the service counters.
func (s *State) RecordCustomerServed(satisfied bool) {
	st := &s.data.Statistics
	st.CustomersServed++
	st.DailyServed++
	if satisfied {
		st.CustomersSatisfied++
		st.DailySatisfied++
	}
}

// RecordEventCompleted bumps the lifetime completed events counter.
func (s *State) RecordEventCompleted() {
	s.data.Statistics.EventsCompleted++
}

// RecordCraft counts crafted batches of a recipe and returns the new total.
func (s *State) RecordCraft(recipeID string, batches int) int {
	s.data.Recipes.CraftCounts[recipeID] += batches
	return s.data.Recipes.CraftCounts[recipeID]
}

// HireStaff adds a staff member from a catalog role.
func (s *State) HireStaff(ctx context.Context, roleID string) (domain.StaffMember, error) {
	role, err := s.catalog.StaffRole(roleID)
	if err != nil {
		return domain.StaffMember{}, err
	}
	id := s.nextStaffID()
	member := domain.StaffMember{
		ID:              id,
		Type:            role.ID,
		Level:           1,
		SkillMultiplier: role.SkillMultiplier,
		Salary:          role.Salary,
		Efficiency:      role.Efficiency,
	}
	s.data.Staff = append(s.data.Staff, member)
	logger.FromContext(ctx).Info(LogMsgStaffHired, "id", member.ID, "type", member.Type, "salary", member.Salary)
	return member, nil
}

// nextStaffID skips ids already on the roster, which imported saves may carry.
func (s *State) nextStaffID() string {
	for {
		s.staffSeq++
		id := StaffIDPrefix + strconv.Itoa(s.staffSeq)
		if !slices.ContainsFunc(s.data.Staff, func(m domain.StaffMember) bool { return m.ID == id }) {
			return id
		}
	}
}

// highestStaffSeq returns the largest numeric suffix among staff-N ids.
func highestStaffSeq(staff []domain.StaffMember) int {
	highest := 0
	for _, m := range staff {
		suffix, ok := strings.CutPrefix(m.ID, StaffIDPrefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}

// FireStaff removes a staff member by id.
func (s *State) FireStaff(ctx context.Context, id string) error {
	idx := slices.IndexFunc(s.data.Staff, func(m domain.StaffMember) bool { return m.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: staff %q", domain.ErrUnknownID, id)
	}
	s.data.Staff = slices.Delete(s.data.Staff, idx, idx+1)
	logger.FromContext(ctx).Info(LogMsgStaffFired, "id", id)
	return nil
}

// UpgradeCost returns the gold needed for the next tavern level.
func (s *State) UpgradeCost() int {
	return s.data.Tavern.Level * s.catalog.Economy.UpgradeBaseCost
}

// UpgradeTavern spends gold to raise the tavern level and capacity.
func (s *State) UpgradeTavern(ctx context.Context) error {
	cost := s.UpgradeCost()
	if !s.SpendGold(ctx, cost) {
		return fmt.Errorf("%w: upgrade costs %d", domain.ErrInsufficientFunds, cost)
	}
	t := &s.data.Tavern
	t.Level++
	t.Capacity += s.catalog.Economy.CapacityStep
	t.UpgradeCounter[UpgradeCounterLevel]++
	logger.FromContext(ctx).Info(LogMsgTavernUpgraded, "level", t.Level, "capacity", t.Capacity, "cost", cost)
	return nil
}
