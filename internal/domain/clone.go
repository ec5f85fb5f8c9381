package domain

import "maps"

// Clone returns a deep copy of the record.
func (e EventRecord) Clone() EventRecord {
	out := e
	out.Effects = maps.Clone(e.Effects)
	if e.Data != nil {
		d := *e.Data
		out.Data = &d
	}
	if e.Result != nil {
		r := *e.Result
		if r.Choice != nil {
			c := r.Choice.Clone()
			r.Choice = &c
		}
		out.Result = &r
	}
	return out
}

// Clone returns a deep copy of the choice.
func (c EventChoice) Clone() EventChoice {
	out := c
	out.Rewards = maps.Clone(c.Rewards)
	out.Penalties = maps.Clone(c.Penalties)
	return out
}

// Clone returns a deep copy of all three lists.
func (b EventBook) Clone() EventBook {
	return EventBook{
		Queue:   cloneRecords(b.Queue),
		Active:  cloneRecords(b.Active),
		History: cloneRecords(b.History),
	}
}

func cloneRecords(in []EventRecord) []EventRecord {
	if in == nil {
		return nil
	}
	out := make([]EventRecord, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}

// Clone returns a deep copy of the state tree.
func (d GameData) Clone() GameData {
	out := d
	out.Tavern.UpgradeCounter = maps.Clone(d.Tavern.UpgradeCounter)
	out.Inventory.Materials = maps.Clone(d.Inventory.Materials)
	out.Inventory.Potions = maps.Clone(d.Inventory.Potions)
	out.Inventory.BattleCards = append([]BattleCard(nil), d.Inventory.BattleCards...)
	out.Staff = append([]StaffMember(nil), d.Staff...)
	out.Recipes.Discovered = append([]string(nil), d.Recipes.Discovered...)
	out.Recipes.Mastered = append([]string(nil), d.Recipes.Mastered...)
	out.Recipes.Experimental = append([]string(nil), d.Recipes.Experimental...)
	out.Recipes.CraftCounts = maps.Clone(d.Recipes.CraftCounts)
	out.Events = d.Events.Clone()
	return out
}

// Clone returns a deep copy of the catalog entry.
func (c CustomerType) Clone() CustomerType {
	out := c
	out.Preferences = append([]string(nil), c.Preferences...)
	out.Dialogue = cloneDialogue(c.Dialogue)
	return out
}

// Clone returns a deep copy of the customer.
func (c CustomerInstance) Clone() CustomerInstance {
	out := c
	out.Preferences = append([]string(nil), c.Preferences...)
	out.Dialogue = cloneDialogue(c.Dialogue)
	return out
}

func cloneDialogue(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, lines := range in {
		out[k] = append([]string(nil), lines...)
	}
	return out
}
