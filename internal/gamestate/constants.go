package gamestate

// Time of day boundaries (hour, inclusive start / exclusive end of day)
const (
	DayStartHour = 6
	DayEndHour   = 18
)

// DefaultSpeed is the clock speed of a new game
const DefaultSpeed = 1.0

// StaffIDPrefix prefixes the sequence number in staff ids
const StaffIDPrefix = "staff-"

// UpgradeCounterLevel is the upgrade counter bumped by UpgradeTavern
const UpgradeCounterLevel = "level"

// ExperienceForLevel returns the experience needed to leave the given level
func ExperienceForLevel(level int) int {
	return level * level * 100
}

// Log messages
const (
	LogMsgGoldSpendRejected     = "Gold spend rejected"
	LogMsgConsumeRejected       = "Consume rejected, insufficient stock"
	LogMsgUnknownCatalogID      = "Ignoring unknown catalog id"
	LogMsgLevelUp               = "Player leveled up"
	LogMsgDailyReset            = "Daily reset settled"
	LogMsgGoldNegative          = "Gold went negative after nightly settlement"
	LogMsgNewDay                = "New day started"
	LogMsgStaffHired            = "Staff hired"
	LogMsgStaffFired            = "Staff fired"
	LogMsgTavernUpgraded        = "Tavern upgraded"
	LogMsgStateRestored         = "Game state restored"
	LogMsgRecipeMasteryRejected = "Cannot master undiscovered recipe"
)
