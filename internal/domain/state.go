package domain

// Reputation bounds
const (
	MinReputation = 0
	MaxReputation = 1000
)

// Clock bounds
const (
	MinutesPerHour = 60
	HoursPerDay    = 24
	MinutesPerDay  = MinutesPerHour * HoursPerDay
)

// GameTime is an absolute in-game minute counted from day 1, 00:00.
type GameTime int64

// NewGameTime builds a GameTime from a day (1-based), hour and minute.
func NewGameTime(day, hour, minute int) GameTime {
	return GameTime(int64(day-1)*MinutesPerDay + int64(hour)*MinutesPerHour + int64(minute))
}

// Day returns the 1-based day of the timestamp.
func (t GameTime) Day() int {
	return int(int64(t)/MinutesPerDay) + 1
}

// Add returns the time shifted by the given number of minutes.
func (t GameTime) Add(minutes int) GameTime {
	return t + GameTime(minutes)
}

// PlayerProfile is the player's progression and wallet.
type PlayerProfile struct {
	Level        int `json:"level"`
	Experience   int `json:"experience"`
	Gold         int `json:"gold"`
	Reputation   int `json:"reputation"`
	BattleRating int `json:"battleRating"`
	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
}

// TavernState is the building itself.
type TavernState struct {
	Level          int            `json:"level"`
	Capacity       int            `json:"capacity"`
	IsOpen         bool           `json:"isOpen"`
	DailyIncome    int            `json:"dailyIncome"`
	UpgradeCounter map[string]int `json:"upgrades"`
}

// BattleCard is a card owned by the player for the battle subsystem.
type BattleCard struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Power  int    `json:"power"`
	Rarity string `json:"rarity"`
}

// Inventory holds countable stock. Counts never go negative.
type Inventory struct {
	Materials   map[string]int `json:"materials"`
	Potions     map[string]int `json:"potions"`
	BattleCards []BattleCard   `json:"battleCards"`
}

// StaffMember is a hired worker paid nightly.
type StaffMember struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Level           int     `json:"level"`
	SkillMultiplier float64 `json:"skillMultiplier"`
	Salary          int     `json:"salary"`
	Efficiency      float64 `json:"efficiency"`
}

// RecipeBook keeps three disjoint recipe id sets.
type RecipeBook struct {
	Discovered   []string       `json:"discovered"`
	Mastered     []string       `json:"mastered"`
	Experimental []string       `json:"experimental"`
	CraftCounts  map[string]int `json:"craftCounts,omitempty"`
}

// ClockState is the in-game clock.
type ClockState struct {
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Paused bool    `json:"isPaused"`
	Speed  float64 `json:"speed"`
}

// Now returns the clock position as an absolute GameTime.
func (c ClockState) Now() GameTime {
	return NewGameTime(c.Day, c.Hour, c.Minute)
}

// Statistics are lifetime and per-day counters.
type Statistics struct {
	TotalGoldEarned    int `json:"totalGoldEarned"`
	TotalGoldSpent     int `json:"totalGoldSpent"`
	PotionsMade        int `json:"potionsMade"`
	CustomersServed    int `json:"customersServed"`
	CustomersSatisfied int `json:"customersSatisfied"`
	BattlesWon         int `json:"battlesWon"`
	BattlesLost        int `json:"battlesLost"`
	EventsCompleted    int `json:"eventsCompleted"`
	DaysPlayed         int `json:"daysPlayed"`

	DailyWins      int `json:"dailyWins"`
	DailyServed    int `json:"dailyServed"`
	DailySatisfied int `json:"dailySatisfied"`
}

// Settings are player preferences persisted with the game.
type Settings struct {
	AutoSave    bool    `json:"autoSave"`
	SoundVolume float64 `json:"soundVolume"`
	MusicVolume float64 `json:"musicVolume"`
}

// GameData is the full state tree persisted in a save slot.
type GameData struct {
	Player     PlayerProfile `json:"player"`
	Tavern     TavernState   `json:"tavern"`
	Inventory  Inventory     `json:"inventory"`
	Staff      []StaffMember `json:"staff"`
	Recipes    RecipeBook    `json:"recipes"`
	Time       ClockState    `json:"time"`
	Statistics Statistics    `json:"statistics"`
	Settings   Settings      `json:"settings"`
	Events     EventBook     `json:"events"`
}
