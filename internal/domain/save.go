package domain

// SaveSlot is one persisted snapshot. Timestamps are Unix milliseconds.
type SaveSlot struct {
	Slot        int      `json:"slot"`
	Timestamp   int64    `json:"timestamp"`
	Description string   `json:"description"`
	GameData    GameData `json:"gameData"`
	Version     string   `json:"version"`
}

// SaveEnvelope is the single blob stored under the well-known save key.
type SaveEnvelope struct {
	Version     string      `json:"version"`
	LastSaved   int64       `json:"lastSaved"`
	CurrentSlot int         `json:"currentSlot"`
	Slots       []*SaveSlot `json:"slots"`
}

// SlotInfo is the listing view of a slot, without the game data.
type SlotInfo struct {
	Slot        int    `json:"slot"`
	Empty       bool   `json:"empty"`
	Unreadable  bool   `json:"unreadable,omitempty"`
	Timestamp   int64  `json:"timestamp,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Day         int    `json:"day,omitempty"`
	Gold        int    `json:"gold,omitempty"`
}
