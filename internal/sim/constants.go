package sim

import "time"

// Log messages
const (
	LogMsgWorldReady        = "World ready"
	LogMsgFloorCleared      = "Customers cleared after load"
	LogMsgAutoSaveToggled   = "Auto save toggled"
	LogMsgFinalAutoSave     = "Final auto save before shutdown"
	LogMsgFinalAutoSaveFail = "Final auto save failed"
)

// Defaults
const (
	DefaultJournalSize      = 256
	DefaultAutoSaveInterval = 5 * time.Minute
)
