package save

import "time"

// StorageKey is the single well-known key the save envelope lives under
const StorageKey = "tavern_saves"

// Version is stamped on every envelope and slot written by this build
const Version = "1.0.0"

// Defaults
const (
	DefaultSlots       = 5
	AutoSaveFreshness  = 24 * time.Hour
	MaxSaveAge         = 30 * 24 * time.Hour
	DescriptionFormat  = "Day %d - %d gold - %d reputation - %s"
	DescriptionTimeFmt = "2006-01-02 15:04"
)

// Log messages
const (
	LogMsgSaveCompleted     = "Game saved"
	LogMsgSaveFailed        = "Save failed"
	LogMsgLoadCompleted     = "Game loaded"
	LogMsgLoadFailed        = "Load failed"
	LogMsgVersionMismatch   = "Save version differs from current, loading anyway"
	LogMsgSlotDeleted       = "Save slot deleted"
	LogMsgDeleteFailed      = "Delete failed"
	LogMsgImportCompleted   = "Save imported"
	LogMsgImportFailed      = "Import failed"
	LogMsgUnreadableSlot    = "Save slot is unreadable, leaving it untouched"
	LogMsgOldSavesCleaned   = "Old saves cleaned up"
	LogMsgAutoSaveSkipped   = "Auto save disabled in settings, skipping"
	LogMsgEnvelopeMalformed = "Save envelope is malformed"
)

// Error formats
const (
	ErrFmtSlotOutOfRange = "%w: slot %d not in [0, %d)"
	ErrFmtSlotEmpty      = "%w: slot %d"
)
