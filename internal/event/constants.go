package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	LogMsgHandlerFailed   = "Event handler failed, continuing dispatch"
	LogMsgHandlerPanicked = "event handler panicked"
	LogMsgEmitHadErrors   = "Notification delivered with handler errors"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %w"
)
