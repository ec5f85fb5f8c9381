package eventlog

// DefaultCapacity bounds the journal when no size is configured
const DefaultCapacity = 256

// Log messages - service events
const (
	LogMsgFailedToLogEvent = "Failed to record notification"
	LogMsgEventLogged      = "Notification recorded"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting notification journal cleanup"
	LogMsgCleanupJobCompleted = "Notification journal cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType         = "type"
	LogFieldSeq          = "seq"
	LogFieldError        = "error"
	LogFieldRetention    = "retention"
	LogFieldDuration     = "duration"
	LogFieldDeletedCount = "deletedCount"
)
