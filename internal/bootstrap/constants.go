package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept on startup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingTavernSim   = "Starting TavernSim"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Catalog and Storage
// =============================================================================

const (
	LogMsgCatalogLoaded   = "Catalog loaded"
	LogMsgStoreOpened     = "Save store opened"
	ErrMsgLoadCatalog     = "failed to load catalog"
	ErrMsgOpenStore       = "failed to open save store"
	ErrMsgUnknownBackend  = "unknown save backend"
	ErrMsgMigratePostgres = "failed to migrate postgres save store"
)

// Postgres pool tuning
const (
	DBMaxIdleTime = 5 * time.Minute
	DBMaxLifetime = time.Hour
)

// =============================================================================
// Simulation Loop
// =============================================================================

const (
	// WorkerCount is the number of pool workers running simulation jobs
	WorkerCount = 2

	// JobQueueSize bounds pending jobs; ticks are dropped when it is full
	JobQueueSize = 16

	// JournalRetention is how long notifications stay in the journal
	JournalRetention = 24 * time.Hour

	// JournalCleanupInterval is how often expired notifications are dropped
	JournalCleanupInterval = 10 * time.Minute
)

// Scheduled job names
const (
	JobNameClockTick      = "clock_tick"
	JobNamePatienceTick   = "patience_tick"
	JobNameCustomerSpawn  = "customer_spawn"
	JobNameJournalCleanup = "journal_cleanup"
)

const (
	LogMsgSimulationStarted = "Simulation loop started"
	LogMsgAutoSaveStarted   = "Auto save worker started"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingSimulation   = "Stopping simulation loop"
	LogMsgWorldShutdownFailed  = "Final auto save failed"
	LogMsgStoreCloseFailed     = "Failed to close save store"
	LogMsgServerStopped        = "Server stopped"
)
