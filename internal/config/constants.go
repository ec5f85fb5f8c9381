package config

import "time"

// Save backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultServiceName = "tavern-sim"
	DefaultVersion     = "dev"

	DefaultSaveDir    = "data/saves"
	DefaultSQLitePath = "data/tavern.db"
	DefaultSaveSlots  = 5
	DefaultDBMaxConns = 5

	DefaultAutoSaveInterval      = 5 * time.Minute
	DefaultTickInterval          = time.Second
	DefaultMinutesPerTick        = 1
	DefaultPatienceTickInterval  = time.Second
	DefaultCustomerSpawnInterval = 30 * time.Second
	DefaultJournalSize           = 256
)
