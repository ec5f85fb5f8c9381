package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobPanic  = "Worker job panicked"
	LogMsgJobDropped      = "Job queue full, dropping job"
	LogMsgPoolStopped     = "Worker pool stopped"
)

// ============================================================================
// Log Messages - Simulation Jobs
// ============================================================================

const (
	LogMsgClockTicked     = "Clock ticked"
	LogMsgCustomersLeft   = "Customers left during patience tick"
	LogMsgCustomerSpawned = "Customer spawned by job"
)

// ============================================================================
// Log Messages - Auto Save Worker
// ============================================================================

const (
	LogMsgAutoSaveStarted          = "Auto save started"
	LogMsgAutoSaveStopped          = "Auto save stopped"
	LogMsgAutoSaveRunning          = "Auto save running"
	LogMsgAutoSaveFailed           = "Auto save failed"
	LogMsgAutoSaveShutdown         = "Shutting down auto save worker"
	LogMsgAutoSaveShutdownComplete = "Auto save worker shutdown complete"
	LogMsgAutoSaveShutdownTimeout  = "Auto save worker shutdown timeout, a save may still be running"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	DefaultAutoSaveInterval = 5 * time.Minute
	DefaultJobTimeout       = 30 * time.Second
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
