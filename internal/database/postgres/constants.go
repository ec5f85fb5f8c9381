package postgres

// Error formats - save store
const (
	ErrFmtReadSave   = "read save %s: %w"
	ErrFmtWriteSave  = "write save %s: %w"
	ErrFmtDeleteSave = "delete save %s: %w"
)

// Test container settings
const (
	TestImage    = "postgres:15-alpine"
	TestDatabase = "testdb"
	TestUser     = "testuser"
	TestPassword = "testpass"
)
