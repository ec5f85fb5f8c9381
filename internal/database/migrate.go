package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/osse101/TavernSim_Go/internal/logger"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFS embed.FS

// Migrate brings the schema for dialect up to date using the embedded goose migrations
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	var gooseDialect goose.Dialect
	switch dialect {
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnsupportedDialect, dialect)
	}

	fsys, err := fs.Sub(migrationFS, "migrations/"+string(dialect))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	log := logger.FromContext(ctx)
	if len(results) == 0 {
		log.Debug(LogMsgMigrationsUpToDate, "dialect", dialect)
	}
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "dialect", dialect, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}
