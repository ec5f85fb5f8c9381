package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/TavernSim_Go/internal/config"
	"github.com/osse101/TavernSim_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// Old session logs beyond LogFileRetentionCount are removed first.
// Returns the log file handle (caller must close).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "file", logFileName)
	slog.Info(LogMsgStartingTavernSim,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"save_backend", cfg.SaveBackend,
		"save_slots", cfg.SaveSlots,
		"auto_save", cfg.AutoSaveEnabled,
		"tick_interval", cfg.TickInterval)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so at most keep remain.
// Session file names sort by their timestamp.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
