package eventlog

import (
	"context"
	"time"

	"github.com/osse101/TavernSim_Go/internal/logger"
)

// CleanupJob drops journal entries older than the retention window
type CleanupJob struct {
	service   Service
	retention time.Duration
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(service Service, retention time.Duration) *CleanupJob {
	return &CleanupJob{
		service:   service,
		retention: retention,
	}
}

// Process executes the cleanup job
func (j *CleanupJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCleanupJobStarting, LogFieldRetention, j.retention)

	start := time.Now()
	count, err := j.service.CleanupOldEvents(ctx, j.retention)
	if err != nil {
		return err
	}

	if count > 0 {
		log.Info(LogMsgCleanupJobCompleted, LogFieldDeletedCount, count, LogFieldDuration, time.Since(start))
	}
	return nil
}
