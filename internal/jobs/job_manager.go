package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"turtu/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	logCleanupJob *LogCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	logRepo ports.LogRepository,
	logRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		logCleanupJob: NewLogCleanupJob(logRepo, logRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.logCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start log cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.logCleanupJob.Stop()
}
