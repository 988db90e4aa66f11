package jobs

import (
	"context"
	"log/slog"
	"time"

	"turtu/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// LogCleanupJob prunes persisted application logs past their retention
// period. Runs nightly at 03:00 server time.
type LogCleanupJob struct {
	repo      ports.LogRepository
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLogCleanupJob creates a new job for pruning old log records.
// Records older than retention are removed on each run.
func NewLogCleanupJob(repo ports.LogRepository, retention time.Duration, logger *slog.Logger) *LogCleanupJob {
	return &LogCleanupJob{
		repo:      repo,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "log_cleanup_job"),
	}
}

// Start begins the log cleanup job on its nightly schedule.
func (j *LogCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.retention)

		removed, err := j.repo.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Log cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Pruned expired log records", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Log cleanup job started (running nightly at 03:00)")
	return nil
}

// Stop stops the log cleanup job.
func (j *LogCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Log cleanup job stopped")
}
