// Package jobs provides scheduled background tasks for the platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. LogCleanupJob - Runs nightly to prune persisted application logs past their retention period
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(logRepo, 30*24*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Cleanup failures are logged and retried on the next scheduled run;
// they never take the application down.
package jobs
