package ports

import (
	"context"
	"time"
)

// LogEntry is one persisted application log record.
type LogEntry struct {
	Time      time.Time
	Level     string
	Service   string
	TrackerID string
	Message   string
}

// LogRepository persists application logs and prunes expired ones.
type LogRepository interface {
	// Add stores one log record.
	Add(ctx context.Context, entry LogEntry) error

	// DeleteOlderThan removes records older than cutoff and reports how
	// many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
