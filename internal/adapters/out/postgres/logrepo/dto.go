// Package logrepo persists application log records for auditing and
// later cleanup.
package logrepo

import (
	"time"

	"turtu/internal/core/ports"

	"github.com/google/uuid"
)

// LogEntryDTO represents one persisted log record. The time column is
// indexed because the cleanup job prunes by age.
type LogEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Time      time.Time `gorm:"not null;index"`
	Level     string    `gorm:"type:varchar(16);not null"`
	Service   string    `gorm:"type:varchar(64);not null"`
	TrackerID string    `gorm:"type:varchar(64)"`
	Message   string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for log records.
// Overrides GORM's default naming convention to use "app_logs".
func (LogEntryDTO) TableName() string {
	return "app_logs"
}

// fromEntry converts a log record to its database representation,
// assigning a fresh row identifier.
func fromEntry(entry ports.LogEntry) LogEntryDTO {
	return LogEntryDTO{
		ID:        uuid.New(),
		Time:      entry.Time,
		Level:     entry.Level,
		Service:   entry.Service,
		TrackerID: entry.TrackerID,
		Message:   entry.Message,
	}
}
