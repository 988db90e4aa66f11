package logrepo

import (
	"context"
	"time"

	"turtu/internal/core/ports"

	"gorm.io/gorm"
)

// GormLogRepository implements LogRepository using GORM. Writes happen
// outside any unit of work so a failed business transaction still
// leaves its log trail behind.
type GormLogRepository struct {
	db *gorm.DB
}

// NewGormLogRepository creates a new GORM log repository.
func NewGormLogRepository(db *gorm.DB) *GormLogRepository {
	return &GormLogRepository{db: db}
}

// Add stores one log record.
func (r *GormLogRepository) Add(ctx context.Context, entry ports.LogEntry) error {
	dto := fromEntry(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// DeleteOlderThan removes records older than cutoff and reports how
// many were removed.
func (r *GormLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("time < ?", cutoff).Delete(&LogEntryDTO{})
	return result.RowsAffected, result.Error
}
