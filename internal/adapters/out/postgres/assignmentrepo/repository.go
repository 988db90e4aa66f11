package assignmentrepo

import (
	"context"
	"errors"

	"turtu/internal/core/domain/model/assignment"
	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment snapshot to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.AssignedOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment snapshot to the database.
// Select("*") forces NULL writes so a consumed OTP is actually cleared.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.AssignedOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignedOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderID retrieves the assignment snapshot taken for the given order.
func (r *GormAssignmentRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*assignment.AssignedOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignedOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignedOrder", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
