package ports

import (
	"context"

	"turtu/internal/core/domain/model/assignment"
	"turtu/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for assigned
// order snapshots.
type AssignmentRepository interface {
	// Add persists a new assigned order snapshot.
	Add(ctx context.Context, aggregate *assignment.AssignedOrder) error

	// Update persists changes to an existing snapshot, including status
	// moves and OTP consumption.
	Update(ctx context.Context, aggregate *assignment.AssignedOrder) error

	// GetByOrderID retrieves the snapshot taken for the given order.
	// Returns errs.ObjectNotFoundError when the order was never assigned.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*assignment.AssignedOrder, error)
}
