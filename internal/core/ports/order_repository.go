// Package ports defines repository and outbound service interfaces for the
// order lifecycle domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
