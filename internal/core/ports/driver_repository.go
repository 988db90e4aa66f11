package ports

import (
	"context"

	"turtu/internal/core/domain/model/driver"
	"turtu/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Update persists changes to an existing driver aggregate,
	// in particular availability flips.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such driver exists.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByPhone retrieves a driver aggregate by phone number.
	// Returns errs.ObjectNotFoundError when no such driver exists.
	GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*driver.Driver, error)
}
