package queries

import (
	"errors"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves drivers who can take a new order.
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query for available drivers.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// DriverResponse is the read model for a driver row.
type DriverResponse struct {
	ID           kernel.UUID
	Name         string
	Phone        string
	Email        string
	Availability string
}
