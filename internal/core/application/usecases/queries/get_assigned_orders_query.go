package queries

import (
	"errors"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves every order that has been handed to
// a driver, whatever its current status.
type GetAssignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a query for all assigned orders.
func NewGetAssignedOrdersQuery() GetAssignedOrdersQuery {
	return GetAssignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// AssignedOrderResponse is the read model for an assignment snapshot row.
// The OTP never leaves the database through queries.
type AssignedOrderResponse struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	DriverID             kernel.UUID
	DriverName           string
	DriverPhone          string
	CustomerName         string
	CustomerPhone        string
	CustomerEmail        string
	ReceiverName         string
	ReceiverPhone        string
	ReceiverEmail        string
	PickupAddress        string
	DropAddress          string
	Content              string
	Weight               float64
	Amount               float64
	DeliveryInstructions string
	PickupDate           string
	PickupTime           string
	Status               string
}
