package queries

import (
	"errors"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves immediate orders awaiting a driver:
// pending status and no pickup schedule.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for unassigned immediate orders.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// OrderResponse is the read model for an order row.
type OrderResponse struct {
	ID                   kernel.UUID
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
	AssignedDriver       string
}
