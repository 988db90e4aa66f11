package queries

import (
	"errors"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/guard"
)

var ErrGetAssignedOrderQueryIsNotConstructed = errors.New(
	"GetAssignedOrderQuery must be created via NewGetAssignedOrderQuery constructor",
)

// GetAssignedOrderQuery retrieves the assignment snapshot for one order.
type GetAssignedOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrderQuery creates a query for one order's assignment.
func NewGetAssignedOrderQuery(orderID kernel.UUID) (GetAssignedOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetAssignedOrderQuery{}, err
	}

	return GetAssignedOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrderQueryIsNotConstructed)
}

// OrderID returns the order whose assignment is requested.
func (q GetAssignedOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
