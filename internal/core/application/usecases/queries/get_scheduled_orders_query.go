package queries

import (
	"errors"

	"turtu/internal/pkg/guard"
)

var ErrGetScheduledOrdersQueryIsNotConstructed = errors.New(
	"GetScheduledOrdersQuery must be created via NewGetScheduledOrdersQuery constructor",
)

// GetScheduledOrdersQuery retrieves pending orders that carry a pickup
// schedule and are waiting for their slot.
type GetScheduledOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetScheduledOrdersQuery creates a query for scheduled orders.
func NewGetScheduledOrdersQuery() GetScheduledOrdersQuery {
	return GetScheduledOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetScheduledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetScheduledOrdersQueryIsNotConstructed)
}
