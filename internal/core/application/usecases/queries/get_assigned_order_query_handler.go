package queries

import (
	"context"

	"gorm.io/gorm"

	"turtu/internal/pkg/errs"
)

// GetAssignedOrderQueryHandler reads a single assignment snapshot by
// its order id.
type GetAssignedOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrderQueryHandler creates a handler for single assignment queries.
func NewGetAssignedOrderQueryHandler(db *gorm.DB) GetAssignedOrderQueryHandler {
	return GetAssignedOrderQueryHandler{db: db}
}

// Handle returns the snapshot for the order.
// Returns errs.ObjectNotFoundError when the order was never assigned.
func (h GetAssignedOrderQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrderQuery,
) (AssignedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return AssignedOrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+assignedOrderColumns+`
		FROM assigned_orders
		WHERE order_id = ?
		LIMIT 1
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return AssignedOrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AssignedOrderResponse{}, err
		}
		return AssignedOrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	return scanAssignedOrderRow(rows)
}
