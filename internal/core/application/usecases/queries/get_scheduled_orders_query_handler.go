package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetScheduledOrdersQueryHandler reads pending scheduled orders from
// the database.
type GetScheduledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetScheduledOrdersQueryHandler creates a handler for scheduled order queries.
func NewGetScheduledOrdersQueryHandler(db *gorm.DB) GetScheduledOrdersQueryHandler {
	return GetScheduledOrdersQueryHandler{db: db}
}

// Handle returns pending orders with a pickup schedule, earliest slot first.
func (h GetScheduledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetScheduledOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ? AND pickup_date IS NOT NULL
		ORDER BY pickup_date, pickup_time
	`, "pending").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
