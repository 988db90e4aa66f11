package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverAssignmentsQueryHandler reads one driver's assignment
// snapshots from the database.
type GetDriverAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverAssignmentsQueryHandler creates a handler for driver assignment queries.
func NewGetDriverAssignmentsQueryHandler(db *gorm.DB) GetDriverAssignmentsQueryHandler {
	return GetDriverAssignmentsQueryHandler{db: db}
}

// Handle returns the snapshots assigned to the driver. An empty slice
// means the driver has none.
func (h GetDriverAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverAssignmentsQuery,
) ([]AssignedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+assignedOrderColumns+`
		FROM assigned_orders
		WHERE driver_id = ?
		ORDER BY id
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignedOrderRows(rows)
}
