package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"turtu/internal/core/domain/model/kernel"
)

const assignedOrderColumns = `
	id,
	order_id,
	driver_id,
	driver_name,
	driver_phone,
	customer_name,
	customer_phone,
	customer_email,
	receiver_name,
	receiver_phone,
	receiver_email,
	pickup_address,
	drop_address,
	content,
	weight,
	amount,
	delivery_instructions,
	pickup_date,
	pickup_time,
	status
`

// GetAssignedOrdersQueryHandler reads assignment snapshots from the
// database.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for assigned order queries.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle returns every assignment snapshot.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]AssignedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + assignedOrderColumns + `
		FROM assigned_orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignedOrderRows(rows)
}

func scanAssignedOrderRows(rows *sql.Rows) ([]AssignedOrderResponse, error) {
	assignments := make([]AssignedOrderResponse, 0)

	for rows.Next() {
		resp, err := scanAssignedOrderRow(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func scanAssignedOrderRow(rows *sql.Rows) (AssignedOrderResponse, error) {
	var resp AssignedOrderResponse
	var id, orderID, driverID uuid.UUID
	var instructions, pickupDate, pickupTime sql.NullString

	err := rows.Scan(
		&id,
		&orderID,
		&driverID,
		&resp.DriverName,
		&resp.DriverPhone,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerEmail,
		&resp.ReceiverName,
		&resp.ReceiverPhone,
		&resp.ReceiverEmail,
		&resp.PickupAddress,
		&resp.DropAddress,
		&resp.Content,
		&resp.Weight,
		&resp.Amount,
		&instructions,
		&pickupDate,
		&pickupTime,
		&resp.Status,
	)
	if err != nil {
		return AssignedOrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return AssignedOrderResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return AssignedOrderResponse{}, err
	}
	if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
		return AssignedOrderResponse{}, err
	}

	resp.DeliveryInstructions = instructions.String
	resp.PickupDate = pickupDate.String
	resp.PickupTime = pickupTime.String
	return resp, nil
}
