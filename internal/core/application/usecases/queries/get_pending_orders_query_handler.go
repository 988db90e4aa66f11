package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"turtu/internal/core/domain/model/kernel"
)

const orderColumns = `
	id,
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
	status,
	assigned_driver
`

// GetPendingOrdersQueryHandler reads unassigned immediate orders from
// the database.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle returns pending orders without a pickup schedule.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ? AND pickup_date IS NULL
		ORDER BY id
	`, "pending").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id uuid.UUID
	var instructions, pickupDate, pickupTime, assignedDriver sql.NullString

	err := rows.Scan(
		&id,
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
		&assignedDriver,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	resp.DeliveryInstructions = instructions.String
	resp.PickupDate = pickupDate.String
	resp.PickupTime = pickupTime.String
	resp.AssignedDriver = assignedDriver.String
	return resp, nil
}
