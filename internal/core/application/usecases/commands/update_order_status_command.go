package commands

import (
	"errors"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"
	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a driver's progress report on an
// assigned order: active, picked or delivered.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	status   order.Status
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move an assigned
// order through its lifecycle. Only active, picked and delivered are
// acceptable targets.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	driverID kernel.UUID,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setDriverID(driverID),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// DriverID returns the reporting driver's identifier.
func (c UpdateOrderStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if status != order.Active && status != order.Picked && status != order.Delivered {
		return errs.NewValueIsInvalidError("status")
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
