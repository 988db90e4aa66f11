package commands

import (
	"errors"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to hand a pending order to a
// delivery driver, identified by phone number.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	driverPhone kernel.PhoneNumber
	driverName  string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to a driver.
func NewAssignOrderCommand(
	orderID kernel.UUID,
	driverPhone kernel.PhoneNumber,
	driverName string,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverPhone(driverPhone),
		cmd.setDriverName(driverName),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverPhone returns the phone number identifying the driver.
func (c AssignOrderCommand) DriverPhone() kernel.PhoneNumber {
	return c.driverPhone
}

// DriverName returns the driver's display name as entered by the dispatcher.
func (c AssignOrderCommand) DriverName() string {
	return c.driverName
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setDriverPhone(driverPhone kernel.PhoneNumber) error {
	if err := driverPhone.Validate(); err != nil {
		return err
	}

	c.driverPhone = driverPhone
	return nil
}

func (c *AssignOrderCommand) setDriverName(driverName string) error {
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}

	c.driverName = driverName
	return nil
}
