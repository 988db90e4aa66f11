package commands

import (
	"errors"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"
	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to place a new parcel order.
// A nil schedule means immediate pickup; a schedule defers pickup to the
// given date and time slot.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	customer             order.Contact
	receiver             order.Contact
	pickupAddress        string
	dropAddress          string
	content              string
	weight               float64
	amount               float64
	deliveryInstructions string
	schedule             *order.Schedule

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to place a new order.
// Contacts must be constructed, addresses and content non-empty, the
// weight positive and the amount non-negative.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	customer order.Contact,
	receiver order.Contact,
	pickupAddress string,
	dropAddress string,
	content string,
	weight float64,
	amount float64,
	deliveryInstructions string,
	schedule *order.Schedule,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setReceiver(receiver),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDropAddress(dropAddress),
		cmd.setContent(content),
		cmd.setWeight(weight),
		cmd.setAmount(amount),
		cmd.setSchedule(schedule),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	cmd.deliveryInstructions = deliveryInstructions
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the ordering customer's contact.
func (c SubmitOrderCommand) Customer() order.Contact {
	return c.customer
}

// Receiver returns the receiving party's contact.
func (c SubmitOrderCommand) Receiver() order.Contact {
	return c.receiver
}

// PickupAddress returns the collection address.
func (c SubmitOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropAddress returns the destination address.
func (c SubmitOrderCommand) DropAddress() string {
	return c.dropAddress
}

// Content returns the parcel description.
func (c SubmitOrderCommand) Content() string {
	return c.content
}

// Weight returns the parcel weight in kilograms.
func (c SubmitOrderCommand) Weight() float64 {
	return c.weight
}

// Amount returns the quoted fare in rupees.
func (c SubmitOrderCommand) Amount() float64 {
	return c.amount
}

// DeliveryInstructions returns optional handling notes.
func (c SubmitOrderCommand) DeliveryInstructions() string {
	return c.deliveryInstructions
}

// Schedule returns the pickup schedule, nil for immediate orders.
func (c SubmitOrderCommand) Schedule() *order.Schedule {
	return c.schedule
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setCustomer(customer order.Contact) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *SubmitOrderCommand) setReceiver(receiver order.Contact) error {
	if err := receiver.Validate(); err != nil {
		return err
	}

	c.receiver = receiver
	return nil
}

func (c *SubmitOrderCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}

	c.pickupAddress = pickupAddress
	return nil
}

func (c *SubmitOrderCommand) setDropAddress(dropAddress string) error {
	if dropAddress == "" {
		return errs.NewValueIsRequiredError("dropAddress")
	}

	c.dropAddress = dropAddress
	return nil
}

func (c *SubmitOrderCommand) setContent(content string) error {
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}

	c.content = content
	return nil
}

func (c *SubmitOrderCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}

	c.weight = weight
	return nil
}

func (c *SubmitOrderCommand) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *SubmitOrderCommand) setSchedule(schedule *order.Schedule) error {
	if schedule == nil {
		return nil
	}
	if err := schedule.Validate(); err != nil {
		return err
	}

	c.schedule = schedule
	return nil
}
