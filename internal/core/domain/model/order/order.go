package order

import (
	"errors"
	"fmt"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer delivery request. It is
// created in pending status at submission and moves through the lifecycle
// as drivers are assigned and the parcel travels.
//
// Invariants:
//   - identifier, customer, and receiver contacts are always valid
//   - pickup and drop addresses and the parcel content are non-empty
//   - weight is positive, amount is non-negative
//   - status transitions follow the rules in Status.Update
//   - a schedule is present only for "Schedule for Later" orders
type Order struct {
	id                   kernel.UUID
	customer             Contact
	receiver             Contact
	pickupAddress        string
	dropAddress          string
	content              string
	weight               float64
	amount               float64
	deliveryInstructions string
	schedule             *Schedule
	status               Status
	assignedDriver       string
	guard                guard.ConstructorGuard
}

// NewOrder creates a new Order in pending status. The schedule is nil for
// immediate ("Delivery Now") orders; for scheduled orders it must be a
// valid Schedule. Delivery instructions are optional.
func NewOrder(
	id kernel.UUID,
	customer Contact,
	receiver Contact,
	pickupAddress string,
	dropAddress string,
	content string,
	weight float64,
	amount float64,
	deliveryInstructions string,
	schedule *Schedule,
) (*Order, error) {
	order := &Order{
		status:               Pending,
		deliveryInstructions: deliveryInstructions,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setReceiver(receiver),
		order.setPickupAddress(pickupAddress),
		order.setDropAddress(dropAddress),
		order.setContent(content),
		order.setWeight(weight),
		order.setAmount(amount),
		order.setSchedule(schedule),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its
// current status and assigned driver. Unlike NewOrder it accepts any
// valid status, since stored orders may be anywhere in the lifecycle.
func RestoreOrder(
	id kernel.UUID,
	customer Contact,
	receiver Contact,
	pickupAddress string,
	dropAddress string,
	content string,
	weight float64,
	amount float64,
	deliveryInstructions string,
	schedule *Schedule,
	status Status,
	assignedDriver string,
) (*Order, error) {
	order, err := NewOrder(id, customer, receiver, pickupAddress, dropAddress,
		content, weight, amount, deliveryInstructions, schedule)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	order.status = status
	order.assignedDriver = assignedDriver

	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the contact of the party that placed the order.
func (o *Order) Customer() Contact {
	return o.customer
}

// Receiver returns the contact of the party taking the handoff.
func (o *Order) Receiver() Contact {
	return o.receiver
}

// PickupAddress returns the collection address.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DropAddress returns the destination address.
func (o *Order) DropAddress() string {
	return o.dropAddress
}

// Content describes what is being shipped.
func (o *Order) Content() string {
	return o.content
}

// Weight returns the parcel weight in kilograms.
func (o *Order) Weight() float64 {
	return o.weight
}

// Amount returns the fare charged for the order in rupees.
func (o *Order) Amount() float64 {
	return o.amount
}

// DeliveryInstructions returns the optional free-form handling notes.
func (o *Order) DeliveryInstructions() string {
	return o.deliveryInstructions
}

// Schedule returns the pickup schedule, nil for immediate orders.
func (o *Order) Schedule() *Schedule {
	return o.schedule
}

// IsScheduled reports whether the order was submitted for a later pickup.
func (o *Order) IsScheduled() bool {
	return o.schedule != nil
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AssignedDriver returns the name of the assigned driver, empty until
// assignment.
func (o *Order) AssignedDriver() string {
	return o.assignedDriver
}

// AssignDriver records the driver taking the order and moves it to
// active. The order itself does not reject re-assignment; creating a
// second assignment snapshot for the same order is the caller's mistake
// to avoid.
func (o *Order) AssignDriver(driverName string) error {
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}

	o.status = Active
	o.assignedDriver = driverName
	return nil
}

// UpdateStatus transitions the order to next per the lifecycle rules.
func (o *Order) UpdateStatus(next Status) error {
	updated, err := o.status.Update(next)
	if err != nil {
		return err
	}

	o.status = updated
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Contact) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setReceiver(receiver Contact) error {
	if err := receiver.Validate(); err != nil {
		return err
	}
	o.receiver = receiver
	return nil
}

func (o *Order) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = address
	return nil
}

func (o *Order) setDropAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropAddress")
	}
	o.dropAddress = address
	return nil
}

func (o *Order) setContent(content string) error {
	if content == "" {
		return errs.NewValueIsRequiredError("content")
	}
	o.content = content
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%g is negative", amount))
	}
	o.amount = amount
	return nil
}

func (o *Order) setSchedule(schedule *Schedule) error {
	if schedule == nil {
		return nil
	}
	if err := schedule.Validate(); err != nil {
		return err
	}
	o.schedule = schedule
	return nil
}
