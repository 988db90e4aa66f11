// Package assignment contains the AssignedOrder aggregate: the snapshot
// of an order taken at assignment time, bound to a driver and owning the
// delivery OTP for its lifetime.
package assignment

import (
	"errors"

	"turtu/internal/core/domain/model/driver"
	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"
	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

var (
	// ErrAssignedOrderIsNotConstructed is returned when an AssignedOrder
	// was not created through a constructor.
	ErrAssignedOrderIsNotConstructed = errors.New(
		"AssignedOrder must be created via NewAssignedOrder constructor")

	// ErrOTPMismatch is returned when the OTP presented at handoff does
	// not match the stored one, or the stored one was already consumed.
	ErrOTPMismatch = errors.New("invalid delivery OTP")
)

// AssignedOrder is a one-to-one projection of an Order created exactly
// once, at assignment time. It duplicates the order's address and contact
// fields so the driver app reads a single row, carries the assigned
// driver's details, and owns the delivery OTP: set at creation, emailed
// to the customer at pickup, cleared on successful verification.
//
// Its status mirrors the parent order's and both rows are updated
// together inside one transaction.
type AssignedOrder struct {
	id                   kernel.UUID
	orderID              kernel.UUID
	driverID             kernel.UUID
	driverName           string
	driverPhone          kernel.PhoneNumber
	customer             order.Contact
	receiver             order.Contact
	pickupAddress        string
	dropAddress          string
	content              string
	weight               float64
	amount               float64
	deliveryInstructions string
	schedule             *order.Schedule
	otp                  *string
	status               order.Status
	guard                guard.ConstructorGuard
}

// NewAssignedOrder snapshots o at assignment time, binds it to d, and
// stores the delivery OTP. The snapshot starts in active status.
func NewAssignedOrder(id kernel.UUID, o *order.Order, d *driver.Driver, otp string) (*AssignedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if otp == "" {
		return nil, errs.NewValueIsRequiredError("otp")
	}

	return &AssignedOrder{
		id:                   id,
		orderID:              o.ID(),
		driverID:             d.ID(),
		driverName:           d.Name(),
		driverPhone:          d.Phone(),
		customer:             o.Customer(),
		receiver:             o.Receiver(),
		pickupAddress:        o.PickupAddress(),
		dropAddress:          o.DropAddress(),
		content:              o.Content(),
		weight:               o.Weight(),
		amount:               o.Amount(),
		deliveryInstructions: o.DeliveryInstructions(),
		schedule:             o.Schedule(),
		otp:                  &otp,
		status:               order.Active,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// RestoreAssignedOrder reconstructs an AssignedOrder from persistence.
// The OTP is nil once it has been consumed at handoff.
func RestoreAssignedOrder(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	driverName string,
	driverPhone kernel.PhoneNumber,
	customer order.Contact,
	receiver order.Contact,
	pickupAddress string,
	dropAddress string,
	content string,
	weight float64,
	amount float64,
	deliveryInstructions string,
	schedule *order.Schedule,
	otp *string,
	status order.Status,
) (*AssignedOrder, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		driverID.Validate(),
		driverPhone.Validate(),
		customer.Validate(),
		receiver.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if driverName == "" {
		return nil, errs.NewValueIsRequiredError("driverName")
	}

	return &AssignedOrder{
		id:                   id,
		orderID:              orderID,
		driverID:             driverID,
		driverName:           driverName,
		driverPhone:          driverPhone,
		customer:             customer,
		receiver:             receiver,
		pickupAddress:        pickupAddress,
		dropAddress:          dropAddress,
		content:              content,
		weight:               weight,
		amount:               amount,
		deliveryInstructions: deliveryInstructions,
		schedule:             schedule,
		otp:                  otp,
		status:               status,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the AssignedOrder was created through a constructor.
func (a *AssignedOrder) Validate() error {
	if a == nil {
		return ErrAssignedOrderIsNotConstructed
	}
	return a.guard.Validate(ErrAssignedOrderIsNotConstructed)
}

// ID returns the snapshot's own identifier.
func (a *AssignedOrder) ID() kernel.UUID {
	return a.id
}

// OrderID returns the identifier of the order this snapshot was taken from.
func (a *AssignedOrder) OrderID() kernel.UUID {
	return a.orderID
}

// DriverID returns the assigned driver's identifier.
func (a *AssignedOrder) DriverID() kernel.UUID {
	return a.driverID
}

// DriverName returns the assigned driver's display name.
func (a *AssignedOrder) DriverName() string {
	return a.driverName
}

// DriverPhone returns the assigned driver's phone number.
func (a *AssignedOrder) DriverPhone() kernel.PhoneNumber {
	return a.driverPhone
}

// Customer returns the snapshotted customer contact.
func (a *AssignedOrder) Customer() order.Contact {
	return a.customer
}

// Receiver returns the snapshotted receiver contact.
func (a *AssignedOrder) Receiver() order.Contact {
	return a.receiver
}

// PickupAddress returns the snapshotted collection address.
func (a *AssignedOrder) PickupAddress() string {
	return a.pickupAddress
}

// DropAddress returns the snapshotted destination address.
func (a *AssignedOrder) DropAddress() string {
	return a.dropAddress
}

// Content returns the snapshotted parcel description.
func (a *AssignedOrder) Content() string {
	return a.content
}

// Weight returns the snapshotted parcel weight in kilograms.
func (a *AssignedOrder) Weight() float64 {
	return a.weight
}

// Amount returns the snapshotted fare in rupees.
func (a *AssignedOrder) Amount() float64 {
	return a.amount
}

// DeliveryInstructions returns the snapshotted handling notes.
func (a *AssignedOrder) DeliveryInstructions() string {
	return a.deliveryInstructions
}

// Schedule returns the snapshotted pickup schedule, nil for immediate orders.
func (a *AssignedOrder) Schedule() *order.Schedule {
	return a.schedule
}

// OTP returns the stored delivery OTP, nil once consumed.
func (a *AssignedOrder) OTP() *string {
	return a.otp
}

// Status returns the snapshot's lifecycle status.
func (a *AssignedOrder) Status() order.Status {
	return a.status
}

// UpdateStatus transitions the snapshot's status under the same rules as
// the parent order.
func (a *AssignedOrder) UpdateStatus(next order.Status) error {
	updated, err := a.status.Update(next)
	if err != nil {
		return err
	}

	a.status = updated
	return nil
}

// VerifyOTP compares the presented OTP with the stored one. On match the
// OTP is cleared, making it single use; on mismatch nothing changes. A
// consumed OTP never matches again.
func (a *AssignedOrder) VerifyOTP(provided string) error {
	if provided == "" {
		return errs.NewValueIsRequiredError("otp")
	}
	if a.otp == nil || *a.otp != provided {
		return ErrOTPMismatch
	}

	a.otp = nil
	return nil
}
