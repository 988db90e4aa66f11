// Package driver contains the delivery driver aggregate. Drivers are
// looked up by phone number during assignment and toggle between
// available and assigned as orders move through their lifecycle.
package driver

import (
	"errors"
	"fmt"
	"strings"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is the aggregate root for a delivery driver. New drivers start
// available. Assignment does not refuse an already-assigned driver: the
// assigner console only offers available drivers, and the store is the
// source of truth, so the aggregate stays permissive here.
type Driver struct {
	id           kernel.UUID
	name         string
	phone        kernel.PhoneNumber
	email        string
	availability Availability
	guard        guard.ConstructorGuard
}

// NewDriver creates a new Driver in available state.
func NewDriver(id kernel.UUID, name string, phone kernel.PhoneNumber, email string) (*Driver, error) {
	d := &Driver{
		availability: Available,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setEmail(email),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence with its stored
// availability.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone kernel.PhoneNumber,
	email string,
	availability Availability,
) (*Driver, error) {
	d, err := NewDriver(id, name, phone, email)
	if err != nil {
		return nil, err
	}

	if err = availability.Validate(); err != nil {
		return nil, err
	}
	d.availability = availability

	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() kernel.PhoneNumber {
	return d.phone
}

// Email returns the driver's email address.
func (d *Driver) Email() string {
	return d.email
}

// Availability returns the driver's current availability.
func (d *Driver) Availability() Availability {
	return d.availability
}

// MarkAssigned flips the driver to assigned when an order is bound to them.
func (d *Driver) MarkAssigned() {
	d.availability = Assigned
}

// MarkAvailable flips the driver back to available after a delivery.
func (d *Driver) MarkAvailable() {
	d.availability = Available
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone kernel.PhoneNumber) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	d.phone = phone
	return nil
}

func (d *Driver) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", email))
	}
	d.email = email
	return nil
}
