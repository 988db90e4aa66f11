package driver

import (
	"fmt"

	"turtu/internal/pkg/errs"
)

// Availability represents whether a driver can take a new order.
//
// Drivers flip to Assigned when an order is bound to them and back to
// Available when they complete a delivery.
type Availability int

const (
	// AvailabilityUnknown is the zero value and never a valid persisted state.
	AvailabilityUnknown Availability = iota

	// Available means the driver can be assigned an order.
	Available

	// Assigned means the driver is currently working an order.
	Assigned
)

// availabilityNames maps each state to its lowercase wire form.
func availabilityNames() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "unknown",
		Available:           "available",
		Assigned:            "assigned",
	}
}

// AvailabilityFromString parses the lowercase wire form.
func AvailabilityFromString(name string) (Availability, error) {
	for availability, s := range availabilityNames() {
		if s == name && availability != AvailabilityUnknown {
			return availability, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability",
		fmt.Errorf("%q is not a valid driver availability", name))
}

// String returns the lowercase name of the state.
func (a Availability) String() string {
	if name, ok := availabilityNames()[a]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects AvailabilityUnknown and out-of-range values.
func (a Availability) Validate() error {
	if a != Available && a != Assigned {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}
