package order

import (
	"errors"
	"fmt"

	"turtu/internal/pkg/errs"
)

// Transition errors surfaced to callers as bad requests.
var (
	// ErrOrderAlreadyDelivered is returned when changing the status of an
	// order that already reached its terminal state.
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")

	// ErrStatusReversal is returned for the one forbidden backward move:
	// a picked-up order cannot go back to active.
	ErrStatusReversal = errors.New("cannot revert to active from picked")
)

// Status represents the lifecycle state of a delivery order.
//
// Lifecycle:
//
//	pending ──(assignment)──> active ──> picked ──> delivered
//
// Delivered is terminal. The only rejected forward/backward move below
// delivered is picked -> active; everything else among the assigned
// states is permitted, including the direct active -> delivered skip when
// a driver confirms handoff without a separate pickup update.
type Status int

const (
	// Unknown is the zero value and is never a valid persisted status.
	Unknown Status = iota

	// Pending is the initial status of a submitted order awaiting assignment.
	Pending

	// Active means the order has been assigned to a driver.
	Active

	// Picked means the driver has collected the parcel.
	Picked

	// Delivered is the terminal status after handoff to the receiver.
	Delivered
)

// statusNames maps every status to its lowercase wire form. The strings
// are the values stored in the database and exchanged over HTTP.
func statusNames() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Active:    "active",
		Picked:    "picked",
		Delivered: "delivered",
	}
}

// StatusFromString parses the lowercase wire form of a status. Unknown
// names yield an invalid-value error.
func StatusFromString(name string) (Status, error) {
	for status, s := range statusNames() {
		if s == name && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", name))
}

// String returns the lowercase name of the status, "unknown" for
// unrecognized values.
func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < Pending || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Update transitions the status to next, enforcing the lifecycle rules:
//
//   - next must be one of active, picked, delivered; pending is only ever
//     set at creation and cannot be requested;
//   - a delivered order accepts no further changes;
//   - picked cannot revert to active.
//
// No-op updates and the active -> delivered skip are allowed.
func (s Status) Update(next Status) (Status, error) {
	if next != Active && next != Picked && next != Delivered {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid target status", next))
	}
	if s == Delivered {
		return Unknown, ErrOrderAlreadyDelivered
	}
	if s == Picked && next == Active {
		return Unknown, ErrStatusReversal
	}

	return next, nil
}
