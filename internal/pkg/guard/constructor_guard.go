// Package guard provides the constructor guard pattern used by domain
// objects to detect zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. A zero-value guard fails validation, which lets aggregates
// and value objects reject instances assembled by direct struct literals.
//
// Embed a ConstructorGuard as a private field and set it with
// NewConstructorGuard inside the constructor:
//
//	type Schedule struct {
//	    date  string
//	    time  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSchedule(date, time string) (Schedule, error) {
//	    ...
//	    return Schedule{date: date, time: time, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
