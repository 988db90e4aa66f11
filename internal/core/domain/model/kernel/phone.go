package kernel

import (
	"fmt"

	"turtu/internal/pkg/errs"
)

// phoneNumberLength is the number of digits in a valid subscriber number.
const phoneNumberLength = 10

// ErrPhoneNumberIsNotConstructed is returned when validating a zero-value
// PhoneNumber that bypassed NewPhoneNumber.
var ErrPhoneNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"phone number must be created via NewPhoneNumber")

// PhoneNumber is a validated 10-digit subscriber number. It identifies
// customers and drivers in the assignment flow, so malformed numbers are
// rejected at construction rather than at lookup time.
//
// The zero value is invalid; use NewPhoneNumber.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber creates a PhoneNumber from its string form. The input
// must be exactly ten ASCII digits.
func NewPhoneNumber(value string) (PhoneNumber, error) {
	if value == "" {
		return PhoneNumber{}, errs.NewValueIsRequiredError("phoneNumber")
	}
	if len(value) != phoneNumberLength {
		return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause("phoneNumber",
			fmt.Errorf("%q is not a %d-digit number", value, phoneNumberLength))
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return PhoneNumber{}, errs.NewValueIsInvalidErrorWithCause("phoneNumber",
				fmt.Errorf("%q contains a non-digit character", value))
		}
	}

	return PhoneNumber{value: value}, nil
}

// String returns the digits as entered.
func (p PhoneNumber) String() string {
	return p.value
}

// IsEqual reports whether two phone numbers hold the same digits.
func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.value == other.value
}

// Validate returns ErrPhoneNumberIsNotConstructed for the zero value.
func (p PhoneNumber) Validate() error {
	if p.value == "" {
		return ErrPhoneNumberIsNotConstructed
	}
	return nil
}
