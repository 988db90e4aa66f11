package commands

import (
	"errors"

	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/pkg/errs"
	"turtu/internal/pkg/guard"
)

var ErrVerifyDeliveryOTPCommandIsNotConstructed = errors.New(
	"VerifyDeliveryOTPCommand must be created via NewVerifyDeliveryOTPCommand constructor",
)

// VerifyDeliveryOTPCommand represents the driver presenting the
// customer's OTP at handoff.
type VerifyDeliveryOTPCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	providedOTP string

	guard guard.ConstructorGuard
}

// NewVerifyDeliveryOTPCommand creates a command to verify a delivery OTP.
// Both the order id and the OTP are required.
func NewVerifyDeliveryOTPCommand(orderID kernel.UUID, providedOTP string) (VerifyDeliveryOTPCommand, error) {
	cmd := VerifyDeliveryOTPCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProvidedOTP(providedOTP),
	); err != nil {
		return VerifyDeliveryOTPCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyDeliveryOTPCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDeliveryOTPCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being handed off.
func (c VerifyDeliveryOTPCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProvidedOTP returns the OTP presented by the driver.
func (c VerifyDeliveryOTPCommand) ProvidedOTP() string {
	return c.providedOTP
}

func (c *VerifyDeliveryOTPCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VerifyDeliveryOTPCommand) setProvidedOTP(providedOTP string) error {
	if providedOTP == "" {
		return errs.NewValueIsRequiredError("providedOtp")
	}

	c.providedOTP = providedOTP
	return nil
}
