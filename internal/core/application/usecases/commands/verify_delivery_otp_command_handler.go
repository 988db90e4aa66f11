package commands

import (
	"context"
)

// VerifyDeliveryOTPCommandHandler checks the OTP presented at handoff
// against the stored one. A match consumes the OTP; a mismatch leaves
// the snapshot untouched.
type VerifyDeliveryOTPCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewVerifyDeliveryOTPCommandHandler creates a handler for OTP verification.
func NewVerifyDeliveryOTPCommandHandler(uowFactory AssignmentUoWFactory) VerifyDeliveryOTPCommandHandler {
	return VerifyDeliveryOTPCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the OTP verification command.
func (h *VerifyDeliveryOTPCommandHandler) Handle(ctx context.Context, cmd VerifyDeliveryOTPCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assigned, err := uow.AssignmentRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = assigned.VerifyOTP(cmd.ProvidedOTP()); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, assigned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
