package commands

import (
	"context"
	"fmt"
	"log/slog"

	"turtu/internal/core/domain/model/assignment"
	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/ports"
)

// AssignOrderCommandHandler handles the business logic for binding an
// order to a delivery driver.
//
// Inside one transaction it loads the order and the driver, generates a
// delivery OTP, creates the assigned order snapshot, moves the order to
// active and the driver to assigned. After commit it notifies the
// customer and the driver by email; email failures are logged and never
// fail the assignment.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	otpGen     ports.OTPGenerator
	notifier   ports.NotificationSender
	logger     *slog.Logger
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(
	uowFactory UoWFactory,
	otpGen ports.OTPGenerator,
	notifier ports.NotificationSender,
	logger *slog.Logger,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		otpGen:     otpGen,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the assignment command and returns the created
// assigned order snapshot.
func (h *AssignOrderCommandHandler) Handle(
	ctx context.Context, cmd AssignOrderCommand,
) (*assignment.AssignedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	theOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	theDriver, err := uow.DriverRepository().GetByPhone(ctx, cmd.DriverPhone())
	if err != nil {
		return nil, err
	}

	otp, err := h.otpGen.Generate()
	if err != nil {
		return nil, err
	}

	assigned, err := assignment.NewAssignedOrder(kernel.NewUUID(), theOrder, theDriver, otp)
	if err != nil {
		return nil, err
	}

	if err = theOrder.AssignDriver(cmd.DriverName()); err != nil {
		return nil, err
	}
	theDriver.MarkAssigned()

	if err = uow.AssignmentRepository().Add(ctx, assigned); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, theOrder); err != nil {
		return nil, err
	}
	if err = uow.DriverRepository().Update(ctx, theDriver); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifyCustomer(ctx, assigned)
	h.notifyDriver(ctx, assigned, theDriver.Email())

	return assigned, nil
}

func (h *AssignOrderCommandHandler) notifyCustomer(ctx context.Context, a *assignment.AssignedOrder) {
	body := fmt.Sprintf(
		"Dear %s,<br><br>Your order with (ID: %s) has been assigned to a driver. "+
			"Driver details:<br><br>- Name: %s<br>- Phone Number: %s<br><br>"+
			"Thank you for choosing TURTU.",
		a.Customer().Name(), a.OrderID().String(), a.DriverName(), a.DriverPhone().String(),
	)

	if err := h.notifier.Send(ctx, a.Customer().Email(), "Order Assigned", body); err != nil {
		h.logger.WarnContext(ctx, "customer assignment email failed",
			"orderId", a.OrderID().String(), "error", err)
	}
}

func (h *AssignOrderCommandHandler) notifyDriver(ctx context.Context, a *assignment.AssignedOrder, email string) {
	body := fmt.Sprintf(
		"Dear %s,<br><br>You have been assigned a new order (ID: %s). Details:<br>"+
			"- Pickup Address: %s<br>- Drop Address: %s<br>- Content: %s<br>- Weight: %.2f<br>"+
			"- Customer Phone: %s<br><br>Please contact the customer if necessary.<br><br>"+
			"Thank you for choosing TURTU.",
		a.DriverName(), a.OrderID().String(), a.PickupAddress(), a.DropAddress(),
		a.Content(), a.Weight(), a.Customer().Phone().String(),
	)

	if err := h.notifier.Send(ctx, email, "New Order Assigned to you", body); err != nil {
		h.logger.WarnContext(ctx, "driver assignment email failed",
			"orderId", a.OrderID().String(), "error", err)
	}
}
