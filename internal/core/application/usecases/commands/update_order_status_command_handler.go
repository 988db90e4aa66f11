package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"turtu/internal/core/domain/model/order"
	"turtu/internal/core/ports"
	"turtu/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler moves an assigned order through its
// lifecycle. The order row and its assignment snapshot are updated in
// one transaction. When the order is delivered the reporting driver is
// released back to available. Notifications go out after commit; their
// failures are logged and never fail the request.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationSender
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	notifier ports.NotificationSender,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	theOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assigned, err := uow.AssignmentRepository().GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// Saved before the move: a picked order emails the stored OTP.
	otp := assigned.OTP()

	if err = theOrder.UpdateStatus(cmd.Status()); err != nil {
		return err
	}
	if err = assigned.UpdateStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, theOrder); err != nil {
		return err
	}
	if err = uow.AssignmentRepository().Update(ctx, assigned); err != nil {
		return err
	}

	if cmd.Status() == order.Delivered {
		if err = h.releaseDriver(ctx, uow, cmd); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	switch cmd.Status() {
	case order.Delivered:
		h.sendDeliveredConfirmation(ctx, theOrder)
	case order.Picked:
		h.sendOTP(ctx, theOrder, otp)
	}

	return nil
}

// releaseDriver flips the reporting driver back to available. A driver
// that cannot be found is logged and skipped; the delivery itself stands.
func (h *UpdateOrderStatusCommandHandler) releaseDriver(
	ctx context.Context, uow UoW, cmd UpdateOrderStatusCommand,
) error {
	theDriver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "driver not found on delivery, availability unchanged",
				"driverId", cmd.DriverID().String())
			return nil
		}
		return err
	}

	theDriver.MarkAvailable()
	return uow.DriverRepository().Update(ctx, theDriver)
}

func (h *UpdateOrderStatusCommandHandler) sendDeliveredConfirmation(ctx context.Context, o *order.Order) {
	body := fmt.Sprintf(
		"Dear %s,<br>Your order (ID: %s) has been delivered successfully.<br>"+
			"Thank you for choosing TURTU!",
		o.Customer().Name(), o.ID().String(),
	)

	if err := h.notifier.Send(ctx, o.Customer().Email(), "Order Successfully Delivered", body); err != nil {
		h.logger.WarnContext(ctx, "delivery confirmation email failed",
			"orderId", o.ID().String(), "error", err)
	}
}

func (h *UpdateOrderStatusCommandHandler) sendOTP(ctx context.Context, o *order.Order, otp *string) {
	if otp == nil {
		h.logger.WarnContext(ctx, "no OTP stored for picked order, skipping email",
			"orderId", o.ID().String())
		return
	}

	body := fmt.Sprintf(
		"Dear %s,<br><br>Your order (ID: %s) has been picked up. "+
			"Please provide the following OTP:<br><strong>%s</strong><br><br>"+
			"Thank you for choosing TURTU.",
		o.Customer().Name(), o.ID().String(), *otp,
	)

	if err := h.notifier.Send(ctx, o.Customer().Email(), "Your Delivery OTP", body); err != nil {
		h.logger.WarnContext(ctx, "OTP email failed",
			"orderId", o.ID().String(), "error", err)
	}
}
