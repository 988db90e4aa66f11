package commands

import (
	"context"
	"fmt"
	"log/slog"

	"turtu/internal/core/domain/model/order"
	"turtu/internal/core/ports"
)

// SubmitOrderCommandHandler handles the business logic for placing orders.
// New orders start in pending status and wait for a driver assignment.
// A confirmation email is sent after the order is committed; email
// failures are logged and never fail the request.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSender
	logger     *slog.Logger
}

// NewSubmitOrderCommandHandler creates a handler for order placement.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSender,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order placement command.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Customer(),
		cmd.Receiver(),
		cmd.PickupAddress(),
		cmd.DropAddress(),
		cmd.Content(),
		cmd.Weight(),
		cmd.Amount(),
		cmd.DeliveryInstructions(),
		cmd.Schedule(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.sendConfirmation(ctx, newOrder)
	return nil
}

func (h *SubmitOrderCommandHandler) sendConfirmation(ctx context.Context, o *order.Order) {
	subject := "Your TURTU order has been placed"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your order <b>%s</b> has been placed. "+
			"We will notify you once a delivery partner is assigned.</p>",
		o.Customer().Name(), o.ID().String(),
	)

	if err := h.notifier.Send(ctx, o.Customer().Email(), subject, body); err != nil {
		h.logger.WarnContext(ctx, "order confirmation email failed",
			"orderId", o.ID().String(), "error", err)
	}
}
