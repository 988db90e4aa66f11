package commands_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turtu/internal/core/application/usecases/commands"
	"turtu/internal/core/domain/model/driver"
	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"
	"turtu/internal/pkg/errs"
)

func activeOrder(t *testing.T) *order.Order {
	t.Helper()

	o := testOrder(t)
	require.NoError(t, o.AssignDriver("Ravi Kumar"))

	return o
}

func statusCommand(t *testing.T, orderID kernel.UUID, status order.Status, driverID kernel.UUID) commands.UpdateOrderStatusCommand {
	t.Helper()

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, driverID)
	require.NoError(t, err)

	return cmd
}

func TestUpdateOrderStatusCommandHandler_Handle_Picked(t *testing.T) {
	ctx := t.Context()

	theOrder := activeOrder(t)
	assigned := testAssignedOrder(t, "482913")
	cmd := statusCommand(t, theOrder.ID(), order.Picked, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once()
	assignmentRepo.On("GetByOrderID", ctx, theOrder.ID()).Return(assigned, nil).Once()
	orderRepo.On("Update", ctx, theOrder).Return(nil).Once()
	assignmentRepo.On("Update", ctx, assigned).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSender)
	notifier.On("Send", ctx, "asha@example.com", "Your Delivery OTP",
		mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "482913")
		})).Return(nil).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Picked, theOrder.Status())
	assert.Equal(t, order.Picked, assigned.Status())
	orderRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := t.Context()

	theOrder := activeOrder(t)
	assigned := testAssignedOrder(t, "482913")
	theDriver := testDriver(t)
	theDriver.MarkAssigned()
	cmd := statusCommand(t, theOrder.ID(), order.Delivered, theDriver.ID())

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("DriverRepository").Return(driverRepo)
	orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once()
	assignmentRepo.On("GetByOrderID", ctx, theOrder.ID()).Return(assigned, nil).Once()
	orderRepo.On("Update", ctx, theOrder).Return(nil).Once()
	assignmentRepo.On("Update", ctx, assigned).Return(nil).Once()
	driverRepo.On("Get", ctx, theDriver.ID()).Return(theDriver, nil).Once()
	driverRepo.On("Update", ctx, theDriver).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSender)
	notifier.On("Send", ctx, "asha@example.com", "Order Successfully Delivered", mock.Anything).
		Return(nil).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, theOrder.Status())
	assert.Equal(t, order.Delivered, assigned.Status())
	assert.Equal(t, driver.Available, theDriver.Availability())
	driverRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_DeliveredDriverMissing(t *testing.T) {
	ctx := t.Context()

	theOrder := activeOrder(t)
	assigned := testAssignedOrder(t, "482913")
	driverID := kernel.NewUUID()
	cmd := statusCommand(t, theOrder.ID(), order.Delivered, driverID)

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("DriverRepository").Return(driverRepo)
	orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once()
	assignmentRepo.On("GetByOrderID", ctx, theOrder.ID()).Return(assigned, nil).Once()
	orderRepo.On("Update", ctx, theOrder).Return(nil).Once()
	assignmentRepo.On("Update", ctx, assigned).Return(nil).Once()
	driverRepo.On("Get", ctx, driverID).
		Return(nil, errs.NewObjectNotFoundError("driverId", driverID.String())).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSender)
	notifier.On("Send", ctx, "asha@example.com", "Order Successfully Delivered", mock.Anything).
		Return(nil).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()

	theOrder := activeOrder(t)
	require.NoError(t, theOrder.UpdateStatus(order.Delivered))
	assigned := testAssignedOrder(t, "482913")
	cmd := statusCommand(t, theOrder.ID(), order.Picked, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once()
	assignmentRepo.On("GetByOrderID", ctx, theOrder.ID()).Return(assigned, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSender)

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOrderAlreadyDelivered)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Send")
}

func TestUpdateOrderStatusCommandHandler_Handle_StatusReversal(t *testing.T) {
	ctx := t.Context()

	theOrder := activeOrder(t)
	require.NoError(t, theOrder.UpdateStatus(order.Picked))
	assigned := testAssignedOrder(t, "482913")
	cmd := statusCommand(t, theOrder.ID(), order.Active, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once()
	assignmentRepo.On("GetByOrderID", ctx, theOrder.ID()).Return(assigned, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(
		factory, new(MockNotificationSender), discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrStatusReversal)
}

func TestUpdateOrderStatusCommandHandler_Handle_AssignedOrderNotFound(t *testing.T) {
	ctx := t.Context()

	theOrder := activeOrder(t)
	cmd := statusCommand(t, theOrder.ID(), order.Picked, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once()
	assignmentRepo.On("GetByOrderID", ctx, theOrder.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderId", theOrder.ID().String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(
		factory, new(MockNotificationSender), discardLogger())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_PickedWithConsumedOTP(t *testing.T) {
	ctx := t.Context()

	theOrder := activeOrder(t)
	assigned := testAssignedOrder(t, "482913")
	require.NoError(t, assigned.VerifyOTP("482913"))
	cmd := statusCommand(t, theOrder.ID(), order.Picked, kernel.NewUUID())

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	orderRepo.On("Get", ctx, theOrder.ID()).Return(theOrder, nil).Once()
	assignmentRepo.On("GetByOrderID", ctx, theOrder.ID()).Return(assigned, nil).Once()
	orderRepo.On("Update", ctx, theOrder).Return(nil).Once()
	assignmentRepo.On("Update", ctx, assigned).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSender)

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "Send")
}
