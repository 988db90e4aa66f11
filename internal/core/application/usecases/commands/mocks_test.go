package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turtu/internal/core/application/usecases/commands"
	"turtu/internal/core/domain/model/assignment"
	"turtu/internal/core/domain/model/driver"
	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"
	"turtu/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.AssignedOrder) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.AssignedOrder) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*assignment.AssignedOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.AssignedOrder), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByPhone(ctx context.Context, phone kernel.PhoneNumber) (*driver.Driver, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

// MockUoW satisfies every unit of work combination used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

type MockOTPGenerator struct{ mock.Mock }

func (m *MockOTPGenerator) Generate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testContact(t *testing.T, name, digits, email string) order.Contact {
	t.Helper()

	phone, err := kernel.NewPhoneNumber(digits)
	require.NoError(t, err)

	contact, err := order.NewContact(name, phone, email)
	require.NoError(t, err)

	return contact
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		testContact(t, "Asha Rao", "9876543210", "asha@example.com"),
		testContact(t, "Vikram Joshi", "9123456780", "vikram@example.com"),
		"12 MG Road, Bengaluru",
		"4 Residency Road, Bengaluru",
		"documents",
		1.5,
		118,
		"call on arrival",
		nil,
	)
	require.NoError(t, err)

	return o
}

func testDriver(t *testing.T) *driver.Driver {
	t.Helper()

	phone, err := kernel.NewPhoneNumber("9000011111")
	require.NoError(t, err)

	d, err := driver.NewDriver(kernel.NewUUID(), "Ravi Kumar", phone, "ravi@example.com")
	require.NoError(t, err)

	return d
}

func testAssignedOrder(t *testing.T, otp string) *assignment.AssignedOrder {
	t.Helper()

	a, err := assignment.NewAssignedOrder(kernel.NewUUID(), testOrder(t), testDriver(t), otp)
	require.NoError(t, err)

	return a
}
