package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "turtu/internal/adapters/out/postgres"
	"turtu/internal/adapters/out/postgres/assignmentrepo"
	"turtu/internal/adapters/out/postgres/driverrepo"
	"turtu/internal/adapters/out/postgres/orderrepo"
	"turtu/internal/core/domain/model/assignment"
	"turtu/internal/core/domain/model/driver"
	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"
	"turtu/internal/core/ports"
	"turtu/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &assignmentrepo.AssignedOrderDTO{}, &driverrepo.DriverDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, assigned_orders, drivers").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.AssignmentRepository(), "First instance should provide assignment repository")
	suite.NotNil(uow1.DriverRepository(), "First instance should provide driver repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderRoundTrip verifies order persistence within a
// single transaction boundary, including all optional attributes.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal("Asha Rao", retrieved.Customer().Name())
	suite.Equal("9876543210", retrieved.Customer().Phone().String())
	suite.Equal("Vikram Joshi", retrieved.Receiver().Name())
	suite.Equal("Documents", retrieved.Content())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Empty(retrieved.DeliveryInstructions())
	suite.Nil(retrieved.Schedule())
}

// TestUnitOfWork_ScheduledOrderRoundTrip verifies that pickup schedules
// survive persistence.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ScheduledOrderRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createScheduledTestOrder(suite.T())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Schedule())
	suite.Equal("2026-09-01", retrieved.Schedule().PickupDate())
	suite.Equal("10:30", retrieved.Schedule().PickupTime())
	suite.Equal("Ring the bell twice", retrieved.DeliveryInstructions())
}

// TestUnitOfWork_AssignmentTransaction verifies that assignment creation
// updates the assignment snapshot, the order, and the driver atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentTransaction() {
	ctx := context.Background()

	testOrder := createTestOrder(suite.T())
	testDriver := createTestDriver(suite.T())
	suite.seedDriver(testDriver)

	assigned, err := assignment.NewAssignedOrder(kernel.NewUUID(), testOrder, testDriver, "482913")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.AssignDriver(testDriver.Name())
	suite.Require().NoError(err)
	testDriver.MarkAssigned()

	err = uow.AssignmentRepository().Add(ctx, assigned)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, testDriver)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedAssigned, err := newUow.AssignmentRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(assigned.ID(), retrievedAssigned.ID())
	suite.Equal(testDriver.ID(), retrievedAssigned.DriverID())
	suite.Equal(order.Active, retrievedAssigned.Status())
	suite.Require().NotNil(retrievedAssigned.OTP())
	suite.Equal("482913", *retrievedAssigned.OTP())

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Active, retrievedOrder.Status())
	suite.Equal(testDriver.Name(), retrievedOrder.AssignedDriver())

	retrievedDriver, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.Assigned, retrievedDriver.Availability())
}

// TestUnitOfWork_ConsumedOTPPersistsAsNull verifies that a verified OTP
// stays cleared after a write and re-read cycle.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConsumedOTPPersistsAsNull() {
	ctx := context.Background()

	testOrder := createTestOrder(suite.T())
	testDriver := createTestDriver(suite.T())

	assigned, err := assignment.NewAssignedOrder(kernel.NewUUID(), testOrder, testDriver, "482913")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AssignmentRepository().Add(ctx, assigned))
	suite.Require().NoError(uow.Commit(ctx))

	err = assigned.VerifyOTP("482913")
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AssignmentRepository().Update(ctx, assigned))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().AssignmentRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Nil(retrieved.OTP(), "Consumed OTP should persist as NULL")
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()

	testOrder := createTestOrder(suite.T())
	testDriver := createTestDriver(suite.T())

	assigned, err := assignment.NewAssignedOrder(kernel.NewUUID(), testOrder, testDriver, "482913")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.AssignmentRepository().Add(ctx, assigned)
	suite.Require().NoError(err)

	// Both rows visible within the transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	_, err = uow.AssignmentRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Order should not exist after rollback")

	_, err = newUow.AssignmentRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Assignment should not exist after rollback")
}

// TestUnitOfWork_DriverLookup verifies driver retrieval by ID and by phone.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DriverLookup() {
	ctx := context.Background()

	testDriver := createTestDriver(suite.T())
	suite.seedDriver(testDriver)

	uow := suite.factory.Create()

	byID, err := uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(testDriver.Name(), byID.Name())
	suite.Equal(driver.Available, byID.Availability())

	byPhone, err := uow.DriverRepository().GetByPhone(ctx, testDriver.Phone())
	suite.Require().NoError(err)
	suite.Equal(testDriver.ID(), byPhone.ID())

	missingPhone, err := kernel.NewPhoneNumber("9999999999")
	suite.Require().NoError(err)
	_, err = uow.DriverRepository().GetByPhone(ctx, missingPhone)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUnitOfWork_UpdateMissingRows verifies updates against absent rows fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UpdateMissingRows() {
	ctx := context.Background()

	testOrder := createTestOrder(suite.T())
	uow := suite.factory.Create()

	err := uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().Error(err, "Updating a never-persisted order should fail")
}

// seedDriver inserts a driver row outside any unit of work. Drivers are
// provisioned out of band; the application only reads and updates them.
func (suite *UnitOfWorkIntegrationTestSuite) seedDriver(d *driver.Driver) {
	dto := driverrepo.DriverDTO{
		ID:           d.ID().Bytes(),
		Name:         d.Name(),
		Phone:        d.Phone().String(),
		Email:        d.Email(),
		Availability: d.Availability().String(),
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
}

func createTestOrder(t *testing.T) *order.Order {
	t.Helper()

	customerPhone, err := kernel.NewPhoneNumber("9876543210")
	if err != nil {
		t.Fatal(err)
	}
	customer, err := order.NewContact("Asha Rao", customerPhone, "asha@example.com")
	if err != nil {
		t.Fatal(err)
	}

	receiverPhone, err := kernel.NewPhoneNumber("9123456780")
	if err != nil {
		t.Fatal(err)
	}
	receiver, err := order.NewContact("Vikram Joshi", receiverPhone, "vikram@example.com")
	if err != nil {
		t.Fatal(err)
	}

	o, err := order.NewOrder(kernel.NewUUID(), customer, receiver,
		"12 MG Road, Bengaluru", "4 Residency Road, Bengaluru",
		"Documents", 1.5, 118, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	return o
}

func createScheduledTestOrder(t *testing.T) *order.Order {
	t.Helper()

	customerPhone, err := kernel.NewPhoneNumber("9876543210")
	if err != nil {
		t.Fatal(err)
	}
	customer, err := order.NewContact("Asha Rao", customerPhone, "asha@example.com")
	if err != nil {
		t.Fatal(err)
	}

	receiverPhone, err := kernel.NewPhoneNumber("9123456780")
	if err != nil {
		t.Fatal(err)
	}
	receiver, err := order.NewContact("Vikram Joshi", receiverPhone, "vikram@example.com")
	if err != nil {
		t.Fatal(err)
	}

	schedule, err := order.NewSchedule("2026-09-01", "10:30")
	if err != nil {
		t.Fatal(err)
	}

	o, err := order.NewOrder(kernel.NewUUID(), customer, receiver,
		"12 MG Road, Bengaluru", "4 Residency Road, Bengaluru",
		"Birthday cake", 2.0, 160, "Ring the bell twice", &schedule)
	if err != nil {
		t.Fatal(err)
	}

	return o
}

func createTestDriver(t *testing.T) *driver.Driver {
	t.Helper()

	phone, err := kernel.NewPhoneNumber("9000011111")
	if err != nil {
		t.Fatal(err)
	}

	d, err := driver.NewDriver(kernel.NewUUID(), "Ravi Kumar", phone, "ravi@example.com")
	if err != nil {
		t.Fatal(err)
	}

	return d
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
