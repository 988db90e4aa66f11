package cmd

import (
	"log/slog"
	"os"
	"time"

	httpin "turtu/internal/adapters/in/http"
	"turtu/internal/adapters/out/email"
	"turtu/internal/adapters/out/postgres"
	"turtu/internal/adapters/out/postgres/logrepo"
	"turtu/internal/adapters/out/postgres/pricingrepo"
	"turtu/internal/core/application/usecases/commands"
	"turtu/internal/core/application/usecases/queries"
	"turtu/internal/core/ports"
	"turtu/internal/jobs"
	"turtu/internal/pkg/logging"
	"turtu/internal/pkg/otp"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logRepo    ports.LogRepository
	registry   *logging.Registry
	notifier   ports.NotificationSender
	otpGen     ports.OTPGenerator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logRepo := logrepo.NewGormLogRepository(gormDB)
	storeHandler := logging.NewStoreHandler(
		slog.NewTextHandler(os.Stdout, nil),
		logRepo,
	)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logRepo:    logRepo,
		registry:   logging.NewRegistry(storeHandler),
		notifier: email.NewGomailSender(
			config.SMTPHost,
			config.SMTPPort,
			config.SMTPUser,
			config.SMTPPassword,
			config.SMTPFrom,
		),
		otpGen: otp.Generator{},
	}
}

// Logger returns the persisted logger for a platform service.
func (c *CompositionRoot) Logger(service logging.Service) *slog.Logger {
	return c.registry.For(service)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() *commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewSubmitOrderCommandHandler(f, c.notifier, c.Logger(logging.ServicePickupDrop))
	return &h
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() *commands.AssignOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewAssignOrderCommandHandler(f, c.otpGen, c.notifier, c.Logger(logging.ServicePickupDrop))
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateOrderStatusCommandHandler(f, c.notifier, c.Logger(logging.ServicePickupDrop))
	return &h
}

func (c *CompositionRoot) CreateVerifyDeliveryOTPCommandHandler() *commands.VerifyDeliveryOTPCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewVerifyDeliveryOTPCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCalculateFareQueryHandler() queries.CalculateFareQueryHandler {
	return queries.NewCalculateFareQueryHandler(pricingrepo.NewGormPricingRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetScheduledOrdersQueryHandler() queries.GetScheduledOrdersQueryHandler {
	return queries.NewGetScheduledOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverAssignmentsQueryHandler() queries.GetDriverAssignmentsQueryHandler {
	return queries.NewGetDriverAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedOrderQueryHandler() queries.GetAssignedOrderQueryHandler {
	return queries.NewGetAssignedOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the echo adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		SubmitOrder:       c.CreateSubmitOrderCommandHandler(),
		AssignOrder:       c.CreateAssignOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		VerifyDeliveryOTP: c.CreateVerifyDeliveryOTPCommandHandler(),

		CalculateFare:     c.CreateCalculateFareQueryHandler(),
		PendingOrders:     c.CreateGetPendingOrdersQueryHandler(),
		ScheduledOrders:   c.CreateGetScheduledOrdersQueryHandler(),
		AssignedOrders:    c.CreateGetAssignedOrdersQueryHandler(),
		DriverAssignments: c.CreateGetDriverAssignmentsQueryHandler(),
		AssignedOrder:     c.CreateGetAssignedOrderQueryHandler(),
		AvailableDrivers:  c.CreateGetAvailableDriversQueryHandler(),
	}, httpin.AuthConfig{
		Secret:        c.config.JWTSecret,
		AdminEmail:    c.config.AdminEmail,
		AdminPassword: c.config.AdminPassword,
		TokenTTL:      24 * time.Hour,
	})
}

// CreateJobManager wires the background maintenance jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	retention := time.Duration(c.config.LogRetentionDays) * 24 * time.Hour
	return jobs.NewJobManager(c.logRepo, retention, c.Logger(logging.ServicePickupDrop))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
