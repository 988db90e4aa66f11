// Package http provides the echo HTTP adapter. Handlers translate wire
// requests into commands and queries, translate results back into the
// JSON contract used by the TURTU frontends, and map domain errors onto
// HTTP status codes.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"turtu/internal/core/application/usecases/commands"
	"turtu/internal/core/application/usecases/queries"
	"turtu/internal/core/domain/model/assignment"
	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"
	"turtu/internal/pkg/auth"
	"turtu/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Command handler contracts consumed by the server. Declared here so
// tests can substitute stubs for the application layer.
type (
	SubmitOrderHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitOrderCommand) error
	}

	AssignOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AssignOrderCommand) (*assignment.AssignedOrder, error)
	}

	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}

	VerifyDeliveryOTPHandler interface {
		Handle(ctx context.Context, cmd commands.VerifyDeliveryOTPCommand) error
	}
)

// Query handler contracts consumed by the server.
type (
	CalculateFareHandler interface {
		Handle(ctx context.Context, query queries.CalculateFareQuery) (queries.CalculateFareQueryResponse, error)
	}

	PendingOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.OrderResponse, error)
	}

	ScheduledOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetScheduledOrdersQuery) ([]queries.OrderResponse, error)
	}

	AssignedOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAssignedOrdersQuery) ([]queries.AssignedOrderResponse, error)
	}

	DriverAssignmentsHandler interface {
		Handle(ctx context.Context, query queries.GetDriverAssignmentsQuery) ([]queries.AssignedOrderResponse, error)
	}

	AssignedOrderHandler interface {
		Handle(ctx context.Context, query queries.GetAssignedOrderQuery) (queries.AssignedOrderResponse, error)
	}

	AvailableDriversHandler interface {
		Handle(ctx context.Context, query queries.GetAvailableDriversQuery) ([]queries.DriverResponse, error)
	}
)

// Handlers bundles every use case the HTTP surface exposes.
type Handlers struct {
	SubmitOrder       SubmitOrderHandler
	AssignOrder       AssignOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	VerifyDeliveryOTP VerifyDeliveryOTPHandler

	CalculateFare     CalculateFareHandler
	PendingOrders     PendingOrdersHandler
	ScheduledOrders   ScheduledOrdersHandler
	AssignedOrders    AssignedOrdersHandler
	DriverAssignments DriverAssignmentsHandler
	AssignedOrder     AssignedOrderHandler
	AvailableDrivers  AvailableDriversHandler
}

// AuthConfig carries the credentials and signing material for the
// admin login endpoint and the bearer middleware.
type AuthConfig struct {
	Secret        string
	AdminEmail    string
	AdminPassword string
	TokenTTL      time.Duration
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	authCfg  AuthConfig
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, authCfg AuthConfig) *Server {
	return &Server{
		handlers: handlers,
		authCfg:  authCfg,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance. Mutating
// order-management routes sit behind the bearer middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/login", s.Login)
	e.POST("/calculate_fare", s.CalculateFare)
	e.POST("/submit-order", s.SubmitOrder)

	protected := e.Group("", RequireAuth(s.authCfg.Secret))
	protected.POST("/assign-order", s.AssignOrder)
	protected.PUT("/update-order-status", s.UpdateOrderStatus)
	protected.POST("/verify-delivery-otp", s.VerifyDeliveryOTP)

	e.GET("/pending-orders", s.PendingOrders)
	e.GET("/scheduled-orders", s.ScheduledOrders)
	e.GET("/assigned-orders", s.AssignedOrders)
	e.GET("/assigned-orders/driver/:driverId", s.DriverAssignments)
	e.GET("/order/:orderId", s.AssignedOrder)
	e.GET("/available-drivers", s.AvailableDrivers)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"trackerId": trackerID(c),
	})
}

// Login handles POST /login - authenticates the admin account and
// issues a bearer token.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	if req.Email != s.authCfg.AdminEmail || req.Password != s.authCfg.AdminPassword {
		return s.badRequest(c, "Invalid credentials")
	}

	token, err := auth.IssueToken(s.authCfg.Secret, auth.Principal{
		Name: "Admin",
		Role: "admin",
	}, s.authCfg.TokenTTL)
	if err != nil {
		return s.internalError(c)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: loginUser{
			Name:  "Admin",
			Email: s.authCfg.AdminEmail,
			Role:  "admin",
		},
		TrackerID: trackerID(c),
	})
}

// CalculateFare handles POST /calculate_fare - computes the fare
// breakdown for a distance and weight.
func (s *Server) CalculateFare(c echo.Context) error {
	var req calculateFareRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	query, err := queries.NewCalculateFareQuery(req.Distance, req.Weight)
	if err != nil {
		return s.badRequest(c, "Invalid distance or weight provided")
	}

	fare, err := s.handlers.CalculateFare.Handle(c.Request().Context(), query)
	if err != nil {
		return s.internalError(c)
	}

	return c.JSON(http.StatusOK, fareResponse{
		TotalAmount:      rupee(fare.TotalAmount),
		BaseFare:         rupee(fare.BaseFare),
		ExtraFarePerKm:   rupee(fare.ExtraFarePerKm),
		WeightFare:       rupee(fare.WeightFare),
		AdditionalCharge: rupee(fare.AdditionalCharge),
		Distance:         fare.DistanceKm,
		Weight:           fare.WeightKg,
		TrackerID:        trackerID(c),
	})
}

// SubmitOrder handles POST /submit-order - accepts an immediate or
// scheduled delivery order.
func (s *Server) SubmitOrder(c echo.Context) error {
	var req submitOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	var schedule *order.Schedule
	switch req.ServiceType {
	case "Delivery Now":
	case "Schedule for Later":
		if req.PickupDate == "" || req.PickupTime == "" {
			return s.badRequest(c, "Pickup date and time are required for scheduled deliveries")
		}
		sched, err := order.NewSchedule(req.PickupDate, req.PickupTime)
		if err != nil {
			return s.badRequest(c, "Invalid pickup date or time")
		}
		schedule = &sched
	default:
		return s.badRequest(c, "Invalid service type")
	}

	customer, err := newContact(req.Name, req.PhoneNumber, req.Email)
	if err != nil {
		return s.badRequest(c, "Invalid customer details: "+err.Error())
	}

	receiver, err := newContact(req.ReceiverName, req.ReceiverPhoneNumber, req.ReceiverEmail)
	if err != nil {
		return s.badRequest(c, "Invalid receiver details: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(orderID, customer, receiver,
		req.PickupAddress, req.DropAddress, req.Content, req.Weight, req.Amount,
		req.DeliveryInstructions, schedule)
	if err != nil {
		return s.badRequest(c, "Invalid order data: "+err.Error())
	}

	if err := s.handlers.SubmitOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.internalError(c)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message":   "Order created successfully",
		"orderId":   orderID.String(),
		"trackerId": trackerID(c),
	})
}

// AssignOrder handles POST /assign-order - binds a driver to a pending
// order and returns the created snapshot.
func (s *Server) AssignOrder(c echo.Context) error {
	var req assignOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return s.badRequest(c, "Invalid order id")
	}

	phone, err := kernel.NewPhoneNumber(req.DriverPhoneNumber)
	if err != nil {
		return s.badRequest(c, "Invalid driver phone number")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, phone, req.DriverName)
	if err != nil {
		return s.badRequest(c, "Invalid assignment data: "+err.Error())
	}

	assigned, err := s.handlers.AssignOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.mapDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":       "Driver assigned successfully and emails sent!",
		"assignedOrder": assignmentToJSON(assigned),
		"trackerId":     trackerID(c),
	})
}

// UpdateOrderStatus handles PUT /update-order-status - moves an order
// through its lifecycle.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return s.badRequest(c, "Invalid order id")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return s.badRequest(c, "Invalid driver id")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.badRequest(c, "Invalid status value")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, driverID)
	if err != nil {
		return s.badRequest(c, "Invalid status value")
	}

	if err := s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.mapDomainError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message:   "Order status updated successfully",
		TrackerID: trackerID(c),
	})
}

// VerifyDeliveryOTP handles POST /verify-delivery-otp - consumes the
// delivery OTP on exact match.
func (s *Server) VerifyDeliveryOTP(c echo.Context) error {
	var req verifyDeliveryOTPRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	if req.OrderID == "" || req.ProvidedOTP == "" {
		return s.badRequest(c, "Order ID and OTP are required")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return s.badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewVerifyDeliveryOTPCommand(orderID, req.ProvidedOTP)
	if err != nil {
		return s.badRequest(c, "Order ID and OTP are required")
	}

	if err := s.handlers.VerifyDeliveryOTP.Handle(c.Request().Context(), cmd); err != nil {
		if errors.Is(err, assignment.ErrOTPMismatch) {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"message":   "Invalid OTP",
				"valid":     false,
				"trackerId": trackerID(c),
			})
		}
		return s.mapDomainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":   "OTP verified successfully",
		"valid":     true,
		"trackerId": trackerID(c),
	})
}

// PendingOrders handles GET /pending-orders.
func (s *Server) PendingOrders(c echo.Context) error {
	orders, err := s.handlers.PendingOrders.Handle(c.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return s.internalError(c)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"orders":    ordersToJSON(orders),
		"trackerId": trackerID(c),
	})
}

// ScheduledOrders handles GET /scheduled-orders.
func (s *Server) ScheduledOrders(c echo.Context) error {
	orders, err := s.handlers.ScheduledOrders.Handle(c.Request().Context(), queries.NewGetScheduledOrdersQuery())
	if err != nil {
		return s.internalError(c)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"orders":    ordersToJSON(orders),
		"trackerId": trackerID(c),
	})
}

// AssignedOrders handles GET /assigned-orders.
func (s *Server) AssignedOrders(c echo.Context) error {
	assigned, err := s.handlers.AssignedOrders.Handle(c.Request().Context(), queries.NewGetAssignedOrdersQuery())
	if err != nil {
		return s.internalError(c)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"orders":    assignedOrdersToJSON(assigned),
		"trackerId": trackerID(c),
	})
}

// DriverAssignments handles GET /assigned-orders/driver/:driverId.
func (s *Server) DriverAssignments(c echo.Context) error {
	driverID, err := kernel.UUIDFromString(c.Param("driverId"))
	if err != nil {
		return s.badRequest(c, "Invalid driver id")
	}

	query, err := queries.NewGetDriverAssignmentsQuery(driverID)
	if err != nil {
		return s.badRequest(c, "Invalid driver id")
	}

	assigned, err := s.handlers.DriverAssignments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.internalError(c)
	}

	if len(assigned) == 0 {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message:   "No assigned orders found for this driver",
			TrackerID: trackerID(c),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"assignedOrders": assignedOrdersToJSON(assigned),
		"trackerId":      trackerID(c),
	})
}

// AssignedOrder handles GET /order/:orderId - looks up the assignment
// snapshot for one order.
func (s *Server) AssignedOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return s.badRequest(c, "Invalid order id")
	}

	query, err := queries.NewGetAssignedOrderQuery(orderID)
	if err != nil {
		return s.badRequest(c, "Invalid order id")
	}

	assigned, err := s.handlers.AssignedOrder.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{
				Message:   "Order not found",
				TrackerID: trackerID(c),
			})
		}
		return s.internalError(c)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"order":     assignedOrderToJSON(assigned),
		"trackerId": trackerID(c),
	})
}

// AvailableDrivers handles GET /available-drivers.
func (s *Server) AvailableDrivers(c echo.Context) error {
	drivers, err := s.handlers.AvailableDrivers.Handle(c.Request().Context(), queries.NewGetAvailableDriversQuery())
	if err != nil {
		return s.internalError(c)
	}

	if len(drivers) == 0 {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message:   "No available drivers found",
			TrackerID: trackerID(c),
		})
	}

	out := make([]driverJSON, len(drivers))
	for i, d := range drivers {
		out[i] = driverToJSON(d)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"drivers":   out,
		"trackerId": trackerID(c),
	})
}

// mapDomainError classifies command failures: missing aggregates map to
// 404, illegal transitions and validation failures to 400, everything
// else to a generic 500.
func (s *Server) mapDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{
			Message:   "Not found: " + err.Error(),
			TrackerID: trackerID(c),
		})
	case errors.Is(err, order.ErrOrderAlreadyDelivered):
		return s.badRequest(c, "Order is already delivered")
	case errors.Is(err, order.ErrStatusReversal):
		return s.badRequest(c, "Invalid status transition")
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return s.badRequest(c, err.Error())
	default:
		return s.internalError(c)
	}
}

func (s *Server) badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, messageResponse{
		Message:   message,
		TrackerID: trackerID(c),
	})
}

func (s *Server) internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, messageResponse{
		Message:   "Internal Server Error",
		TrackerID: trackerID(c),
	})
}

func newContact(name, phone, email string) (order.Contact, error) {
	phoneNumber, err := kernel.NewPhoneNumber(phone)
	if err != nil {
		return order.Contact{}, err
	}
	return order.NewContact(name, phoneNumber, email)
}

func ordersToJSON(orders []queries.OrderResponse) []orderJSON {
	out := make([]orderJSON, len(orders))
	for i, o := range orders {
		out[i] = orderToJSON(o)
	}
	return out
}

func assignedOrdersToJSON(assigned []queries.AssignedOrderResponse) []assignedOrderJSON {
	out := make([]assignedOrderJSON, len(assigned))
	for i, a := range assigned {
		out[i] = assignedOrderToJSON(a)
	}
	return out
}
