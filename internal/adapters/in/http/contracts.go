package http

import (
	"strconv"

	"turtu/internal/core/application/usecases/queries"
	"turtu/internal/core/domain/model/assignment"
)

// Request bodies. Field names follow the wire contract used by the
// TURTU frontends.

type calculateFareRequest struct {
	Distance float64 `json:"distance"`
	Weight   float64 `json:"weight"`
}

type submitOrderRequest struct {
	ServiceType          string  `json:"serviceType"`
	Name                 string  `json:"name"`
	PhoneNumber          string  `json:"phoneNumber"`
	Email                string  `json:"email"`
	ReceiverName         string  `json:"receiverName"`
	ReceiverPhoneNumber  string  `json:"receiverPhonenumber"`
	ReceiverEmail        string  `json:"receiverEmail"`
	PickupAddress        string  `json:"pickupAddress"`
	DropAddress          string  `json:"dropAddress"`
	Content              string  `json:"content"`
	Weight               float64 `json:"weight"`
	Amount               float64 `json:"amount"`
	DeliveryInstructions string  `json:"deliveryInstructions"`
	PickupDate           string  `json:"pickupDate"`
	PickupTime           string  `json:"pickupTime"`
}

type assignOrderRequest struct {
	OrderID           string `json:"orderId"`
	DriverPhoneNumber string `json:"driverPhoneNumber"`
	DriverName        string `json:"driverName"`
}

type updateOrderStatusRequest struct {
	OrderID  string `json:"orderId"`
	Status   string `json:"status"`
	DriverID string `json:"driverId"`
}

type verifyDeliveryOTPRequest struct {
	OrderID     string `json:"orderId"`
	ProvidedOTP string `json:"providedOtp"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response bodies. Every payload echoes the request tracker id.

type messageResponse struct {
	Message   string `json:"message"`
	TrackerID string `json:"trackerId"`
}

type fareResponse struct {
	TotalAmount      string  `json:"totalAmount"`
	BaseFare         string  `json:"baseFare"`
	ExtraFarePerKm   string  `json:"extraFarePerKm"`
	WeightFare       string  `json:"weightFare"`
	AdditionalCharge string  `json:"additionalCharge"`
	Distance         float64 `json:"distance"`
	Weight           float64 `json:"weight"`
	TrackerID        string  `json:"trackerId"`
}

type orderJSON struct {
	ID                   string  `json:"id"`
	CustomerName         string  `json:"customerName"`
	CustomerPhone        string  `json:"customerPhone"`
	CustomerEmail        string  `json:"customerEmail"`
	ReceiverName         string  `json:"receiverName"`
	ReceiverPhone        string  `json:"receiverPhone"`
	ReceiverEmail        string  `json:"receiverEmail"`
	PickupAddress        string  `json:"pickupAddress"`
	DropAddress          string  `json:"dropAddress"`
	Content              string  `json:"content"`
	Weight               float64 `json:"weight"`
	Amount               float64 `json:"amount"`
	DeliveryInstructions string  `json:"deliveryInstructions"`
	PickupDate           string  `json:"pickupDate"`
	PickupTime           string  `json:"pickupTime"`
	Status               string  `json:"status"`
	AssignedDriver       string  `json:"assignedDriver"`
}

type assignedOrderJSON struct {
	ID                   string  `json:"id"`
	OrderID              string  `json:"orderId"`
	DriverID             string  `json:"driverId"`
	DriverName           string  `json:"driverName"`
	DriverPhone          string  `json:"driverPhone"`
	CustomerName         string  `json:"customerName"`
	CustomerPhone        string  `json:"customerPhone"`
	CustomerEmail        string  `json:"customerEmail"`
	ReceiverName         string  `json:"receiverName"`
	ReceiverPhone        string  `json:"receiverPhone"`
	ReceiverEmail        string  `json:"receiverEmail"`
	PickupAddress        string  `json:"pickupAddress"`
	DropAddress          string  `json:"dropAddress"`
	Content              string  `json:"content"`
	Weight               float64 `json:"weight"`
	Amount               float64 `json:"amount"`
	DeliveryInstructions string  `json:"deliveryInstructions"`
	PickupDate           string  `json:"pickupDate"`
	PickupTime           string  `json:"pickupTime"`
	Status               string  `json:"status"`
}

type driverJSON struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Availability string `json:"availability"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	User      loginUser `json:"user"`
	TrackerID string    `json:"trackerId"`
}

type loginUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// rupee formats an amount with the currency prefix used across TURTU
// frontends.
func rupee(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', -1, 64)
}

func orderToJSON(o queries.OrderResponse) orderJSON {
	return orderJSON{
		ID:                   o.ID.String(),
		CustomerName:         o.CustomerName,
		CustomerPhone:        o.CustomerPhone,
		CustomerEmail:        o.CustomerEmail,
		ReceiverName:         o.ReceiverName,
		ReceiverPhone:        o.ReceiverPhone,
		ReceiverEmail:        o.ReceiverEmail,
		PickupAddress:        o.PickupAddress,
		DropAddress:          o.DropAddress,
		Content:              o.Content,
		Weight:               o.Weight,
		Amount:               o.Amount,
		DeliveryInstructions: o.DeliveryInstructions,
		PickupDate:           o.PickupDate,
		PickupTime:           o.PickupTime,
		Status:               o.Status,
		AssignedDriver:       o.AssignedDriver,
	}
}

func assignedOrderToJSON(a queries.AssignedOrderResponse) assignedOrderJSON {
	return assignedOrderJSON{
		ID:                   a.ID.String(),
		OrderID:              a.OrderID.String(),
		DriverID:             a.DriverID.String(),
		DriverName:           a.DriverName,
		DriverPhone:          a.DriverPhone,
		CustomerName:         a.CustomerName,
		CustomerPhone:        a.CustomerPhone,
		CustomerEmail:        a.CustomerEmail,
		ReceiverName:         a.ReceiverName,
		ReceiverPhone:        a.ReceiverPhone,
		ReceiverEmail:        a.ReceiverEmail,
		PickupAddress:        a.PickupAddress,
		DropAddress:          a.DropAddress,
		Content:              a.Content,
		Weight:               a.Weight,
		Amount:               a.Amount,
		DeliveryInstructions: a.DeliveryInstructions,
		PickupDate:           a.PickupDate,
		PickupTime:           a.PickupTime,
		Status:               a.Status,
	}
}

// assignmentToJSON renders a freshly created snapshot. The OTP is
// deliberately absent from the wire form.
func assignmentToJSON(a *assignment.AssignedOrder) assignedOrderJSON {
	out := assignedOrderJSON{
		ID:                   a.ID().String(),
		OrderID:              a.OrderID().String(),
		DriverID:             a.DriverID().String(),
		DriverName:           a.DriverName(),
		DriverPhone:          a.DriverPhone().String(),
		CustomerName:         a.Customer().Name(),
		CustomerPhone:        a.Customer().Phone().String(),
		CustomerEmail:        a.Customer().Email(),
		ReceiverName:         a.Receiver().Name(),
		ReceiverPhone:        a.Receiver().Phone().String(),
		ReceiverEmail:        a.Receiver().Email(),
		PickupAddress:        a.PickupAddress(),
		DropAddress:          a.DropAddress(),
		Content:              a.Content(),
		Weight:               a.Weight(),
		Amount:               a.Amount(),
		DeliveryInstructions: a.DeliveryInstructions(),
		Status:               a.Status().String(),
	}

	if schedule := a.Schedule(); schedule != nil {
		out.PickupDate = schedule.PickupDate()
		out.PickupTime = schedule.PickupTime()
	}

	return out
}

func driverToJSON(d queries.DriverResponse) driverJSON {
	return driverJSON{
		ID:           d.ID.String(),
		Name:         d.Name,
		Phone:        d.Phone,
		Email:        d.Email,
		Availability: d.Availability,
	}
}
