// Package assignmentrepo provides data transfer objects and mapping functions for
// assigned order persistence. This package implements the repository pattern for the
// assignment domain aggregate, handling the conversion between domain entities and
// database representations.
package assignmentrepo

import (
	"turtu/internal/core/domain/model/assignment"
	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// AssignedOrderDTO represents the database structure for persisting assignment snapshots.
// Each row captures the order as it looked at assignment time together with the
// driver identity and the delivery OTP.
type AssignedOrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	DriverID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverName           string     `gorm:"type:varchar(255);not null"`
	DriverPhone          string     `gorm:"type:varchar(20);not null"`
	Customer             ContactDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Receiver             ContactDTO `gorm:"embedded;embeddedPrefix:receiver_"`
	PickupAddress        string     `gorm:"type:text;not null"`
	DropAddress          string     `gorm:"type:text;not null"`
	Content              string     `gorm:"type:text;not null"`
	Weight               float64    `gorm:"type:numeric;not null"`
	Amount               float64    `gorm:"type:numeric;not null"`
	DeliveryInstructions *string    `gorm:"type:text"`
	PickupDate           *string    `gorm:"type:varchar(32)"`
	PickupTime           *string    `gorm:"type:varchar(32)"`
	OTP                  *string    `gorm:"column:otp;type:varchar(6)"`
	Status               string     `gorm:"type:varchar(16);not null;index"`
}

// TableName specifies the database table name for assignment entities.
// Overrides GORM's default naming convention to use "assigned_orders".
func (AssignedOrderDTO) TableName() string {
	return "assigned_orders"
}

// ContactDTO represents an embedded contact within the assigned order table.
// Used for both the customer and the receiver with different column prefixes.
type ContactDTO struct {
	Name  string `gorm:"type:varchar(255);not null"`
	Phone string `gorm:"type:varchar(20);not null"`
	Email string `gorm:"type:varchar(255);not null"`
}

// fromDomain converts an assignment domain aggregate to its database representation.
// A consumed OTP maps to NULL.
func fromDomain(assigned *assignment.AssignedOrder) AssignedOrderDTO {
	var instructions *string
	if v := assigned.DeliveryInstructions(); v != "" {
		instructions = &v
	}

	var pickupDate, pickupTime *string
	if schedule := assigned.Schedule(); schedule != nil {
		d := schedule.PickupDate()
		t := schedule.PickupTime()
		pickupDate = &d
		pickupTime = &t
	}

	return AssignedOrderDTO{
		ID:          assigned.ID().Bytes(),
		OrderID:     assigned.OrderID().Bytes(),
		DriverID:    assigned.DriverID().Bytes(),
		DriverName:  assigned.DriverName(),
		DriverPhone: assigned.DriverPhone().String(),
		Customer: ContactDTO{
			Name:  assigned.Customer().Name(),
			Phone: assigned.Customer().Phone().String(),
			Email: assigned.Customer().Email(),
		},
		Receiver: ContactDTO{
			Name:  assigned.Receiver().Name(),
			Phone: assigned.Receiver().Phone().String(),
			Email: assigned.Receiver().Email(),
		},
		PickupAddress:        assigned.PickupAddress(),
		DropAddress:          assigned.DropAddress(),
		Content:              assigned.Content(),
		Weight:               assigned.Weight(),
		Amount:               assigned.Amount(),
		DeliveryInstructions: instructions,
		PickupDate:           pickupDate,
		PickupTime:           pickupTime,
		OTP:                  assigned.OTP(),
		Status:               assigned.Status().String(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
// Reconstructs the complete snapshot including the OTP using RestoreAssignedOrder.
func toDomain(dto AssignedOrderDTO) (*assignment.AssignedOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	driverPhone, err := kernel.NewPhoneNumber(dto.DriverPhone)
	if err != nil {
		return nil, err
	}

	customer, err := contactToDomain(dto.Customer)
	if err != nil {
		return nil, err
	}

	receiver, err := contactToDomain(dto.Receiver)
	if err != nil {
		return nil, err
	}

	var schedule *order.Schedule
	if dto.PickupDate != nil && dto.PickupTime != nil {
		s, scheduleErr := order.NewSchedule(*dto.PickupDate, *dto.PickupTime)
		if scheduleErr != nil {
			return nil, scheduleErr
		}
		schedule = &s
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var instructions string
	if dto.DeliveryInstructions != nil {
		instructions = *dto.DeliveryInstructions
	}

	return assignment.RestoreAssignedOrder(id, orderID, driverID, dto.DriverName, driverPhone,
		customer, receiver, dto.PickupAddress, dto.DropAddress, dto.Content,
		dto.Weight, dto.Amount, instructions, schedule, dto.OTP, status)
}

func contactToDomain(dto ContactDTO) (order.Contact, error) {
	phone, err := kernel.NewPhoneNumber(dto.Phone)
	if err != nil {
		return order.Contact{}, err
	}

	return order.NewContact(dto.Name, phone, dto.Email)
}
