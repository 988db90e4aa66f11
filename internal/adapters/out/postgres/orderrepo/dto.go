// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"turtu/internal/core/domain/model/kernel"
	"turtu/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing
// for efficient querying by status.
type OrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
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
	Status               string     `gorm:"type:varchar(16);not null;index"`
	AssignedDriver       *string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ContactDTO represents an embedded contact within the order table.
// Used for both the customer and the receiver with different column prefixes.
type ContactDTO struct {
	Name  string `gorm:"type:varchar(255);not null"`
	Phone string `gorm:"type:varchar(20);not null"`
	Email string `gorm:"type:varchar(255);not null"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Empty optional attributes are stored as NULL rather than empty strings.
func fromDomain(order *order.Order) OrderDTO {
	var instructions *string
	if v := order.DeliveryInstructions(); v != "" {
		instructions = &v
	}

	var pickupDate, pickupTime *string
	if schedule := order.Schedule(); schedule != nil {
		d := schedule.PickupDate()
		t := schedule.PickupTime()
		pickupDate = &d
		pickupTime = &t
	}

	var assignedDriver *string
	if v := order.AssignedDriver(); v != "" {
		assignedDriver = &v
	}

	return OrderDTO{
		ID: order.ID().Bytes(),
		Customer: ContactDTO{
			Name:  order.Customer().Name(),
			Phone: order.Customer().Phone().String(),
			Email: order.Customer().Email(),
		},
		Receiver: ContactDTO{
			Name:  order.Receiver().Name(),
			Phone: order.Receiver().Phone().String(),
			Email: order.Receiver().Email(),
		},
		PickupAddress:        order.PickupAddress(),
		DropAddress:          order.DropAddress(),
		Content:              order.Content(),
		Weight:               order.Weight(),
		Amount:               order.Amount(),
		DeliveryInstructions: instructions,
		PickupDate:           pickupDate,
		PickupTime:           pickupTime,
		Status:               order.Status().String(),
		AssignedDriver:       assignedDriver,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and driver assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	var assignedDriver string
	if dto.AssignedDriver != nil {
		assignedDriver = *dto.AssignedDriver
	}

	return order.RestoreOrder(id, customer, receiver, dto.PickupAddress, dto.DropAddress,
		dto.Content, dto.Weight, dto.Amount, instructions, schedule, status, assignedDriver)
}

func contactToDomain(dto ContactDTO) (order.Contact, error) {
	phone, err := kernel.NewPhoneNumber(dto.Phone)
	if err != nil {
		return order.Contact{}, err
	}

	return order.NewContact(dto.Name, phone, dto.Email)
}
