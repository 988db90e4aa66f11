// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"turtu/internal/core/domain/model/driver"
	"turtu/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The phone number carries a unique index because drivers are looked up by
// phone at assignment time.
type DriverDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Availability string    `gorm:"type:varchar(16);not null;index"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(driver *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           driver.ID().Bytes(),
		Name:         driver.Name(),
		Phone:        driver.Phone().String(),
		Email:        driver.Email(),
		Availability: driver.Availability().String(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhoneNumber(dto.Phone)
	if err != nil {
		return nil, err
	}

	availability, err := driver.AvailabilityFromString(dto.Availability)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, phone, dto.Email, availability)
}
