// Package driverrepo persists drivers with GORM.
package driverrepo

import (
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is a row of the drivers table.
type DriverDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Availability string `gorm:"type:text"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           d.ID().Raw(),
		Name:         d.Name(),
		Availability: d.Availability().String(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromRaw(dto.ID)
	if err != nil {
		return nil, err
	}

	availability, err := driver.ParseAvailability(dto.Availability)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, availability)
}
