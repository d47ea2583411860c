// Package customerrepo provides data transfer objects and mapping functions for
// customer persistence. It implements the repository pattern for the customer
// domain aggregate, handling the conversion between domain entities and database
// representations.
package customerrepo

import (
	"time"

	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Phone     string     `gorm:"type:varchar(64)"`
	City      string     `gorm:"type:varchar(255)"`
	AvatarID  *uuid.UUID `gorm:"type:uuid"`
	Active    bool       `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(customer *customer.Customer) CustomerDTO {
	var avatarID *uuid.UUID
	if id := customer.AvatarID(); id != nil {
		raw := id.Bytes()
		avatarID = &raw
	}

	return CustomerDTO{
		ID:        customer.ID().Bytes(),
		Name:      customer.Name(),
		Email:     customer.Email(),
		Phone:     customer.Phone(),
		City:      customer.City(),
		AvatarID:  avatarID,
		Active:    customer.IsActive(),
		CreatedAt: customer.CreatedAt(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
// Reconstructs the aggregate including the optional avatar reference using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var avatarID *kernel.UUID
	if dto.AvatarID != nil {
		aID, avatarErr := kernel.UUIDFromBytes((*dto.AvatarID)[:])
		if avatarErr != nil {
			return nil, avatarErr
		}

		avatarID = &aID
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, dto.City,
		avatarID, dto.Active, dto.CreatedAt)
}
