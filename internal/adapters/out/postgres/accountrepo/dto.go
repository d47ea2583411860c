// Package accountrepo provides data transfer objects and mapping functions for
// login account persistence.
package accountrepo

import (
	"time"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting login accounts.
// The unique index on email backs the one-account-per-email rule at the
// database level, so concurrent registrations cannot slip past the
// application-side check.
type AccountDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         int        `gorm:"type:int;not null"`
	CustomerID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for account entities.
// Overrides GORM's default naming convention to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(account *account.Account) AccountDTO {
	var customerID *uuid.UUID
	if id := account.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	return AccountDTO{
		ID:           account.ID().Bytes(),
		Email:        account.Email(),
		PasswordHash: account.PasswordHash(),
		Role:         int(account.Role()),
		CustomerID:   customerID,
		CreatedAt:    account.CreatedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
// The stored password hash is restored as is, never rehashed.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}

		customerID = &cID
	}

	return account.RestoreAccount(id, dto.Email, dto.PasswordHash,
		account.Role(dto.Role), customerID, dto.CreatedAt)
}
