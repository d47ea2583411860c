package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves one customer by identifier.
type GetCustomerQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for a single customer.
func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer to fetch.
func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerQueryResponse represents one customer in the read model.
type GetCustomerQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	City      string
	AvatarID  *kernel.UUID
	Active    bool
	CreatedAt time.Time
}
