package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves the order history of one customer.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's own orders.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose history to fetch.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerOrdersQueryResponse represents one order in a customer history.
type GetCustomerOrdersQueryResponse struct {
	ID            kernel.UUID
	PaymentMethod order.PaymentMethod
	Status        order.Status
	Total         kernel.Money
	ItemCount     int
	PlacedAt      time.Time
}
