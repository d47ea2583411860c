package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order for the admin listing.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents one order in the admin listing.
// CustomerName is resolved through a join and stays empty when the customer
// has been deleted since the order was placed.
type GetAllOrdersQueryResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	CustomerName  string
	PlacedBy      string
	PaymentMethod order.PaymentMethod
	Status        order.Status
	Total         kernel.Money
	ItemCount     int
	PlacedAt      time.Time
}
