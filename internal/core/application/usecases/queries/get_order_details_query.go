package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves one order with its line items and customer
// data. Feeds the detail view and the PDF invoice.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for a full order view.
func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailsItemResponse is one line item snapshot within the order view.
type GetOrderDetailsItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Subtotal    kernel.Money
}

// GetOrderDetailsQueryResponse represents a full order in the read model.
// Customer fields stay empty when the customer has been deleted.
type GetOrderDetailsQueryResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	CustomerName  string
	CustomerEmail string
	CustomerCity  string
	PlacedBy      string
	PaymentMethod order.PaymentMethod
	Status        order.Status
	Total         kernel.Money
	PlacedAt      time.Time
	Items         []GetOrderDetailsItemResponse
}
