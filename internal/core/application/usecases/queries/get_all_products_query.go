package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves the product catalogue. The admin listing
// shows everything; the order form asks for active products only.
type GetAllProductsQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve products.
// With activeOnly set, inactive products are filtered out.
func NewGetAllProductsQuery(activeOnly bool) GetAllProductsQuery {
	return GetAllProductsQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// ActiveOnly reports whether inactive products are filtered out.
func (q GetAllProductsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// GetAllProductsQueryResponse represents product information in the read model.
// The image itself is not included; HasImage tells the caller whether the
// image endpoint will serve one.
type GetAllProductsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Category string
	Price    kernel.Money
	Stock    int
	Active   bool
	HasImage bool
}
