package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves one product by identifier.
type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for a single product.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the product to fetch.
func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetProductQueryResponse represents one product in the read model.
type GetProductQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Category  string
	Price     kernel.Money
	Stock     int
	Active    bool
	HasImage  bool
	CreatedAt time.Time
}
