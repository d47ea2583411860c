package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetProductImageQueryIsNotConstructed = errors.New(
	"GetProductImageQuery must be created via NewGetProductImageQuery constructor",
)

// GetProductImageQuery retrieves the embedded image of one product.
type GetProductImageQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductImageQuery creates a query for a product image.
func NewGetProductImageQuery(productID kernel.UUID) (GetProductImageQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductImageQuery{}, err
	}

	return GetProductImageQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductImageQuery) Validate() error {
	return q.guard.Validate(ErrGetProductImageQueryIsNotConstructed)
}

// ProductID returns the identifier of the product whose image to fetch.
func (q GetProductImageQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetProductImageQueryResponse carries the raw image bytes and their MIME type.
type GetProductImageQueryResponse struct {
	Data        []byte
	ContentType string
}
