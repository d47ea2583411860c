package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetTopProductsQueryIsNotConstructed = errors.New(
	"GetTopProductsQuery must be created via NewGetTopProductsQuery constructor",
)

// GetTopProductsQuery retrieves units sold and revenue per product, computed
// from the immutable line item snapshots. Products deleted from the catalogue
// drop out of the report.
type GetTopProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTopProductsQuery creates a query for the top products report.
func NewGetTopProductsQuery() GetTopProductsQuery {
	return GetTopProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTopProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetTopProductsQueryIsNotConstructed)
}

// GetTopProductsQueryResponse is one product's aggregate in the report.
// Name and category reflect the current catalogue entry, not the snapshot.
type GetTopProductsQueryResponse struct {
	ProductID kernel.UUID
	Name      string
	Category  string
	Units     int
	Revenue   kernel.Money
}
