package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetSalesByDayQueryIsNotConstructed = errors.New(
	"GetSalesByDayQuery must be created via NewGetSalesByDayQuery constructor",
)

// GetSalesByDayQuery retrieves per-day order counts and revenue. Cancelled
// orders do not count as sales and are excluded.
type GetSalesByDayQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSalesByDayQuery creates a query for the daily sales report.
func NewGetSalesByDayQuery() GetSalesByDayQuery {
	return GetSalesByDayQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSalesByDayQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesByDayQueryIsNotConstructed)
}

// GetSalesByDayQueryResponse is one day's aggregate in the sales report.
type GetSalesByDayQueryResponse struct {
	Day     time.Time
	Orders  int
	Revenue kernel.Money
}
