package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetSalesByDayQueryHandler aggregates orders into the daily sales report.
type GetSalesByDayQueryHandler struct {
	db *gorm.DB
}

// NewGetSalesByDayQueryHandler creates a handler for daily sales queries.
// Requires a GORM database connection for query execution.
func NewGetSalesByDayQueryHandler(db *gorm.DB) GetSalesByDayQueryHandler {
	return GetSalesByDayQueryHandler{db: db}
}

// Handle executes the aggregation, ascending by day. Cancelled orders are
// excluded from both the count and the revenue.
func (h GetSalesByDayQueryHandler) Handle(
	ctx context.Context,
	query GetSalesByDayQuery,
) ([]GetSalesByDayQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			DATE(placed_at) AS day,
			COUNT(*) AS orders,
			COALESCE(SUM(total), 0) AS revenue
		FROM orders
		WHERE status != ?
		GROUP BY DATE(placed_at)
		ORDER BY day
	`, int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]GetSalesByDayQueryResponse, 0)

	for rows.Next() {
		var response GetSalesByDayQueryResponse
		var revenue decimal.Decimal

		err = rows.Scan(
			&response.Day,
			&response.Orders,
			&revenue,
		)
		if err != nil {
			return nil, err
		}

		dayRevenue, revErr := kernel.NewMoney(revenue)
		if revErr != nil {
			return nil, revErr
		}
		response.Revenue = dayRevenue

		days = append(days, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}
