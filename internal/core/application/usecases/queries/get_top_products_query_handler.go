package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTopProductsQueryHandler aggregates line items into the top products report.
type GetTopProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetTopProductsQueryHandler creates a handler for top product queries.
// Requires a GORM database connection for query execution.
func NewGetTopProductsQueryHandler(db *gorm.DB) GetTopProductsQueryHandler {
	return GetTopProductsQueryHandler{db: db}
}

// Handle executes the aggregation, descending by units sold. The inner join
// drops line items whose product no longer exists.
func (h GetTopProductsQueryHandler) Handle(
	ctx context.Context,
	query GetTopProductsQuery,
) ([]GetTopProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.category,
			SUM(i.quantity) AS units,
			SUM(i.unit_price * i.quantity) AS revenue
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		GROUP BY p.id, p.name, p.category
		ORDER BY units DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetTopProductsQueryResponse, 0)

	for rows.Next() {
		var response GetTopProductsQueryResponse
		var id uuid.UUID
		var revenue decimal.Decimal

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Category,
			&response.Units,
			&revenue,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ProductID = productID

		productRevenue, revErr := kernel.NewMoney(revenue)
		if revErr != nil {
			return nil, revErr
		}
		response.Revenue = productRevenue

		products = append(products, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
