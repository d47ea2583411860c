package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves one customer's order history.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer history queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve a customer's orders, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.payment_method,
			o.status,
			o.total,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
			o.placed_at
		FROM orders o
		WHERE o.customer_id = ?
		ORDER BY o.placed_at DESC
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	for rows.Next() {
		var response GetCustomerOrdersQueryResponse
		var id uuid.UUID
		var paymentMethod, status int
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&paymentMethod,
			&status,
			&total,
			&response.ItemCount,
			&response.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID

		orderTotal, totalErr := kernel.NewMoney(total)
		if totalErr != nil {
			return nil, totalErr
		}
		response.Total = orderTotal

		response.PaymentMethod = order.PaymentMethod(paymentMethod)
		response.Status = order.Status(status)

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
