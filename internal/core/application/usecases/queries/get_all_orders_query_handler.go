package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the admin order listing from the database.
// Customer names come from a left join so orders of deleted customers still
// show up.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			COALESCE(c.name, '') AS customer_name,
			o.placed_by,
			o.payment_method,
			o.status,
			o.total,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
			o.placed_at
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		ORDER BY o.placed_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAllOrdersQueryResponse, 0)

	for rows.Next() {
		var response GetAllOrdersQueryResponse
		var id, customerID uuid.UUID
		var paymentMethod, status int
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&customerID,
			&response.CustomerName,
			&response.PlacedBy,
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

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.CustomerID = ownerID

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
