package queries

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler retrieves a full order view from the database.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its line items.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	response, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	items, err := h.fetchItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderDetailsQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderDetailsQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			COALESCE(c.name, '') AS customer_name,
			COALESCE(c.email, '') AS customer_email,
			COALESCE(c.city, '') AS customer_city,
			o.placed_by,
			o.payment_method,
			o.status,
			o.total,
			o.placed_at
		FROM orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, orderID.String()).Row()

	var response GetOrderDetailsQueryResponse
	var id, customerID uuid.UUID
	var paymentMethod, status int
	var total decimal.Decimal

	err := row.Scan(
		&id,
		&customerID,
		&response.CustomerName,
		&response.CustomerEmail,
		&response.CustomerCity,
		&response.PlacedBy,
		&paymentMethod,
		&status,
		&total,
		&response.PlacedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("order", orderID)
	}
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	responseID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	response.ID = responseID

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	response.CustomerID = ownerID

	orderTotal, err := kernel.NewMoney(total)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	response.Total = orderTotal

	response.PaymentMethod = order.PaymentMethod(paymentMethod)
	response.Status = order.Status(status)

	return response, nil
}

func (h GetOrderDetailsQueryHandler) fetchItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderDetailsItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderDetailsItemResponse, 0)

	for rows.Next() {
		var item GetOrderDetailsItemResponse
		var productID uuid.UUID
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&productID,
			&item.ProductName,
			&item.Quantity,
			&unitPrice,
		)
		if err != nil {
			return nil, err
		}

		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = itemProductID

		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item.UnitPrice = price

		subtotal, subErr := price.MultiplyByQuantity(item.Quantity)
		if subErr != nil {
			return nil, subErr
		}
		item.Subtotal = subtotal

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
