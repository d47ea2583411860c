package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllProductsQueryHandler retrieves the product catalogue from the database.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for product listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve products, sorted by name.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]GetAllProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			category,
			price,
			stock,
			active,
			COALESCE(octet_length(image), 0) > 0 AS has_image
		FROM products
	`
	if query.ActiveOnly() {
		sql += ` WHERE active`
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetAllProductsQueryResponse, 0)

	for rows.Next() {
		var response GetAllProductsQueryResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Category,
			&price,
			&response.Stock,
			&response.Active,
			&response.HasImage,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = productID

		productPrice, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}
		response.Price = productPrice

		products = append(products, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
