package queries

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product queries.
// Requires a GORM database connection for query execution.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query to retrieve one product.
// Returns errs.ObjectNotFoundError when the product does not exist.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			price,
			stock,
			active,
			COALESCE(octet_length(image), 0) > 0 AS has_image,
			created_at
		FROM products
		WHERE id = ?
	`, query.ProductID().String()).Row()

	var response GetProductQueryResponse
	var id uuid.UUID
	var price decimal.Decimal

	err := row.Scan(
		&id,
		&response.Name,
		&response.Category,
		&price,
		&response.Stock,
		&response.Active,
		&response.HasImage,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProductQueryResponse{}, errs.NewObjectNotFoundError("product", query.ProductID())
	}
	if err != nil {
		return GetProductQueryResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetProductQueryResponse{}, err
	}
	response.ID = productID

	productPrice, err := kernel.NewMoney(price)
	if err != nil {
		return GetProductQueryResponse{}, err
	}
	response.Price = productPrice

	return response, nil
}
