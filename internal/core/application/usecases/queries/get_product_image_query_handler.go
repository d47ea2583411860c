package queries

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductImageQueryHandler retrieves a product image from the database.
type GetProductImageQueryHandler struct {
	db *gorm.DB
}

// NewGetProductImageQueryHandler creates a handler for product image queries.
// Requires a GORM database connection for query execution.
func NewGetProductImageQueryHandler(db *gorm.DB) GetProductImageQueryHandler {
	return GetProductImageQueryHandler{db: db}
}

// Handle executes the query to retrieve a product image.
// Returns errs.ObjectNotFoundError when the product does not exist or has
// no image stored.
func (h GetProductImageQueryHandler) Handle(
	ctx context.Context,
	query GetProductImageQuery,
) (GetProductImageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductImageQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			image,
			image_content_type
		FROM products
		WHERE id = ?
	`, query.ProductID().String()).Row()

	var response GetProductImageQueryResponse

	err := row.Scan(&response.Data, &response.ContentType)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProductImageQueryResponse{}, errs.NewObjectNotFoundError("product", query.ProductID())
	}
	if err != nil {
		return GetProductImageQueryResponse{}, err
	}

	if len(response.Data) == 0 {
		return GetProductImageQueryResponse{}, errs.NewObjectNotFoundError("product image", query.ProductID())
	}

	return response, nil
}
