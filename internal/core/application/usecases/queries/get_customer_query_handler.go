package queries

import (
	"context"
	"database/sql"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerQueryHandler retrieves a single customer from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single customer queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query to retrieve one customer.
// Returns errs.ObjectNotFoundError when the customer does not exist.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (GetCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			city,
			avatar_id,
			active,
			created_at
		FROM customers
		WHERE id = ?
	`, query.CustomerID().String()).Row()

	var response GetCustomerQueryResponse
	var id uuid.UUID
	var avatarID uuid.NullUUID

	err := row.Scan(
		&id,
		&response.Name,
		&response.Email,
		&response.Phone,
		&response.City,
		&avatarID,
		&response.Active,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCustomerQueryResponse{}, errs.NewObjectNotFoundError("customer", query.CustomerID())
	}
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}
	response.ID = customerID

	if avatarID.Valid {
		linkedID, idErr := kernel.UUIDFromBytes(avatarID.UUID[:])
		if idErr != nil {
			return GetCustomerQueryResponse{}, idErr
		}
		response.AvatarID = &linkedID
	}

	return response, nil
}
