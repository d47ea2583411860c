package queries

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCustomersQueryHandler retrieves all customer information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for customer listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve all customers.
// Returns a slice of customer read models sorted by name.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]GetAllCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	customers := make([]GetAllCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllCustomersQueryResponse
		var id uuid.UUID
		var avatarID uuid.NullUUID

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Email,
			&response.Phone,
			&response.City,
			&avatarID,
			&response.Active,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = customerID

		if avatarID.Valid {
			linkedID, idErr := kernel.UUIDFromBytes(avatarID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.AvatarID = &linkedID
		}

		customers = append(customers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
