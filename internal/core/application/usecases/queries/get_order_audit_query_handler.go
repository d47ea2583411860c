package queries

import (
	"context"

	"backoffice/internal/core/domain/model/audit"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderAuditQueryHandler retrieves an order's audit trail from the database.
type GetOrderAuditQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderAuditQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderAuditQueryHandler(db *gorm.DB) GetOrderAuditQueryHandler {
	return GetOrderAuditQueryHandler{db: db}
}

// Handle executes the query to retrieve an order's audit entries, oldest
// first. An order without recorded transitions yields an empty slice.
func (h GetOrderAuditQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAuditQuery,
) ([]GetOrderAuditQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			action,
			before_json,
			after_json,
			actor,
			occurred_at
		FROM audit_records
		WHERE entity_type = ? AND entity_id = ?
		ORDER BY occurred_at
	`, audit.EntityTypeOrder, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetOrderAuditQueryResponse, 0)

	for rows.Next() {
		var response GetOrderAuditQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Action,
			&response.Before,
			&response.After,
			&response.Actor,
			&response.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = entryID

		entries = append(entries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
