package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetOrderAuditQueryIsNotConstructed = errors.New(
	"GetOrderAuditQuery must be created via NewGetOrderAuditQuery constructor",
)

// GetOrderAuditQuery retrieves the audit trail of one order.
type GetOrderAuditQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderAuditQuery creates a query for an order's audit trail.
func NewGetOrderAuditQuery(orderID kernel.UUID) (GetOrderAuditQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderAuditQuery{}, err
	}

	return GetOrderAuditQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderAuditQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAuditQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose trail to fetch.
func (q GetOrderAuditQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderAuditQueryResponse is one entry of an order's audit trail.
// Before and After hold the JSON snapshots exactly as recorded.
type GetOrderAuditQueryResponse struct {
	ID         kernel.UUID
	Action     string
	Before     string
	After      string
	Actor      string
	OccurredAt time.Time
}
