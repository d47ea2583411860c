package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its line item snapshots and restored as
// a whole.
type OrderRepository interface {
	// Add persists a new order aggregate with all its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Line items are
	// immutable after placement, so only the order row is rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its line items. Returns errs.ObjectNotFoundError when no such order
	// exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInCreatedStatusOlderThan retrieves orders still in Created status
	// placed before the given cutoff. Used by the expiry job to cancel orders
	// whose payment window has passed.
	GetAllInCreatedStatusOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
